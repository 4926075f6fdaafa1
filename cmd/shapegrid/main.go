// Command shapegrid runs the grid puzzle in a window, in the terminal, or
// renders a single frame to a PNG file.
//
// Settings come from SHAPEGRID_* environment variables; flags override the
// mode and board dimension.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/shapegrid"
	"github.com/phanxgames/shapegrid/ebitensurface"
	"github.com/phanxgames/shapegrid/ecs"
	"github.com/phanxgames/shapegrid/ggsurface"
	"github.com/phanxgames/shapegrid/internal/config"
	"github.com/phanxgames/shapegrid/sudoku"
	"github.com/phanxgames/shapegrid/termsurface"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "shapegrid:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	snapshot := flag.String("snapshot", "", "render one frame to this PNG file and exit")
	term := flag.Bool("term", false, "run in the terminal")
	dim := flag.Int("dim", cfg.Dim, "board dimension")
	flag.Parse()
	cfg.Dim = *dim
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	var out io.Writer = os.Stderr
	if *term {
		// The terminal belongs to the screen.
		out = io.Discard
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	shapegrid.SetLogger(logger)

	world := donburi.NewWorld()
	sink := ecs.NewDonburiSink(world)
	ecs.InteractionEventType.Subscribe(world, func(_ donburi.World, ev shapegrid.InteractionEvent) {
		switch ev.Type {
		case shapegrid.EventResize:
			logger.Debug("resize", "width", ev.X, "height", ev.Y)
		case shapegrid.EventMouseDown:
			logger.Info("press",
				"button", ev.Button.String(),
				"x", ev.X, "y", ev.Y,
				"hits", len(ev.Hits))
		}
	})

	game, err := sudoku.NewGame(cfg.Width, cfg.Height, sudoku.Options{
		Dim:        cfg.Dim,
		BoardScale: cfg.BoardScale,
		Tick:       cfg.Tick,
		Sink:       sink,
		Debug:      cfg.Debug,
	})
	if err != nil {
		return err
	}
	scene := &app{Game: game, world: world}

	switch {
	case *snapshot != "":
		return ggsurface.Snapshot(scene, cfg.Width, cfg.Height, *snapshot)
	case *term:
		return runTerminal(scene, cfg.Tick)
	default:
		return ebitensurface.Run(scene, ebitensurface.HostOptions{
			Title:         cfg.Title,
			Width:         cfg.Width,
			Height:        cfg.Height,
			Resizable:     true,
			ShowFPS:       cfg.ShowFPS || cfg.Debug,
			ScreenshotDir: cfg.ScreenshotDir,
		})
	}
}

func runTerminal(scene shapegrid.Scene, tick time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return termsurface.Run(ctx, screen, scene, tick)
}

// app delivers queued ECS events once per frame.
type app struct {
	*sudoku.Game
	world donburi.World
}

func (a *app) Update(elapsed time.Duration) bool {
	events.ProcessAllEvents(a.world)
	return a.Game.Update(elapsed)
}
