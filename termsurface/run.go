package termsurface

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/shapegrid"
)

// stopEvent is the interrupt payload posted when the run context ends.
type stopEvent struct{}

// Run drives scene on screen until ctx is done or the user presses q, Escape
// or Ctrl-C. The caller owns the screen: Init before and Fini after.
//
// Canvas size follows the terminal size; mouse presses arrive at the center
// of the clicked cell. Animation ticks every tick (shapegrid.DefaultTickInterval
// when non-positive).
func Run(ctx context.Context, screen tcell.Screen, scene shapegrid.Scene, tick time.Duration) error {
	if tick <= 0 {
		tick = shapegrid.DefaultTickInterval
	}
	surf := New(screen)
	screen.EnableMouse()
	defer screen.DisableMouse()

	redraw := func() {
		surf.Clear()
		scene.Redraw(surf)
		surf.Show()
	}
	resize := func() {
		w, h := surf.CanvasSize()
		scene.Resize(w, h)
		shapegrid.Logger().Debug("terminal resized", "width", w, "height", h)
		redraw()
	}
	resize()

	done := make(chan struct{})
	defer close(done)
	go func() {
		t := time.NewTicker(tick)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				_ = screen.PostEvent(tcell.NewEventInterrupt(stopEvent{}))
				return
			case <-t.C:
				_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()

	var pressed tcell.ButtonMask
	last := time.Now()
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			resize()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		case *tcell.EventMouse:
			buttons := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
			down := buttons &^ pressed
			pressed = buttons
			if down == 0 {
				continue
			}
			x, y := ev.Position()
			scene.MouseDown(surf.ToCanvas(x, y), mouseButton(down))
			redraw()
		case *tcell.EventInterrupt:
			if _, stop := ev.Data().(stopEvent); stop {
				return ctx.Err()
			}
			now := time.Now()
			if scene.Update(now.Sub(last)) {
				redraw()
			}
			last = now
		}
	}
}

func mouseButton(b tcell.ButtonMask) shapegrid.MouseButton {
	switch {
	case b&tcell.Button1 != 0:
		return shapegrid.MouseButtonLeft
	case b&tcell.Button2 != 0:
		return shapegrid.MouseButtonRight
	default:
		return shapegrid.MouseButtonMiddle
	}
}
