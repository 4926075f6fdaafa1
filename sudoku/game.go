package sudoku

import (
	"time"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/shapegrid"
)

// Cursor appearance and motion.
var CursorColor = shapegrid.Color{R: 1, G: 0.85, B: 0.1, A: 1}

const (
	cursorWidth    = 3.0
	cursorSlide    = 0.15 // seconds
	cursorPulse    = 0.5  // seconds
	cursorMinAlpha = 0.4
)

// Options configures a Game.
type Options struct {
	Dim        int           // board dimension, default 3
	BoardScale float64       // default DefaultBoardScale
	Tick       time.Duration // default shapegrid.DefaultTickInterval
	Sink       shapegrid.EventSink
	Debug      bool
}

// Game is the puzzle scene. It implements shapegrid.Scene.
type Game struct {
	tree   *shapegrid.Tree
	board  *Board
	ticker *shapegrid.Ticker
	sink   shapegrid.EventSink

	cursor      *shapegrid.Node
	cursorCell  *Cell
	cursorAlpha float64
	pulseDown   bool
	slide       *shapegrid.Tween
}

var _ shapegrid.Scene = (*Game)(nil)

// NewGame builds the board for a width×height canvas.
func NewGame(width, height int, opts Options) (*Game, error) {
	if opts.Dim == 0 {
		opts.Dim = 3
	}
	tree := shapegrid.NewTree(float64(width), float64(height))
	tree.SetDebugMode(opts.Debug)

	board, err := NewBoard(tree, opts.Dim)
	if err != nil {
		return nil, err
	}
	if opts.BoardScale > 0 {
		board.SetScale(opts.BoardScale)
	}
	cursor, err := tree.Root().NewChild(shapegrid.NodeOptions{Name: "cursor", Hidden: true})
	if err != nil {
		return nil, err
	}

	g := &Game{
		tree:        tree,
		board:       board,
		ticker:      shapegrid.NewTicker(opts.Tick),
		sink:        opts.Sink,
		cursor:      cursor,
		cursorAlpha: 1,
	}
	g.ticker.OnSecond = g.pulse
	g.ticker.OnTenSeconds = func(t *shapegrid.Ticker) {
		shapegrid.Logger().Debug("animation", "ticks", t.Ticks(), "tweens", t.ActiveTweens())
	}
	g.ticker.OnMinute = func(t *shapegrid.Ticker) {
		shapegrid.Logger().Info("still running", "seconds", t.Seconds())
	}

	g.layout(width, height)
	return g, nil
}

// Tree returns the scene tree.
func (g *Game) Tree() *shapegrid.Tree { return g.tree }

// Board returns the board.
func (g *Game) Board() *Board { return g.board }

// Ticker returns the animation ticker.
func (g *Game) Ticker() *shapegrid.Ticker { return g.ticker }

// Cursor returns the selected cell, or nil.
func (g *Game) Cursor() *Cell { return g.cursorCell }

// CursorNode returns the node outlining the selected cell.
func (g *Game) CursorNode() *shapegrid.Node { return g.cursor }

// Resize implements shapegrid.Scene. The sink receives an EventResize.
func (g *Game) Resize(width, height int) {
	g.layout(width, height)
	if g.sink != nil {
		g.sink.EmitEvent(shapegrid.NewResizeEvent(width, height))
	}
}

func (g *Game) layout(width, height int) {
	g.board.Layout(float64(width), float64(height))
	// Place the cells now so the cursor can snap to its cell.
	g.board.grid.Layout()
	if g.cursorCell != nil {
		g.moveCursor(g.cursorCell, false)
	}
}

// Redraw implements shapegrid.Scene.
func (g *Game) Redraw(s shapegrid.Surface) {
	g.board.Redraw(s)
	g.cursor.StrokeBorder(s, CursorColor.WithAlpha(g.cursorAlpha), cursorWidth)
}

// MouseDown implements shapegrid.Scene. A left press selects the cell under
// the point; a right press on a candidate also toggles it.
func (g *Game) MouseDown(p shapegrid.Vec2, button shapegrid.MouseButton) []*shapegrid.Node {
	hits := g.tree.HitTest(p)
	ev := shapegrid.NewMouseDownEvent(p, button, hits)
	shapegrid.Logger().Debug("mouse down",
		"x", p.X, "y", p.Y, "button", button.String(), "path", ev.Path)

	sel := g.board.Resolve(hits)
	if sel.Cell != nil {
		if button == shapegrid.MouseButtonRight && sel.Possibility > 0 {
			v := sel.Possibility
			_ = g.board.SetPossible(sel.Cell, !sel.Cell.Possible(v), v)
			shapegrid.Logger().Debug("possibility toggled",
				"cell", sel.Cell.String(), "value", v, "possible", sel.Cell.Possible(v))
		}
		g.moveCursor(sel.Cell, true)
	}

	if g.sink != nil {
		g.sink.EmitEvent(ev)
	}
	return hits
}

// Update implements shapegrid.Scene.
func (g *Game) Update(elapsed time.Duration) bool {
	return g.ticker.Advance(elapsed)
}

// moveCursor puts the cursor over c, sliding there when animate is set.
func (g *Game) moveCursor(c *Cell, animate bool) {
	g.cursorCell = c
	cn := c.Node()
	target := cn.AbsoluteCenter().Sub(g.tree.CanvasCenter())
	_ = g.cursor.SetSize(cn.Size())
	if g.slide != nil {
		g.slide.Done = true
	}
	if !animate || !g.cursor.Visible() {
		g.cursor.SetLocation(target)
		g.cursor.SetVisible(true)
		return
	}
	g.slide = shapegrid.TweenLocation(g.cursor, target, cursorSlide, ease.OutQuad)
	g.ticker.AddTween(g.slide)
}

// pulse fades the cursor outline in and out, one direction per second.
func (g *Game) pulse(*shapegrid.Ticker) {
	if !g.cursor.Visible() {
		return
	}
	to := 1.0
	if !g.pulseDown {
		to = cursorMinAlpha
	}
	g.pulseDown = !g.pulseDown
	g.ticker.AddTween(shapegrid.TweenValue(g.cursorAlpha, to, cursorPulse, ease.InOutSine, func(v float64) {
		g.cursorAlpha = v
	}))
}
