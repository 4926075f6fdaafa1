package shapegrid

import (
	"image/color"
	"testing"
)

// recordedOp is one call captured by recordingSurface.
type recordedOp struct {
	kind  string // "fill", "stroke", "text"
	rect  Rect
	color color.Color
	width float64
	text  string
}

// recordingSurface captures draw calls. surfacetest.Recorder cannot be used
// here without an import cycle.
type recordingSurface struct {
	ops []recordedOp
}

func (r *recordingSurface) FillRect(rect Rect, c color.Color) {
	r.ops = append(r.ops, recordedOp{kind: "fill", rect: rect, color: c})
}

func (r *recordingSurface) StrokeRect(rect Rect, c color.Color, width float64) {
	r.ops = append(r.ops, recordedOp{kind: "stroke", rect: rect, color: c, width: width})
}

func (r *recordingSurface) DrawText(text string, rect Rect, c color.Color) {
	r.ops = append(r.ops, recordedOp{kind: "text", rect: rect, color: c, text: text})
}

func (r *recordingSurface) count(kind string) int {
	n := 0
	for _, op := range r.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

// assertConsistent checks every node's cached corner against a fresh walk of
// its ancestors.
func assertConsistent(t *testing.T, tree *Tree) {
	t.Helper()
	tree.Walk(func(n *Node) bool {
		if got, want := n.AbsoluteTopLeft(), n.ComputeAbsoluteTopLeft(); got != want {
			t.Errorf("%s: AbsoluteTopLeft = %v, ComputeAbsoluteTopLeft = %v", n.Name, got, want)
		}
		return true
	})
}

func mustChild(t *testing.T, parent *Node, opts NodeOptions) *Node {
	t.Helper()
	n, err := parent.NewChild(opts)
	if err != nil {
		t.Fatalf("NewChild(%q): %v", opts.Name, err)
	}
	return n
}

func mustGrid(t *testing.T, parent *Node, cfg GridConfig) *Grid {
	t.Helper()
	g, err := NewGrid(parent, cfg)
	if err != nil {
		t.Fatalf("NewGrid(%q): %v", cfg.Name, err)
	}
	return g
}

func vecNear(a, b Vec2) bool {
	const eps = 1e-9
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx < eps && dx > -eps && dy < eps && dy > -eps
}
