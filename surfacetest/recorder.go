// Package surfacetest provides a shapegrid.Surface that records draw calls,
// for tests.
package surfacetest

import (
	"image/color"

	"github.com/phanxgames/shapegrid"
)

// OpKind identifies a recorded draw call.
type OpKind uint8

const (
	OpFill OpKind = iota
	OpStroke
	OpText
	OpGradient
)

func (k OpKind) String() string {
	switch k {
	case OpFill:
		return "fill"
	case OpStroke:
		return "stroke"
	case OpText:
		return "text"
	case OpGradient:
		return "gradient"
	default:
		return "unknown"
	}
}

// Op is one recorded draw call.
type Op struct {
	Kind   OpKind
	Rect   shapegrid.Rect
	Color  color.Color
	Color2 color.Color // bottom color for gradients
	Width  float64
	Text   string
}

// Recorder is a Surface that appends every call to Ops.
type Recorder struct {
	Ops []Op
}

// FillRect implements shapegrid.Surface.
func (r *Recorder) FillRect(rect shapegrid.Rect, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Rect: rect, Color: c})
}

// StrokeRect implements shapegrid.Surface.
func (r *Recorder) StrokeRect(rect shapegrid.Rect, c color.Color, width float64) {
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Rect: rect, Color: c, Width: width})
}

// DrawText implements shapegrid.Surface.
func (r *Recorder) DrawText(text string, rect shapegrid.Rect, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Rect: rect, Color: c, Text: text})
}

// FillGradient implements shapegrid.GradientFiller.
func (r *Recorder) FillGradient(rect shapegrid.Rect, top, bottom color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpGradient, Rect: rect, Color: top, Color2: bottom})
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

// Count returns how many recorded calls match kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls for which keep returns true.
func (r *Recorder) Filter(keep func(Op) bool) []Op {
	var out []Op
	for _, op := range r.Ops {
		if keep(op) {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns the text of every OpText call in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// SameColor reports whether two colors have identical RGBA values. Nil only
// matches nil.
func SameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
