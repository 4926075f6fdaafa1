package shapegrid

import (
	"image/color"
	"strconv"
)

// Palette is the resolved set of colors a grid draws its elements with. A nil
// color suppresses that layer.
type Palette struct {
	Fill   color.Color
	Text   color.Color
	Div    color.Color
	Border color.Color

	DivWidth    float64
	BorderWidth float64
}

// Drawable draws one grid element. Variants are chosen per element when the
// grid is built.
type Drawable interface {
	DrawElement(s Surface, e *GridElement, p Palette)
}

// DrawableFunc adapts a function to Drawable.
type DrawableFunc func(s Surface, e *GridElement, p Palette)

// DrawElement calls f.
func (f DrawableFunc) DrawElement(s Surface, e *GridElement, p Palette) { f(s, e, p) }

// IndexLabel fills the element, labels it with its index and outlines it.
type IndexLabel struct{}

// DrawElement implements Drawable.
func (IndexLabel) DrawElement(s Surface, e *GridElement, p Palette) {
	n := e.node
	n.Fill(s, p.Fill)
	n.DrawText(s, strconv.Itoa(e.index), p.Text)
	n.StrokeBorder(s, p.Div, p.DivWidth)
}

// Plain fills and outlines the element without text.
type Plain struct{}

// DrawElement implements Drawable.
func (Plain) DrawElement(s Surface, e *GridElement, p Palette) {
	e.node.Fill(s, p.Fill)
	e.node.StrokeBorder(s, p.Div, p.DivWidth)
}

// TextFunc fills the element, labels it with the function's result and
// outlines it. An empty label skips the text layer.
type TextFunc func(e *GridElement) string

// DrawElement implements Drawable.
func (f TextFunc) DrawElement(s Surface, e *GridElement, p Palette) {
	n := e.node
	n.Fill(s, p.Fill)
	n.DrawText(s, f(e), p.Text)
	n.StrokeBorder(s, p.Div, p.DivWidth)
}

// Hidden draws nothing. The element still takes part in layout and hit tests.
type Hidden struct{}

// DrawElement implements Drawable.
func (Hidden) DrawElement(Surface, *GridElement, Palette) {}
