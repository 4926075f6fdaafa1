package shapegrid

import "image/color"

// DefaultLineWidth is the stroke width used by Node.DrawBorder.
const DefaultLineWidth = 1.0

// TextScale is the font pixel size as a fraction of the target rectangle's
// height.
const TextScale = 0.6

// Surface is the 2D drawing collaborator. All coordinates are absolute canvas
// pixels computed by the scene graph. A Surface is passed into every Draw and
// Redraw call; nodes never hold one.
type Surface interface {
	// FillRect paints r with c.
	FillRect(r Rect, c color.Color)

	// StrokeRect outlines r with a line of the given width centered on its
	// edges.
	StrokeRect(r Rect, c color.Color, width float64)

	// DrawText draws text centered in r, sized to TextScale of r's height.
	DrawText(text string, r Rect, c color.Color)
}

// GradientFiller is implemented by surfaces that can paint a vertical linear
// gradient natively.
type GradientFiller interface {
	FillGradient(r Rect, top, bottom color.Color)
}

// gradientBands is how many flat bands FillGradient falls back to.
const gradientBands = 64

// FillGradient paints r with a vertical gradient from top to bottom. Surfaces
// without native gradients receive a series of flat bands.
func FillGradient(s Surface, r Rect, top, bottom color.Color) {
	if s == nil {
		return
	}
	if gf, ok := s.(GradientFiller); ok {
		gf.FillGradient(r, top, bottom)
		return
	}
	t, b := ColorFrom(top), ColorFrom(bottom)
	bandH := r.Height / gradientBands
	for i := 0; i < gradientBands; i++ {
		f := (float64(i) + 0.5) / gradientBands
		s.FillRect(Rect{X: r.X, Y: r.Y + float64(i)*bandH, Width: r.Width, Height: bandH}, LerpColor(t, b, f))
	}
}
