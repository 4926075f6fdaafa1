// Package ggsurface draws shapegrid scenes into an off-screen gg raster. It
// backs headless rendering and PNG snapshots.
package ggsurface

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/shapegrid"
)

// Surface is a shapegrid.Surface over a gg.Context.
type Surface struct {
	dc     *gg.Context
	source *text.FontSource
	faces  map[int]text.Face
}

var _ shapegrid.GradientFiller = (*Surface)(nil)

// New creates a surface with a width×height raster.
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ggsurface: invalid size %dx%d", width, height)
	}
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("ggsurface: load font: %w", err)
	}
	return &Surface{
		dc:     gg.NewContext(width, height),
		source: src,
		faces:  make(map[int]text.Face),
	}, nil
}

// Context returns the underlying gg context.
func (s *Surface) Context() *gg.Context { return s.dc }

// Width returns the raster width in pixels.
func (s *Surface) Width() int { return s.dc.Width() }

// Height returns the raster height in pixels.
func (s *Surface) Height() int { return s.dc.Height() }

// Resize reallocates the raster. The contents are lost.
func (s *Surface) Resize(width, height int) error {
	return s.dc.Resize(width, height)
}

// Clear fills the whole raster with c.
func (s *Surface) Clear(c color.Color) {
	s.dc.ClearWithColor(gg.FromColor(c))
}

// FillRect implements shapegrid.Surface.
func (s *Surface) FillRect(r shapegrid.Rect, c color.Color) {
	s.dc.ClearPath()
	s.dc.SetColor(c)
	s.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	logDrawErr("fill", s.dc.Fill())
}

// StrokeRect implements shapegrid.Surface.
func (s *Surface) StrokeRect(r shapegrid.Rect, c color.Color, width float64) {
	s.dc.ClearPath()
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	logDrawErr("stroke", s.dc.Stroke())
}

// DrawText implements shapegrid.Surface.
func (s *Surface) DrawText(str string, r shapegrid.Rect, c color.Color) {
	size := int(math.Round(r.Height * shapegrid.TextScale))
	if size <= 0 || str == "" {
		return
	}
	s.dc.SetFont(s.face(size))
	s.dc.SetColor(c)
	cx, cy := r.X+r.Width/2, r.Y+r.Height/2
	s.dc.DrawStringAnchored(str, cx, cy, 0.5, 0.5)
}

// FillGradient implements shapegrid.GradientFiller with a native linear
// gradient brush.
func (s *Surface) FillGradient(r shapegrid.Rect, top, bottom color.Color) {
	brush := gg.NewLinearGradientBrush(r.X, r.Y, r.X, r.Y+r.Height).
		AddColorStop(0, gg.FromColor(top)).
		AddColorStop(1, gg.FromColor(bottom))
	s.dc.ClearPath()
	s.dc.SetFillBrush(brush)
	s.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	logDrawErr("gradient", s.dc.Fill())
}

// logDrawErr reports a rasterizer error. Surface methods cannot return it.
func logDrawErr(op string, err error) {
	if err != nil {
		shapegrid.Logger().Debug("gg draw failed", "op", op, "err", err)
	}
}

// face returns a cached face for the pixel size.
func (s *Surface) face(size int) text.Face {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := s.source.Face(float64(size))
	s.faces[size] = f
	return f
}

// Image returns the current raster.
func (s *Surface) Image() image.Image { return s.dc.Image() }

// EncodePNG writes the raster as PNG.
func (s *Surface) EncodePNG(w io.Writer) error { return s.dc.EncodePNG(w) }

// SavePNG writes the raster to a PNG file.
func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("ggsurface: save %s: %w", path, err)
	}
	shapegrid.Logger().Info("snapshot written", "path", path,
		"width", s.dc.Width(), "height", s.dc.Height())
	return nil
}

// Close releases the context.
func (s *Surface) Close() error { return s.dc.Close() }
