// Package ebitensurface presents shapegrid scenes in an Ebitengine window.
//
// [Surface] draws onto an *ebiten.Image with the vector and text/v2
// packages. [Host] implements ebiten.Game and turns the Ebitengine loop into
// shapegrid.Scene calls: Layout becomes Resize, mouse presses become
// MouseDown and every tick advances the scene's animation.
package ebitensurface

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/shapegrid"
)

// Surface is a shapegrid.Surface over an *ebiten.Image. Set the target
// before each frame.
type Surface struct {
	dst       *ebiten.Image
	source    *text.GoTextFaceSource
	faces     map[int]*text.GoTextFace
	antialias bool
}

var _ shapegrid.GradientFiller = (*Surface)(nil)

// NewSurface creates a surface using the Go Regular font for labels.
func NewSurface() (*Surface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitensurface: failed to parse font: %w", err)
	}
	return &Surface{source: src, faces: make(map[int]*text.GoTextFace), antialias: true}, nil
}

// SetTarget sets the image drawn onto.
func (s *Surface) SetTarget(dst *ebiten.Image) { s.dst = dst }

// Target returns the current image.
func (s *Surface) Target() *ebiten.Image { return s.dst }

// SetAntialias toggles antialiased edges.
func (s *Surface) SetAntialias(on bool) { s.antialias = on }

// FillRect implements shapegrid.Surface.
func (s *Surface) FillRect(r shapegrid.Rect, c color.Color) {
	if s.dst == nil {
		return
	}
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, s.antialias)
}

// StrokeRect implements shapegrid.Surface.
func (s *Surface) StrokeRect(r shapegrid.Rect, c color.Color, width float64) {
	if s.dst == nil {
		return
	}
	vector.StrokeRect(s.dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), float32(width), c, s.antialias)
}

// DrawText implements shapegrid.Surface.
func (s *Surface) DrawText(str string, r shapegrid.Rect, c color.Color) {
	size := int(math.Round(r.Height * shapegrid.TextScale))
	if s.dst == nil || str == "" || size <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(r.X+r.Width/2, r.Y+r.Height/2)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(s.dst, str, s.face(size), op)
}

// FillGradient implements shapegrid.GradientFiller with one flat row per
// pixel.
func (s *Surface) FillGradient(r shapegrid.Rect, top, bottom color.Color) {
	if s.dst == nil || r.Height <= 0 {
		return
	}
	rows := int(math.Ceil(r.Height))
	t := shapegrid.ColorFrom(top)
	b := shapegrid.ColorFrom(bottom)
	for i := 0; i < rows; i++ {
		f := (float64(i) + 0.5) / float64(rows)
		h := math.Min(1, r.Height-float64(i))
		vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y+float64(i)), float32(r.Width), float32(h),
			shapegrid.LerpColor(t, b, f), false)
	}
}

func (s *Surface) face(size int) *text.GoTextFace {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: s.source, Size: float64(size)}
	s.faces[size] = f
	return f
}
