package ebitensurface

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const fpsRefresh = 0.5 // seconds

// fpsOverlay shows the measured FPS and TPS in the top-left corner. The text
// is re-rendered every fpsRefresh seconds.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float64
	label   string
}

func newFPSOverlay() *fpsOverlay {
	// Enough for "FPS: 60.0\nTPS: 60.0".
	return &fpsOverlay{img: ebiten.NewImage(100, 32)}
}

// update advances the refresh timer by dt seconds and reports whether the
// label changed.
func (o *fpsOverlay) update(dt float64) bool {
	o.elapsed += dt
	if o.elapsed < fpsRefresh {
		return false
	}
	o.elapsed = 0
	label := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	if label == o.label {
		return false
	}
	o.label = label
	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, label)
	return true
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
