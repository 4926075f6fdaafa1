package ebitensurface

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/shapegrid"
)

// DefaultScreenshotDir is where screenshots go when HostOptions leaves the
// directory empty.
const DefaultScreenshotDir = "screenshots"

// Screenshot queues a labeled capture of the window. It is written at the end
// of the next Draw as <dir>/<timestamp>_<label>.png.
func (h *Host) Screenshot(label string) {
	h.shots = append(h.shots, label)
}

// flushScreenshots writes every queued capture of screen.
func (h *Host) flushScreenshots(screen *ebiten.Image) {
	if len(h.shots) == 0 {
		return
	}
	defer func() { h.shots = h.shots[:0] }()

	if err := os.MkdirAll(h.shotDir, 0o755); err != nil {
		shapegrid.Logger().Error("screenshot", "dir", h.shotDir, "err", err)
		return
	}
	img := readImage(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range h.shots {
		path := filepath.Join(h.shotDir, stamp+"_"+sanitizeLabel(label)+".png")
		if err := writePNG(path, img); err != nil {
			shapegrid.Logger().Error("screenshot", "err", err)
			continue
		}
		shapegrid.Logger().Info("screenshot written", "path", path)
	}
}

// readImage copies screen into a straight-alpha image.
func readImage(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	return unpremultiply(pixels, w, h)
}

// unpremultiply converts premultiplied RGBA bytes to NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, a
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', replacing everything
// else with '_'. Empty labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
