package ebitensurface

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/shapegrid"
)

// HostOptions configures a Host window.
type HostOptions struct {
	Title         string
	Width, Height int
	Resizable     bool

	// ShowFPS draws the measured frame and tick rates over the scene.
	ShowFPS bool
	// ScreenshotDir receives the captures queued by Screenshot or the F12
	// key. Defaults to DefaultScreenshotDir.
	ScreenshotDir string
}

// Host implements ebiten.Game for a shapegrid.Scene. The window is only
// repainted when the scene reports a dirty frame, a resize happens or the
// mouse is pressed.
type Host struct {
	scene   shapegrid.Scene
	surface *Surface
	width   int
	height  int
	dirty   bool

	fps     *fpsOverlay
	shots   []string
	shotDir string
}

var _ ebiten.Game = (*Host)(nil)

// NewHost creates a host for scene.
func NewHost(scene shapegrid.Scene, opts HostOptions) (*Host, error) {
	s, err := NewSurface()
	if err != nil {
		return nil, err
	}
	h := &Host{scene: scene, surface: s, dirty: true, shotDir: opts.ScreenshotDir}
	if h.shotDir == "" {
		h.shotDir = DefaultScreenshotDir
	}
	if opts.ShowFPS {
		h.fps = newFPSOverlay()
	}
	return h, nil
}

// Surface returns the host's drawing surface.
func (h *Host) Surface() *Surface { return h.surface }

// Layout implements ebiten.Game. The canvas follows the window size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.width || outsideHeight != h.height {
		h.width, h.height = outsideWidth, outsideHeight
		h.scene.Resize(outsideWidth, outsideHeight)
		h.dirty = true
		shapegrid.Logger().Info("window resized", "width", outsideWidth, "height", outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		h.Screenshot("window")
	}
	x, y := ebiten.CursorPosition()
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			h.press(x, y, b.button)
		}
	}
	dt := time.Second / time.Duration(ebiten.TPS())
	if h.scene.Update(dt) {
		h.dirty = true
	}
	if h.fps != nil && h.fps.update(dt.Seconds()) {
		h.dirty = true
	}
	return nil
}

// press forwards a mouse press to the scene.
func (h *Host) press(x, y int, b shapegrid.MouseButton) []*shapegrid.Node {
	hits := h.scene.MouseDown(shapegrid.Vec2{X: float64(x), Y: float64(y)}, b)
	h.dirty = true
	return hits
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.dirty {
		h.dirty = false
		screen.Clear()
		h.surface.SetTarget(screen)
		h.scene.Redraw(h.surface)
		if h.fps != nil {
			h.fps.draw(screen)
		}
	}
	h.flushScreenshots(screen)
}

var buttons = []struct {
	ebiten ebiten.MouseButton
	button shapegrid.MouseButton
}{
	{ebiten.MouseButtonLeft, shapegrid.MouseButtonLeft},
	{ebiten.MouseButtonRight, shapegrid.MouseButtonRight},
	{ebiten.MouseButtonMiddle, shapegrid.MouseButtonMiddle},
}

// Run opens a window and drives scene until the window closes or Escape is
// pressed.
func Run(scene shapegrid.Scene, opts HostOptions) error {
	h, err := NewHost(scene, opts)
	if err != nil {
		return err
	}
	if opts.Width > 0 && opts.Height > 0 {
		ebiten.SetWindowSize(opts.Width, opts.Height)
	}
	if opts.Title != "" {
		ebiten.SetWindowTitle(opts.Title)
	}
	if opts.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	// Frames are kept until the scene is dirty.
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
