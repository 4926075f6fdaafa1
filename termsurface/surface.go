// Package termsurface renders shapegrid scenes into a terminal through tcell.
// Canvas pixels map onto character cells at a fixed cell size, so a scene
// laid out for a window keeps its proportions in the terminal.
package termsurface

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/shapegrid"
)

// Default cell size in canvas pixels. Terminal cells are about twice as tall
// as they are wide.
const (
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
)

// Surface is a shapegrid.Surface over a tcell.Screen.
type Surface struct {
	screen       tcell.Screen
	cellW, cellH float64
	defaultStyle tcell.Style
}

// New wraps screen with the default cell size.
func New(screen tcell.Screen) *Surface {
	return NewWithCellSize(screen, DefaultCellWidth, DefaultCellHeight)
}

// NewWithCellSize wraps screen with a custom cell size in canvas pixels.
func NewWithCellSize(screen tcell.Screen, cellW, cellH float64) *Surface {
	if cellW <= 0 {
		cellW = DefaultCellWidth
	}
	if cellH <= 0 {
		cellH = DefaultCellHeight
	}
	return &Surface{screen: screen, cellW: cellW, cellH: cellH, defaultStyle: tcell.StyleDefault}
}

// Screen returns the wrapped screen.
func (s *Surface) Screen() tcell.Screen { return s.screen }

// CanvasSize returns the canvas size in pixels that the screen covers.
func (s *Surface) CanvasSize() (w, h int) {
	cols, rows := s.screen.Size()
	return int(float64(cols) * s.cellW), int(float64(rows) * s.cellH)
}

// ToCanvas maps a cell to the canvas pixel at its center.
func (s *Surface) ToCanvas(col, row int) shapegrid.Vec2 {
	return shapegrid.Vec2{X: (float64(col) + 0.5) * s.cellW, Y: (float64(row) + 0.5) * s.cellH}
}

// cells converts r to an inclusive cell span, clipped to the screen.
func (s *Surface) cells(r shapegrid.Rect) (x0, y0, x1, y1 int, ok bool) {
	cols, rows := s.screen.Size()
	x0 = int(math.Floor(r.X / s.cellW))
	y0 = int(math.Floor(r.Y / s.cellH))
	x1 = int(math.Ceil((r.X+r.Width)/s.cellW)) - 1
	y1 = int(math.Ceil((r.Y+r.Height)/s.cellH)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	if x1 < 0 || y1 < 0 || x0 >= cols || y0 >= rows {
		return 0, 0, 0, 0, false
	}
	return max(x0, 0), max(y0, 0), min(x1, cols-1), min(y1, rows-1), true
}

// FillRect implements shapegrid.Surface by painting cell backgrounds.
func (s *Surface) FillRect(r shapegrid.Rect, c color.Color) {
	x0, y0, x1, y1, ok := s.cells(r)
	if !ok {
		return
	}
	bg := tcell.FromImageColor(c)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.screen.SetContent(x, y, ' ', nil, s.defaultStyle.Background(bg))
		}
	}
}

// StrokeRect implements shapegrid.Surface with box-drawing runes. The line
// width is ignored; a cell is the thinnest line a terminal can draw.
func (s *Surface) StrokeRect(r shapegrid.Rect, c color.Color, _ float64) {
	x0, y0, x1, y1, ok := s.cells(r)
	if !ok {
		return
	}
	fg := tcell.FromImageColor(c)
	for x := x0; x <= x1; x++ {
		s.setRune(x, y0, tcell.RuneHLine, fg)
		s.setRune(x, y1, tcell.RuneHLine, fg)
	}
	for y := y0; y <= y1; y++ {
		s.setRune(x0, y, tcell.RuneVLine, fg)
		s.setRune(x1, y, tcell.RuneVLine, fg)
	}
	s.setRune(x0, y0, tcell.RuneULCorner, fg)
	s.setRune(x1, y0, tcell.RuneURCorner, fg)
	s.setRune(x0, y1, tcell.RuneLLCorner, fg)
	s.setRune(x1, y1, tcell.RuneLRCorner, fg)
}

// DrawText implements shapegrid.Surface. Text is centered on the middle row
// of r and truncated to its width.
func (s *Surface) DrawText(text string, r shapegrid.Rect, c color.Color) {
	x0, y0, x1, y1, ok := s.cells(r)
	if !ok || text == "" {
		return
	}
	runes := []rune(text)
	width := x1 - x0 + 1
	if len(runes) > width {
		runes = runes[:width]
	}
	y := (y0 + y1) / 2
	x := x0 + (width-len(runes))/2
	fg := tcell.FromImageColor(c)
	for i, ch := range runes {
		s.setRune(x+i, y, ch, fg)
	}
}

// setRune writes ch with the given foreground, keeping the cell background.
func (s *Surface) setRune(x, y int, ch rune, fg tcell.Color) {
	_, _, style, _ := s.screen.GetContent(x, y)
	s.screen.SetContent(x, y, ch, nil, style.Foreground(fg))
}

// Clear resets every cell.
func (s *Surface) Clear() { s.screen.Clear() }

// Show flushes pending cell changes to the terminal.
func (s *Surface) Show() { s.screen.Show() }
