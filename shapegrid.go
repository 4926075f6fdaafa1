package shapegrid

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to a Surface.
type Color struct {
	R, G, B, A float64
}

// RGBA implements color.Color with premultiplied 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(clamp01(c.A)*0xffff + 0.5)
	r = uint32(clamp01(c.R)*clamp01(c.A)*0xffff + 0.5)
	g = uint32(clamp01(c.G)*clamp01(c.A)*0xffff + 0.5)
	b = uint32(clamp01(c.B)*clamp01(c.A)*0xffff + 0.5)
	return r, g, b, a
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// ColorFrom converts any color.Color into a straight-alpha Color. Nil yields
// transparent black.
func ColorFrom(c color.Color) Color {
	if c == nil {
		return Color{}
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for locations, offsets and points.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Size is the width and height of a node's bounding rectangle.
type Size struct {
	W, H float64
}

// Half returns the size halved on both axes.
func (s Size) Half() Vec2 { return Vec2{s.W / 2, s.H / 2} }

// Scale returns the size multiplied by f on both axes.
func (s Size) Scale(f float64) Size { return Size{s.W * f, s.H * f} }

// Rect is an axis-aligned rectangle in canvas pixels. The coordinate system
// has its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// String returns the lower-case button name.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of host event delivered to the scene.
type EventType uint8

const (
	EventResize    EventType = iota // the canvas changed size
	EventMouseDown                  // a mouse button was pressed
)
