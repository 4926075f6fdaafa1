package shapegrid

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS color name ("lightGray", "blue") or a hex string
// ("#40cf40", "#fff"). The empty string yields a nil color, meaning "do not
// draw this layer".
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}
		r, g, b := c.Clamped().RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// MustParseColor is ParseColor for fixed palettes; it panics on error.
func MustParseColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// LerpColor blends a toward b component-wise in RGB, t in [0, 1].
func LerpColor(a, b Color, t float64) Color {
	ca := colorful.Color{R: a.R, G: a.G, B: a.B}
	cb := colorful.Color{R: b.R, G: b.G, B: b.B}
	m := ca.BlendRgb(cb, clamp01(t)).Clamped()
	return Color{R: m.R, G: m.G, B: m.B, A: a.A + (b.A-a.A)*clamp01(t)}
}
