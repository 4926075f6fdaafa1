package shapegrid

import "fmt"

// GridDim is the number of columns (W) and rows (H) of a grid.
type GridDim struct {
	W, H int
}

// Len returns the number of elements in a grid of this dimension.
func (d GridDim) Len() int { return d.W * d.H }

// Valid reports whether both dimensions are positive.
func (d GridDim) Valid() bool { return d.W > 0 && d.H > 0 }

func (d GridDim) String() string { return fmt.Sprintf("%dx%d", d.W, d.H) }

// Coords addresses a grid element by zero-based column and row.
type Coords struct {
	Col, Row int
}

// IndexToCoords converts a 1-based row-major index into zero-based coordinates.
func IndexToCoords(index int, dim GridDim) (Coords, error) {
	if err := checkIndex(index, dim); err != nil {
		return Coords{}, err
	}
	return Coords{
		Col: (index - 1) % dim.W,
		Row: (index - 1) / dim.W,
	}, nil
}

// CoordsToIndex is the inverse of IndexToCoords.
func CoordsToIndex(c Coords, dim GridDim) (int, error) {
	if !dim.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidDimensions, dim)
	}
	if c.Col < 0 || c.Col >= dim.W || c.Row < 0 || c.Row >= dim.H {
		return 0, fmt.Errorf("%w: coords (%d, %d) outside %s", ErrInvalidIndex, c.Col, c.Row, dim)
	}
	return c.Row*dim.W + c.Col + 1, nil
}

// CenterOffset returns how far the element at index sits from the grid center,
// normalized so the outermost columns and rows are at -1 and +1.
//
// Multiplying the X component by ((W-1)/2)*elementWidth (and Y by the H
// analogue) gives the element's center relative to the grid's center. A
// single-element axis always yields 0.
func CenterOffset(index int, dim GridDim) (Vec2, error) {
	c, err := IndexToCoords(index, dim)
	if err != nil {
		return Vec2{}, err
	}
	return Vec2{
		X: axisOffset(c.Col, dim.W),
		Y: axisOffset(c.Row, dim.H),
	}, nil
}

func axisOffset(pos, n int) float64 {
	if n <= 1 {
		return 0
	}
	half := float64(n-1) / 2
	return (float64(pos) - half) / half
}

// centerSpan is the factor CenterOffset is scaled by, in element units.
func centerSpan(n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(n-1) / 2
}

func checkIndex(index int, dim GridDim) error {
	if !dim.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidDimensions, dim)
	}
	if index < 1 || index > dim.Len() {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidIndex, index, dim.Len())
	}
	return nil
}
