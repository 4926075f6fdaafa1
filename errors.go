package shapegrid

import "errors"

var (
	// ErrInvalidDimensions is returned when a grid dimension is not positive.
	ErrInvalidDimensions = errors.New("shapegrid: invalid grid dimensions")

	// ErrInvalidIndex is returned when a grid index falls outside [1, W*H].
	ErrInvalidIndex = errors.New("shapegrid: invalid grid index")

	// ErrInvalidSize is returned for negative node sizes.
	ErrInvalidSize = errors.New("shapegrid: invalid size")

	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("shapegrid: invalid color")

	// ErrMissingContext is returned when a node is created without a parent
	// to inherit its tree from.
	ErrMissingContext = errors.New("shapegrid: missing tree context")

	// ErrContextMismatch is returned when nodes from different trees are
	// wired together.
	ErrContextMismatch = errors.New("shapegrid: tree context mismatch")
)
