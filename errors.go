package cubesim

import "github.com/SeamusWaldron/cubesim/internal/cube"

// Sentinel errors for the cubesim package.
var (
	// Construction errors
	ErrInvalidLength   = cube.ErrInvalidLength
	ErrIndexOutOfRange = cube.ErrIndexOutOfRange
	ErrInvalidColor    = cube.ErrInvalidColor
	ErrInvalidScheme   = cube.ErrInvalidScheme

	// Parsing errors
	ErrUnknownFace    = cube.ErrUnknownFace
	ErrMalformedToken = cube.ErrMalformedToken
)
