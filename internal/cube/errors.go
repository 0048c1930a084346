package cube

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cube package.
var (
	// State errors
	ErrInvalidLength   = errors.New("cube: facelet count must be 54")
	ErrIndexOutOfRange = errors.New("cube: facelet index out of range")
	ErrInvalidColor    = errors.New("cube: invalid color")
	ErrInvalidScheme   = errors.New("cube: scheme needs six distinct colors")

	// Notation errors
	ErrUnknownFace    = errors.New("cube: unknown face")
	ErrMalformedToken = errors.New("cube: malformed move token")
)

// SequenceError reports the token that stopped a sequence.
type SequenceError struct {
	Index int
	Token string
	Err   error
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("move %d (%q): %v", e.Index, e.Token, e.Err)
}

func (e *SequenceError) Unwrap() error {
	return e.Err
}
