package tensor

import "errors"

// Common errors.
var (
	ErrInvalidShape  = errors.New("invalid shape")
	ErrShapeOverflow = errors.New("shape element count overflows int")
	ErrReleased      = errors.New("buffer already released")
)
