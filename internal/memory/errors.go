package memory

import "errors"

// Common errors.
var (
	ErrInvalidLayout = errors.New("invalid memory layout")
	ErrOutOfMemory   = errors.New("out of memory")
)
