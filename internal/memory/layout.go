// Package memory provides aligned allocation primitives for tensor buffers.
//
// Every allocation is described by a Layout (size and alignment). The layout
// used to allocate a block must be replayed unchanged when the block is freed;
// CheckedAllocator enforces this in tests.
package memory

import (
	"fmt"
	"math"
)

// Layout describes an allocation request: Size bytes starting at an address
// that is a multiple of Align.
type Layout struct {
	Size  int
	Align int
}

// NewLayout validates size and align and returns the corresponding Layout.
// Align must be a positive power of two, and Size rounded up to Align must
// not overflow int.
func NewLayout(size, align int) (Layout, error) {
	if align <= 0 || align&(align-1) != 0 {
		return Layout{}, fmt.Errorf("%w: alignment %d is not a power of two", ErrInvalidLayout, align)
	}
	if size < 0 {
		return Layout{}, fmt.Errorf("%w: negative size %d", ErrInvalidLayout, size)
	}
	if size > math.MaxInt-(align-1) {
		return Layout{}, fmt.Errorf("%w: size %d overflows when aligned to %d", ErrInvalidLayout, size, align)
	}
	return Layout{Size: size, Align: align}, nil
}

// PaddedSize returns Size rounded up to a multiple of Align.
func (l Layout) PaddedSize() int {
	return (l.Size + l.Align - 1) &^ (l.Align - 1)
}

// String returns a human-readable form such as "64B@32".
func (l Layout) String() string {
	return fmt.Sprintf("%dB@%d", l.Size, l.Align)
}

// IsAligned reports whether addr is a multiple of align.
// Align must be a power of two.
func IsAligned(addr uintptr, align int) bool {
	return addr&uintptr(align-1) == 0
}

// roundUp rounds n up to a multiple of m, where m is a power of two.
func roundUp(n, m int) int {
	return (n + m - 1) &^ (m - 1)
}
