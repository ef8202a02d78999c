package tensor

import (
	"fmt"
	"math"
	"math/bits"
)

const (
	// LaneElements is the granularity, in elements, that every buffer's
	// slot count is rounded up to. Kernels stepping 8 elements at a time
	// never run past the allocation.
	LaneElements = 8

	// Alignment is the byte alignment of every buffer's base address,
	// matching a 256-bit vector register.
	Alignment = 32
)

// PaddedCount rounds n up to the next multiple of LaneElements.
func PaddedCount(n int) int {
	return (n + LaneElements - 1) &^ (LaneElements - 1)
}

// PaddedBytes returns PaddedCount(n) * elemSize, failing if the count or the
// product does not fit in an int.
func PaddedBytes(n, elemSize int) (int, error) {
	if n < 0 || elemSize <= 0 {
		return 0, fmt.Errorf("padded bytes: invalid count %d or element size %d", n, elemSize)
	}
	if n > math.MaxInt-(LaneElements-1) {
		return 0, fmt.Errorf("%w: %d elements cannot be padded", ErrShapeOverflow, n)
	}
	padded := PaddedCount(n)
	hi, lo := bits.Mul64(uint64(padded), uint64(elemSize))
	if hi != 0 || lo > math.MaxInt {
		return 0, fmt.Errorf("%w: %d elements of %d bytes", ErrShapeOverflow, padded, elemSize)
	}
	return int(lo), nil
}
