package memory

import (
	"fmt"
	"math/bits"
)

// maxHeapBytes caps a single heap request below the Go runtime's own limit so
// an oversized request surfaces as ErrOutOfMemory instead of a runtime panic.
var maxHeapBytes = func() int {
	shift := 47
	if bits.UintSize == 32 {
		shift = 31
	}
	return 1<<shift - 1
}()

// HeapAllocator allocates from the Go heap. It over-allocates by Align-1
// bytes and returns the first aligned window; the backing array stays alive
// for as long as the returned slice does.
type HeapAllocator struct{}

// NewHeapAllocator creates a HeapAllocator.
func NewHeapAllocator() *HeapAllocator {
	return &HeapAllocator{}
}

// Name returns "heap".
func (*HeapAllocator) Name() string { return "heap" }

// Allocate returns l.Size zeroed bytes aligned to l.Align.
func (*HeapAllocator) Allocate(l Layout) ([]byte, error) {
	if l.Size == 0 {
		return nil, nil
	}
	total := l.Size + l.Align - 1
	if l.Size > maxHeapBytes || total > maxHeapBytes {
		return nil, fmt.Errorf("%w: heap request of %s", ErrOutOfMemory, l)
	}

	buf := make([]byte, total)
	addr := Address(buf)
	offset := int((uintptr(l.Align) - addr&uintptr(l.Align-1)) & uintptr(l.Align-1))
	return buf[offset : offset+l.Size : offset+l.Size], nil
}

// Free is a no-op; the garbage collector reclaims the block once the last
// slice referencing it is gone.
func (*HeapAllocator) Free([]byte, Layout) {}
