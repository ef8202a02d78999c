//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package memory

// NewMmapAllocator falls back to the heap allocator on platforms without
// anonymous mappings.
func NewMmapAllocator() Allocator {
	return NewHeapAllocator()
}
