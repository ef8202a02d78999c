//go:build linux || darwin || freebsd || netbsd || openbsd

package memory

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// MmapAllocator backs each block with its own anonymous private mapping.
// Mappings are page aligned, which satisfies any Align up to the page size,
// and are returned to the OS by Free.
type MmapAllocator struct {
	pageSize int
}

// NewMmapAllocator creates an allocator backed by anonymous mappings.
func NewMmapAllocator() Allocator {
	return &MmapAllocator{pageSize: unix.Getpagesize()}
}

// Name returns "mmap".
func (*MmapAllocator) Name() string { return "mmap" }

// Allocate maps l.Size bytes rounded up to whole pages.
func (m *MmapAllocator) Allocate(l Layout) ([]byte, error) {
	if l.Size == 0 {
		return nil, nil
	}
	if l.Align > m.pageSize {
		return nil, fmt.Errorf("%w: alignment %d exceeds page size %d", ErrInvalidLayout, l.Align, m.pageSize)
	}
	if l.Size > maxHeapBytes {
		return nil, fmt.Errorf("%w: mapping of %s", ErrOutOfMemory, l)
	}

	length := roundUp(l.Size, m.pageSize)
	b, err := unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %w", ErrOutOfMemory, length, err)
	}
	return b[:l.Size:l.Size], nil
}

// Free unmaps the block. The full mapping is rebuilt from the base address
// and the page-rounded l.Size, so l must be the layout passed to Allocate.
func (m *MmapAllocator) Free(b []byte, l Layout) {
	if l.Size == 0 || cap(b) == 0 {
		return
	}
	length := roundUp(l.Size, m.pageSize)
	//nolint:gosec // the mapping is exactly length bytes long
	mapping := unsafe.Slice(unsafe.SliceData(b), length)
	if err := unix.Munmap(mapping); err != nil {
		panic(fmt.Errorf("memory: munmap %s: %w", l, err))
	}
}
