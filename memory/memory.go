// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package memory exposes the allocators tensor buffers are carved from.
//
// Example:
//
//	mem := memory.NewCheckedAllocator(nil)
//	buf := tensor.MustNewBuffer[float32](tensor.Shape{3, 3}, tensor.WithAllocator(mem))
//	buf.Release()
//	mem.AssertSize(t, 0)
package memory

import "github.com/born-ml/tensorbuf/internal/memory"

// Layout describes an allocation: Size bytes aligned to Align.
type Layout = memory.Layout

// Allocator hands out aligned byte blocks and takes them back.
type Allocator = memory.Allocator

// HeapAllocator allocates aligned blocks from the Go heap.
type HeapAllocator = memory.HeapAllocator

// CheckedAllocator records live blocks and panics on double or mismatched frees.
type CheckedAllocator = memory.CheckedAllocator

// Errors.
var (
	ErrInvalidLayout = memory.ErrInvalidLayout
	ErrOutOfMemory   = memory.ErrOutOfMemory
)

// NewLayout validates size and align.
func NewLayout(size, align int) (Layout, error) {
	return memory.NewLayout(size, align)
}

// NewHeapAllocator creates a Go heap allocator.
func NewHeapAllocator() *HeapAllocator {
	return memory.NewHeapAllocator()
}

// NewMmapAllocator creates an allocator backed by anonymous mappings, or a
// heap allocator where mappings are unavailable.
func NewMmapAllocator() Allocator {
	return memory.NewMmapAllocator()
}

// NewCheckedAllocator wraps inner with live-block tracking.
func NewCheckedAllocator(inner Allocator) *CheckedAllocator {
	return memory.NewCheckedAllocator(inner)
}

// Default returns the process-wide allocator.
func Default() Allocator {
	return memory.Default()
}

// SetDefault replaces the process-wide allocator and returns the previous one.
func SetDefault(a Allocator) Allocator {
	return memory.SetDefault(a)
}
