// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides SIMD-ready tensor buffers.
//
// # Overview
//
// A Buffer[T] owns one contiguous allocation sized from a Shape:
//   - LogicalCount is the product of the dimensions
//   - PaddedCount rounds it up to a multiple of 8 elements
//   - the allocation holds PaddedCount*sizeof(T) bytes at a 32-byte aligned address
//
// The padding lets a kernel process 8 elements per step without a scalar
// tail loop and without running past the allocation.
//
// # Basic Usage
//
//	buf, err := tensor.NewBuffer[float32](tensor.Shape{3, 3})
//	if err != nil {
//	    return err // a dimension was zero or negative
//	}
//	defer buf.Release()
//
//	data := buf.Data()     // 9 elements
//	slots := buf.Padded()  // 16 elements, 64 bytes
//
// # Supported Data Types
//
// The Element constraint is a closed list:
//   - float32, float64
//   - int8, int16, int32, int64
//   - uint8, uint16, uint32, uint64
//
// Named types are rejected at compile time, even when their underlying type
// is in the list.
//
// # Memory Management
//
// Every buffer has a single owner and is freed exactly once, by Release or,
// as a fallback, by a finalizer. Allocation goes through a memory.Allocator;
// the default is chosen with TENSORBUF_ALLOCATOR (heap or mmap). Allocation
// failure panics: there is no degraded buffer.
package tensor
