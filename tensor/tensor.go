// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/tensorbuf/internal/tensor"
	"github.com/born-ml/tensorbuf/memory"
)

// Type aliases for public API

// Element is the closed set of buffer element types.
type Element = tensor.Element

// DataType represents the element type of a buffer at runtime.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Uint16  DataType = tensor.Uint16
	Uint32  DataType = tensor.Uint32
	Uint64  DataType = tensor.Uint64
)

// Layout constants.
const (
	LaneElements = tensor.LaneElements // Slot counts are multiples of this.
	Alignment    = tensor.Alignment    // Base addresses are multiples of this.
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Buffer is an owned, padded, 32-byte aligned element buffer.
//
// Example:
//
//	buf := tensor.MustNewBuffer[int64](tensor.Shape{2, 2, 2})
//	defer buf.Release()
type Buffer[T Element] = tensor.Buffer[T]

// Option configures NewBuffer.
type Option = tensor.Option

// Errors.
var (
	ErrInvalidShape  = tensor.ErrInvalidShape
	ErrShapeOverflow = tensor.ErrShapeOverflow
	ErrReleased      = tensor.ErrReleased
)

// NewShape copies dims into a validated Shape.
func NewShape(dims ...int) (Shape, error) {
	return tensor.NewShape(dims...)
}

// NewBuffer allocates a zeroed buffer for shape. An invalid shape is returned
// as an error; allocation failure panics.
func NewBuffer[T Element](shape Shape, opts ...Option) (*Buffer[T], error) {
	return tensor.NewBuffer[T](shape, opts...)
}

// MustNewBuffer is like NewBuffer but panics on an invalid shape.
func MustNewBuffer[T Element](shape Shape, opts ...Option) *Buffer[T] {
	return tensor.MustNewBuffer[T](shape, opts...)
}

// Zeros allocates a zeroed buffer with the given dimensions.
func Zeros[T Element](dims ...int) *Buffer[T] {
	return tensor.Zeros[T](dims...)
}

// WithAllocator makes NewBuffer allocate from a.
func WithAllocator(a memory.Allocator) Option {
	return tensor.WithAllocator(a)
}

// DataTypeOf returns the DataType for T.
func DataTypeOf[T Element]() DataType {
	return tensor.DataTypeOf[T]()
}

// PaddedCount rounds n up to the next multiple of LaneElements.
func PaddedCount(n int) int {
	return tensor.PaddedCount(n)
}
