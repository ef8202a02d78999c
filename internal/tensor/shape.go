package tensor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Shape represents the dimensions of a tensor.
//
// A Shape handed to NewBuffer is copied, so the buffer's shape cannot change
// after construction. The empty shape is a scalar with one element.
type Shape []int

// NewShape copies dims into a validated Shape.
func NewShape(dims ...int) (Shape, error) {
	s := Shape(dims).Clone()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// NumElements returns the total number of elements in the tensor.
// The result is only meaningful for a shape that passes Validate.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is positive and that the element
// count fits in an int.
func (s Shape) Validate() error {
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be > 0)", ErrInvalidShape, i, dim)
		}
		if n > math.MaxInt/dim {
			return fmt.Errorf("%w: %v", ErrShapeOverflow, s)
		}
		n *= dim
	}
	return nil
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Dim returns the size of dimension i. Negative i counts from the end.
func (s Shape) Dim(i int) int {
	if i < 0 {
		i += len(s)
	}
	return s[i]
}

// Dims returns a copy of the dimensions as a plain slice.
func (s Shape) Dims() []int {
	return []int(s.Clone())
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape, in elements.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String formats the shape as "[2 3 4]".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = strconv.Itoa(dim)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
