package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShape(t *testing.T) {
	dims := []int{2, 3, 4}
	s, err := NewShape(dims...)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3, 4}, s)
	assert.Equal(t, 3, s.Rank())
	assert.Equal(t, 24, s.NumElements())

	// NewShape copies its input.
	dims[0] = 99
	assert.Equal(t, 2, s.Dim(0))
}

func TestNewShapeInvalid(t *testing.T) {
	for _, dims := range [][]int{{0}, {3, 0}, {0, 0, 0}, {4, 0}, {-1}, {2, -3}} {
		_, err := NewShape(dims...)
		assert.ErrorIs(t, err, ErrInvalidShape, "dims %v", dims)
	}
}

func TestShapeValidateOverflow(t *testing.T) {
	s := Shape{math.MaxInt / 2, 3}
	assert.ErrorIs(t, s.Validate(), ErrShapeOverflow)
}

func TestShapeScalar(t *testing.T) {
	s, err := NewShape()
	require.NoError(t, err)
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, 1, s.NumElements())
	assert.Empty(t, s.ComputeStrides())
	assert.Equal(t, "[]", s.String())
}

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{1}, 1},
		{Shape{8}, 8},
		{Shape{3, 3}, 9},
		{Shape{2, 2, 2}, 8},
		{Shape{2, 3, 4, 5}, 120},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.NumElements(), "shape %v", tt.shape)
	}
}

func TestShapeDim(t *testing.T) {
	s := Shape{2, 3, 4}
	assert.Equal(t, 2, s.Dim(0))
	assert.Equal(t, 4, s.Dim(-1))
	assert.Equal(t, 3, s.Dim(-2))
}

func TestShapeDimsIsCopy(t *testing.T) {
	s := Shape{2, 3}
	dims := s.Dims()
	dims[0] = 7
	assert.Equal(t, Shape{2, 3}, s)
}

func TestShapeEqualClone(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	assert.True(t, s.Equal(c))
	c[1] = 4
	assert.False(t, s.Equal(c))
	assert.False(t, s.Equal(Shape{2}))
}

func TestShapeComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, []int{1}, Shape{5}.ComputeStrides())
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "[2 3 4]", Shape{2, 3, 4}.String())
}
