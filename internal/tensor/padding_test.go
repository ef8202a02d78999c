package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaddedCount(t *testing.T) {
	for n := 1; n <= 1000; n++ {
		p := PaddedCount(n)
		require.GreaterOrEqual(t, p, n)
		require.Zero(t, p%LaneElements, "n=%d", n)
		// Smallest such multiple.
		require.Less(t, p-n, LaneElements, "n=%d", n)
	}
	assert.Equal(t, 8, PaddedCount(1))
	assert.Equal(t, 8, PaddedCount(8))
	assert.Equal(t, 16, PaddedCount(9))
}

func TestPaddedBytes(t *testing.T) {
	tests := []struct {
		n, elemSize, want int
	}{
		{9, 4, 64},
		{8, 4, 32},
		{8, 8, 64},
		{5, 1, 8},
		{1, 2, 16},
	}
	for _, tt := range tests {
		got, err := PaddedBytes(tt.n, tt.elemSize)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "n=%d elemSize=%d", tt.n, tt.elemSize)
	}
}

func TestPaddedBytesOverflow(t *testing.T) {
	_, err := PaddedBytes(math.MaxInt-2, 1)
	require.ErrorIs(t, err, ErrShapeOverflow)

	_, err = PaddedBytes(math.MaxInt/4, 8)
	require.ErrorIs(t, err, ErrShapeOverflow)
}

func TestPaddedBytesInvalid(t *testing.T) {
	_, err := PaddedBytes(-1, 4)
	require.Error(t, err)
	_, err = PaddedBytes(8, 0)
	require.Error(t, err)
}
