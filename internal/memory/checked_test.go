package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckedAllocatorTracksLiveBytes(t *testing.T) {
	mem := NewCheckedAllocator(nil)
	l, err := NewLayout(64, 32)
	require.NoError(t, err)

	blocks := make([][]byte, 0, 10)
	for range 10 {
		b, err := mem.Allocate(l)
		require.NoError(t, err)
		blocks = append(blocks, b)
	}
	mem.AssertSize(t, 640)
	assert.Equal(t, 10, mem.LiveCount())

	for _, b := range blocks {
		mem.Free(b, l)
	}
	mem.AssertSize(t, 0)
	assert.Equal(t, 10, mem.Allocs())
	assert.Equal(t, 10, mem.Frees())
	assert.Equal(t, "checked(heap)", mem.Name())
}

func TestCheckedAllocatorDoubleFree(t *testing.T) {
	mem := NewCheckedAllocator(nil)
	l := Layout{Size: 32, Align: 32}
	b, err := mem.Allocate(l)
	require.NoError(t, err)

	mem.Free(b, l)
	assert.Panics(t, func() { mem.Free(b, l) })
}

func TestCheckedAllocatorLayoutMismatch(t *testing.T) {
	mem := NewCheckedAllocator(nil)
	l := Layout{Size: 64, Align: 32}
	b, err := mem.Allocate(l)
	require.NoError(t, err)

	assert.Panics(t, func() { mem.Free(b, Layout{Size: 32, Align: 32}) })
	assert.Panics(t, func() { mem.Free(b, Layout{Size: 64, Align: 16}) })

	// The block is still live and can be freed correctly.
	mem.Free(b, l)
	mem.AssertSize(t, 0)
}

func TestCheckedAllocatorForeignBlock(t *testing.T) {
	mem := NewCheckedAllocator(nil)
	foreign := make([]byte, 32)
	assert.Panics(t, func() { mem.Free(foreign, Layout{Size: 32, Align: 32}) })
}

func TestCheckedAllocatorOverMmap(t *testing.T) {
	mem := NewCheckedAllocator(NewMmapAllocator())
	l := Layout{Size: 100, Align: 32}
	for range 50 {
		b, err := mem.Allocate(l)
		require.NoError(t, err)
		mem.Free(b, l)
	}
	mem.AssertSize(t, 0)
	assert.Equal(t, 50, mem.Frees())
}

type recordingT struct {
	errors int
}

func (*recordingT) Helper() {}

func (r *recordingT) Errorf(string, ...any) { r.errors++ }

func TestCheckedAllocatorAssertSizeReportsLeak(t *testing.T) {
	mem := NewCheckedAllocator(nil)
	l := Layout{Size: 16, Align: 32}
	b, err := mem.Allocate(l)
	require.NoError(t, err)

	rt := &recordingT{}
	mem.AssertSize(rt, 0)
	assert.Equal(t, 1, rt.errors)

	mem.Free(b, l)
}
