// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensorbuf/memory"
)

func TestPublicAllocators(t *testing.T) {
	l, err := memory.NewLayout(100, 32)
	require.NoError(t, err)

	for _, a := range []memory.Allocator{memory.NewHeapAllocator(), memory.NewMmapAllocator()} {
		mem := memory.NewCheckedAllocator(a)
		b, err := mem.Allocate(l)
		require.NoError(t, err)
		assert.Len(t, b, 100)
		mem.Free(b, l)
		mem.AssertSize(t, 0)
	}
}

func TestPublicLayoutErrors(t *testing.T) {
	_, err := memory.NewLayout(10, 3)
	require.ErrorIs(t, err, memory.ErrInvalidLayout)
}

func TestPublicDefault(t *testing.T) {
	assert.NotNil(t, memory.Default())
}
