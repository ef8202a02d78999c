package memory

import (
	"fmt"
	"sync"

	"github.com/born-ml/tensorbuf/internal/config"
)

// TestingT is the subset of testing.TB used by CheckedAllocator.AssertSize.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
}

// CheckedAllocator wraps another Allocator and records every live block.
// Freeing an unknown block (double free) or freeing with a layout other than
// the one used to allocate panics.
type CheckedAllocator struct {
	inner Allocator

	mu     sync.Mutex
	live   map[uintptr]Layout
	bytes  int
	allocs int
	frees  int
}

// NewCheckedAllocator wraps inner. A nil inner uses a HeapAllocator.
func NewCheckedAllocator(inner Allocator) *CheckedAllocator {
	if inner == nil {
		inner = NewHeapAllocator()
	}
	return &CheckedAllocator{
		inner: inner,
		live:  make(map[uintptr]Layout),
	}
}

// Name returns "checked(<inner>)".
func (c *CheckedAllocator) Name() string {
	return "checked(" + c.inner.Name() + ")"
}

// Allocate delegates to the wrapped allocator and records the block.
func (c *CheckedAllocator) Allocate(l Layout) ([]byte, error) {
	b, err := c.inner.Allocate(l)
	if err != nil {
		return nil, err
	}
	if l.Size == 0 {
		return b, nil
	}

	addr := Address(b)
	if !IsAligned(addr, l.Align) {
		panic(fmt.Sprintf("memory: %s returned %#x for %s", c.inner.Name(), addr, l))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.live[addr] = l
	c.bytes += l.Size
	c.allocs++
	config.Logger().Debug("allocate", "allocator", c.Name(), "layout", l.String(), "addr", addr)
	return b, nil
}

// Free verifies the block against the recorded layout and releases it.
func (c *CheckedAllocator) Free(b []byte, l Layout) {
	if l.Size == 0 {
		return
	}
	addr := Address(b)

	c.mu.Lock()
	recorded, ok := c.live[addr]
	if !ok {
		c.mu.Unlock()
		panic(fmt.Sprintf("memory: free of unknown block %#x (%s): double free or foreign pointer", addr, l))
	}
	if recorded != l {
		c.mu.Unlock()
		panic(fmt.Sprintf("memory: free of %#x with layout %s, allocated as %s", addr, l, recorded))
	}
	delete(c.live, addr)
	c.bytes -= l.Size
	c.frees++
	c.mu.Unlock()

	config.Logger().Debug("free", "allocator", c.Name(), "layout", l.String(), "addr", addr)
	c.inner.Free(b, l)
}

// LiveBytes returns the number of bytes currently allocated.
func (c *CheckedAllocator) LiveBytes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bytes
}

// LiveCount returns the number of blocks currently allocated.
func (c *CheckedAllocator) LiveCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.live)
}

// Allocs returns the number of successful non-empty allocations.
func (c *CheckedAllocator) Allocs() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.allocs
}

// Frees returns the number of successful frees.
func (c *CheckedAllocator) Frees() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frees
}

// AssertSize reports a test error if LiveBytes differs from n.
func (c *CheckedAllocator) AssertSize(t TestingT, n int) {
	t.Helper()
	if got := c.LiveBytes(); got != n {
		t.Errorf("invalid memory size exp=%d, got=%d (%d live blocks)", n, got, c.LiveCount())
	}
}
