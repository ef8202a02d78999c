package memory

import (
	"strings"
	"sync"
	"unsafe"

	"github.com/born-ml/tensorbuf/internal/config"
)

// Allocator hands out aligned byte blocks and takes them back.
//
// Allocate returns a slice of exactly l.Size bytes whose first byte lies at a
// multiple of l.Align. A zero-size layout yields a nil slice and no error.
// Free must be called with the slice returned by Allocate and the same Layout;
// anything else is a contract violation.
type Allocator interface {
	Allocate(l Layout) ([]byte, error)
	Free(b []byte, l Layout)
	Name() string
}

var (
	defaultOnce sync.Once
	defaultMu   sync.RWMutex
	defaultImpl Allocator
)

// Default returns the process-wide allocator selected by TENSORBUF_ALLOCATOR.
func Default() Allocator {
	defaultOnce.Do(func() {
		a := fromConfig(config.Load())
		defaultMu.Lock()
		if defaultImpl == nil {
			defaultImpl = a
		}
		defaultMu.Unlock()
	})
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultImpl
}

// SetDefault replaces the process-wide allocator and returns the previous one.
// It is meant for tests and program start-up; buffers keep the allocator they
// were created with.
func SetDefault(a Allocator) Allocator {
	prev := Default()
	defaultMu.Lock()
	defaultImpl = a
	defaultMu.Unlock()
	return prev
}

func fromConfig(cfg config.Config) Allocator {
	if strings.EqualFold(cfg.Allocator, config.AllocatorMmap) {
		return NewMmapAllocator()
	}
	return NewHeapAllocator()
}

// Address returns the base address of b, or 0 for an empty slice.
func Address(b []byte) uintptr {
	if cap(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}
