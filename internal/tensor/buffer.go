package tensor

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/born-ml/tensorbuf/internal/config"
	"github.com/born-ml/tensorbuf/internal/memory"
	"github.com/born-ml/tensorbuf/internal/parallel"
	"github.com/born-ml/tensorbuf/internal/simd"
)

// noCopy lets go vet's copylocks check flag Buffer values being copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer owns one contiguous, 32-byte aligned allocation holding the
// elements of a tensor.
//
// The allocation has room for PaddedCount elements: LogicalCount (the product
// of the shape) rounded up to a multiple of LaneElements. The slots past
// LogicalCount are zeroed at construction and belong to the buffer, so a
// kernel may read and write them freely.
//
// A Buffer has exactly one owner. Release frees the allocation with the
// layout recorded at construction; later calls are no-ops. A Buffer that is
// never released is freed by a finalizer, which logs a warning. Slices and
// pointers obtained from a Buffer are only valid until Release, and the
// Buffer must stay reachable while they are used.
//
// A Buffer is not safe for concurrent use.
//
// Example:
//
//	buf := tensor.MustNewBuffer[float32](tensor.Shape{3, 3})
//	defer buf.Release()
//	buf.Data()[0] = 1   // 9 logical elements
//	_ = buf.Padded()    // 16 slots, 64 bytes
type Buffer[T Element] struct {
	_ noCopy

	shape   Shape
	strides []int
	dtype   DataType
	logical int
	padded  int

	alloc    memory.Allocator
	layout   memory.Layout
	data     []byte
	released bool
}

type options struct {
	allocator memory.Allocator
}

// Option configures NewBuffer.
type Option func(*options)

// WithAllocator makes the buffer allocate from a instead of memory.Default().
func WithAllocator(a memory.Allocator) Option {
	return func(o *options) {
		o.allocator = a
	}
}

// NewBuffer allocates a zeroed buffer for shape.
//
// An invalid shape (a dimension ≤ 0, or an element count that overflows int)
// is reported as an error wrapping ErrInvalidShape or ErrShapeOverflow.
// Allocation failure is not recoverable: NewBuffer panics with an error
// wrapping memory.ErrOutOfMemory or memory.ErrInvalidLayout.
func NewBuffer[T Element](shape Shape, opts ...Option) (*Buffer[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("new buffer: %w", err)
	}
	return newBuffer[T](shape.Clone(), opts), nil
}

// MustNewBuffer is like NewBuffer but panics on an invalid shape too.
func MustNewBuffer[T Element](shape Shape, opts ...Option) *Buffer[T] {
	b, err := NewBuffer[T](shape, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Zeros allocates a zeroed buffer with the given dimensions from the default
// allocator. It panics on an invalid shape.
func Zeros[T Element](dims ...int) *Buffer[T] {
	return MustNewBuffer[T](Shape(dims))
}

func newBuffer[T Element](shape Shape, opts []Option) *Buffer[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.allocator == nil {
		o.allocator = memory.Default()
	}

	dtype := DataTypeOf[T]()
	logical := shape.NumElements()

	size, err := PaddedBytes(logical, dtype.Size())
	if err != nil {
		panic(fmt.Errorf("tensor: size %s %v: %w", dtype, shape, err))
	}
	layout, err := memory.NewLayout(size, Alignment)
	if err != nil {
		panic(fmt.Errorf("tensor: layout %s %v: %w", dtype, shape, err))
	}
	data, err := o.allocator.Allocate(layout)
	if err != nil {
		panic(fmt.Errorf("tensor: allocate %s for %s %v: %w", layout, dtype, shape, err))
	}
	if len(data) != layout.Size || !memory.IsAligned(memory.Address(data), Alignment) {
		panic(fmt.Sprintf("tensor: allocator %s returned %d bytes at %#x for %s",
			o.allocator.Name(), len(data), memory.Address(data), layout))
	}

	b := &Buffer[T]{
		shape:   shape,
		strides: shape.ComputeStrides(),
		dtype:   dtype,
		logical: logical,
		padded:  PaddedCount(logical),
		alloc:   o.allocator,
		layout:  layout,
		data:    data,
	}
	runtime.SetFinalizer(b, func(b *Buffer[T]) {
		config.Logger().Warn("tensor buffer released by finalizer; call Release",
			"buffer", b.String())
		b.free()
	})

	config.Logger().Debug("tensor buffer allocated",
		"allocator", o.allocator.Name(), "buffer", b.String())
	return b
}

// Release frees the allocation. It is safe to call more than once; only the
// first call frees. Metadata accessors keep working after Release, data
// accessors panic.
func (b *Buffer[T]) Release() {
	if b == nil || b.released {
		return
	}
	runtime.SetFinalizer(b, nil)
	b.free()
	config.Logger().Debug("tensor buffer released", "buffer", b.String())
}

// free hands the allocation back exactly once with the recorded layout.
func (b *Buffer[T]) free() {
	if b.released {
		return
	}
	b.released = true
	data := b.data
	b.data = nil
	if b.layout.Size > 0 {
		b.alloc.Free(data, b.layout)
	}
}

// Released reports whether Release has been called.
func (b *Buffer[T]) Released() bool {
	return b.released
}

// Shape returns a copy of the buffer's shape.
func (b *Buffer[T]) Shape() Shape {
	return b.shape.Clone()
}

// Rank returns the number of dimensions.
func (b *Buffer[T]) Rank() int {
	return len(b.shape)
}

// Strides returns a copy of the row-major element strides.
func (b *Buffer[T]) Strides() []int {
	return append([]int(nil), b.strides...)
}

// DType returns the buffer's data type.
func (b *Buffer[T]) DType() DataType {
	return b.dtype
}

// LogicalCount returns the number of meaningful elements.
func (b *Buffer[T]) LogicalCount() int {
	return b.logical
}

// PaddedCount returns the number of element slots allocated.
func (b *Buffer[T]) PaddedCount() int {
	return b.padded
}

// ByteSize returns the size of the allocation in bytes.
func (b *Buffer[T]) ByteSize() int {
	return b.layout.Size
}

// Layout returns the size and alignment the allocation was made with.
func (b *Buffer[T]) Layout() memory.Layout {
	return b.layout
}

// VectorSteps returns how many LaneElements-wide steps cover the buffer.
func (b *Buffer[T]) VectorSteps() int {
	return b.padded / LaneElements
}

// LanesPerVector returns how many elements fit in one register of the
// detected SIMD width.
func (b *Buffer[T]) LanesPerVector() int {
	return simd.Lanes(simd.Width(), b.dtype.Size())
}

// Ptr returns the base address of the allocation.
// WARNING: Direct access to underlying memory. Use with caution.
func (b *Buffer[T]) Ptr() unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(b.live()))
}

// Data returns the logical elements, zero-copy.
func (b *Buffer[T]) Data() []T {
	return b.view(b.logical)
}

// Padded returns every allocated slot, including the padding tail.
func (b *Buffer[T]) Padded() []T {
	return b.view(b.padded)
}

// Bytes returns the raw allocation.
// WARNING: Direct access to underlying memory. Use with caution.
func (b *Buffer[T]) Bytes() []byte {
	return b.live()
}

// Clear zeroes every slot, splitting large buffers across goroutines on
// Alignment boundaries.
func (b *Buffer[T]) Clear() {
	data := b.live()
	cfg := parallel.DefaultConfig()
	cfg.Granule = Alignment
	parallel.ForRange(len(data), func(start, end int) {
		clear(data[start:end])
	}, cfg)
}

// String returns a short description such as
// "Buffer[float32]{shape: [3 3], logical: 9, padded: 16, layout: 64B@32}".
func (b *Buffer[T]) String() string {
	state := ""
	if b.released {
		state = ", released"
	}
	return fmt.Sprintf("Buffer[%s]{shape: %v, logical: %d, padded: %d, layout: %s%s}",
		b.dtype, b.shape, b.logical, b.padded, b.layout, state)
}

func (b *Buffer[T]) live() []byte {
	if b.released {
		panic(fmt.Errorf("tensor: %w: %s", ErrReleased, b))
	}
	return b.data
}

func (b *Buffer[T]) view(n int) []T {
	data := b.live()
	//nolint:gosec // unsafe.Slice for zero-copy access, data holds padded*sizeof(T) aligned bytes
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(data))), n)
}
