// Package simd reports the SIMD register width of the running CPU.
//
// Tensor buffers are always allocated with a fixed 32-byte alignment and
// padded to a multiple of 8 elements; this package tells kernels built on
// those buffers how many lanes a single vector register holds.
package simd

import "github.com/born-ml/tensorbuf/internal/config"

// Level identifies the widest vector instruction set detected.
type Level int

const (
	// Scalar means no usable vector unit was detected.
	Scalar Level = iota

	// SSE2 is the x86-64 baseline (128-bit).
	SSE2

	// AVX2 provides 256-bit integer and float vectors.
	AVX2

	// AVX512 provides 512-bit vectors.
	AVX512

	// NEON is the ARMv8 baseline (128-bit).
	NEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case Scalar:
		return "scalar"
	case SSE2:
		return "sse2"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	case NEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the register width in bytes for the level.
// Scalar reports 16 so lane arithmetic stays meaningful.
func (l Level) Width() int {
	switch l {
	case AVX512:
		return 64
	case AVX2:
		return 32
	default:
		return 16
	}
}

// detected is set by init in the per-architecture files.
var detected Level

// Detected returns the level found on this CPU, ignoring TENSORBUF_NO_SIMD.
func Detected() Level {
	return detected
}

// Current returns the level in effect: Scalar when TENSORBUF_NO_SIMD is set,
// Detected otherwise.
func Current() Level {
	if config.Load().NoSIMD {
		return Scalar
	}
	return detected
}

// Width returns the register width in bytes of the current level.
func Width() int {
	return Current().Width()
}

// Lanes returns how many elements of elemSize bytes fit in a register of
// width bytes. It returns 0 for a non-positive elemSize.
func Lanes(width, elemSize int) int {
	if elemSize <= 0 {
		return 0
	}
	return width / elemSize
}
