//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	detected = detectX86(cpu.X86.HasAVX512F, cpu.X86.HasAVX2, cpu.X86.HasSSE2)
}

func detectX86(avx512, avx2, sse2 bool) Level {
	switch {
	case avx512:
		return AVX512
	case avx2:
		return AVX2
	case sse2:
		return SSE2
	default:
		return Scalar
	}
}
