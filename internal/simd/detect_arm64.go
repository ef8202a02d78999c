//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func init() {
	// ASIMD is part of the ARMv8-A base architecture.
	if cpu.ARM64.HasASIMD {
		detected = NEON
		return
	}
	detected = Scalar
}
