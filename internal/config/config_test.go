package config

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears a variable for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestParseDefaults(t *testing.T) {
	unsetEnv(t, "TENSORBUF_ALLOCATOR")
	unsetEnv(t, "TENSORBUF_NO_SIMD")
	unsetEnv(t, "TENSORBUF_LOG_LEVEL")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, AllocatorHeap, cfg.Allocator)
	assert.False(t, cfg.NoSIMD)
	assert.Equal(t, slog.LevelWarn, cfg.Level())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("TENSORBUF_ALLOCATOR", "mmap")
	t.Setenv("TENSORBUF_NO_SIMD", "true")
	t.Setenv("TENSORBUF_LOG_LEVEL", "debug")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, AllocatorMmap, cfg.Allocator)
	assert.True(t, cfg.NoSIMD)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestParseRejectsUnknownAllocator(t *testing.T) {
	unsetEnv(t, "TENSORBUF_LOG_LEVEL")
	t.Setenv("TENSORBUF_ALLOCATOR", "jemalloc")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jemalloc")
}

func TestParseRejectsBadLevel(t *testing.T) {
	unsetEnv(t, "TENSORBUF_ALLOCATOR")
	t.Setenv("TENSORBUF_LOG_LEVEL", "loud")

	_, err := Parse()
	require.Error(t, err)
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestSetLogger(t *testing.T) {
	custom := slog.New(slog.DiscardHandler)
	SetLogger(custom)
	t.Cleanup(func() { SetLogger(nil) })

	assert.Same(t, custom, Logger())
}

func TestLoggerDefault(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, Logger())
}
