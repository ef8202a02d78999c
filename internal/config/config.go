// Package config loads process-wide settings for tensorbuf from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
)

// Allocator names accepted by TENSORBUF_ALLOCATOR.
const (
	AllocatorHeap = "heap"
	AllocatorMmap = "mmap"
)

// Config holds the tunables read from the environment.
type Config struct {
	Allocator string `env:"TENSORBUF_ALLOCATOR" envDefault:"heap"`
	NoSIMD    bool   `env:"TENSORBUF_NO_SIMD"`
	LogLevel  string `env:"TENSORBUF_LOG_LEVEL" envDefault:"warn"`
}

// Parse loads a Config from the current environment and validates it.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that enumerated fields hold known values.
func (c Config) Validate() error {
	switch strings.ToLower(c.Allocator) {
	case AllocatorHeap, AllocatorMmap:
	default:
		return fmt.Errorf("TENSORBUF_ALLOCATOR: unknown allocator %q (want %q or %q)",
			c.Allocator, AllocatorHeap, AllocatorMmap)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("TENSORBUF_LOG_LEVEL: %w", err)
	}
	return lvl, nil
}

var (
	loadOnce sync.Once
	loaded   Config
)

// Load returns the process configuration, parsed once on first use.
// A malformed environment falls back to defaults and logs the problem.
func Load() Config {
	loadOnce.Do(func() {
		cfg, err := Parse()
		if err != nil {
			slog.Warn("tensorbuf: ignoring invalid environment", "error", err)
			cfg = Default()
		}
		loaded = cfg
	})
	return loaded
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		Allocator: AllocatorHeap,
		LogLevel:  "warn",
	}
}
