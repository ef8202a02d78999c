package config

import (
	"log/slog"
	"os"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

// Logger returns the logger shared by tensorbuf packages. Until SetLogger is
// called it writes text records to stderr at the configured level.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: Load().Level()}))
	if logger.CompareAndSwap(nil, l) {
		return l
	}
	return logger.Load()
}

// SetLogger replaces the shared logger. Passing nil restores the default.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}
