// Package logger implements ports.Logger using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/RastaKolobar/pyre-check/internal/core/ports"
)

// Logger implements ports.Logger with a swappable slog handler, guarded by
// a mutex since SetOutput may run concurrently with in-flight log calls.
type Logger struct {
	logger *slog.Logger
	mu     sync.RWMutex
}

// New creates a Logger writing text-formatted records to stderr.
func New() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &Logger{logger: slog.New(handler)}
}

// SetOutput redirects future log records to w.
func (l *Logger) SetOutput(w io.Writer) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(handler)
}

func (l *Logger) Debug(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(msg, args...)
}

// With returns a Logger that prepends args to every subsequent record.
func (l *Logger) With(args ...any) ports.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return &Logger{logger: l.logger.With(args...)}
}
