package slotvec

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with slotvec-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, nil))
}

// WithName adds a name field to the logger, useful when several vectors
// share one handler.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("vec", name),
	}
}

// LogInsert logs an insert. reused reports whether a vacant slot was recycled.
func (l *Logger) LogInsert(index int, reused bool) {
	if reused {
		l.Debug("slot reused", "index", index)
	} else {
		l.Debug("slot appended", "index", index)
	}
}

// LogRemove logs a successful removal.
func (l *Logger) LogRemove(index, nextFree int) {
	l.Debug("slot removed",
		"index", index,
		"next_free", nextFree,
	)
}

// LogGrow logs a reallocation of the backing storage.
func (l *Logger) LogGrow(oldCap, newCap int) {
	l.Debug("storage grown",
		"old_cap", oldCap,
		"new_cap", newCap,
	)
}
