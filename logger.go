package growvec

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with growvec-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Vectors use it unless WithLogger is given.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithName adds a name field to the logger (useful for telling vectors apart).
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("vector", name),
	}
}

// LogGrowth logs a capacity growth.
func (l *Logger) LogGrowth(ctx context.Context, oldCapacity, newCapacity, length int) {
	l.DebugContext(ctx, "vector grown",
		"old_capacity", oldCapacity,
		"new_capacity", newCapacity,
		"length", length,
	)
}

// LogClear logs a clear that replaced the backing buffer.
func (l *Logger) LogClear(ctx context.Context, capacity, dropped int) {
	l.DebugContext(ctx, "vector cleared",
		"capacity", capacity,
		"dropped", dropped,
	)
}

// LogRemoveSet logs a batch removal.
func (l *Logger) LogRemoveSet(ctx context.Context, requested, removed int, err error) {
	if err != nil {
		l.DebugContext(ctx, "remove set rejected",
			"requested", requested,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "remove set completed",
			"removed", removed,
		)
	}
}
