package frontier

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with frontier-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithSize adds a frontier size field to the logger.
func (l *Logger) WithSize(size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", size),
	}
}

// WithPriority adds a priority (f-value) field to the logger.
func (l *Logger) WithPriority(priority int) *Logger {
	return &Logger{
		Logger: l.Logger.With("priority", priority),
	}
}

// LogPrepare logs the start of a new search.
func (l *Logger) LogPrepare() {
	l.Debug("frontier prepared")
}

// LogAdd logs an add operation and its outcome.
func (l *Logger) LogAdd(outcome AddOutcome, priority, size int) {
	switch outcome {
	case AddInserted:
		l.Debug("state queued",
			"priority", priority,
			"size", size,
		)
	case AddReprioritized:
		l.Debug("state reprioritized",
			"priority", priority,
			"size", size,
		)
	case AddIgnored:
		l.Debug("state add ignored",
			"priority", priority,
			"size", size,
		)
	}
}

// LogPop logs a pop operation.
func (l *Logger) LogPop(size int, err error) {
	if err != nil {
		l.Error("pop failed",
			"size", size,
			"error", err,
		)
	} else {
		l.Debug("state popped",
			"size", size,
		)
	}
}
