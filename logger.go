package htygo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with htygo-specific helpers so operations log
// with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, a text handler to stderr at Info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// WithPath adds the file path field to the logger.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{Logger: l.Logger.With("path", path)}
}

// LogQuery logs a query operation.
func (l *Logger) LogQuery(op string, columns []string, rows int, err error) {
	if err != nil {
		l.Error("query failed", "op", op, "columns", columns, "error", err)
	} else {
		l.Debug("query completed", "op", op, "columns", columns, "rows", rows)
	}
}

// LogAppend logs an append operation.
func (l *Logger) LogAppend(dest string, appended int, err error) {
	if err != nil {
		l.Error("append failed", "dest", dest, "appended", appended, "error", err)
	} else {
		l.Info("append completed", "dest", dest, "appended", appended)
	}
}

// LogConvert logs a CSV conversion.
func (l *Logger) LogConvert(src, dest string, rows, columns int, err error) {
	if err != nil {
		l.Error("conversion failed", "src", src, "dest", dest, "error", err)
	} else {
		l.Info("conversion completed", "src", src, "dest", dest, "rows", rows, "columns", columns)
	}
}
