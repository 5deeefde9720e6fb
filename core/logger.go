package core

import (
	"context"
	"log/slog"
	"time"
)

// Logger provides debug logging for the Schematics SDK.
//
// Arguments after the message are slog key/value pairs. Logger satisfies
// retryablehttp.LeveledLogger, so the transport hands it to the retry layer
// directly.
type Logger struct {
	enabled bool
	log     *slog.Logger
}

// NewLogger creates a new logger writing through slog.Default().
func NewLogger(enabled bool) *Logger {
	return NewSlogLogger(enabled, nil)
}

// NewSlogLogger creates a logger writing through l. A nil l means slog.Default().
func NewSlogLogger(enabled bool, l *slog.Logger) *Logger {
	if l == nil {
		l = slog.Default()
	}
	return &Logger{
		enabled: enabled,
		log:     l.With("sdk", "schematics-go-sdk"),
	}
}

// Debug logs a debug message (only if debug is enabled).
func (l *Logger) Debug(msg string, keysAndValues ...any) {
	if l.enabled {
		l.log.Log(context.Background(), slog.LevelDebug, msg, keysAndValues...)
	}
}

// Info logs an info message (only if debug is enabled).
func (l *Logger) Info(msg string, keysAndValues ...any) {
	if l.enabled {
		l.log.Info(msg, keysAndValues...)
	}
}

// Warn logs a warning message (always logged).
func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.log.Warn(msg, keysAndValues...)
}

// Error logs an error message (always logged).
func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.log.Error(msg, keysAndValues...)
}

// Timing logs request timing information.
func (l *Logger) Timing(operationID, method, url string, status int, duration time.Duration) {
	l.Debug("request completed",
		"operation", operationID,
		"method", method,
		"url", url,
		"status", status,
		"duration_ms", duration.Milliseconds(),
	)
}

// Retry logs retry attempt information.
func (l *Logger) Retry(method, url string, attempt int) {
	l.Debug("retrying request", "method", method, "url", url, "attempt", attempt)
}

// Enabled returns whether debug logging is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}
