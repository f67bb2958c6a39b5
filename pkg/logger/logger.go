// Package logger provides the structured logger injected into the host's components.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
)

const (
	// LogFilePermissions defines the file permissions for log files (owner read/write only).
	LogFilePermissions = 0o600

	logDirPermissions = 0o700
)

// Logger provides structured logging interface.
type Logger interface {
	// Debug logs debug-level messages with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs info-level messages with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Error logs error-level messages with optional key-value pairs.
	Error(msg string, keysAndValues ...any)

	// With returns a new logger with additional key-value pairs.
	With(keysAndValues ...any) Logger
}

// SlogAdapter implements Logger on top of log/slog with the CustomHandler line format.
type SlogAdapter struct {
	logger  *slog.Logger
	handler *CustomHandler
}

// NewFileLoggerWithWriter creates a logger writing to w.
// debugMode enables Info, traceMode enables Debug.
func NewFileLoggerWithWriter(w io.Writer, debugMode, traceMode bool) *SlogAdapter {
	handler := NewWriterHandler(w, LevelFromFlags(debugMode, traceMode))

	return &SlogAdapter{
		logger:  slog.New(handler),
		handler: handler,
	}
}

// NewFileLogger creates a logger appending to the file at path.
func NewFileLogger(path string, debugMode, traceMode bool) (*SlogAdapter, error) {
	//nolint:gosec // path comes from configuration or the XDG state directory
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermissions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open log file")
	}

	return NewFileLoggerWithWriter(file, debugMode, traceMode), nil
}

// Open creates the log directory when missing, opens the log file and writes
// a session header naming the application and version. The returned logger
// must be closed by the caller.
func Open(path, app, version string, debugMode, traceMode bool) (*SlogAdapter, error) {
	if err := os.MkdirAll(filepath.Dir(path), logDirPermissions); err != nil {
		return nil, errors.Wrapf(err, "failed to create log directory for %s", path)
	}

	log, err := NewFileLogger(path, debugMode, traceMode)
	if err != nil {
		return nil, err
	}

	log.handler.writeRaw(fmt.Sprintf(
		"=== %s %s session started %s ===\n",
		app,
		version,
		time.Now().Format(time.RFC1123),
	))

	return log, nil
}

// Debug logs debug-level messages.
func (l *SlogAdapter) Debug(msg string, keysAndValues ...any) {
	l.logger.Log(context.Background(), slog.LevelDebug, msg, keysAndValues...)
}

// Info logs info-level messages.
func (l *SlogAdapter) Info(msg string, keysAndValues ...any) {
	l.logger.Log(context.Background(), slog.LevelInfo, msg, keysAndValues...)
}

// Error logs error-level messages.
func (l *SlogAdapter) Error(msg string, keysAndValues ...any) {
	l.logger.Log(context.Background(), slog.LevelError, msg, keysAndValues...)
}

// With returns a new logger with additional base key-value pairs.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (l *SlogAdapter) With(keysAndValues ...any) Logger {
	return &SlogAdapter{
		logger:  l.logger.With(keysAndValues...),
		handler: l.handler,
	}
}

// Close closes the underlying writer when it is closable.
func (l *SlogAdapter) Close() error {
	return l.handler.Close()
}

// NoOpLogger is a logger that does nothing.
type NoOpLogger struct{}

// NewNoOpLogger creates a new NoOpLogger.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// Debug does nothing.
func (*NoOpLogger) Debug(string, ...any) {}

// Info does nothing.
func (*NoOpLogger) Info(string, ...any) {}

// Error does nothing.
func (*NoOpLogger) Error(string, ...any) {}

// With returns the same NoOpLogger.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (n *NoOpLogger) With(...any) Logger {
	return n
}
