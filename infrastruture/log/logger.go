// Package logger provides the prefixed, colored loggers used across the service.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Logger writes leveled messages tagged with a component prefix.
type Logger struct {
	prefix string
	slog   *slog.Logger
}

// New creates a Logger writing text records to w.
// color is an ANSI escape sequence applied to the prefix; it may be empty.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if strings.TrimSpace(prefix) == "" {
		return nil, errors.New("logger prefix is required")
	}
	if w == nil {
		return nil, errors.New("logger writer is required")
	}

	tag := fmt.Sprintf("[%s]", prefix)
	if color != "" {
		tag = color + tag + colorReset
	}

	out := &taggedWriter{tag: []byte(tag + " "), w: w}
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &Logger{
		prefix: prefix,
		slog:   slog.New(handler),
	}, nil
}

// taggedWriter puts the tag in front of every record. slog handlers issue one
// Write per record, so the tag lands at the start of each line.
// The tag bypasses the handler, which would quote escape sequences.
type taggedWriter struct {
	mu  sync.Mutex
	tag []byte
	w   io.Writer
	buf []byte
}

func (t *taggedWriter) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.buf = append(append(t.buf[:0], t.tag...), p...)
	if _, err := t.w.Write(t.buf); err != nil {
		return 0, err
	}
	return len(p), nil
}

const colorReset = "\033[0m"

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// Error logs a failure.
func (l *Logger) Error(msg string, args ...any) {
	l.slog.Error(msg, args...)
}

// Debug logs diagnostic detail.
func (l *Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

// Prefix returns the component name.
func (l *Logger) Prefix() string {
	return l.prefix
}

// Slog exposes the underlying structured logger.
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}
