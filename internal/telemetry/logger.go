// Package telemetry is the structured JSON log written to --log.
package telemetry

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
)

type Logger struct {
	base *clog.Logger
	out  *sink
}

type sink struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
}

func (s *sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.w == nil {
		return len(p), nil
	}
	return s.w.Write(p)
}

func (s *sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w = nil
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}

// New opens path for JSON lines. An empty path gives a logger that discards
// everything.
func New(path string, debug bool) (*Logger, error) {
	if path == "" {
		return NewWriter(io.Discard, debug), nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	l := NewWriter(f, debug)
	l.out.closer = f
	return l, nil
}

func NewWriter(w io.Writer, debug bool) *Logger {
	level := clog.InfoLevel
	if debug {
		level = clog.DebugLevel
	}
	out := &sink{w: w}
	base := clog.NewWithOptions(out, clog.Options{
		Level:           level,
		Formatter:       clog.JSONFormatter,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
	})
	return &Logger{base: base, out: out}
}

// Nop discards everything.
func Nop() *Logger { return NewWriter(io.Discard, false) }

func (l *Logger) Debug(msg string, keyvals ...any) {
	if l != nil {
		l.base.Debug(msg, keyvals...)
	}
}

func (l *Logger) Info(msg string, keyvals ...any) {
	if l != nil {
		l.base.Info(msg, keyvals...)
	}
}

func (l *Logger) Error(msg string, keyvals ...any) {
	if l != nil {
		l.base.Error(msg, keyvals...)
	}
}

// With returns a child that adds keyvals to every entry. Children share the
// parent's file.
func (l *Logger) With(keyvals ...any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With(keyvals...), out: l.out}
}

func (l *Logger) Close() error {
	if l == nil || l.out == nil {
		return nil
	}
	return l.out.Close()
}
