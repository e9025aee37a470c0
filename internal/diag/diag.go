// Package diag routes configuration diagnostics to a structured logger.
//
// The configuration core never terminates the process; every deprecation,
// range violation, and failed rule compilation is reported through a Sink
// and the caller decides what to do with it.
package diag

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Sink receives diagnostic messages from configuration loading.
type Sink interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Logger is a zerolog-backed Sink.
type Logger struct {
	zlog zerolog.Logger
}

// Option configures a Logger.
type Option func(*Logger)

// WithConsole formats output for a terminal on stderr.
func WithConsole() Option {
	return func(l *Logger) {
		l.zlog = l.zlog.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}

// WithWriter directs output to w.
func WithWriter(w io.Writer) Option {
	return func(l *Logger) {
		l.zlog = l.zlog.Output(w)
	}
}

// WithLevel sets the minimum logged level.
func WithLevel(level zerolog.Level) Option {
	return func(l *Logger) {
		l.zlog = l.zlog.Level(level)
	}
}

// New creates a Logger. By default it writes JSON to stderr at the warn
// level.
func New(opts ...Option) *Logger {
	l := &Logger{
		zlog: zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Infof logs an informational message.
func (l *Logger) Infof(format string, args ...any) {
	l.zlog.Info().Msgf(format, args...)
}

// Warnf logs a warning.
func (l *Logger) Warnf(format string, args ...any) {
	l.zlog.Warn().Msgf(format, args...)
}

// Errorf logs an error.
func (l *Logger) Errorf(format string, args ...any) {
	l.zlog.Error().Msgf(format, args...)
}

// Discard is a Sink that drops every message.
type Discard struct{}

// Infof implements Sink.
func (Discard) Infof(string, ...any) {}

// Warnf implements Sink.
func (Discard) Warnf(string, ...any) {}

// Errorf implements Sink.
func (Discard) Errorf(string, ...any) {}

// Collector is a Sink that records formatted messages in memory.
// It is safe for concurrent use and is intended for tests and for callers
// that summarize diagnostics after a load.
type Collector struct {
	mu       sync.Mutex
	infos    []string
	warnings []string
	errors   []string
}

// Infof implements Sink.
func (c *Collector) Infof(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.infos = append(c.infos, fmt.Sprintf(format, args...))
}

// Warnf implements Sink.
func (c *Collector) Warnf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

// Errorf implements Sink.
func (c *Collector) Errorf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = append(c.errors, fmt.Sprintf(format, args...))
}

// Infos returns a copy of the recorded informational messages.
func (c *Collector) Infos() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.infos...)
}

// Warnings returns a copy of the recorded warnings.
func (c *Collector) Warnings() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.warnings...)
}

// Errors returns a copy of the recorded errors.
func (c *Collector) Errors() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.errors...)
}
