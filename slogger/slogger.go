// Package slogger provides structured logging for the CLI, backed by
// log/slog with colorized terminal output.
package slogger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Logger is the logging interface used throughout the project.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)

	// With returns a Logger with the given key-value pairs attached
	With(keysAndValues ...any) Logger
}

// Level is the minimum level a logger emits.
type Level slog.Level

const (
	LevelDebug Level = Level(slog.LevelDebug)
	LevelInfo  Level = Level(slog.LevelInfo)
	LevelWarn  Level = Level(slog.LevelWarn)
	LevelError Level = Level(slog.LevelError)
)

// LevelFromString parses a level name, defaulting to info.
func LevelFromString(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Slogger implements Logger on top of slog with a tint handler.
type Slogger struct {
	logger *slog.Logger
}

// New returns a Slogger writing to stderr. Color is disabled when
// stderr is not a terminal.
func New(level Level) *Slogger {
	return NewWithWriter(os.Stderr, level, !isatty.IsTerminal(os.Stderr.Fd()))
}

// NewWithWriter returns a Slogger writing to w.
func NewWithWriter(w io.Writer, level Level, noColor bool) *Slogger {
	handler := tint.NewHandler(w, &tint.Options{
		NoColor:    noColor,
		TimeFormat: time.Kitchen,
		Level:      slog.Level(level),
	})
	return &Slogger{logger: slog.New(handler)}
}

func (l *Slogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *Slogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *Slogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn(msg, keysAndValues...)
}

func (l *Slogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
}

func (l *Slogger) With(keysAndValues ...any) Logger {
	return &Slogger{logger: l.logger.With(keysAndValues...)}
}

// DevNull implements Logger but discards everything. It is the zero
// logger for library callers that pass no logger.
type DevNull struct{}

func (DevNull) Debug(msg string, keysAndValues ...any) {}
func (DevNull) Info(msg string, keysAndValues ...any)  {}
func (DevNull) Warn(msg string, keysAndValues ...any)  {}
func (DevNull) Error(msg string, keysAndValues ...any) {}
func (DevNull) With(keysAndValues ...any) Logger       { return DevNull{} }
