// Package logging provides structured logging for spider built on log/slog.
// Output is plain text for terminals or JSON for pipelines, selected at
// startup, with per-component scoping so generator and validator lines are
// attributable.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the structured logging interface used across spider.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	With(args ...any) Logger
	WithComponent(component string) Logger
}

// Config holds logger configuration.
type Config struct {
	Level  string // "debug", "info", "warn", "error"
	JSON   bool
	Output io.Writer
}

// DefaultConfig returns the configuration used when none is supplied:
// info-level text logging to stderr.
func DefaultConfig() *Config {
	return &Config{
		Level:  "info",
		Output: os.Stderr,
	}
}

type slogLogger struct {
	logger *slog.Logger
}

// NewLogger creates a new structured logger.
func NewLogger(config *Config) Logger {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Output == nil {
		config.Output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: ParseLevel(config.Level),
	}

	var handler slog.Handler
	if config.JSON {
		handler = slog.NewJSONHandler(config.Output, opts)
	} else {
		handler = slog.NewTextHandler(config.Output, opts)
	}

	return &slogLogger{logger: slog.New(handler)}
}

// ParseLevel maps a level name to its slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *slogLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *slogLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

func (l *slogLogger) WithComponent(component string) Logger {
	return l.With("component", component)
}

// NopLogger returns a logger that discards everything. Used in tests and as
// a safe default for optional logger parameters.
func NopLogger() Logger {
	return NewLogger(&Config{Level: "error", Output: io.Discard})
}
