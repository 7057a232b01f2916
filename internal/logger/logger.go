// Package logger wraps log/slog with level and format selection. Logs go to
// stderr by default so they never interleave with the menu output on stdout.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger embeds a configured slog.Logger.
type Logger struct {
	*slog.Logger
}

// Config selects the log level ("debug", "info", "warn", "error") and format
// ("text" or "json").
type Config struct {
	Level  string
	Format string
	Output io.Writer
}

// New builds a Logger from cfg, falling back to info-level text on stderr.
func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	} else {
		handler = slog.NewTextHandler(cfg.Output, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// Fatal logs at error level and exits with status 1. Use only for
// unrecoverable startup failures.
func (l *Logger) Fatal(msg string, args ...any) {
	l.Error(msg, args...)
	os.Exit(1)
}
