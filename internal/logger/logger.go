// Package logger builds the process logger.
package logger

import (
	"io"
	"os"
	"time"

	"blogsphere/internal/config"

	"github.com/rs/zerolog"
)

// New creates a zerolog logger writing to w, or stderr when w is nil.
// Unknown levels fall back to warn.
func New(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if w == nil {
		w = os.Stderr
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	if cfg.Format == config.FormatPretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", "blogsphere").
		Logger()
}
