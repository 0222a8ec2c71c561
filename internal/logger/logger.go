// Package logger builds the application's zerolog logger from configuration
// and maps configured level names onto gorm's SQL logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"github.com/learningmate/examstore/internal/config"
)

// New returns the root logger writing to stderr.
func New(cfg config.Log) zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter returns the root logger writing to out. Unknown level names
// fall back to info.
func NewWithWriter(cfg config.Log, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	w := out
	if cfg.Format != config.LogFormatJSON {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// GormLogLevel maps a level name onto gorm's logger. Unknown names give Warn,
// gorm's own default.
func GormLogLevel(name string) gormlogger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "silent", "off", "disabled":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info", "debug", "trace":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
