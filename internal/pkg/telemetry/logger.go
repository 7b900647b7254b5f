// Package telemetry builds the process logger. Components receive the
// logger by injection; nothing in the module writes through a package-level
// default.
package telemetry

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger returns a zerolog logger at the given level. Pretty mode uses
// the human-readable console writer; otherwise records are JSON on stderr.
// An unrecognised level falls back to info.
func NewLogger(level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(lvl).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything; handy in tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
