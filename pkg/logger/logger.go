// Package logger configures the application's structured logging.
//
// It uses zerolog for both the CLI and the HTTP server. JSON output is the
// default; the console format is meant for local development.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options controls how a logger is built
type Options struct {
	Level  string
	JSON   bool
	Output io.Writer
}

// New builds a zerolog.Logger from opts. Unknown levels fall back to info.
func New(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	if !opts.JSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(ParseLevel(opts.Level)).
		With().
		Timestamp().
		Str("service", "nzwalks-api").
		Logger()
}

// Setup builds a logger and installs it as the global zerolog logger
func Setup(opts Options) zerolog.Logger {
	l := New(opts)
	log.Logger = l
	return l
}

// ParseLevel converts a level name into a zerolog.Level
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
