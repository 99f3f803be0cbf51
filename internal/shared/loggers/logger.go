package loggers

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a wrapper around zerolog.Logger for convenience.
type Logger = zerolog.Logger

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// New creates a JSON zerolog logger based on the provided log level string.
// Returns an error if the log level string cannot be parsed.
func New(level string) (Logger, error) {
	return NewWithFormat(level, FormatJSON)
}

// NewWithFormat creates a logger writing to stdout in the given format.
// An empty format means JSON; console is meant for local runs.
func NewWithFormat(level, format string) (Logger, error) {
	return newWithWriter(level, format, os.Stdout)
}

func newWithWriter(level, format string, w io.Writer) (Logger, error) {
	zerologLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	switch format {
	case "", FormatJSON:
	case FormatConsole:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339Nano, NoColor: true}
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", format)
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	logger := zerolog.New(w).
		Level(zerologLevel).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger, nil
}

// Ctx extracts a logger from the context.
// Returns a no-op logger if no logger is found in context.
var Ctx = func(ctx context.Context) *Logger {
	return zerolog.Ctx(ctx)
}
