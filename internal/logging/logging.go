package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const DefaultLevel = "warn"

type Options struct {
	Level string
	JSON  bool
}

// New builds the process logger. Console output is meant for humans on
// stderr; JSON output is one event per line.
func New(w io.Writer, opts Options) (zerolog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	if !opts.JSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

func ParseLevel(value string) (zerolog.Level, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		value = DefaultLevel
	}

	level, err := zerolog.ParseLevel(value)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", value, err)
	}
	return level, nil
}
