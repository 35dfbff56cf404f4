package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New constructs the process-wide zerolog logger. Level and format come
// from LOG_LEVEL and LOG_FORMAT; defaults are info level, JSON to stdout.
func New() *zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))); err == nil && parsed != zerolog.NoLevel {
		level = parsed
	}

	output := zerolog.New(os.Stdout)
	if strings.EqualFold(strings.TrimSpace(os.Getenv("LOG_FORMAT")), "console") {
		output = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := output.
		Level(level).
		With().
		Timestamp().
		Str("app", "studio_backend").
		Logger()

	return &logger
}
