package internal

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger writes JSON lines to w. Unknown or empty levels fall back to info.
func NewLogger(levelStr string, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(levelStr)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(w).Level(level).With().
		Timestamp().
		Str("service", "benchmark-reporter").
		Logger()
}
