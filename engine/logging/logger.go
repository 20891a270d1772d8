// Package logging builds the zerolog logger shared by the engine components.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration.
type Config struct {
	Level   string    // Minimum level: trace, debug, info, warn, error (default: info)
	Console bool      // Human-readable console output instead of JSON
	Output  io.Writer // Destination (default: os.Stderr)
}

// New creates a logger from cfg. Unknown levels fall back to info.
//
// Parameters:
//   - cfg: the logger configuration
//
// Returns:
//   - zerolog.Logger: the configured logger
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	return zerolog.New(out).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel converts a level name to a zerolog level, defaulting to info.
//
// Parameters:
//   - level: the level name, case-insensitive
//
// Returns:
//   - zerolog.Level: the parsed level
func ParseLevel(level string) zerolog.Level {
	if strings.TrimSpace(level) == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Component returns a child logger tagged with a component name.
//
// Parameters:
//   - logger: the parent logger
//   - name: the component name
//
// Returns:
//   - zerolog.Logger: the tagged logger
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
