package config

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/lgbarn/thoth-go/internal/errors"
)

// LoggingConfig holds the diagnostic logger settings.
type LoggingConfig struct {
	// Level is a zerolog level name: debug, info, warn, error or disabled
	Level string

	// Writer receives log lines
	Writer io.Writer

	// JSON writes structured JSON instead of console lines
	JSON bool
}

// NewLoggingConfig creates a LoggingConfig with default values.
func NewLoggingConfig(w io.Writer) *LoggingConfig {
	return &LoggingConfig{
		Level:  "warn",
		Writer: w,
	}
}

// Validate checks that the level name is known.
func (c *LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("log level %q: %w", c.Level, errors.ErrInvalidConfig)
	}
	return nil
}

// Logger builds the configured logger.
func (c *LoggingConfig) Logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		level = zerolog.WarnLevel
	}
	w := c.Writer
	if w == nil {
		return zerolog.Nop()
	}
	if !c.JSON {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
