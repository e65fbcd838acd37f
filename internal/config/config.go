// Package config provides configuration for the thoth console and tools.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/thoth-go/internal/errors"
)

// StorageConfig holds settings for the saved-game journal.
type StorageConfig struct {
	// Dir is the journal directory. Empty with InMemory false disables saving.
	Dir string

	// InMemory keeps the journal in memory for the session only
	InMemory bool
}

// Enabled reports whether a journal should be opened.
func (c *StorageConfig) Enabled() bool {
	return c.InMemory || c.Dir != ""
}

// PerftConfig holds settings for perft runs.
type PerftConfig struct {
	// Workers is the number of goroutines used by divide
	Workers int

	// TableSize caps the shared memo table (0 = unlimited, negative = no table)
	TableSize int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers:   runtime.GOMAXPROCS(0),
		TableSize: 1 << 20,
	}
}

// Validate checks the perft settings.
func (c *PerftConfig) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("perft workers %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	return nil
}

// Config holds all program configuration.
type Config struct {
	Play    *PlayConfig
	Storage *StorageConfig
	Perft   *PerftConfig
	Logging *LoggingConfig
	Output  *OutputConfig

	// Input is where console commands are read from
	Input io.Reader
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Play:    NewPlayConfig(),
		Storage: &StorageConfig{},
		Perft:   NewPerftConfig(),
		Logging: NewLoggingConfig(os.Stderr),
		Output:  NewOutputConfig(os.Stdout),
		Input:   os.Stdin,
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Play.Validate(); err != nil {
		return err
	}
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}
