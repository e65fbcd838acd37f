package config

import (
	"io"

	"github.com/lgbarn/thoth-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithMode sets the play mode.
func (b *ConfigBuilder) WithMode(mode Mode) *ConfigBuilder {
	b.cfg.Play.Mode = mode
	return b
}

// WithUserSide sets the colour the user plays.
func (b *ConfigBuilder) WithUserSide(side chess.Colour) *ConfigBuilder {
	b.cfg.Play.UserSide = side
	return b
}

// WithSeed sets the random seed for computer moves.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Play.Seed = seed
	return b
}

// WithJournalDir enables the on-disk journal in dir.
func (b *ConfigBuilder) WithJournalDir(dir string) *ConfigBuilder {
	b.cfg.Storage.Dir = dir
	return b
}

// WithInMemoryJournal enables a journal that lasts for the session.
func (b *ConfigBuilder) WithInMemoryJournal(enabled bool) *ConfigBuilder {
	b.cfg.Storage.InMemory = enabled
	return b
}

// WithPerftWorkers sets the number of perft divide workers.
func (b *ConfigBuilder) WithPerftWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithPerftTableSize sets the perft memo table capacity.
func (b *ConfigBuilder) WithPerftTableSize(n int) *ConfigBuilder {
	b.cfg.Perft.TableSize = n
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Logging.Level = level
	return b
}

// WithLogWriter sets where log lines go.
func (b *ConfigBuilder) WithLogWriter(w io.Writer) *ConfigBuilder {
	b.cfg.Logging.Writer = w
	return b
}

// WithLogJSON selects JSON log lines instead of console lines.
func (b *ConfigBuilder) WithLogJSON(enabled bool) *ConfigBuilder {
	b.cfg.Logging.JSON = enabled
	return b
}

// WithInput sets where commands are read from.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.Input = r
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output.Writer = w
	return b
}

// WithFEN controls whether boards are followed by their FEN.
func (b *ConfigBuilder) WithFEN(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowFEN = enabled
	return b
}

// WithHelp controls whether the command list is printed at start.
func (b *ConfigBuilder) WithHelp(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowHelp = enabled
	return b
}
