// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/thoth-go/internal/config"
	"github.com/lgbarn/thoth-go/internal/errors"
)

var (
	// Play options
	modeFlag = flag.String("mode", "f", "Play mode: 'f' for 2 players, 'c' against the computer")
	sideFlag = flag.String("side", "w", "User side against the computer: 'w' or 'b'")
	seed     = flag.Int64("seed", 0, "Seed for computer moves (0 = time based)")

	// Saved games
	journalDir = flag.String("journal", "", "Directory of the saved-game journal (default: saving disabled)")
	memJournal = flag.Bool("memjournal", false, "Keep saved games in memory for this session only")

	// Perft
	perftDepth = flag.Int("perft", 0, "Print perft divide counts of the initial position to this depth and exit")
	workers    = flag.Int("workers", 0, "Number of perft workers (0 = GOMAXPROCS)")
	tableSize  = flag.Int("perft-table", 1<<20, "Perft memo table entries (0 = unlimited, -1 = off)")

	// Output
	showFEN = flag.Bool("fen", false, "Print the FEN under each board")
	noHelp  = flag.Bool("nohelp", false, "Don't print the command list at start")

	// Logging
	logLevel = flag.String("loglevel", "warn", "Log level: debug, info, warn, error, disabled")
	logJSON  = flag.Bool("logjson", false, "Write log lines as JSON")
	logFile  = flag.String("l", "", "Write log lines to this file (default: stderr)")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags through the config builder.
func applyFlags(b *config.ConfigBuilder) error {
	if err := applyPlayFlags(b); err != nil {
		return err
	}
	applyStorageFlags(b)
	applyPerftFlags(b)
	applyOutputFlags(b)
	applyLoggingFlags(b)
	return nil
}

// applyPlayFlags configures mode, side and seed.
func applyPlayFlags(b *config.ConfigBuilder) error {
	mode, ok := config.ParseMode(*modeFlag)
	if !ok {
		return fmt.Errorf("-mode %q: %w", *modeFlag, errors.ErrInvalidConfig)
	}
	side, ok := config.ParseSide(*sideFlag)
	if !ok {
		return fmt.Errorf("-side %q: %w", *sideFlag, errors.ErrInvalidConfig)
	}
	b.WithMode(mode).WithUserSide(side)
	if *seed != 0 {
		b.WithSeed(*seed)
	}
	return nil
}

// applyStorageFlags configures the saved-game journal.
func applyStorageFlags(b *config.ConfigBuilder) {
	b.WithJournalDir(*journalDir).
		WithInMemoryJournal(*memJournal && *journalDir == "")
}

// applyPerftFlags configures perft workers and the memo table.
func applyPerftFlags(b *config.ConfigBuilder) {
	if *workers > 0 {
		b.WithPerftWorkers(*workers)
	}
	b.WithPerftTableSize(*tableSize)
}

// applyOutputFlags configures console output.
func applyOutputFlags(b *config.ConfigBuilder) {
	b.WithFEN(*showFEN).WithHelp(!*noHelp)
}

// applyLoggingFlags configures the diagnostic logger.
func applyLoggingFlags(b *config.ConfigBuilder) {
	b.WithLogLevel(*logLevel).WithLogJSON(*logJSON)
}
