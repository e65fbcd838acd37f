// thoth is a console chess program: two players at one terminal, or one
// player against a computer that picks random legal moves.
package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/thoth-go/internal/config"
	"github.com/lgbarn/thoth-go/internal/engine"
	"github.com/lgbarn/thoth-go/internal/hashing"
	"github.com/lgbarn/thoth-go/internal/perft"
	"github.com/lgbarn/thoth-go/internal/session"
	"github.com/lgbarn/thoth-go/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("thoth version %s\n", programVersion)
		os.Exit(0)
	}

	b := config.NewConfigBuilder()
	if err := applyFlags(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	cfg := b.Build()
	setupLogFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, *perftDepth); err != nil {
		if stderrors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Interrupted")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run validates the configuration and either prints a perft divide of the
// initial position or plays a console session.
func run(ctx context.Context, cfg *config.Config, depth int) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := cfg.Logging.Logger()

	if depth > 0 {
		return runPerft(ctx, cfg, log, depth)
	}

	journal, err := openJournal(cfg.Storage)
	if err != nil {
		return err
	}
	if journal != nil {
		defer journal.Close()
	}

	log.Debug().
		Stringer("mode", cfg.Play.Mode).
		Stringer("side", cfg.Play.UserSide).
		Int64("seed", cfg.Play.Seed).
		Bool("journal", journal != nil).
		Msg("starting session")
	return session.New(cfg, journal, log).Run(ctx, cfg.Input)
}

// openJournal opens the configured journal, or returns nil when saving is off.
func openJournal(sc *config.StorageConfig) (*storage.Journal, error) {
	switch {
	case sc.Dir != "":
		return storage.Open(sc.Dir)
	case sc.InMemory:
		return storage.OpenInMemory()
	}
	return nil, nil
}

// runPerft prints divide counts for the initial position.
func runPerft(ctx context.Context, cfg *config.Config, log zerolog.Logger, depth int) error {
	opts := []perft.Option{
		perft.WithWorkers(cfg.Perft.Workers),
		perft.WithLogger(log),
	}
	var table *hashing.ThreadSafePerftTable
	if cfg.Perft.TableSize >= 0 {
		table = hashing.NewThreadSafePerftTable(cfg.Perft.TableSize)
		opts = append(opts, perft.WithTable(table))
	}

	start := time.Now()
	res, err := perft.Divide(ctx, engine.NewGame(), depth, opts...)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	ev := log.Info().Int("depth", depth).Uint64("nodes", res.Total()).Dur("elapsed", elapsed)
	if table != nil {
		ev = ev.Int("table_entries", table.Len()).Int("table_hits", table.Hits())
	}
	ev.Msg("perft complete")

	return perft.Format(cfg.Output.Writer, res)
}

// setupLogFile sends log lines to the file named by -l.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.Logging.Writer = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: thoth [options]\n\n")
	fmt.Fprintf(os.Stderr, "A console chess program. Commands are read from stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprintf(os.Stderr, "  help, print, think, exit, mode f|c, side w|b, move <move>,\n")
	fmt.Fprintf(os.Stderr, "  undo, moves, fen, perft <depth>, new, save|load|delete <name>, games, export [name]\n")
}
