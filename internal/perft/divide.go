// Package perft splits perft counts by root move and spreads the work over
// a worker pool.
package perft

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/thoth-go/internal/engine"
	"github.com/lgbarn/thoth-go/internal/hashing"
	"github.com/lgbarn/thoth-go/internal/worker"
)

// Result maps each root move's text to the nodes below it.
type Result map[string]uint64

// Total returns the sum over all root moves.
func (r Result) Total() uint64 {
	var total uint64
	for _, n := range r {
		total += n
	}
	return total
}

type options struct {
	workers int
	table   *hashing.ThreadSafePerftTable
	logger  zerolog.Logger
}

// Option configures Divide.
type Option func(*options)

// WithWorkers sets the number of goroutines. Defaults to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithTable shares a memo table between workers.
func WithTable(t *hashing.ThreadSafePerftTable) Option {
	return func(o *options) {
		o.table = t
	}
}

// WithLogger sets the logger for progress messages.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Divide counts the leaf nodes at depth below each legal root move of g.
// Each root move is expanded on its own clone, so g is not touched.
func Divide(ctx context.Context, g *engine.GameState, depth int, opts ...Option) (Result, error) {
	o := options{workers: runtime.GOMAXPROCS(0), logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if depth < 1 {
		return nil, fmt.Errorf("perft depth %d: must be at least 1", depth)
	}

	moves := g.LegalMoves()
	result := make(Result, len(moves))
	if len(moves) == 0 {
		return result, nil
	}

	count := engine.Perft
	if o.table != nil {
		count = func(s *engine.GameState, d int) uint64 {
			return engine.CachedPerft(s, d, o.table)
		}
	}

	pool := worker.NewPool(worker.PerftFunc(count),
		worker.WithWorkers(o.workers),
		worker.WithBufferSize(len(moves)))
	pool.Start()
	o.logger.Debug().Int("depth", depth).Int("moves", len(moves)).Int("workers", pool.NumWorkers()).Msg("perft divide started")

	for i, m := range moves {
		pool.Submit(worker.WorkItem{State: g.Clone(), Move: m, Depth: depth - 1, Index: i})
	}
	go pool.Close()

	done := ctx.Done()
	for {
		select {
		case r, ok := <-pool.Results():
			if !ok {
				o.logger.Debug().Uint64("nodes", result.Total()).Msg("perft divide finished")
				return result, nil
			}
			if r.Error != nil {
				pool.Stop()
				return nil, r.Error
			}
			result[engine.MoveText(r.Move)] = r.Nodes
		case <-done:
			pool.Stop()
			// Drain so the workers can exit.
			go func() {
				for range pool.Results() {
				}
			}()
			return nil, ctx.Err()
		}
	}
}

// Format writes one "move: nodes" line per root move in sorted order,
// followed by the total.
func Format(w io.Writer, r Result) error {
	keys := maps.Keys(r)
	slices.Sort(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s: %d\n", k, r[k]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nTotal: %d\n", r.Total())
	return err
}
