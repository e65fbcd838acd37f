// Package session runs the interactive console game: it reads commands,
// applies them to a game and answers with the computer when asked to.
package session

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/thoth-go/internal/chess"
	"github.com/lgbarn/thoth-go/internal/config"
	"github.com/lgbarn/thoth-go/internal/engine"
	"github.com/lgbarn/thoth-go/internal/errors"
	"github.com/lgbarn/thoth-go/internal/hashing"
	"github.com/lgbarn/thoth-go/internal/output"
	"github.com/lgbarn/thoth-go/internal/storage"
)

// moveListWidth is the line width used for move lists.
const moveListWidth = 72

// Session holds one console game and its settings.
type Session struct {
	cfg     *config.Config
	out     io.Writer
	log     zerolog.Logger
	journal *storage.Journal // nil when saving is disabled
	table   *hashing.ThreadSafePerftTable
	rng     *rand.Rand

	game     *engine.GameState
	played   []engine.Move
	mode     config.Mode
	userSide chess.Colour
	outcome  engine.Outcome
}

// New creates a session at the initial position. journal may be nil.
func New(cfg *config.Config, journal *storage.Journal, log zerolog.Logger) *Session {
	s := &Session{
		cfg:      cfg,
		out:      cfg.Output.Writer,
		log:      log,
		journal:  journal,
		rng:      rand.New(rand.NewSource(cfg.Play.Seed)), //nolint:gosec // move choice, not security
		game:     engine.NewGame(),
		mode:     cfg.Play.Mode,
		userSide: cfg.Play.UserSide,
	}
	if cfg.Perft.TableSize >= 0 {
		s.table = hashing.NewThreadSafePerftTable(cfg.Perft.TableSize)
	}
	return s
}

// Game returns the current game state.
func (s *Session) Game() *engine.GameState {
	return s.game
}

// Played returns the text of each move played so far.
func (s *Session) Played() []string {
	texts := make([]string, len(s.played))
	for i, m := range s.played {
		texts[i] = engine.MoveText(m)
	}
	return texts
}

// Outcome returns the classification of the current position as of the last move.
func (s *Session) Outcome() engine.Outcome {
	return s.outcome
}

// Run prints the greeting and board, then executes commands read from in
// until exit, end of game, end of input or cancellation.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	if s.cfg.Output.ShowHelp {
		fmt.Fprint(s.out, helpText)
		fmt.Fprint(s.out, "\n\n")
	}
	s.printBoard()

	lines, readErr := readLines(ctx, in)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-readErr
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			done, err := s.Execute(ctx, line)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

// readLines feeds the lines of in to a channel. The channel closes at end of
// input or cancellation, after the scan error (possibly nil) is sent on errc.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

// Execute runs one command line. It returns true when the session should
// end, either on exit or because the game is over.
func (s *Session) Execute(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	cmd, ok := lookupCommand(name)
	if !ok {
		s.log.Debug().Err(&errors.CommandError{Command: name, Err: errors.ErrUnknownCommand}).Msg("command rejected")
		fmt.Fprintln(s.out, "Unknown input! Type 'help' to view the list of available commands!")
		fmt.Fprintln(s.out)
		return false, nil
	}

	res, err := cmd.run(ctx, s, args)
	if err != nil {
		msg, handled := userMessage(err)
		if !handled {
			return false, err
		}
		ev := s.log.Debug()
		if !expected(err) {
			ev = s.log.Warn()
		}
		ev.Err(err).Msg("command rejected")
		res.message = msg
	}

	if res.exit {
		fmt.Fprintln(s.out, res.message)
		return true, nil
	}

	if s.outcome == engine.Ongoing && (res.think || s.computerToMove()) {
		if res.moved {
			fmt.Fprintln(s.out, res.message)
		}
		m, err := s.computerMove()
		if err != nil {
			return false, err
		}
		res.message = fmt.Sprintf("Played %s\n", engine.MoveText(m))
		res.moved = true
	}

	if res.moved && s.outcome != engine.Ongoing {
		fmt.Fprintln(s.out, res.message)
		fmt.Fprintln(s.out, output.OutcomeMessage(s.outcome, s.game.SideToMove()))
		s.log.Info().
			Str("outcome", s.outcome.String()).
			Bool("draw", s.outcome.IsDraw()).
			Int("ply", s.game.Ply()).
			Msg("game over")
		return true, nil
	}

	fmt.Fprintln(s.out, res.message)
	return false, nil
}

// computerToMove reports whether the engine should answer for the side to move.
func (s *Session) computerToMove() bool {
	return s.mode == config.ModeComputer && s.game.SideToMove() != s.userSide
}

// computerMove plays a uniformly random legal move.
func (s *Session) computerMove() (engine.Move, error) {
	moves := s.game.LegalMoves()
	if len(moves) == 0 {
		return nil, &errors.PositionError{
			Err:   errors.ErrIllegalMove,
			Side:  s.game.SideToMove().String(),
			Ply:   s.game.Ply(),
			Phase: "computer move",
		}
	}
	m := moves[s.rng.Intn(len(moves))]
	if err := s.play(m); err != nil {
		return nil, err
	}
	s.printBoard()
	return m, nil
}

// play makes a legal move and reclassifies the position.
func (s *Session) play(m engine.Move) error {
	s.game.Make(m)
	s.played = append(s.played, m)
	s.log.Debug().
		Str("move", engine.MoveText(m)).
		Bool("capture", engine.IsCapture(m)).
		Int("ply", s.game.Ply()).
		Msg("move played")
	return s.classify()
}

func (s *Session) classify() error {
	outcome, err := s.game.Classify()
	if err != nil {
		return err
	}
	s.outcome = outcome
	return nil
}

// reset replaces the game with a fresh one at the initial position.
func (s *Session) reset() {
	s.game = engine.NewGame()
	s.played = s.played[:0]
	s.outcome = engine.Ongoing
}

func (s *Session) printBoard() {
	output.WriteBoard(s.out, s.game)
	if s.cfg.Output.ShowFEN {
		output.WriteFEN(s.out, s.game)
	}
}

// expected reports whether err is a routine rejection of player input
// rather than a failure of the journal or the position.
func expected(err error) bool {
	for _, target := range []error{
		errGameOver, errNoJournal, errBadDepth,
		errors.ErrIllegalMove, errors.ErrInvalidConfig,
		errors.ErrGameNotFound, errors.ErrNothingToUndo,
	} {
		if stderrors.Is(err, target) {
			return true
		}
	}
	return false
}

// userMessage maps errors a player can cause to console replies.
func userMessage(err error) (string, bool) {
	var cmdErr *errors.CommandError
	if !stderrors.As(err, &cmdErr) {
		return "", false
	}
	switch {
	case stderrors.Is(err, errGameOver):
		return "The game is over! Type 'undo', 'new' or 'load <name>' to continue.\n", true
	case stderrors.Is(err, errNoJournal):
		return "Saving is disabled! Start with a journal directory to save games.\n", true
	case stderrors.Is(err, errors.ErrGameNotFound):
		return fmt.Sprintf("No saved game named %s!\n", cmdErr.Arg), true
	case stderrors.Is(err, errors.ErrNothingToUndo):
		return "No move to take back!\n", true
	}
	switch cmdErr.Command {
	case "move":
		return "Invalid move entered! Please enter a valid move!\n", true
	case "mode":
		return "Invalid mode! Existing mode not changed!\n", true
	case "side":
		return "Invalid side! Existing user player side not changed!\n", true
	case "perft":
		return "Invalid depth! Enter 'perft <depth>' with a depth of at least 1.\n", true
	}
	return fmt.Sprintf("Could not %s: %v\n", cmdErr.Command, cmdErr.Err), true
}
