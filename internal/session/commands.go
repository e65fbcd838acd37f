package session

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/thoth-go/internal/config"
	"github.com/lgbarn/thoth-go/internal/engine"
	"github.com/lgbarn/thoth-go/internal/errors"
	"github.com/lgbarn/thoth-go/internal/output"
	"github.com/lgbarn/thoth-go/internal/perft"
	"github.com/lgbarn/thoth-go/internal/storage"
)

const helpText = `List of available commands: 

help: Display this help.
print: Print the board.
think: Make the computer think for you, i.e. play the current move regardless of user/computer side.
       Also works for a 2 player game. Can be used for hints.
exit: End the game.
mode: Enter 'mode f' for 2 player mode and 'mode c' to play against the computer.
      Can be switched during play.
side: Enter 'side w' to 'side b' for white/black respectively.
      Can be switched during play.
move: Enter move <actual_move> to play the move. Eg. move e2e4/move 0-0
undo: Take back the last move (and the computer's reply).
moves: List the legal moves.
fen: Print the position in FEN.
perft: Enter perft <depth> to count the move tree below the position.
new: Start a new game.
save/load/delete: Enter save <name>, load <name> or delete <name> to manage saved games.
games: List the saved games. export [name] prints them as JSON.`

var (
	errGameOver  = stderrors.New("game is over")
	errNoJournal = stderrors.New("no journal open")
	errBadDepth  = stderrors.New("depth must be a positive integer")
)

// result tells Execute what a command did.
type result struct {
	message string
	moved   bool // A move was played
	think   bool // The computer should move for the side to play
	exit    bool
}

type command struct {
	name    string
	aliases []string
	run     func(ctx context.Context, s *Session, args []string) (result, error)
}

var commands = []command{
	{name: "help", run: cmdHelp},
	{name: "print", run: cmdPrint},
	{name: "think", run: cmdThink},
	{name: "exit", aliases: []string{"quit"}, run: cmdExit},
	{name: "mode", run: cmdMode},
	{name: "side", run: cmdSide},
	{name: "move", run: cmdMove},
	{name: "undo", run: cmdUndo},
	{name: "moves", run: cmdMoves},
	{name: "fen", run: cmdFEN},
	{name: "perft", run: cmdPerft},
	{name: "new", run: cmdNew},
	{name: "save", run: cmdSave},
	{name: "load", run: cmdLoad},
	{name: "delete", run: cmdDelete},
	{name: "games", run: cmdGames},
	{name: "export", run: cmdExport},
}

func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
		for _, alias := range c.aliases {
			if alias == name {
				return c, true
			}
		}
	}
	return command{}, false
}

// firstArg returns the first argument or "".
func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func cmdHelp(_ context.Context, _ *Session, _ []string) (result, error) {
	return result{message: "\n" + helpText + "\n"}, nil
}

func cmdPrint(_ context.Context, s *Session, _ []string) (result, error) {
	s.printBoard()
	return result{}, nil
}

func cmdThink(_ context.Context, s *Session, _ []string) (result, error) {
	if s.outcome != engine.Ongoing {
		return result{}, &errors.CommandError{Command: "think", Err: errGameOver}
	}
	return result{think: true}, nil
}

func cmdExit(_ context.Context, _ *Session, _ []string) (result, error) {
	return result{message: "EXIT command received. Exiting...", exit: true}, nil
}

func cmdMode(_ context.Context, s *Session, args []string) (result, error) {
	arg := firstArg(args)
	mode, ok := config.ParseMode(arg)
	if !ok {
		return result{}, &errors.CommandError{Command: "mode", Arg: arg, Err: errors.ErrInvalidConfig}
	}
	s.mode = mode
	s.log.Debug().Stringer("mode", mode).Msg("mode changed")
	if mode == config.ModeComputer {
		return result{message: "You are playing against the computer now!\n"}, nil
	}
	return result{message: "You are in 2 player mode now!\n"}, nil
}

func cmdSide(_ context.Context, s *Session, args []string) (result, error) {
	arg := firstArg(args)
	side, ok := config.ParseSide(arg)
	if !ok {
		return result{}, &errors.CommandError{Command: "side", Arg: arg, Err: errors.ErrInvalidConfig}
	}
	s.userSide = side
	s.log.Debug().Stringer("side", side).Msg("user side changed")
	return result{message: fmt.Sprintf("You have chosen %s\n", output.SideName(side))}, nil
}

func cmdMove(_ context.Context, s *Session, args []string) (result, error) {
	text := firstArg(args)
	if s.outcome != engine.Ongoing {
		return result{}, &errors.CommandError{Command: "move", Arg: text, Err: errGameOver}
	}
	m, ok := engine.ParseMove(s.game, text)
	if !ok {
		return result{}, &errors.CommandError{Command: "move", Arg: text, Err: errors.ErrIllegalMove}
	}
	if err := s.play(m); err != nil {
		return result{}, err
	}
	s.printBoard()
	return result{message: fmt.Sprintf("Played %s\n", engine.MoveText(m)), moved: true}, nil
}

// cmdUndo takes back one ply, or two in computer mode so the user is to move.
func cmdUndo(_ context.Context, s *Session, _ []string) (result, error) {
	if len(s.played) == 0 {
		return result{}, &errors.CommandError{Command: "undo", Err: errors.ErrNothingToUndo}
	}
	taken := []string{s.undoOne()}
	if s.computerToMove() && len(s.played) > 0 {
		taken = append(taken, s.undoOne())
	}
	if err := s.classify(); err != nil {
		return result{}, err
	}
	s.printBoard()
	return result{message: fmt.Sprintf("Took back %s\n", strings.Join(taken, " "))}, nil
}

// undoOne reverts the last played move and returns its text.
func (s *Session) undoOne() string {
	last := s.played[len(s.played)-1]
	s.played = s.played[:len(s.played)-1]
	s.game.Undo(last)
	return engine.MoveText(last)
}

func cmdMoves(_ context.Context, s *Session, _ []string) (result, error) {
	moves := s.game.LegalMoves()
	fmt.Fprintf(s.out, "%d legal moves:\n", len(moves))
	output.WriteMoves(s.out, moves, moveListWidth)
	return result{}, nil
}

func cmdFEN(_ context.Context, s *Session, _ []string) (result, error) {
	output.WriteFEN(s.out, s.game)
	return result{}, nil
}

func cmdPerft(ctx context.Context, s *Session, args []string) (result, error) {
	arg := firstArg(args)
	depth, err := strconv.Atoi(arg)
	if err != nil || depth < 1 {
		return result{}, &errors.CommandError{Command: "perft", Arg: arg, Err: errBadDepth}
	}

	opts := []perft.Option{
		perft.WithWorkers(s.cfg.Perft.Workers),
		perft.WithLogger(s.log),
	}
	if s.table != nil {
		opts = append(opts, perft.WithTable(s.table))
	}
	res, err := perft.Divide(ctx, s.game, depth, opts...)
	if err != nil {
		return result{}, errors.Wrapf(err, "perft %d", depth)
	}
	if err := perft.Format(s.out, res); err != nil {
		return result{}, err
	}
	return result{}, nil
}

func cmdNew(_ context.Context, s *Session, _ []string) (result, error) {
	s.reset()
	s.printBoard()
	return result{message: "New game started\n"}, nil
}

func cmdSave(_ context.Context, s *Session, args []string) (result, error) {
	name := strings.Join(args, " ")
	if s.journal == nil {
		return result{}, &errors.CommandError{Command: "save", Arg: name, Err: errNoJournal}
	}
	rec := &storage.GameRecord{
		Name:     name,
		Moves:    s.Played(),
		Outcome:  s.outcome.String(),
		Mode:     s.mode.String(),
		UserSide: s.userSide.String(),
	}
	if err := s.journal.SaveGame(rec); err != nil {
		return result{}, &errors.CommandError{Command: "save", Arg: name, Err: err}
	}
	s.log.Info().Str("name", rec.Name).Int("plies", len(rec.Moves)).Msg("game saved")
	return result{message: fmt.Sprintf("Saved game %s\n", rec.Name)}, nil
}

func cmdLoad(_ context.Context, s *Session, args []string) (result, error) {
	name := strings.Join(args, " ")
	if s.journal == nil {
		return result{}, &errors.CommandError{Command: "load", Arg: name, Err: errNoJournal}
	}
	rec, err := s.journal.LoadGame(name)
	if err != nil {
		return result{}, &errors.CommandError{Command: "load", Arg: name, Err: err}
	}

	game, played, err := Replay(rec.Moves)
	if err != nil {
		return result{}, &errors.CommandError{Command: "load", Arg: name, Err: err}
	}
	s.game, s.played = game, played
	if mode, ok := config.ParseMode(rec.Mode); ok {
		s.mode = mode
	}
	if side, ok := config.ParseSide(strings.ToLower(rec.UserSide)); ok {
		s.userSide = side
	}
	if err := s.classify(); err != nil {
		return result{}, err
	}

	s.log.Info().Str("name", rec.Name).Int("plies", len(played)).Msg("game loaded")
	s.printBoard()
	msg := fmt.Sprintf("Loaded game %s (%d plies)\n", rec.Name, len(played))
	if s.outcome != engine.Ongoing {
		msg += output.OutcomeMessage(s.outcome, s.game.SideToMove()) + "\n"
	}
	return result{message: msg}, nil
}

// Replay plays move texts from the initial position. Every move must be
// legal where it is played.
func Replay(texts []string) (*engine.GameState, []engine.Move, error) {
	g := engine.NewGame()
	played := make([]engine.Move, 0, len(texts))
	for i, text := range texts {
		m, ok := engine.ParseMove(g, text)
		if !ok {
			return nil, nil, fmt.Errorf("ply %d %q: %w", i+1, text, errors.ErrIllegalMove)
		}
		g.Make(m)
		played = append(played, m)
	}
	return g, played, nil
}

func cmdDelete(_ context.Context, s *Session, args []string) (result, error) {
	name := strings.Join(args, " ")
	if s.journal == nil {
		return result{}, &errors.CommandError{Command: "delete", Arg: name, Err: errNoJournal}
	}
	if err := s.journal.DeleteGame(name); err != nil {
		return result{}, &errors.CommandError{Command: "delete", Arg: name, Err: err}
	}
	return result{message: fmt.Sprintf("Deleted game %s\n", name)}, nil
}

// savedGames loads every record in the journal, or just the named one.
func (s *Session) savedGames(command, name string) ([]*storage.GameRecord, error) {
	if s.journal == nil {
		return nil, &errors.CommandError{Command: command, Err: errNoJournal}
	}
	names := []string{name}
	if name == "" {
		var err error
		if names, err = s.journal.ListGames(); err != nil {
			return nil, &errors.CommandError{Command: command, Err: err}
		}
	}
	recs := make([]*storage.GameRecord, 0, len(names))
	for _, n := range names {
		rec, err := s.journal.LoadGame(n)
		if err != nil {
			return nil, &errors.CommandError{Command: command, Arg: n, Err: err}
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func cmdGames(_ context.Context, s *Session, _ []string) (result, error) {
	recs, err := s.savedGames("games", "")
	if err != nil {
		return result{}, err
	}
	if len(recs) == 0 {
		return result{message: "No saved games.\n"}, nil
	}
	return result{}, writeGames(output.NewTextWriter(s.out, moveListWidth), recs)
}

func cmdExport(_ context.Context, s *Session, args []string) (result, error) {
	name := strings.Join(args, " ")
	recs, err := s.savedGames("export", name)
	if err != nil {
		return result{}, err
	}
	var w output.GameWriter = output.NewJSONWriter(s.out)
	if name != "" {
		w = output.NewJSONWriterSingle(s.out)
	}
	return result{}, writeGames(w, recs)
}

func writeGames(w output.GameWriter, recs []*storage.GameRecord) error {
	for _, rec := range recs {
		if err := w.WriteGame(rec); err != nil {
			return err
		}
	}
	return w.Close()
}
