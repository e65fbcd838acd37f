package engine

import (
	"fmt"

	"github.com/lgbarn/thoth-go/internal/chess"
	"github.com/lgbarn/thoth-go/internal/errors"
	"github.com/lgbarn/thoth-go/internal/hashing"
)

// Setup is the explicit starting configuration of a GameState.
type Setup struct {
	Board     chess.Board
	ToMove    chess.Colour
	Castling  chess.CastlingRights
	EnPassant chess.Square // Square passed over by a two-square advance, or chess.NoSquare
	HalfMoves int          // Half-moves since the last pawn move or capture
}

// StandardSetup returns the standard initial position.
func StandardSetup() Setup {
	return Setup{
		Board:     chess.InitialBoard(),
		ToMove:    chess.White,
		Castling:  chess.AllCastlingRights(),
		EnPassant: chess.NoSquare,
	}
}

// undoRecord is what Make saves so Undo can restore the prior state exactly.
type undoRecord struct {
	castling  chess.CastlingRights
	enPassant chess.Square
	kings     [2]chess.Square
	hash      uint64
}

// GameState owns the board and every piece of state needed for move
// generation and exact undo. It is mutated only by Make and Undo and is not
// safe for concurrent use; use Clone to obtain an independent copy.
type GameState struct {
	board     chess.Board
	toMove    chess.Colour
	castling  chess.CastlingRights
	enPassant chess.Square

	// Keep track of where the two kings are for check detection,
	// indexed by colour.
	kings [2]chess.Square

	// One entry per position: the half-move clock after each ply.
	fifty []int

	// Prior castling/en passant snapshots, one per ply played.
	history []undoRecord

	// Zobrist key of placement, side and castling rights.
	hash uint64

	// Position signatures, one per position, for repetition detection.
	signatures []uint64

	// 1 when the setup had Black to move, for full-move numbering.
	startPly int
}

// NewGame returns a GameState at the standard initial position.
func NewGame() *GameState {
	g, err := NewGameState(StandardSetup())
	if err != nil {
		panic(fmt.Sprintf("engine: standard setup rejected: %v", err))
	}
	return g
}

// NewGameState builds a GameState from an explicit setup after validating it.
func NewGameState(s Setup) (*GameState, error) {
	if err := ValidateSetup(s); err != nil {
		return nil, err
	}

	g := &GameState{
		board:     s.Board,
		toMove:    s.ToMove,
		castling:  s.Castling,
		enPassant: s.EnPassant,
		fifty:     []int{s.HalfMoves},
	}
	if s.ToMove == chess.Black {
		g.startPly = 1
	}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		g.kings[c], _ = g.board.FindKing(c)
	}
	g.hash = hashing.PositionKey(&g.board, g.toMove, g.castling)
	g.signatures = []uint64{g.signature()}
	return g, nil
}

// ValidateSetup checks the board invariants a GameState relies on.
func ValidateSetup(s Setup) error {
	b := &s.Board
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if n := b.Count(chess.MakePiece(c, chess.King)); n != 1 {
			return fmt.Errorf("%s has %d kings: %w", c, n, errors.ErrInvalidSetup)
		}
	}

	for col := 0; col < chess.BoardSize; col++ {
		for _, row := range []int{0, chess.BoardSize - 1} {
			if b.Get(row, col).Kind() == chess.Pawn {
				return fmt.Errorf("pawn on back rank %s: %w",
					chess.Sq(row, col), errors.ErrInvalidSetup)
			}
		}
	}

	for side := chess.CastleSide(0); side < chess.NumCastleSides; side++ {
		if !s.Castling.Has(side) {
			continue
		}
		geo := castleGeometries[side]
		colour := side.Colour()
		if b.At(geo.king) != chess.MakePiece(colour, chess.King) ||
			b.At(geo.rook) != chess.MakePiece(colour, chess.Rook) {
			return fmt.Errorf("castling right %s without king and rook at home: %w",
				castlingLetter(side), errors.ErrInvalidSetup)
		}
	}

	if s.EnPassant != chess.NoSquare {
		if err := validateEnPassant(s); err != nil {
			return err
		}
	}

	if s.HalfMoves < 0 {
		return fmt.Errorf("negative half-move clock %d: %w", s.HalfMoves, errors.ErrInvalidSetup)
	}

	// The side that just moved must not have left its king attacked.
	them := s.ToMove.Opposite()
	if king, ok := b.FindKing(them); ok && IsAttacked(b, king, s.ToMove) {
		return fmt.Errorf("%s king can be captured: %w", them, errors.ErrInvalidSetup)
	}
	return nil
}

// validateEnPassant checks that a two-square advance really could have
// produced the en passant target.
func validateEnPassant(s Setup) error {
	target := s.EnPassant
	if !target.Valid() {
		return fmt.Errorf("en passant target off board: %w", errors.ErrInvalidSquare)
	}
	mover := s.ToMove.Opposite()
	// The target lies between the mover's start row and the row it landed on.
	wantRow := chess.PawnStartRow(mover) + mover.Forward()
	if int(target.Row) != wantRow {
		return fmt.Errorf("en passant target %s on wrong rank: %w", target, errors.ErrInvalidSetup)
	}
	landed, _ := target.Offset(mover.Forward(), 0)
	origin, _ := target.Offset(-mover.Forward(), 0)
	if s.Board.At(target) != chess.Empty ||
		s.Board.At(origin) != chess.Empty ||
		s.Board.At(landed) != chess.MakePiece(mover, chess.Pawn) {
		return fmt.Errorf("no two-square advance through %s: %w", target, errors.ErrInvalidSetup)
	}
	return nil
}

// Clone returns an independent deep copy, e.g. for analysis on another goroutine.
func (g *GameState) Clone() *GameState {
	c := *g
	c.fifty = append([]int(nil), g.fifty...)
	c.history = append([]undoRecord(nil), g.history...)
	c.signatures = append([]uint64(nil), g.signatures...)
	return &c
}

// Board returns a copy of the current placement.
func (g *GameState) Board() chess.Board {
	return g.board
}

// PieceAt returns the piece on a square, or chess.Off for an invalid square.
func (g *GameState) PieceAt(sq chess.Square) chess.Piece {
	return g.board.At(sq)
}

// SideToMove returns the colour whose turn it is.
func (g *GameState) SideToMove() chess.Colour {
	return g.toMove
}

// CastlingRights returns the rights still held.
func (g *GameState) CastlingRights() chess.CastlingRights {
	return g.castling
}

// EnPassantTarget returns the square a pawn may capture onto en passant,
// or chess.NoSquare when no such capture is possible this ply.
func (g *GameState) EnPassantTarget() chess.Square {
	return g.enPassant
}

// HalfMoveClock returns half-moves since the last pawn move or capture.
func (g *GameState) HalfMoveClock() int {
	return g.fifty[len(g.fifty)-1]
}

// Ply returns the number of moves made since the setup.
func (g *GameState) Ply() int {
	return len(g.history)
}

// KingSquare returns the tracked square of the colour's king.
func (g *GameState) KingSquare(c chess.Colour) chess.Square {
	return g.kings[c]
}

// Signature returns the position signature used for repetition detection.
func (g *GameState) Signature() uint64 {
	return g.signatures[len(g.signatures)-1]
}

// signature combines the incremental key with the en passant file when a
// capture onto the target is available to the side to move.
func (g *GameState) signature() uint64 {
	return g.hash ^ g.enPassantKey()
}

func (g *GameState) enPassantKey() uint64 {
	if !g.enPassant.Valid() {
		return 0
	}
	us := g.toMove
	victim, ok := g.enPassant.Offset(-us.Forward(), 0)
	if !ok {
		return 0
	}
	pawn := chess.MakePiece(us, chess.Pawn)
	for _, dc := range [2]int{-1, 1} {
		if sq, ok := victim.Offset(0, dc); ok && g.board.At(sq) == pawn {
			return hashing.EnPassantKey(int(g.enPassant.Col))
		}
	}
	return 0
}

// StateSnapshot captures all observable state for comparison.
type StateSnapshot struct {
	Board      chess.Board
	ToMove     chess.Colour
	Castling   chess.CastlingRights
	EnPassant  chess.Square
	Kings      [2]chess.Square
	FiftyMove  []int
	Signatures []uint64
	Hash       uint64
	Ply        int
}

// SaveState captures the current state. The snapshot shares no memory
// with the GameState.
func (g *GameState) SaveState() StateSnapshot {
	return StateSnapshot{
		Board:      g.board,
		ToMove:     g.toMove,
		Castling:   g.castling,
		EnPassant:  g.enPassant,
		Kings:      g.kings,
		FiftyMove:  append([]int(nil), g.fifty...),
		Signatures: append([]uint64(nil), g.signatures...),
		Hash:       g.hash,
		Ply:        len(g.history),
	}
}

func castlingLetter(side chess.CastleSide) string {
	return string("KQkq"[side])
}
