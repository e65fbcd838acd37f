// Package engine implements the rules of chess: move generation, legality,
// make/undo and terminal-state detection over a mailbox board.
package engine

import (
	"github.com/lgbarn/thoth-go/internal/chess"
	"github.com/lgbarn/thoth-go/internal/errors"
)

// Outcome is the classification of a position.
type Outcome int

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
	DrawInsufficientMaterial
	DrawFiftyMove
	DrawThreefoldRepetition
)

// FiftyMoveLimit is the half-move clock value that ends the game.
const FiftyMoveLimit = 100

// RepetitionLimit is the number of occurrences of a position that ends the game.
const RepetitionLimit = 3

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "Ongoing"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case DrawInsufficientMaterial:
		return "Draw by insufficient material"
	case DrawFiftyMove:
		return "Draw by fifty-move rule"
	case DrawThreefoldRepetition:
		return "Draw by threefold repetition"
	default:
		return "Unknown"
	}
}

// IsDraw returns true for every drawn outcome, stalemate included.
func (o Outcome) IsDraw() bool {
	switch o {
	case Stalemate, DrawInsufficientMaterial, DrawFiftyMove, DrawThreefoldRepetition:
		return true
	}
	return false
}

// Classify reports whether the game has ended in the current position.
// Checkmate and stalemate take precedence over the draw rules. A missing
// king for the side to move is reported as an error wrapping
// errors.ErrKingNotFound.
func (g *GameState) Classify() (Outcome, error) {
	us := g.toMove
	if g.board.At(g.kings[us]) != chess.MakePiece(us, chess.King) {
		return Ongoing, &errors.PositionError{
			Err:   errors.ErrKingNotFound,
			Side:  us.String(),
			Ply:   g.Ply(),
			Phase: "classify",
		}
	}

	if !g.HasLegalMoves() {
		if g.InCheck() {
			return Checkmate, nil
		}
		return Stalemate, nil
	}

	if HasInsufficientMaterial(&g.board) {
		return DrawInsufficientMaterial, nil
	}
	if g.HalfMoveClock() >= FiftyMoveLimit {
		return DrawFiftyMove, nil
	}
	if g.RepetitionCount() >= RepetitionLimit {
		return DrawThreefoldRepetition, nil
	}
	return Ongoing, nil
}

// RepetitionCount returns how often the current position has occurred since
// the last pawn move or capture, the current occurrence included.
func (g *GameState) RepetitionCount() int {
	current := len(g.signatures) - 1
	oldest := current - g.HalfMoveClock()
	if oldest < 0 {
		oldest = 0
	}
	sig := g.signatures[current]
	count := 0
	for i := current; i >= oldest; i-- {
		if g.signatures[i] == sig {
			count++
		}
	}
	return count
}

// HasInsufficientMaterial returns true if neither side can possibly mate.
// With no pawns, rooks or queens on the board, the position is dead when
// it holds a single knight and no bishops, or no knights and only bishops
// standing on squares of one colour (bare kings included).
func HasInsufficientMaterial(board *chess.Board) bool {
	knights := 0
	lightBishops, darkBishops := 0, 0

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			switch board.Squares[row][col].Kind() {
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			case chess.Knight:
				knights++
			case chess.Bishop:
				if chess.Sq(row, col).IsLight() {
					lightBishops++
				} else {
					darkBishops++
				}
			}
		}
	}

	if knights == 1 && lightBishops+darkBishops == 0 {
		return true
	}
	return knights == 0 && (lightBishops == 0 || darkBishops == 0)
}
