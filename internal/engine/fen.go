package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/thoth-go/internal/chess"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN renders the current position in Forsyth-Edwards Notation.
func FEN(g *GameState) string {
	var sb strings.Builder

	writePiecePositions(&sb, &g.board)
	sb.WriteByte(' ')
	if g.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(g.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(g.enPassant.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", g.HalfMoveClock(), g.FullMoveNumber())

	return sb.String()
}

// FullMoveNumber starts at 1 and increments after each Black move.
func (g *GameState) FullMoveNumber() int {
	return 1 + (g.startPly+len(g.history))/2
}

// writePiecePositions writes the piece placement from rank 8 down to rank 1.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(pieceLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// pieceLetter is upper case for White and lower case for Black.
func pieceLetter(piece chess.Piece) byte {
	letter := piece.Kind().Letter()
	if piece.Colour() == chess.Black {
		letter += 'a' - 'A'
	}
	return letter
}
