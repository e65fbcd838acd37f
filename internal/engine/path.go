package engine

import "github.com/lgbarn/thoth-go/internal/chess"

// Offsets are {dRow, dCol} pairs.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

	diagonalDirections = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirections = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// firstPieceAlong walks from sq (exclusive) in direction d and returns the
// first piece met, or chess.Off if the ray leaves the board first.
func firstPieceAlong(board *chess.Board, sq chess.Square, d [2]int) chess.Piece {
	for {
		next, ok := sq.Offset(d[0], d[1])
		if !ok {
			return chess.Off
		}
		if p := board.At(next); p != chess.Empty {
			return p
		}
		sq = next
	}
}

// slide appends the moves of a sliding piece along one direction: every
// empty square up to the first occupied one, which is included as a capture
// when it holds an opponent piece.
func slide(moves []Move, board *chess.Board, from chess.Square, d [2]int, us chess.Colour) []Move {
	to := from
	for {
		next, ok := to.Offset(d[0], d[1])
		if !ok {
			return moves
		}
		to = next
		target := board.At(to)
		if target == chess.Empty {
			moves = append(moves, NormalMove{From: from, To: to})
			continue
		}
		if target.Belongs(us.Opposite()) {
			moves = append(moves, NormalMove{From: from, To: to, Captured: target})
		}
		return moves
	}
}

// isPathClear checks that every square strictly between two squares on the
// same row is empty.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	step := sign(int(to.Col) - int(from.Col))
	for col := int(from.Col) + step; col != int(to.Col); col += step {
		if board.Get(int(from.Row), col) != chess.Empty {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
