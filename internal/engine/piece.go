package engine

import "github.com/lgbarn/thoth-go/internal/chess"

// pieceMoves appends the pseudo-legal moves of the non-pawn piece on from.
func pieceMoves(moves []Move, board *chess.Board, from chess.Square, piece chess.Piece) []Move {
	us := piece.Colour()
	switch piece.Kind() {
	case chess.Knight:
		moves = stepMoves(moves, board, from, knightOffsets[:], us)
	case chess.King:
		moves = stepMoves(moves, board, from, kingOffsets[:], us)
	default:
		if piece.IsDiagonalAttacker() {
			for _, d := range diagonalDirections {
				moves = slide(moves, board, from, d, us)
			}
		}
		if piece.IsStraightAttacker() {
			for _, d := range straightDirections {
				moves = slide(moves, board, from, d, us)
			}
		}
	}
	return moves
}

// stepMoves appends single-step moves to each offset that is on the board
// and not occupied by a friendly piece.
func stepMoves(moves []Move, board *chess.Board, from chess.Square, offsets [][2]int, us chess.Colour) []Move {
	for _, d := range offsets {
		to, ok := from.Offset(d[0], d[1])
		if !ok {
			continue
		}
		target := board.At(to)
		switch {
		case target == chess.Empty:
			moves = append(moves, NormalMove{From: from, To: to})
		case target.Belongs(us.Opposite()):
			moves = append(moves, NormalMove{From: from, To: to, Captured: target})
		}
	}
	return moves
}
