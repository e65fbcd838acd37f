package engine

import "github.com/lgbarn/thoth-go/internal/chess"

// pawnMoves appends the pseudo-legal moves of the pawn on from: single and
// double advances, diagonal captures, en passant and promotions.
func (g *GameState) pawnMoves(moves []Move, from chess.Square, us chess.Colour) []Move {
	board := &g.board
	fwd := us.Forward()

	if one, ok := from.Offset(fwd, 0); ok && board.At(one) == chess.Empty {
		moves = addPawnMove(moves, from, one, chess.Empty, us)
		if int(from.Row) == chess.PawnStartRow(us) {
			if two, ok := one.Offset(fwd, 0); ok && board.At(two) == chess.Empty {
				moves = append(moves, NormalMove{From: from, To: two})
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to, ok := from.Offset(fwd, dc)
		if !ok {
			continue
		}
		target := board.At(to)
		switch {
		case target.Belongs(us.Opposite()):
			moves = addPawnMove(moves, from, to, target, us)
		case target == chess.Empty && to == g.enPassant:
			victim, _ := to.Offset(-fwd, 0)
			moves = append(moves, EnPassantMove{From: from, To: to, CapturedSquare: victim})
		}
	}
	return moves
}

// addPawnMove appends a pawn move, expanded into one move per promotion
// piece when it reaches the last rank.
func addPawnMove(moves []Move, from, to chess.Square, captured chess.Piece, us chess.Colour) []Move {
	if int(to.Row) != chess.PromotionRow(us) {
		return append(moves, NormalMove{From: from, To: to, Captured: captured})
	}
	for _, kind := range chess.PromotionKinds {
		moves = append(moves, PromotionMove{
			From:     from,
			To:       to,
			Captured: captured,
			Promoted: chess.MakePiece(us, kind),
		})
	}
	return moves
}
