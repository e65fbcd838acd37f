package engine

import "github.com/lgbarn/thoth-go/internal/chess"

// PseudoLegalMoves returns every move for the side to move that obeys piece
// movement rules, ignoring whether the mover's own king is left attacked.
// Castles are listed first, then moves square by square from a8 to h1.
func (g *GameState) PseudoLegalMoves() []Move {
	us := g.toMove
	moves := make([]Move, 0, 48)
	moves = g.castleMoves(moves, us)

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := g.board.Squares[row][col]
			if !piece.Belongs(us) {
				continue
			}
			from := chess.Sq(row, col)
			if piece.Kind() == chess.Pawn {
				moves = g.pawnMoves(moves, from, us)
			} else {
				moves = pieceMoves(moves, &g.board, from, piece)
			}
		}
	}
	return moves
}

// LegalMoves returns the moves that do not leave the mover's king attacked.
// The state is unchanged on return.
func (g *GameState) LegalMoves() []Move {
	pseudo := g.PseudoLegalMoves()
	legal := pseudo[:0]
	for _, m := range pseudo {
		if g.tryMove(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (g *GameState) HasLegalMoves() bool {
	for _, m := range g.PseudoLegalMoves() {
		if g.tryMove(m) {
			return true
		}
	}
	return false
}

// IsLegal returns true if m is among the legal moves of the position.
func (g *GameState) IsLegal(m Move) bool {
	for _, legal := range g.LegalMoves() {
		if legal == m {
			return true
		}
	}
	return false
}

// tryMove makes m, checks whether the mover's king is attacked, and undoes it.
func (g *GameState) tryMove(m Move) bool {
	us := g.toMove
	g.Make(m)
	safe := !IsAttacked(&g.board, g.kings[us], us.Opposite())
	g.Undo(m)
	return safe
}
