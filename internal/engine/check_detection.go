package engine

import "github.com/lgbarn/thoth-go/internal/chess"

// InCheck returns true if the side to move has its king attacked.
func (g *GameState) InCheck() bool {
	us := g.toMove
	return IsAttacked(&g.board, g.kings[us], us.Opposite())
}

// IsAttacked returns true if any piece of colour by attacks sq on the board.
// Only the board is consulted; an invalid square is never attacked.
func IsAttacked(board *chess.Board, sq chess.Square, by chess.Colour) bool {
	if !sq.Valid() {
		return false
	}

	// Check pawn attacks: an attacking pawn stands one row behind the
	// square from its own point of view.
	pawn := chess.MakePiece(by, chess.Pawn)
	for _, dc := range [2]int{-1, 1} {
		if from, ok := sq.Offset(-by.Forward(), dc); ok && board.At(from) == pawn {
			return true
		}
	}

	// Check knight attacks
	knight := chess.MakePiece(by, chess.Knight)
	for _, d := range knightOffsets {
		if from, ok := sq.Offset(d[0], d[1]); ok && board.At(from) == knight {
			return true
		}
	}

	// Check king attacks
	king := chess.MakePiece(by, chess.King)
	for _, d := range kingOffsets {
		if from, ok := sq.Offset(d[0], d[1]); ok && board.At(from) == king {
			return true
		}
	}

	// Check sliding attacks (bishop, rook, queen)
	for _, d := range diagonalDirections {
		p := firstPieceAlong(board, sq, d)
		if p.Belongs(by) && p.IsDiagonalAttacker() {
			return true
		}
	}
	for _, d := range straightDirections {
		p := firstPieceAlong(board, sq, d)
		if p.Belongs(by) && p.IsStraightAttacker() {
			return true
		}
	}

	return false
}
