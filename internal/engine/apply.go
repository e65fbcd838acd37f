package engine

import (
	"fmt"

	"github.com/lgbarn/thoth-go/internal/chess"
	"github.com/lgbarn/thoth-go/internal/hashing"
)

// Make applies a move produced by the generator for the current position.
// Every Make must be paired with an Undo of the same move, in LIFO order.
// Passing a move that was not generated for this position corrupts the state.
func (g *GameState) Make(m Move) {
	us := g.toMove
	them := us.Opposite()

	g.history = append(g.history, undoRecord{
		castling:  g.castling,
		enPassant: g.enPassant,
		kings:     g.kings,
		hash:      g.hash,
	})
	oldRights := g.castling
	g.enPassant = chess.NoSquare
	irreversible := false

	switch mv := m.(type) {
	case NormalMove:
		piece := g.board.At(mv.From)
		switch piece.Kind() {
		case chess.King:
			g.castling.ClearColour(us)
			g.kings[us] = mv.To
		case chess.Rook:
			g.updateCastlingRightsForRook(us, mv.From)
		case chess.Pawn:
			irreversible = true
			if abs(int(mv.To.Row)-int(mv.From.Row)) == 2 {
				g.enPassant, _ = mv.From.Offset(us.Forward(), 0)
			}
		}
		if mv.Captured != chess.Empty {
			irreversible = true
			if mv.Captured.Kind() == chess.Rook {
				g.updateCastlingRightsForRook(them, mv.To)
			}
		}
		g.put(mv.From, chess.Empty)
		g.put(mv.To, piece)

	case PromotionMove:
		irreversible = true
		if mv.Captured.Kind() == chess.Rook {
			g.updateCastlingRightsForRook(them, mv.To)
		}
		g.put(mv.From, chess.Empty)
		g.put(mv.To, mv.Promoted)

	case CastleMove:
		g.castling.ClearColour(us)
		g.applyCastle(mv.Side)

	case EnPassantMove:
		irreversible = true
		pawn := g.board.At(mv.From)
		g.put(mv.From, chess.Empty)
		g.put(mv.CapturedSquare, chess.Empty)
		g.put(mv.To, pawn)

	default:
		panic(fmt.Sprintf("engine: cannot make move of type %T", m))
	}

	clock := 0
	if !irreversible {
		clock = g.HalfMoveClock() + 1
	}
	g.fifty = append(g.fifty, clock)

	g.hash ^= hashing.CastlingRightsKey(oldRights) ^ hashing.CastlingRightsKey(g.castling)
	g.hash ^= hashing.SideKey()
	g.toMove = them
	g.signatures = append(g.signatures, g.signature())
}

// Undo reverts the most recent Make, which must have been given m.
// The state afterwards is identical to the state before that Make.
func (g *GameState) Undo(m Move) {
	n := len(g.history)
	if n == 0 {
		panic("engine: Undo without a matching Make")
	}
	rec := g.history[n-1]
	g.history = g.history[:n-1]
	g.fifty = g.fifty[:len(g.fifty)-1]
	g.signatures = g.signatures[:len(g.signatures)-1]

	g.toMove = g.toMove.Opposite()
	us := g.toMove
	them := us.Opposite()
	g.castling = rec.castling
	g.enPassant = rec.enPassant
	g.kings = rec.kings
	g.hash = rec.hash

	switch mv := m.(type) {
	case NormalMove:
		piece := g.board.At(mv.To)
		g.board.Set(mv.From, piece)
		g.board.Set(mv.To, mv.Captured)

	case PromotionMove:
		g.board.Set(mv.From, chess.MakePiece(us, chess.Pawn))
		g.board.Set(mv.To, mv.Captured)

	case CastleMove:
		g.unapplyCastle(mv.Side)

	case EnPassantMove:
		pawn := g.board.At(mv.To)
		g.board.Clear(mv.To)
		g.board.Set(mv.From, pawn)
		g.board.Set(mv.CapturedSquare, chess.MakePiece(them, chess.Pawn))

	default:
		panic(fmt.Sprintf("engine: cannot undo move of type %T", m))
	}
}

// put places a piece on a square and keeps the incremental hash in step.
func (g *GameState) put(sq chess.Square, piece chess.Piece) {
	g.hash ^= hashing.PieceKey(g.board.At(sq), sq) ^ hashing.PieceKey(piece, sq)
	g.board.Set(sq, piece)
}
