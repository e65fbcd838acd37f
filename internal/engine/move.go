package engine

import (
	"strings"

	"github.com/lgbarn/thoth-go/internal/chess"
)

// Move is one of NormalMove, PromotionMove, CastleMove or EnPassantMove.
// Moves are immutable values built by the generator; each carries what Undo
// needs except the castling, en passant and counter snapshots, which the
// GameState keeps itself.
type Move interface {
	// String returns the move text, e.g. "e2e4", "e7e8q" or "0-0".
	String() string
	isMove()
}

// NormalMove is a quiet move or an ordinary capture.
type NormalMove struct {
	From     chess.Square
	To       chess.Square
	Captured chess.Piece // Empty if not a capture
}

// PromotionMove is a pawn move onto the last rank.
type PromotionMove struct {
	From     chess.Square
	To       chess.Square
	Captured chess.Piece // Empty if not a capture
	Promoted chess.Piece // Coloured piece placed on To
}

// CastleMove moves king and rook together.
type CastleMove struct {
	Side chess.CastleSide
}

// EnPassantMove is a pawn capture of a pawn that has just advanced two
// squares. CapturedSquare is the square behind To, where the victim stands.
type EnPassantMove struct {
	From           chess.Square
	To             chess.Square
	CapturedSquare chess.Square
}

func (NormalMove) isMove()    {}
func (PromotionMove) isMove() {}
func (CastleMove) isMove()    {}
func (EnPassantMove) isMove() {}

// String returns origin and destination, e.g. "g1f3".
func (m NormalMove) String() string {
	return m.From.String() + m.To.String()
}

// String returns origin, destination and the promoted piece, e.g. "e7e8q".
func (m PromotionMove) String() string {
	return m.From.String() + m.To.String() + strings.ToLower(string(m.Promoted.Kind().Letter()))
}

// String returns "0-0" or "0-0-0".
func (m CastleMove) String() string {
	return m.Side.String()
}

// String returns origin and destination, e.g. "e5d6".
func (m EnPassantMove) String() string {
	return m.From.String() + m.To.String()
}

// MoveText renders a move for the console.
func MoveText(m Move) string {
	if m == nil {
		return ""
	}
	return m.String()
}

// IsCapture returns true if the move removes an opponent piece.
func IsCapture(m Move) bool {
	switch mv := m.(type) {
	case NormalMove:
		return mv.Captured != chess.Empty
	case PromotionMove:
		return mv.Captured != chess.Empty
	case EnPassantMove:
		return true
	default:
		return false
	}
}

// UCI renders the move in coordinate notation with castles as king moves,
// e.g. "e1g1". Other engines and libraries use this form.
func UCI(m Move) string {
	if c, ok := m.(CastleMove); ok {
		geo := castleGeometries[c.Side]
		return geo.king.String() + geo.kingTo.String()
	}
	return MoveText(m)
}

// ParseMove finds the legal move whose text matches. A promotion written
// without a piece letter, e.g. "e7e8", selects the queen.
func ParseMove(g *GameState, text string) (Move, bool) {
	text = strings.TrimSpace(text)
	legal := g.LegalMoves()
	for _, m := range legal {
		if m.String() == text {
			return m, true
		}
	}
	for _, m := range legal {
		p, ok := m.(PromotionMove)
		if ok && p.Promoted.Kind() == chess.Queen && p.From.String()+p.To.String() == text {
			return m, true
		}
	}
	return nil, false
}
