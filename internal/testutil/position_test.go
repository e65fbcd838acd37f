package testutil

import (
	"testing"

	"github.com/lgbarn/thoth-go/internal/chess"
)

func TestParseFEN_Start(t *testing.T) {
	pos := MustParseFEN(t, StartFEN)

	AssertEqual(t, pos.Board, chess.InitialBoard())
	AssertEqual(t, pos.ToMove, chess.White)
	AssertEqual(t, pos.Castling, chess.AllCastlingRights())
	AssertEqual(t, pos.EnPassant, chess.NoSquare)
	AssertEqual(t, pos.HalfMoves, 0)
}

func TestParseFEN_Fields(t *testing.T) {
	pos := MustParseFEN(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 7 40")

	AssertEqual(t, pos.EnPassant.String(), "d6")
	AssertEqual(t, pos.HalfMoves, 7)
	AssertEqual(t, pos.Castling.String(), "-")
	AssertEqual(t, pos.Board.At(chess.Sq(3, 3)), chess.B(chess.Pawn))
	AssertEqual(t, pos.Board.At(chess.Sq(3, 4)), chess.W(chess.Pawn))
}

func TestParseFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"too few fields", "8/8/8/8/8/8/8/8 w"},
		{"seven ranks", "8/8/8/8/8/8/8 w - -"},
		{"long rank", "9/8/8/8/8/8/8/8 w - -"},
		{"bad piece", "x7/8/8/8/8/8/8/8 w - -"},
		{"bad side", "8/8/8/8/8/8/8/8 x - -"},
		{"bad castling", "8/8/8/8/8/8/8/8 w X -"},
		{"bad en passant", "8/8/8/8/8/8/8/8 w - z9"},
		{"bad clock", "8/8/8/8/8/8/8/8 w - - x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFEN(tt.fen)
			AssertError(t, err)
		})
	}
}

func TestBoardFromDiagram(t *testing.T) {
	b := BoardFromDiagram(t,
		"rnbqkbnr",
		"pppppppp",
		"........",
		"........",
		"........",
		"........",
		"PPPPPPPP",
		"RNBQKBNR",
	)
	AssertEqual(t, b, chess.InitialBoard())
}
