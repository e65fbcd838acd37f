package engine

import (
	"testing"

	"github.com/lgbarn/thoth-go/internal/chess"
	"github.com/lgbarn/thoth-go/internal/testutil"
)

func TestIsAttacked(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		by     chess.Colour
		want   bool
	}{
		{"white pawn attacks diagonally forward", "4k3/8/8/8/8/3P4/8/4K3 w - - 0 1", "e4", chess.White, true},
		{"white pawn does not attack straight ahead", "4k3/8/8/8/8/3P4/8/4K3 w - - 0 1", "d4", chess.White, false},
		{"white pawn does not attack backwards", "4k3/8/8/8/8/3P4/8/4K3 w - - 0 1", "e2", chess.White, false},
		{"black pawn attacks downwards", "4k3/8/3p4/8/8/8/8/4K3 w - - 0 1", "c5", chess.Black, true},
		{"black pawn does not attack upwards", "4k3/8/3p4/8/8/8/8/4K3 w - - 0 1", "c7", chess.Black, false},
		{"knight jump", "4k3/8/8/8/3N4/8/8/4K3 w - - 0 1", "e6", chess.White, true},
		{"knight does not attack adjacent", "4k3/8/8/8/3N4/8/8/4K3 w - - 0 1", "d5", chess.White, false},
		{"knight on edge does not wrap", "4k3/8/8/7N/8/8/8/4K3 w - - 0 1", "a4", chess.White, false},
		{"king adjacent", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "d2", chess.White, true},
		{"king two away", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "e3", chess.White, false},
		{"rook along file", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a8", chess.White, true},
		{"rook blocked", "4k3/8/8/8/P7/8/8/R3K3 w - - 0 1", "a8", chess.White, false},
		{"rook does not attack diagonally", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "b2", chess.White, false},
		{"bishop along diagonal", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", "h6", chess.White, true},
		{"bishop blocked by own piece", "4k3/8/8/8/8/4P3/8/2B1K3 w - - 0 1", "h6", chess.White, false},
		{"bishop does not attack straight", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", "c8", chess.White, false},
		{"queen both ways", "4k3/8/8/8/3q4/8/8/4K3 w - - 0 1", "h8", chess.Black, true},
		{"queen file", "4k3/8/8/8/3q4/8/8/4K3 w - - 0 1", "d1", chess.Black, true},
		{"attacker colour matters", "4k3/8/8/8/3q4/8/8/4K3 w - - 0 1", "h8", chess.White, false},
		{"occupied square still attacked", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "e1", chess.White, true},
		{"rook along rank", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "d1", chess.White, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := testutil.MustParseFEN(t, tt.fen)
			sq, ok := chess.ParseSquare(tt.square)
			if !ok {
				t.Fatalf("bad square %q", tt.square)
			}
			if got := IsAttacked(&pos.Board, sq, tt.by); got != tt.want {
				t.Errorf("IsAttacked(%s, %s) = %v, want %v", tt.square, tt.by, got, tt.want)
			}
		})
	}
}

func TestIsAttacked_InvalidSquare(t *testing.T) {
	b := chess.InitialBoard()
	testutil.AssertFalse(t, IsAttacked(&b, chess.NoSquare, chess.White))
}

func TestInCheck(t *testing.T) {
	testutil.AssertFalse(t, NewGame().InCheck(), "initial position")
	g := newState(t, "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1")
	testutil.AssertTrue(t, g.InCheck(), "rook on the e-file")
}
