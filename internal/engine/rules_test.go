package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/thoth-go/internal/chess"
	"github.com/lgbarn/thoth-go/internal/errors"
	"github.com/lgbarn/thoth-go/internal/testutil"
)

// TestHasInsufficientMaterial tests various material configurations
func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool // true = insufficient material
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K vs K+n", "4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K+B same colour", "4kb2/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"K+B+B same colour vs K", "4k3/8/8/8/8/8/8/B1B1K3 w - - 0 1", true},
		{"K+B vs K+B opposite colour", "4kb2/8/8/8/8/8/8/3BK3 w - - 0 1", false},
		{"K+N vs K+N", "4kn2/8/8/8/8/8/8/4KN2 w - - 0 1", false},
		{"K+N vs K+B", "4kb2/8/8/8/8/8/8/4KN2 w - - 0 1", false},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"standard starting position", testutil.StartFEN, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := testutil.MustParseFEN(t, tt.fen)
			if got := HasInsufficientMaterial(&pos.Board); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want Outcome
	}{
		{"initial", testutil.StartFEN, Ongoing},
		{"back rank mate", "6k1/5ppp/8/8/8/8/8/3R2K1 b - - 0 1", Ongoing},
		{"mated", "3R2k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", Checkmate},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Stalemate},
		{"check but escapable", "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1", Ongoing},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", DrawInsufficientMaterial},
		{"fifty moves", "4k3/8/8/8/8/8/8/R3K3 w - - 100 80", DrawFiftyMove},
		{"ninety-nine half-moves", "4k3/8/8/8/8/8/8/R3K3 w - - 99 80", Ongoing},
		{"mate beats fifty-move rule", "3R2k1/5ppp/8/8/8/8/8/6K1 b - - 100 80", Checkmate},
		{"stalemate beats insufficient material", "k7/2K5/1B6/8/8/8/8/8 b - - 0 1", Stalemate},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := newState(t, tt.fen)
			got, err := g.Classify()
			testutil.AssertNoError(t, err)
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify_FoolsMate(t *testing.T) {
	g := NewGame()
	play(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	got, err := g.Classify()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, Checkmate)
	testutil.AssertTrue(t, g.InCheck())
	testutil.AssertEqual(t, len(g.LegalMoves()), 0)
}

func TestClassify_Stalemate(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"queen and king", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"},
		{"bishop and king", "k7/2K5/1B6/8/8/8/8/8 b - - 0 1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := newState(t, tt.fen)
			got, err := g.Classify()
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, Stalemate)
			testutil.AssertFalse(t, g.InCheck(), "stalemated side is not in check")
			testutil.AssertEqual(t, len(g.LegalMoves()), 0)
		})
	}
}

func TestClassify_ThreefoldRepetition(t *testing.T) {
	g := NewGame()
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}

	play(t, g, shuffle...)
	testutil.AssertEqual(t, g.RepetitionCount(), 2)
	got, _ := g.Classify()
	testutil.AssertEqual(t, got, Ongoing)

	play(t, g, shuffle...)
	testutil.AssertEqual(t, g.RepetitionCount(), 3)
	got, _ = g.Classify()
	testutil.AssertEqual(t, got, DrawThreefoldRepetition)

	// Undo takes the third occurrence back.
	g.Undo(NormalMove{From: mustSquare(t, "f6"), To: mustSquare(t, "g8")})
	got, _ = g.Classify()
	testutil.AssertEqual(t, got, Ongoing)
}

func TestRepetition_EnPassantRight(t *testing.T) {
	// After d7d5 White could capture en passant; the same placement later
	// without that capture is a different position.
	g := newState(t, "4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1")
	play(t, g, "d7d5")
	first := g.Signature()
	play(t, g, "e1e2", "e8e7", "e2e1", "e7e8")
	testutil.AssertTrue(t, g.Signature() != first)
	testutil.AssertEqual(t, g.RepetitionCount(), 1)
}

func TestRepetition_UnusableEnPassantIgnored(t *testing.T) {
	// No white pawn can capture after e7e5, so the target does not matter.
	g := newState(t, "4k3/4p3/8/8/8/8/8/R3K3 b - - 0 1")
	play(t, g, "e7e5")
	first := g.Signature()
	play(t, g, "e1e2", "e8e7", "e2e1", "e7e8")
	testutil.AssertEqual(t, g.Signature(), first)
	testutil.AssertEqual(t, g.RepetitionCount(), 2)
}

func TestClassify_KingMissing(t *testing.T) {
	g := newState(t, "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1")
	// Force the king off the board with a move the generator never produces.
	g.toMove = chess.White
	g.Make(NormalMove{From: mustSquare(t, "e1"), To: mustSquare(t, "e8"), Captured: chess.B(chess.King)})

	_, err := g.Classify()
	testutil.AssertErrorIs(t, err, errors.ErrKingNotFound)
	var posErr *errors.PositionError
	if !stderrors.As(err, &posErr) {
		t.Fatalf("Classify() error %v is not a PositionError", err)
	}
	testutil.AssertEqual(t, posErr.Side, "Black")
}

func TestOutcome_String(t *testing.T) {
	testutil.AssertEqual(t, Checkmate.String(), "Checkmate")
	testutil.AssertEqual(t, DrawFiftyMove.String(), "Draw by fifty-move rule")
	testutil.AssertTrue(t, Stalemate.IsDraw())
	testutil.AssertFalse(t, Checkmate.IsDraw())
	testutil.AssertFalse(t, Ongoing.IsDraw())
}
