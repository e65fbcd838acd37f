package engine

import (
	"testing"

	"github.com/lgbarn/thoth-go/internal/chess"
	"github.com/lgbarn/thoth-go/internal/errors"
	"github.com/lgbarn/thoth-go/internal/testutil"
)

func TestNewGame(t *testing.T) {
	g := NewGame()

	testutil.AssertEqual(t, g.Board(), chess.InitialBoard())
	testutil.AssertEqual(t, g.SideToMove(), chess.White)
	testutil.AssertEqual(t, g.CastlingRights(), chess.AllCastlingRights())
	testutil.AssertEqual(t, g.EnPassantTarget(), chess.NoSquare)
	testutil.AssertEqual(t, g.HalfMoveClock(), 0)
	testutil.AssertEqual(t, g.Ply(), 0)
	testutil.AssertEqual(t, g.KingSquare(chess.White).String(), "e1")
	testutil.AssertEqual(t, g.KingSquare(chess.Black).String(), "e8")
}

func TestValidateSetup(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantErr bool
	}{
		{"standard", testutil.StartFEN, false},
		{"kiwipete", testutil.KiwipeteFEN, false},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", false},
		{"no white king", "4k3/8/8/8/8/8/8/8 w - - 0 1", true},
		{"two black kings", "3kk3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"pawn on first rank", "4k3/8/8/8/8/8/8/P3K3 w - - 0 1", true},
		{"pawn on eighth rank", "p3k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"castling without rook", "4k3/8/8/8/8/8/8/4K3 w K - 0 1", true},
		{"castling with moved king", "4k3/8/8/8/8/8/8/R2K3R w Q - 0 1", true},
		{"valid en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", false},
		{"en passant wrong rank", "4k3/8/8/3pP3/8/8/8/4K3 w - d5 0 1", true},
		{"en passant without pawn", "4k3/8/8/4P3/8/8/8/4K3 w - d6 0 1", true},
		{"side not to move in check", "4k3/8/8/8/8/8/8/4R2K w - - 0 1", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := testutil.MustParseFEN(t, tt.fen)
			err := ValidateSetup(Setup{
				Board:     pos.Board,
				ToMove:    pos.ToMove,
				Castling:  pos.Castling,
				EnPassant: pos.EnPassant,
				HalfMoves: pos.HalfMoves,
			})
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidSetup)
			} else {
				testutil.AssertNoError(t, err)
			}
		})
	}
}

func TestValidateSetup_NegativeClock(t *testing.T) {
	s := StandardSetup()
	s.HalfMoves = -1
	_, err := NewGameState(s)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidSetup)
}

func TestClone_Independent(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "e7e5")
	before := g.SaveState()

	c := g.Clone()
	play(t, c, "g1f3", "b8c6")

	testutil.AssertEqual(t, g.SaveState(), before, "original changed by clone")
	testutil.AssertEqual(t, c.Ply(), 4)
}

func TestSaveState_NoAliasing(t *testing.T) {
	g := NewGame()
	snap := g.SaveState()
	snap.FiftyMove[0] = 99
	snap.Signatures[0] = 0
	testutil.AssertEqual(t, g.HalfMoveClock(), 0)
	testutil.AssertTrue(t, g.Signature() != 0)
}
