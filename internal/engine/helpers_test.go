package engine

import (
	"sort"
	"testing"

	"github.com/lgbarn/thoth-go/internal/testutil"
)

// newState builds a GameState from a FEN fixture.
func newState(t testing.TB, fen string) *GameState {
	t.Helper()
	pos := testutil.MustParseFEN(t, fen)
	g, err := NewGameState(Setup{
		Board:     pos.Board,
		ToMove:    pos.ToMove,
		Castling:  pos.Castling,
		EnPassant: pos.EnPassant,
		HalfMoves: pos.HalfMoves,
	})
	if err != nil {
		t.Fatalf("NewGameState(%q) error: %v", fen, err)
	}
	return g
}

// moveTexts returns the sorted text of each move.
func moveTexts(moves []Move) []string {
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	sort.Strings(texts)
	return texts
}

// uciTexts returns the sorted coordinate notation of each move.
func uciTexts(moves []Move) []string {
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = UCI(m)
	}
	sort.Strings(texts)
	return texts
}

// play makes each move given as text and fails the test if one is illegal.
func play(t testing.TB, g *GameState, texts ...string) []Move {
	t.Helper()
	made := make([]Move, 0, len(texts))
	for _, text := range texts {
		m, ok := ParseMove(g, text)
		if !ok {
			t.Fatalf("move %q is not legal in %s", text, FEN(g))
		}
		g.Make(m)
		made = append(made, m)
	}
	return made
}
