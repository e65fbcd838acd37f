package engine

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	notnil "github.com/notnil/chess"

	"github.com/lgbarn/thoth-go/internal/testutil"
)

// dragontoothMoves returns the sorted legal moves dragontoothmg finds for fen.
func dragontoothMoves(fen string) []string {
	board := dragontoothmg.ParseFen(fen)
	moves := board.GenerateLegalMoves()
	texts := make([]string, len(moves))
	for i := range moves {
		texts[i] = moves[i].String()
	}
	sort.Strings(texts)
	return texts
}

func dragontoothPerft(board *dragontoothmg.Board, depth int) uint64 {
	moves := board.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := board.Apply(m)
		nodes += dragontoothPerft(board, depth-1)
		unapply()
	}
	return nodes
}

// TestLegalMoves_MatchDragontooth compares the legal move set of every
// position two plies deep against an independent bitboard generator.
func TestLegalMoves_MatchDragontooth(t *testing.T) {
	for name, fen := range roundTripFENs {
		fen := fen
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			g := newState(t, fen)
			testutil.AssertEqual(t, uciTexts(g.LegalMoves()), dragontoothMoves(FEN(g)), "root")
			for _, m := range g.LegalMoves() {
				g.Make(m)
				testutil.AssertEqual(t, uciTexts(g.LegalMoves()), dragontoothMoves(FEN(g)), "after %s", m)
				g.Undo(m)
			}
		})
	}
}

func TestPerft_MatchDragontooth(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping oracle perft in short mode")
	}
	for name, fen := range roundTripFENs {
		fen := fen
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			g := newState(t, fen)
			board := dragontoothmg.ParseFen(fen)
			testutil.AssertEqual(t, Perft(g, 3), dragontoothPerft(&board, 3))
		})
	}
}

// TestRandomPlayouts_MatchNotnil plays random games and checks every
// position's legal moves and terminal state against notnil/chess.
func TestRandomPlayouts_MatchNotnil(t *testing.T) {
	const (
		games    = 40
		maxPlies = 200
	)
	rng := rand.New(rand.NewSource(20240917))

	for game := 0; game < games; game++ {
		g := NewGame()
		start := g.SaveState()
		pos := notnil.StartingPosition()
		var made []Move

		for ply := 0; ply < maxPlies; ply++ {
			outcome, err := g.Classify()
			testutil.AssertNoError(t, err)

			legal := g.LegalMoves()
			theirs := pos.ValidMoves()
			want := make([]string, len(theirs))
			for i, m := range theirs {
				want[i] = m.String()
			}
			sort.Strings(want)
			testutil.AssertEqual(t, uciTexts(legal), want, "game %d ply %d: %s", game, ply, FEN(g))

			switch outcome {
			case Checkmate:
				testutil.AssertEqual(t, pos.Status(), notnil.Checkmate, "game %d ply %d", game, ply)
			case Stalemate:
				testutil.AssertEqual(t, pos.Status(), notnil.Stalemate, "game %d ply %d", game, ply)
			}
			if outcome != Ongoing || len(legal) == 0 {
				break
			}

			m := legal[rng.Intn(len(legal))]
			var next *notnil.Move
			for _, candidate := range theirs {
				if candidate.String() == UCI(m) {
					next = candidate
					break
				}
			}
			if next == nil {
				t.Fatalf("game %d ply %d: %s has no counterpart", game, ply, UCI(m))
			}
			g.Make(m)
			pos = pos.Update(next)
			made = append(made, m)
		}

		for i := len(made) - 1; i >= 0; i-- {
			g.Undo(made[i])
		}
		testutil.AssertEqual(t, g.SaveState(), start, "game %d not restored by undo", game)
	}
}
