package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/lgbarn/thoth-go/internal/storage"
	"github.com/lgbarn/thoth-go/internal/testutil"
)

func testRecord() *storage.GameRecord {
	return &storage.GameRecord{
		Name:     "scholar",
		Moves:    []string{"e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7"},
		Outcome:  "Checkmate",
		Mode:     "friend",
		UserSide: "White",
		SavedAt:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// TestTextWriter_WriteGame verifies the text format
func TestTextWriter_WriteGame(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf, 80)

	testutil.AssertNoError(t, w.WriteGame(testRecord()))
	testutil.AssertNoError(t, w.Close())

	want := "scholar (7 plies, Checkmate)\n" +
		"1. e2e4 e7e5 2. f1c4 b8c6 3. d1h5 g8f6 4. h5f7\n"
	testutil.AssertEqual(t, buf.String(), want)
}

func TestTextWriter_OngoingGame(t *testing.T) {
	var buf bytes.Buffer
	rec := &storage.GameRecord{Name: "fresh", Moves: []string{"d2d4"}}
	testutil.AssertNoError(t, NewTextWriter(&buf, 80).WriteGame(rec))
	testutil.AssertContains(t, buf.String(), "fresh (1 plies, Ongoing)")
}

// TestJSONWriter_Batch verifies games are buffered until Flush
func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)

	testutil.AssertNoError(t, w.WriteGame(testRecord()))
	testutil.AssertNoError(t, w.WriteGame(&storage.GameRecord{Name: "empty"}))
	testutil.AssertEqual(t, buf.Len(), 0)

	testutil.AssertNoError(t, w.Close())

	var out JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &out))
	testutil.AssertEqual(t, len(out.Games), 2)

	g := out.Games[0]
	testutil.AssertEqual(t, g.Name, "scholar")
	testutil.AssertEqual(t, g.PlyCount, 7)
	testutil.AssertEqual(t, g.SavedAt, "2024-01-02T03:04:05Z")
	testutil.AssertEqual(t, g.Moves[1], JSONMove{MoveNumber: 1, Color: "black", Text: "e7e5"})
	testutil.AssertEqual(t, g.Moves[6], JSONMove{MoveNumber: 4, Color: "white", Text: "h5f7"})

	testutil.AssertEqual(t, out.Games[1].PlyCount, 0)
	testutil.AssertEqual(t, out.Games[1].SavedAt, "")
}

func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriterSingle(&buf)

	testutil.AssertNoError(t, w.WriteGame(testRecord()))
	testutil.AssertTrue(t, buf.Len() > 0, "single mode should write immediately")

	var g JSONGame
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &g))
	testutil.AssertEqual(t, g.Outcome, "Checkmate")

	before := buf.Len()
	testutil.AssertNoError(t, w.Close())
	testutil.AssertEqual(t, buf.Len(), before)
}
