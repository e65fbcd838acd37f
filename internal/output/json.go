package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/lgbarn/thoth-go/internal/storage"
)

// JSONGame represents a saved game in JSON format.
type JSONGame struct {
	Name     string     `json:"name"`
	Moves    []JSONMove `json:"moves,omitempty"`
	Outcome  string     `json:"outcome,omitempty"`
	Mode     string     `json:"mode,omitempty"`
	UserSide string     `json:"userSide,omitempty"`
	PlyCount int        `json:"plyCount"`
	SavedAt  string     `json:"savedAt,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	Text       string `json:"text"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a saved game to its JSON form.
func GameToJSON(rec *storage.GameRecord) *JSONGame {
	jg := &JSONGame{
		Name:     rec.Name,
		Outcome:  rec.Outcome,
		Mode:     rec.Mode,
		UserSide: rec.UserSide,
		PlyCount: len(rec.Moves),
	}
	if !rec.SavedAt.IsZero() {
		jg.SavedAt = rec.SavedAt.UTC().Format(time.RFC3339)
	}
	for i, text := range rec.Moves {
		color := "white"
		if i%2 == 1 {
			color = "black"
		}
		jg.Moves = append(jg.Moves, JSONMove{
			MoveNumber: i/2 + 1,
			Color:      color,
			Text:       text,
		})
	}
	return jg
}

// OutputGamesJSON outputs multiple games as a JSON array.
func OutputGamesJSON(recs []*storage.GameRecord, w io.Writer) error {
	out := &JSONOutput{Games: make([]*JSONGame, len(recs))}
	for i, rec := range recs {
		out.Games[i] = GameToJSON(rec)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
