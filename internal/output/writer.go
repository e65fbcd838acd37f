package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/thoth-go/internal/storage"
)

// GameWriter is the interface for writing saved games to output.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(rec *storage.GameRecord) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. Batch writers write pending output here.
	Close() error
}

// TextWriter writes games as a header line and a numbered move list.
type TextWriter struct {
	w          io.Writer
	lineLength int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, lineLength int) *TextWriter {
	return &TextWriter{w: w, lineLength: lineLength}
}

// WriteGame writes a game in text format.
func (tw *TextWriter) WriteGame(rec *storage.GameRecord) error {
	outcome := rec.Outcome
	if outcome == "" {
		outcome = "Ongoing"
	}
	if _, err := fmt.Fprintf(tw.w, "%s (%d plies, %s)\n", rec.Name, len(rec.Moves), outcome); err != nil {
		return err
	}
	WriteMoveHistory(tw.w, rec.Moves, tw.lineLength)
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*storage.GameRecord
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches games into one array.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(rec *storage.GameRecord) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(GameToJSON(rec))
	}
	jw.games = append(jw.games, rec)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}
	err := OutputGamesJSON(jw.games, jw.w)
	jw.games = jw.games[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
