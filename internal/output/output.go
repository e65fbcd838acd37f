// Package output renders boards, move lists and saved games as text.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/thoth-go/internal/chess"
	"github.com/lgbarn/thoth-go/internal/engine"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line if anything was written on the current one.
func (o *OutputWriter) NewLine() {
	if o.lineLength == 0 && !o.needsSpace {
		return
	}
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteBoard prints the position as an 8x8 grid of two letter piece codes,
// rank 8 first, followed by the side to move.
func WriteBoard(w io.Writer, g *engine.GameState) {
	board := g.Board()
	for row := 0; row < chess.BoardSize; row++ {
		var sb strings.Builder
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteString(board.Get(row, col).String())
			sb.WriteByte(' ')
		}
		fmt.Fprintln(w, sb.String())
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Side to play: %s\n\n", SideName(g.SideToMove()))
}

// WriteFEN prints the FEN line of the position.
func WriteFEN(w io.Writer, g *engine.GameState) {
	fmt.Fprintf(w, "FEN: %s\n\n", engine.FEN(g))
}

// SideName is the upper case colour name used in console messages.
func SideName(c chess.Colour) string {
	return strings.ToUpper(c.String())
}

// WriteMoves prints move texts wrapped at lineLength columns.
func WriteMoves(w io.Writer, moves []engine.Move, lineLength int) {
	ow := NewOutputWriter(w, lineLength)
	for _, m := range moves {
		ow.Write(engine.MoveText(m))
	}
	ow.NewLine()
}

// WriteMoveHistory prints move texts numbered in pairs: "1. e2e4 e7e5 2. ...".
func WriteMoveHistory(w io.Writer, moves []string, lineLength int) {
	ow := NewOutputWriter(w, lineLength)
	for i, text := range moves {
		if i%2 == 0 {
			ow.Write(fmt.Sprintf("%d.", i/2+1))
		}
		ow.Write(text)
	}
	ow.NewLine()
}

// OutcomeMessage is the console message announcing a finished game.
// loser is the side to move in the final position.
func OutcomeMessage(outcome engine.Outcome, loser chess.Colour) string {
	switch outcome {
	case engine.Checkmate:
		return fmt.Sprintf("Checkmate! %s wins! Congrats :-)", SideName(loser.Opposite()))
	case engine.Stalemate:
		return "Stalemate! The king is not in check and there are no vaild moves!"
	case engine.DrawInsufficientMaterial:
		return "Draw due to insufficient material"
	case engine.DrawThreefoldRepetition:
		return "Game drawn. The position has been repeated 3 times."
	case engine.DrawFiftyMove:
		return "Draw by the fifty move rule!"
	case engine.Ongoing:
		return ""
	}
	return "End of Game Type Unknown! Exiting..."
}
