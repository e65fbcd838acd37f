package testutil

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/lgbarn/thoth-go/internal/chess"
)

// Well-known positions used across the engine tests.
const (
	StartFEN     = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	Position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	Position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	Position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

// Position is a parsed FEN: everything needed to build a game state.
type Position struct {
	Board     chess.Board
	ToMove    chess.Colour
	Castling  chess.CastlingRights
	EnPassant chess.Square
	HalfMoves int
}

// ParseFEN reads a FEN string into a Position. It is a test fixture reader
// and performs no legality checks beyond the syntax.
func ParseFEN(fen string) (Position, error) {
	pos := Position{EnPassant: chess.NoSquare}
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return pos, fmt.Errorf("FEN %q: want at least 4 fields, got %d", fen, len(fields))
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != chess.BoardSize {
		return pos, fmt.Errorf("FEN %q: want 8 ranks, got %d", fen, len(ranks))
	}
	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			piece, ok := pieceFromLetter(c)
			if !ok || col >= chess.BoardSize {
				return pos, fmt.Errorf("FEN %q: bad rank %q", fen, rank)
			}
			pos.Board.Squares[row][col] = piece
			col++
		}
		if col != chess.BoardSize {
			return pos, fmt.Errorf("FEN %q: rank %q has %d files", fen, rank, col)
		}
	}

	switch fields[1] {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return pos, fmt.Errorf("FEN %q: bad side %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			idx := strings.IndexRune("KQkq", c)
			if idx < 0 {
				return pos, fmt.Errorf("FEN %q: bad castling %q", fen, fields[2])
			}
			pos.Castling[idx] = true
		}
	}

	if fields[3] != "-" {
		sq, ok := chess.ParseSquare(fields[3])
		if !ok {
			return pos, fmt.Errorf("FEN %q: bad en passant square %q", fen, fields[3])
		}
		pos.EnPassant = sq
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return pos, fmt.Errorf("FEN %q: bad half-move clock: %w", fen, err)
		}
		pos.HalfMoves = n
	}
	return pos, nil
}

// MustParseFEN parses a FEN string and calls t.Fatal on failure.
func MustParseFEN(t testing.TB, fen string) Position {
	t.Helper()
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return pos
}

// BoardFromDiagram builds a board from eight rows of eight characters, rank 8
// first, using FEN letters and '.' for empty squares.
func BoardFromDiagram(t testing.TB, rows ...string) chess.Board {
	t.Helper()
	var b chess.Board
	if len(rows) != chess.BoardSize {
		t.Fatalf("diagram has %d rows; want 8", len(rows))
	}
	for row, line := range rows {
		if len(line) != chess.BoardSize {
			t.Fatalf("diagram row %d is %q; want 8 characters", row, line)
		}
		for col, c := range line {
			if c == '.' {
				continue
			}
			piece, ok := pieceFromLetter(c)
			if !ok {
				t.Fatalf("diagram row %d: bad piece %q", row, c)
			}
			b.Squares[row][col] = piece
		}
	}
	return b
}

func pieceFromLetter(c rune) (chess.Piece, bool) {
	colour := chess.White
	if c >= 'a' && c <= 'z' {
		colour = chess.Black
		c -= 'a' - 'A'
	}
	for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
		if rune(kind.Letter()) == c {
			return chess.MakePiece(colour, kind), true
		}
	}
	return chess.Empty, false
}
