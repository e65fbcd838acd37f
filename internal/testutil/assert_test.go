package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/thoth-go/internal/chess"
)

// Failures cannot be observed without mocking *testing.T, so these tests
// cover the passing paths and the message formatting.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "e2e4", "e2e4")
	AssertEqual(t, 20, 20)
	AssertEqual(t, []string{"a2a3", "a2a4"}, []string{"a2a3", "a2a4"})
	AssertEqual(t, chess.InitialBoard(), chess.InitialBoard(), "initial board")
	AssertEqual(t, nil, nil)
}

func TestAssertErrors_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertNoError(t, nil)
	AssertError(t, sentinel, "expected error from %s", "operation")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
}

func TestAssertStrings_Success(t *testing.T) {
	AssertContains(t, "Side to play: White", "White")
	AssertContains(t, "test", "")
	AssertNotContains(t, "Side to play: White", "Black")
}

func TestAssertBools_Success(t *testing.T) {
	AssertTrue(t, len("e7e8q") == 5)
	AssertFalse(t, len("e7e8q") == 4)
}

func TestAssertNil_Success(t *testing.T) {
	var p *chess.Board
	AssertNil(t, p)
	AssertNil(t, nil)
	AssertNotNil(t, &chess.Board{})
	AssertNotNil(t, []int{1})
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"depth %d", 3}, "depth 3"},
		{"format multiple", []interface{}{"%s %d %s", "perft", 2, "nodes"}, "perft 2 nodes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
