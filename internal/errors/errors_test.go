package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrKingNotFound", ErrKingNotFound, ErrKingNotFound},
		{"ErrInvalidSetup", ErrInvalidSetup, ErrInvalidSetup},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrGameNotFound", ErrGameNotFound, ErrGameNotFound},
		{"ErrUnknownCommand", ErrUnknownCommand, ErrUnknownCommand},
		{"ErrNothingToUndo", ErrNothingToUndo, ErrNothingToUndo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to build position: %w", ErrInvalidSetup)

	if !errors.Is(wrapped, ErrInvalidSetup) {
		t.Errorf("errors.Is(wrapped, ErrInvalidSetup) = false, want true")
	}
}

// TestPositionError_Error verifies the error message format
func TestPositionError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *PositionError
		contains []string
	}{
		{
			name: "full context",
			err: &PositionError{
				Err:   ErrKingNotFound,
				Side:  "Black",
				Ply:   12,
				Phase: "classify",
			},
			contains: []string{"classify", "black to move", "ply 12", "king not found"},
		},
		{
			name:     "minimal context",
			err:      &PositionError{Err: ErrKingNotFound},
			contains: []string{"king not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("PositionError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestPositionError_As verifies that errors.As works with PositionError
func TestPositionError_As(t *testing.T) {
	posErr := &PositionError{Err: ErrKingNotFound, Side: "White", Ply: 3}
	wrapped := fmt.Errorf("legal moves: %w", posErr)

	var extracted *PositionError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract PositionError")
	}
	if extracted.Ply != 3 {
		t.Errorf("extracted.Ply = %d, want 3", extracted.Ply)
	}
	if !errors.Is(wrapped, ErrKingNotFound) {
		t.Error("errors.Is(wrapped, ErrKingNotFound) = false, want true")
	}
}

// TestCommandError_Error verifies CommandError formatting and unwrapping
func TestCommandError_Error(t *testing.T) {
	err := &CommandError{Err: ErrIllegalMove, Command: "move", Arg: "e2e5"}

	msg := err.Error()
	for _, s := range []string{"move", "e2e5", "illegal move"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("CommandError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrIllegalMove) {
		t.Error("errors.Is(cmdErr, ErrIllegalMove) = false, want true")
	}

	bare := &CommandError{Command: "side"}
	if got := bare.Error(); got != "side" {
		t.Errorf("bare CommandError.Error() = %q, want %q", got, "side")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrGameNotFound, "loading game")

	if !errors.Is(wrapped, ErrGameNotFound) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "loading game") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "ply %d of game %q", 15, "club")

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "ply 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
