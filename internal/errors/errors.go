// Package errors provides sentinel errors and error types for the thoth engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrKingNotFound indicates a position missing a king of the side being examined.
	ErrKingNotFound = errors.New("king not found on board")

	// ErrInvalidSetup indicates a starting configuration that breaks a board invariant.
	ErrInvalidSetup = errors.New("invalid setup")

	// ErrIllegalMove indicates a move that is not in the current legal move list.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSquare indicates a coordinate outside the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameNotFound indicates a saved game that does not exist.
	ErrGameNotFound = errors.New("game not found")

	// ErrUnknownCommand indicates console input that names no command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrNothingToUndo indicates an undo request with no moves played.
	ErrNothingToUndo = errors.New("nothing to undo")
)

// PositionError wraps errors with position context: the side being examined
// and the number of plies played to reach the position.
type PositionError struct {
	Err   error  // The underlying error
	Side  string // Side to move ("White"/"Black"), if known
	Ply   int    // Plies played from the setup (0 if not applicable)
	Phase string // What was being computed, e.g. "classify"
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string

	if e.Phase != "" {
		parts = append(parts, e.Phase)
	}
	if e.Side != "" {
		parts = append(parts, fmt.Sprintf("%s to move", e.Side))
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	context := strings.Join(parts, ", ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "position error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PositionError wrapper.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// CommandError represents a console command that could not be carried out.
type CommandError struct {
	Err     error  // The underlying error
	Command string // Command word, e.g. "move"
	Arg     string // Argument as typed
}

// Error returns a formatted error message with the command context.
func (e *CommandError) Error() string {
	var parts []string

	if e.Command != "" {
		parts = append(parts, e.Command)
	}
	if e.Arg != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Arg))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, " "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return "command error"
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
