package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/thoth-go/internal/chess"
	"github.com/lgbarn/thoth-go/internal/errors"
)

// Mode selects who plays the side the user does not.
type Mode int

const (
	ModeFriend   Mode = iota // Two players at one console
	ModeComputer             // The engine answers every user move
)

func (m Mode) String() string {
	if m == ModeComputer {
		return "computer"
	}
	return "friend"
}

// ParseMode accepts the console letters "f" and "c" as well as the full names.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "f", "friend":
		return ModeFriend, true
	case "c", "computer":
		return ModeComputer, true
	}
	return ModeFriend, false
}

// ParseSide accepts "w"/"b" and "white"/"black".
func ParseSide(s string) (chess.Colour, bool) {
	switch s {
	case "w", "white":
		return chess.White, true
	case "b", "black":
		return chess.Black, true
	}
	return chess.White, false
}

// PlayConfig holds settings for a console game.
type PlayConfig struct {
	// Mode is friend (two players) or computer
	Mode Mode

	// UserSide is the colour the user plays against the computer
	UserSide chess.Colour

	// Seed seeds the computer's random move choice
	Seed int64
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{
		Mode:     ModeFriend,
		UserSide: chess.White,
		Seed:     time.Now().UnixNano(),
	}
}

// Validate checks the play settings.
func (c *PlayConfig) Validate() error {
	if c.Mode != ModeFriend && c.Mode != ModeComputer {
		return fmt.Errorf("play mode %d: %w", c.Mode, errors.ErrInvalidConfig)
	}
	if c.UserSide != chess.White && c.UserSide != chess.Black {
		return fmt.Errorf("user side %d: %w", c.UserSide, errors.ErrInvalidConfig)
	}
	return nil
}
