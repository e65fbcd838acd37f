package config

import "io"

// OutputConfig holds settings related to console output.
type OutputConfig struct {
	// Writer receives boards, move lists and messages
	Writer io.Writer

	// ShowFEN prints the FEN line under each board
	ShowFEN bool

	// ShowHelp prints the command list when the session starts
	ShowHelp bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig(w io.Writer) *OutputConfig {
	return &OutputConfig{
		Writer:   w,
		ShowHelp: true,
	}
}
