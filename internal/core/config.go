package core

import "time"

// RuntimeConfig contains configuration passed to games at construction.
// Hosts fill it from CLI flags and the terminal/window size.
type RuntimeConfig struct {
	ScreenW  int // Host screen width (cells or pixels)
	ScreenH  int // Host screen height (cells or pixels)
	TickRate int // Frames per second for hosts that schedule their own ticks

	ConfigPath string // Custom game config YAML (empty = search default locations)
	Difficulty string // Difficulty preset name (empty = config as loaded)

	HoldInitial time.Duration // Terminal: how long a first key press counts as held
	HoldRepeat  time.Duration // Terminal: how long each auto-repeat extends the hold
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:     80,
		ScreenH:     24,
		TickRate:    60,
		HoldInitial: 300 * time.Millisecond,
		HoldRepeat:  100 * time.Millisecond,
	}
}

// GameState is a read-only summary of a running game.
// Returned by Game.State() to communicate status to the host.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // All lives lost
	Won      bool // Every block destroyed
	Frames   int  // Non-terminal frames simulated so far
}

// Terminal reports whether the game has reached a final state.
func (s GameState) Terminal() bool {
	return s.GameOver || s.Won
}
