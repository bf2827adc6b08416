package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInterval returns the duration of one fixed tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of the game as seen by the platform.
type GameState struct {
	Score    int    // Current score
	Level    int    // Current level number
	Mode     string // Name of the active mode (menu, playing, ...)
	GameOver bool   // Whether the run has ended (game over or win)
	Paused   bool   // Whether the game is paused
	Exit     bool   // Whether the player chose to leave the program
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
