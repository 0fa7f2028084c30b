package core

import "fmt"

// RuntimeConfig contains configuration passed to the session at initialization.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is a snapshot of the session returned after every step.
// Frontends use it for status lines and clipboard summaries.
type GameState struct {
	Phase     string // logo, title, game or end
	Score     int    // Dodges in the current run
	LastScore int    // Dodges in the most recently finished run
	Highscore int    // Best score loaded from or saved to disk
	Speed     int    // Displayed speed in mph
	Distance  int    // Displayed distance in feet
	GameOver  bool   // Whether the session is on the end screen
}

// Summary formats the most recent finished run for sharing.
func (s GameState) Summary() string {
	return fmt.Sprintf("Dodger: %d dodges (best %d)", s.LastScore, s.Highscore)
}

// StepResult is returned by Session.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
