package core

// RuntimeConfig is handed to a game on every Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the platform (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is what the platform needs to know after a frame.
type GameState struct {
	Score    int  // Moves taken in the current session
	GameOver bool // Session reached a terminal outcome
	Won      bool // Terminal outcome was a win
	Paused   bool
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State GameState
}
