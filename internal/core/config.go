package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for screen layout, for converting display delays into ticks
// and for seeding their random source.
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

// GameState is the read-only summary a game reports to the platform after
// every transition.
type GameState struct {
	Score  int
	Status Status
	Paused bool
}

// GameOver reports whether the current round has reached its terminal state.
func (s GameState) GameOver() bool {
	return s.Status == StatusEnded
}

// StepResult is returned by Game.Step() after each simulation tick.
// Nav is set when the game asks the platform to leave for another destination.
type StepResult struct {
	State GameState
	Nav   *NavRequest
}
