package core

// RuntimeConfig is handed to Game.Reset.
type RuntimeConfig struct {
	ScreenW  int          // Display width in characters (presentation only)
	ScreenH  int          // Display height in characters (presentation only)
	TickRate int          // Platform tick rate (default 40)
	Seed     int64        // RNG seed for deterministic gameplay
	Sprites  SpriteLoader // Resolves sprite names to sized handles
}

// DefaultConfig is an 80x24 terminal at the nominal tick rate.
// A zero Seed lets the front end pick one from the clock.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultNominalFPS,
	}
}

// GameState is the outward summary of a run.
type GameState struct {
	Score    int  // Current score
	Kills    int  // Enemies destroyed by the player
	Deaths   int  // Times the player was destroyed
	Lives    int  // Remaining lives, -1 when unlimited
	Frame    int  // Ticks simulated so far
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is what one Step produced.
type StepResult struct {
	State GameState
	Quit  bool // Quit was observed at the tick boundary; nothing was simulated
}
