package game

// Config holds game configuration constants
type Config struct {
	// ScreenWidth is the initial window width in pixels
	ScreenWidth int

	// ScreenHeight is the initial window height in pixels
	ScreenHeight int

	// TargetWidth is the width of a spawned target in pixels
	TargetWidth float64

	// TargetHeight is the height of a spawned target in pixels
	TargetHeight float64

	// SpawnCap is the live-target count that ends the game
	SpawnCap int

	// InitialDifficulty scales the initial spawn delay
	InitialDifficulty float64

	// BaseDelayMillis is the spawn delay at difficulty 1.0
	BaseDelayMillis float64

	// DelayDecay is the factor applied to the spawn delay after each spawn
	DelayDecay float64

	// MinDelayMillis is the floor the spawn delay never drops below
	MinDelayMillis float64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:       800,
		ScreenHeight:      600,
		TargetWidth:       50.0,
		TargetHeight:      50.0,
		SpawnCap:          20,
		InitialDifficulty: 1.0,
		BaseDelayMillis:   1000.0,
		DelayDecay:        0.98,
		MinDelayMillis:    100.0,
	}
}
