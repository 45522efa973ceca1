package core

// RuntimeConfig contains platform settings passed to a race view at startup.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	FrameRate int   // Render frames per second (camera and sprite updates)
	Seed      int64 // RNG seed for reproducible races
	Runners   int   // Number of runners on the start line
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
		Seed:      0, // 0 means use current time in platform layer
		Runners:   40,
	}
}
