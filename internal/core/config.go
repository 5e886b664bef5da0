package core

// RuntimeConfig is the per-session configuration handed to the platform
// layer: terminal dimensions, animation frame rate, and the RNG seed for
// deterministic play.
type RuntimeConfig struct {
	ScreenW   int   // Terminal width in characters
	ScreenH   int   // Terminal height in characters
	FrameRate int   // Animation frames per second
	Seed      int64 // RNG seed; 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
		Seed:      0,
	}
}
