package core

// RuntimeConfig contains host-side settings for running a guest in a terminal.
type RuntimeConfig struct {
	ScreenW   int // Terminal width in characters
	ScreenH   int // Terminal height in characters
	TickRate  int // Guest frames per second (default 60)
	HoldTicks int // Frames a key stays held after a terminal key event
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		HoldTicks: 8,
	}
}
