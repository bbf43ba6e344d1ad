package core

// Logical world size of the playfield. Simulation runs in these units
// regardless of the terminal size.
const (
	DefaultWorldW = 800
	DefaultWorldH = 500
)

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	WorldW   int // Playfield width in world units
	WorldH   int // Playfield height in world units
	ScreenW  int // Terminal width in characters
	ScreenH  int // Terminal height in characters
	TickRate int // Frames per second requested from the driver
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		WorldW:   DefaultWorldW,
		WorldH:   DefaultWorldH,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
