package core

import "time"

// RuntimeConfig carries host settings that are decided at launch rather than
// read from the sand configuration file.
type RuntimeConfig struct {
	ScreenW   int   // Terminal width in characters
	ScreenH   int   // Terminal height in characters
	FrameRate int   // Frames per second of the host clock (0 = use config)
	Seed      int64 // RNG seed for the left/right tie-break (0 = time based)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 0,
		Seed:      0,
	}
}

// TickInterval converts a frame count at the given frame rate into a
// duration. Non-positive inputs fall back to one frame at 60 fps.
func TickInterval(frames, frameRate int) time.Duration {
	if frameRate <= 0 {
		frameRate = 60
	}
	if frames <= 0 {
		frames = 1
	}
	return time.Duration(frames) * time.Second / time.Duration(frameRate)
}
