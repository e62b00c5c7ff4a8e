package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/sanddrop/internal/core"
)

// ParsePreset converts a flag value into a Preset.
// An empty string selects PresetNormal.
func ParsePreset(s string) (Preset, error) {
	switch Preset(strings.ToLower(strings.TrimSpace(s))) {
	case "", PresetNormal:
		return PresetNormal, nil
	case PresetSlow:
		return PresetSlow, nil
	case PresetFast:
		return PresetFast, nil
	default:
		return PresetNormal, fmt.Errorf("config: unknown speed preset %q (want slow, normal or fast)", s)
	}
}

// ApplySpeedPreset modifies the timing section based on a preset.
// Normal leaves the configured timing untouched.
func ApplySpeedPreset(cfg *SandConfig, preset Preset) {
	switch preset {
	case PresetSlow:
		cfg.Timing.TickFrames = 4
	case PresetFast:
		cfg.Timing.TickFrames = MinTickFrames
		cfg.Timing.FrameRate *= 2
	}
}

// ClampedTickFrames returns the configured frame count clamped to the allowed range.
func (t TimingConfig) ClampedTickFrames() int {
	return core.Clamp(t.TickFrames, MinTickFrames, MaxTickFrames)
}

// Interval returns the wall-clock duration between simulation ticks.
func (t TimingConfig) Interval() time.Duration {
	return core.TickInterval(t.ClampedTickFrames(), t.FrameRate)
}
