// Package config provides YAML-based configuration loading, speed presets
// and validation for the sand simulation.
package config

import "github.com/vovakirdan/sanddrop/internal/core"

// SandConfig contains all configuration for the sand simulation.
// Values are fixed once the simulation starts.
type SandConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Timing  TimingConfig  `yaml:"timing"`
	Colors  ColorConfig   `yaml:"colors"`
	Palette PaletteConfig `yaml:"palette"`
	Status  string        `yaml:"status"`
}

// GridConfig defines the grid geometry.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// BottomRow is the last simulated row. Particles on it settle.
	// Negative means Height-2 (one row above the palette).
	BottomRow int `yaml:"bottom_row"`

	// RightBound is the exclusive right edge for sideways moves.
	// Zero or negative means Width.
	RightBound int `yaml:"right_bound"`

	// FitTerminal shrinks the grid to the terminal size on launch.
	FitTerminal bool `yaml:"fit_terminal"`
}

// TimingConfig defines the frame clock.
type TimingConfig struct {
	FrameRate  int `yaml:"frame_rate"`  // Host frames per second
	TickFrames int `yaml:"tick_frames"` // Frames between simulation ticks (1-30)
}

// ColorConfig defines the non-palette colors.
type ColorConfig struct {
	Empty core.Color `yaml:"empty"`

	// SettleShade darkens landed particles toward black (0 = keep falling color).
	SettleShade float64 `yaml:"settle_shade"`
}

// PaletteConfig defines the swatch strip along the bottom of the grid.
type PaletteConfig struct {
	Enabled bool         `yaml:"enabled"`
	Colors  []core.Color `yaml:"colors"`
}

// Preset is a named speed setting.
type Preset string

const (
	PresetSlow   Preset = "slow"
	PresetNormal Preset = "normal"
	PresetFast   Preset = "fast"
)

// Frame limits for the tick interval.
const (
	MinTickFrames = 1
	MaxTickFrames = 30
)

// ResolvedBottomRow returns BottomRow with the negative default applied.
func (c SandConfig) ResolvedBottomRow() int {
	if c.Grid.BottomRow < 0 {
		return c.Grid.Height - 2
	}
	return c.Grid.BottomRow
}

// ResolvedRightBound returns RightBound with the default applied.
func (c SandConfig) ResolvedRightBound() int {
	if c.Grid.RightBound <= 0 {
		return c.Grid.Width
	}
	return c.Grid.RightBound
}

// PaletteRow returns the palette row index, or -1 when the palette is off.
func (c SandConfig) PaletteRow() int {
	if !c.Palette.Enabled {
		return -1
	}
	return c.Grid.Height - 1
}
