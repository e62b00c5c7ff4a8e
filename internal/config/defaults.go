package config

import (
	_ "embed"

	"github.com/vovakirdan/sanddrop/internal/core"
)

//go:embed defaults/sand.yaml
var defaultSandYAML []byte

// DefaultSandConfig returns the hardcoded default configuration: a 32x32
// grid, the palette on the last row and one tick per frame at 60 fps.
func DefaultSandConfig() SandConfig {
	return SandConfig{
		Grid: GridConfig{
			Width:      32,
			Height:     32,
			BottomRow:  -1,
			RightBound: 0,
		},
		Timing: TimingConfig{
			FrameRate:  60,
			TickFrames: 1,
		},
		Colors: ColorConfig{
			Empty:       core.ColorEmpty,
			SettleShade: 0,
		},
		Palette: PaletteConfig{
			Enabled: true,
			Colors: []core.Color{
				core.ColorYellow,
				core.ColorBlue,
				core.ColorPink,
				core.ColorOrange,
				core.ColorGreen,
				core.ColorWhite,
				core.ColorBlack,
				core.ColorBrown,
			},
		},
		Status: "Sand Drop",
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSandYAML
}
