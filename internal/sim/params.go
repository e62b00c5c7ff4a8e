package sim

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/sanddrop/internal/config"
	"github.com/vovakirdan/sanddrop/internal/core"
)

// Params holds the process-wide simulation settings. They are fixed before
// the first tick and never change afterwards.
type Params struct {
	Width      int
	Height     int
	BottomRow  int // Last simulated row; particles here settle
	RightBound int // Exclusive right edge for sideways moves
	PaletteRow int // Row of palette swatches, -1 when there is none

	Empty       core.Color   // Marks unoccupied cells
	Palette     []core.Color // Selectable spawn colors, left to right
	SettleShade float64      // Landed shade amount, 0 keeps the falling color

	Status string
}

// NewParams derives simulation parameters from a validated configuration.
func NewParams(cfg config.SandConfig) Params {
	return Params{
		Width:       cfg.Grid.Width,
		Height:      cfg.Grid.Height,
		BottomRow:   cfg.ResolvedBottomRow(),
		RightBound:  cfg.ResolvedRightBound(),
		PaletteRow:  cfg.PaletteRow(),
		Empty:       cfg.Colors.Empty,
		Palette:     slices.Clone(cfg.Palette.Colors),
		SettleShade: cfg.Colors.SettleShade,
		Status:      cfg.Status,
	}
}

// HasPalette reports whether a palette row is reserved.
func (p Params) HasPalette() bool {
	return p.PaletteRow >= 0
}

// SpawnLimit returns the first row where particles may not be spawned.
func (p Params) SpawnLimit() int {
	if p.HasPalette() {
		return p.PaletteRow
	}
	return p.Height
}

func (p Params) validate() error {
	switch {
	case p.Width < 1 || p.Height < 2:
		return fmt.Errorf("sim: grid %dx%d too small", p.Width, p.Height)
	case p.BottomRow < 0 || p.BottomRow >= p.Height:
		return fmt.Errorf("sim: bottom row %d outside grid height %d", p.BottomRow, p.Height)
	case p.RightBound < 1 || p.RightBound > p.Width:
		return fmt.Errorf("sim: right bound %d outside grid width %d", p.RightBound, p.Width)
	case p.HasPalette() && (p.PaletteRow <= p.BottomRow || p.PaletteRow >= p.Height):
		return fmt.Errorf("sim: palette row %d must be below bottom row %d and inside the grid", p.PaletteRow, p.BottomRow)
	case len(p.Palette) == 0:
		return fmt.Errorf("sim: no palette colors to spawn with")
	case slices.Contains(p.Palette, p.Empty):
		return fmt.Errorf("sim: empty color %v is also a palette color", p.Empty)
	}
	return nil
}
