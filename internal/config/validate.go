package config

import (
	"errors"
	"fmt"
)

// Validation errors. Validate wraps them with the offending values.
var (
	ErrGridSize       = errors.New("grid must be at least 1x2 cells")
	ErrBottomRow      = errors.New("bottom row out of range")
	ErrRightBound     = errors.New("right bound out of range")
	ErrPaletteRow     = errors.New("palette row overlaps the simulated area")
	ErrNoPalette      = errors.New("palette has no colors")
	ErrEmptyInPalette = errors.New("empty color also used as a palette color")
	ErrSettleShade    = errors.New("settle shade out of range")
)

// Validate checks a configuration for geometry and color collisions.
// All problems are reported together.
func Validate(cfg SandConfig) error {
	var errs []error

	w, h := cfg.Grid.Width, cfg.Grid.Height
	if w < 1 || h < 2 {
		return fmt.Errorf("%w: got %dx%d", ErrGridSize, w, h)
	}

	bottom := cfg.ResolvedBottomRow()
	if bottom < 0 || bottom >= h {
		errs = append(errs, fmt.Errorf("%w: %d not in [0, %d)", ErrBottomRow, bottom, h))
	}

	right := cfg.ResolvedRightBound()
	if right > w {
		errs = append(errs, fmt.Errorf("%w: %d exceeds width %d", ErrRightBound, right, w))
	}

	if cfg.Palette.Enabled {
		if row := cfg.PaletteRow(); bottom >= row {
			errs = append(errs, fmt.Errorf("%w: bottom row %d, palette row %d", ErrPaletteRow, bottom, row))
		}
	}

	// The first color is the spawn color even without a palette row.
	if len(cfg.Palette.Colors) == 0 {
		errs = append(errs, ErrNoPalette)
	}
	for i, c := range cfg.Palette.Colors {
		if c == cfg.Colors.Empty {
			errs = append(errs, fmt.Errorf("%w: palette[%d] = %v", ErrEmptyInPalette, i, c))
		}
	}

	if cfg.Colors.SettleShade < 0 || cfg.Colors.SettleShade > 1 {
		errs = append(errs, fmt.Errorf("%w: %g not in [0, 1]", ErrSettleShade, cfg.Colors.SettleShade))
	}

	return errors.Join(errs...)
}
