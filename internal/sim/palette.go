package sim

import "github.com/vovakirdan/sanddrop/internal/core"

// Band is a contiguous run of palette cells sharing one color.
type Band struct {
	Color core.Color
	Start int // First column
	End   int // Exclusive last column
}

// Width returns the number of columns in the band.
func (b Band) Width() int {
	return b.End - b.Start
}

// Bands splits width columns into equal contiguous bands, one per color.
// Leftover columns go to the last band. When there are more colors than
// columns, the extra colors get no band.
func Bands(width int, colors []core.Color) []Band {
	if width <= 0 || len(colors) == 0 {
		return nil
	}
	size := width / len(colors)
	if size < 1 {
		size = 1
	}

	bands := make([]Band, 0, len(colors))
	for i, c := range colors {
		start := i * size
		if start >= width {
			break
		}
		end := start + size
		if i == len(colors)-1 || end > width {
			end = width
		}
		bands = append(bands, Band{Color: c, Start: start, End: end})
	}
	return bands
}

// paintPalette draws the swatch bands on the palette row.
func paintPalette(grid Substrate, p Params) {
	if !p.HasPalette() {
		return
	}
	for _, b := range Bands(p.Width, p.Palette) {
		for x := b.Start; x < b.End; x++ {
			grid.SetColor(x, p.PaletteRow, b.Color)
		}
	}
}
