package sim

import (
	"slices"
	"testing"

	"github.com/vovakirdan/sanddrop/internal/core"
)

func TestBands(t *testing.T) {
	three := []core.Color{core.ColorYellow, core.ColorBlue, core.ColorPink}

	tests := []struct {
		name   string
		width  int
		colors []core.Color
		want   []Band
	}{
		{
			name:   "even split",
			width:  6,
			colors: three,
			want: []Band{
				{core.ColorYellow, 0, 2},
				{core.ColorBlue, 2, 4},
				{core.ColorPink, 4, 6},
			},
		},
		{
			name:   "leftover goes last",
			width:  8,
			colors: three,
			want: []Band{
				{core.ColorYellow, 0, 2},
				{core.ColorBlue, 2, 4},
				{core.ColorPink, 4, 8},
			},
		},
		{
			name:   "more colors than columns",
			width:  2,
			colors: three,
			want: []Band{
				{core.ColorYellow, 0, 1},
				{core.ColorBlue, 1, 2},
			},
		},
		{name: "no width", width: 0, colors: three},
		{name: "no colors", width: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bands(tt.width, tt.colors)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Bands(%d) = %v, want %v", tt.width, got, tt.want)
			}
		})
	}
}

func TestDefaultPaletteLayout(t *testing.T) {
	colors := []core.Color{
		core.ColorYellow, core.ColorBlue, core.ColorPink, core.ColorOrange,
		core.ColorGreen, core.ColorWhite, core.ColorBlack, core.ColorBrown,
	}
	bands := Bands(32, colors)
	if len(bands) != 8 {
		t.Fatalf("got %d bands", len(bands))
	}
	for i, b := range bands {
		if b.Width() != 4 || b.Start != i*4 {
			t.Errorf("band %d = %+v, want 4 columns from %d", i, b, i*4)
		}
	}
}
