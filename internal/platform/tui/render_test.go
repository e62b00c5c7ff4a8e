package tui

import (
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sanddrop/internal/core"
	"github.com/vovakirdan/sanddrop/internal/sim"
)

func TestRowRuns(t *testing.T) {
	a, b := core.Color(0x111111), core.Color(0x222222)

	tests := []struct {
		name string
		row  []core.Color
		want []run
	}{
		{"empty", nil, nil},
		{"single", []core.Color{a}, []run{{a, 1}}},
		{"grouped", []core.Color{a, a, b, b, b, a}, []run{{a, 2}, {b, 3}, {a, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rowRuns(tt.row); !slices.Equal(got, tt.want) {
				t.Errorf("rowRuns = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderGridDimensions(t *testing.T) {
	g := core.NewGrid(5, 3, core.ColorEmpty)
	g.SetColor(2, 1, core.ColorBlue)

	out := NewRenderer(2).RenderGrid(g)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 10 {
			t.Errorf("line %d width = %d, want 10", i, w)
		}
	}
}

func TestRenderStatus(t *testing.T) {
	r := NewRenderer(2)
	out := r.RenderStatus("Sand Drop", core.ColorYellow, sim.Stats{Ticks: 12, Spawned: 5, Settled: 2})
	for _, want := range []string{"Sand Drop", "falling 3", "settled 2", "tick 12"} {
		if !strings.Contains(out, want) {
			t.Errorf("status %q missing %q", out, want)
		}
	}
}

func TestFitGrid(t *testing.T) {
	tests := []struct {
		tw, th int
		w, h   int
	}{
		{80, 24, 40, 22},
		{81, 10, 40, 8},
		{1, 1, 1, 2},
	}
	for _, tt := range tests {
		w, h := FitGrid(tt.tw, tt.th)
		if w != tt.w || h != tt.h {
			t.Errorf("FitGrid(%d,%d) = %dx%d, want %dx%d", tt.tw, tt.th, w, h, tt.w, tt.h)
		}
	}
}
