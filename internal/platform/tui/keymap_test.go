package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sanddrop/internal/core"
)

func mouse(action tea.MouseAction, button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func TestMouseMapperCell(t *testing.T) {
	mm := NewMouseMapper(0, 1, 2)

	tests := []struct {
		sx, sy int
		want   core.Coord
	}{
		{0, 1, core.C(0, 0)},
		{1, 1, core.C(0, 0)},
		{2, 1, core.C(1, 0)},
		{9, 4, core.C(4, 3)},
		{0, 0, core.C(0, -1)},
	}
	for _, tt := range tests {
		if got := mm.Cell(tt.sx, tt.sy); got != tt.want {
			t.Errorf("Cell(%d,%d) = %v, want %v", tt.sx, tt.sy, got, tt.want)
		}
	}

	shifted := NewMouseMapper(4, 0, 2)
	if got := shifted.Cell(3, 0); got.X != -1 {
		t.Errorf("left of origin should map to -1, got %v", got)
	}
}

func TestMouseMapperSequence(t *testing.T) {
	mm := NewMouseMapper(0, 0, 2)

	steps := []struct {
		name string
		msg  tea.MouseMsg
		ok   bool
		want core.PointerEvent
	}{
		{"press", mouse(tea.MouseActionPress, tea.MouseButtonLeft, 4, 3), true, core.PointerEvent{Kind: core.PointerDown, X: 2, Y: 3}},
		{"motion same cell", mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 5, 3), false, core.PointerEvent{}},
		{"motion new cell", mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 6, 3), true, core.PointerEvent{Kind: core.PointerEnter, X: 3, Y: 3}},
		{"motion repeat", mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 7, 3), false, core.PointerEvent{}},
		{"release", mouse(tea.MouseActionRelease, tea.MouseButtonNone, 7, 3), true, core.PointerEvent{Kind: core.PointerUp, X: 3, Y: 3}},
		{"second release", mouse(tea.MouseActionRelease, tea.MouseButtonNone, 7, 3), false, core.PointerEvent{}},
		{"wheel", mouse(tea.MouseActionPress, tea.MouseButtonWheelUp, 0, 0), false, core.PointerEvent{}},
	}

	for _, st := range steps {
		got, ok := mm.Map(st.msg)
		if ok != st.ok {
			t.Fatalf("%s: ok = %v, want %v", st.name, ok, st.ok)
		}
		if ok && got != st.want {
			t.Errorf("%s: event = %+v, want %+v", st.name, got, st.want)
		}
	}
	if mm.Pressed() {
		t.Error("mapper should not be pressed after release")
	}
}

func TestPlayKeyMapHelp(t *testing.T) {
	km := DefaultPlayKeyMap()
	if len(km.ShortHelp()) != 3 {
		t.Errorf("short help has %d bindings", len(km.ShortHelp()))
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 4 {
		t.Errorf("full help has %d bindings, want 4", total)
	}
}
