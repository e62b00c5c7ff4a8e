package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sanddrop/internal/core"
)

// PlayKeyMap defines the key bindings for the sand screen.
type PlayKeyMap struct {
	Reset      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reset, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultPlayKeyMap returns default key bindings.
func DefaultPlayKeyMap() PlayKeyMap {
	return PlayKeyMap{
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "clear"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MouseMapper translates terminal mouse events into grid pointer events.
// Each grid cell spans CellWidth terminal columns and the grid's top-left
// corner sits at (OriginX, OriginY) on screen.
//
// Motion inside the cell that produced the previous event is dropped, so a
// PointerEnter fires once per cell crossed.
type MouseMapper struct {
	OriginX   int
	OriginY   int
	CellWidth int

	pressed bool
	last    core.Coord
	hasLast bool
}

// NewMouseMapper creates a mapper for a grid drawn at the given origin.
func NewMouseMapper(originX, originY, cellWidth int) MouseMapper {
	if cellWidth < 1 {
		cellWidth = 1
	}
	return MouseMapper{OriginX: originX, OriginY: originY, CellWidth: cellWidth}
}

// Cell converts screen coordinates to a grid cell. Points left of or above
// the grid map to negative coordinates.
func (mm *MouseMapper) Cell(screenX, screenY int) core.Coord {
	w := mm.CellWidth
	if w < 1 {
		w = 1
	}
	dx := screenX - mm.OriginX
	x := dx / w
	if dx < 0 {
		x = (dx - w + 1) / w
	}
	return core.C(x, screenY-mm.OriginY)
}

// Map returns the pointer event for msg and whether there is one.
// Only the left button starts a drag; wheel events are ignored.
func (mm *MouseMapper) Map(msg tea.MouseMsg) (core.PointerEvent, bool) {
	cell := mm.Cell(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return core.PointerEvent{}, false
		}
		mm.pressed = true
		mm.remember(cell)
		return core.PointerEvent{Kind: core.PointerDown, X: cell.X, Y: cell.Y}, true

	case tea.MouseActionRelease:
		if !mm.pressed {
			return core.PointerEvent{}, false
		}
		mm.pressed = false
		mm.remember(cell)
		return core.PointerEvent{Kind: core.PointerUp, X: cell.X, Y: cell.Y}, true

	case tea.MouseActionMotion:
		if mm.hasLast && cell == mm.last {
			return core.PointerEvent{}, false
		}
		mm.remember(cell)
		return core.PointerEvent{Kind: core.PointerEnter, X: cell.X, Y: cell.Y}, true
	}

	return core.PointerEvent{}, false
}

// Pressed reports whether the left button is held.
func (mm *MouseMapper) Pressed() bool {
	return mm.pressed
}

func (mm *MouseMapper) remember(c core.Coord) {
	mm.last = c
	mm.hasLast = true
}
