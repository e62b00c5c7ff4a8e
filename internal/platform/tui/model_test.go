package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sanddrop/internal/config"
	"github.com/vovakirdan/sanddrop/internal/core"
	"github.com/vovakirdan/sanddrop/internal/sim"
	"github.com/vovakirdan/sanddrop/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	m, err := NewModel(Options{
		Params:   sim.NewParams(config.DefaultSandConfig()),
		Seed:     1,
		Interval: time.Millisecond,
		Store:    store,
	})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelMouseSpawnsAndTickMoves(t *testing.T) {
	m := newTestModel(t, nil)

	// Cell (5,3) is drawn at screen column 10, row 4.
	m = update(t, m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 10, 3+gridOriginY))
	if m.grid.Color(5, 3) != core.ColorYellow {
		t.Fatalf("press should spawn at (5,3), got %v", m.grid.Color(5, 3))
	}

	m = update(t, m, mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 12, 3+gridOriginY))
	m = update(t, m, mouse(tea.MouseActionRelease, tea.MouseButtonNone, 12, 3+gridOriginY))
	if got := len(m.sim.Active()); got != 2 {
		t.Fatalf("active = %d, want 2", got)
	}

	m = update(t, m, TickMsg(time.Now()))
	if m.grid.Color(5, 4) != core.ColorYellow || m.grid.Color(5, 3) != core.ColorEmpty {
		t.Error("tick should move the particle down one row")
	}
}

func TestModelPaletteClick(t *testing.T) {
	m := newTestModel(t, nil)
	paletteY := m.sim.Params().PaletteRow + gridOriginY

	// Blue band covers columns 4..7, screen columns 8..15.
	m = update(t, m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 9, paletteY))
	m = update(t, m, mouse(tea.MouseActionRelease, tea.MouseButtonNone, 9, paletteY))
	if m.sim.Current() != core.ColorBlue {
		t.Errorf("current = %v, want blue", m.sim.Current())
	}
}

func TestModelQuitSavesSession(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m = update(t, m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 0, gridOriginY))
	m = update(t, m, TickMsg(time.Now()))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("saved %d sessions, want 1", len(sessions))
	}
	if s := sessions[0]; s.Mode != "play" || s.Spawned != 1 || s.Ticks != 1 || s.Seed != 1 {
		t.Errorf("unexpected session %+v", s)
	}
}

func TestModelResetClearsGrid(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 4, 2+gridOriginY))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})

	if len(m.sim.Active()) != 0 {
		t.Error("reset should clear the registry")
	}
	if m.grid.Color(2, 2) != core.ColorEmpty {
		t.Error("reset should clear the grid")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil)
	view := m.View()
	if !strings.Contains(view, "Sand Drop") {
		t.Error("view should show the status text")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should show the help bar")
	}
}
