package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	first := Session{
		Mode:         "play",
		Seed:         7,
		GridW:        32,
		GridH:        32,
		Ticks:        600,
		Spawned:      120,
		Settled:      118,
		ColorChanges: 3,
		Duration:     10 * time.Second,
	}
	if _, err := store.SaveSession(first); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	id, err := store.SaveSession(Session{Mode: "simulate", GridW: 10, GridH: 10, Ticks: 50, Spawned: 5, Settled: 5})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(sessions))
	}

	// Newest first
	if sessions[0].ID != id || sessions[0].Mode != "simulate" {
		t.Errorf("Expected newest session first, got %+v", sessions[0])
	}

	got := sessions[1]
	if got.Seed != 7 || got.Ticks != 600 || got.Spawned != 120 || got.ColorChanges != 3 {
		t.Errorf("Round trip mismatch: %+v", got)
	}
	if got.Duration != 10*time.Second {
		t.Errorf("Duration = %v, want 10s", got.Duration)
	}
	if got.Active() != 2 {
		t.Errorf("Active() = %d, want 2", got.Active())
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveSession(Session{Mode: "play", GridW: 8, GridH: 8, Ticks: i})
	}

	sessions, err := store.RecentSessions(3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Errorf("Expected 3 sessions with limit, got %d", len(sessions))
	}
}

func TestStoreTotals(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if empty.Sessions != 0 || empty.Spawned != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected zero totals, got %+v", empty)
	}

	store.SaveSession(Session{Mode: "play", GridW: 8, GridH: 8, Ticks: 10, Spawned: 4, Settled: 3})
	store.SaveSession(Session{Mode: "play", GridW: 8, GridH: 8, Ticks: 20, Spawned: 6, Settled: 6})

	totals, err := store.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if totals.Sessions != 2 || totals.Ticks != 30 || totals.Spawned != 10 || totals.Settled != 9 {
		t.Errorf("Unexpected totals: %+v", totals)
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(Session{Mode: "play", GridW: 8, GridH: 8})
	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	sessions, _ := store.RecentSessions(10)
	if len(sessions) != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", len(sessions))
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~/.sanddrop/x.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if !strings.HasPrefix(got, home) || !strings.HasSuffix(got, filepath.Join(".sanddrop", "x.db")) {
		t.Errorf("ExpandPath() = %q", got)
	}

	if got, _ := ExpandPath("/tmp/a.db"); got != "/tmp/a.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
