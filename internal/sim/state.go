package sim

import "github.com/vovakirdan/sanddrop/internal/core"

// State is the mutable simulation state. It is owned by a single Sim and
// only touched from the host's event loop.
type State struct {
	Drops    Registry
	Current  core.Color // Color of the next spawned particle
	Dragging bool
	Stats    Stats
}

// Stats counts what happened since the last Setup.
type Stats struct {
	Ticks        int
	Spawned      int
	Settled      int
	ColorChanges int
}

// Active returns the number of particles still falling.
func (s Stats) Active() int {
	return s.Spawned - s.Settled
}
