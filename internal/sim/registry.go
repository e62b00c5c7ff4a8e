package sim

import "github.com/vovakirdan/sanddrop/internal/core"

// Registry is the ordered list of active (still falling) particles.
// Insertion order is processing order within a tick. No duplicate
// detection is done; callers must not insert a coordinate that is already
// active.
type Registry struct {
	drops []core.Coord
}

// Len returns the number of active particles.
func (r *Registry) Len() int {
	return len(r.drops)
}

// At returns the coordinate at index i.
func (r *Registry) At(i int) core.Coord {
	return r.drops[i]
}

// Update replaces the coordinate at index i.
func (r *Registry) Update(i, x, y int) {
	r.drops[i] = core.C(x, y)
}

// Remove deletes index i. Later entries shift down by one, keeping order.
func (r *Registry) Remove(i int) {
	copy(r.drops[i:], r.drops[i+1:])
	r.drops[len(r.drops)-1] = core.Coord{}
	r.drops = r.drops[:len(r.drops)-1]
}

// Insert appends a new active particle.
func (r *Registry) Insert(x, y int) {
	r.drops = append(r.drops, core.C(x, y))
}

// Coords returns a copy of the active coordinates in processing order.
func (r *Registry) Coords() []core.Coord {
	out := make([]core.Coord, len(r.drops))
	copy(out, r.drops)
	return out
}

// Reset drops every entry.
func (r *Registry) Reset() {
	r.drops = r.drops[:0]
}
