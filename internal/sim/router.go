package sim

import (
	"github.com/charmbracelet/log"
)

// Router turns pointer events into palette picks or particle spawns.
type Router struct {
	params Params
	grid   Substrate
	logger *log.Logger
}

// PointerDown starts a drag. On the palette row it selects the swatch
// color; anywhere else it tries to spawn a particle.
func (r *Router) PointerDown(st *State, x, y int) {
	st.Dragging = true
	if r.params.HasPalette() && y >= r.params.PaletteRow {
		r.pickColor(st, x, y)
		return
	}
	r.Spawn(st, x, y)
}

// PointerEnter spawns along the drag path while the pointer is down.
func (r *Router) PointerEnter(st *State, x, y int) {
	if !st.Dragging {
		return
	}
	r.Spawn(st, x, y)
}

// PointerUp ends a drag. The grid is not touched.
func (r *Router) PointerUp(st *State) {
	st.Dragging = false
}

// Spawn paints a new particle with the current color and registers it.
// It reports false, and does nothing, when the target is outside the
// spawnable area or already occupied. Dragging over sand hits this often.
func (r *Router) Spawn(st *State, x, y int) bool {
	if x < 0 || x >= r.params.Width || y < 0 || y >= r.params.SpawnLimit() {
		return false
	}
	if r.grid.Color(x, y) != r.params.Empty {
		return false
	}
	r.grid.SetColor(x, y, st.Current)
	st.Drops.Insert(x, y)
	st.Stats.Spawned++
	return true
}

func (r *Router) pickColor(st *State, x, y int) {
	if x < 0 || x >= r.params.Width || y >= r.params.Height {
		return
	}
	c := r.grid.Color(x, r.params.PaletteRow)
	if c == r.params.Empty || c == st.Current {
		return
	}
	st.Current = c
	st.Stats.ColorChanges++
	r.logger.Debug("color selected", "color", c, "x", x)
}
