package sim

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sanddrop/internal/core"
)

// TickResult summarizes one simulation tick.
type TickResult struct {
	Tick    int // Tick number, starting at 1
	Fell    int // Particles that moved straight down
	Slid    int // Particles that moved one column sideways
	Settled int // Particles that became terrain
	Active  int // Particles still falling after the tick
}

// Engine advances every active particle once per tick.
type Engine struct {
	params Params
	grid   Substrate
	rng    Rand
	logger *log.Logger
}

// Tick processes the registry in order.
//
// Rules per particle at (x, y):
//  1. On or below the bottom row: settle
//  2. Cell below empty: fall one row
//  3. Otherwise slide to an available side (random if both), or settle
//
// Settling removes the entry immediately, so the next particle shifts into
// the current index. The cursor stays put and the bound shrinks, which
// visits every particle present at tick start exactly once.
func (e *Engine) Tick(st *State) TickResult {
	var res TickResult

	n := st.Drops.Len()
	i := 0
	for i < n {
		p := st.Drops.At(i)
		x, y := p.X, p.Y
		c := e.grid.Color(x, y)

		if y >= e.params.BottomRow {
			e.settle(st, i, x, y, c)
			res.Settled++
			n--
			continue
		}

		if below := p.Add(0, 1); e.empty(below.X, below.Y) {
			e.move(st, i, x, y, below.X, below.Y, c)
			res.Fell++
			i++
			continue
		}

		left, right := x-1, x+1
		canLeft := e.sideAvailable(left, y)
		canRight := e.sideAvailable(right, y)

		switch {
		case canLeft && canRight:
			nx := left
			if e.rng.IntN(2) == 1 {
				nx = right
			}
			e.move(st, i, x, y, nx, y, c)
		case canLeft:
			e.move(st, i, x, y, left, y, c)
		case canRight:
			e.move(st, i, x, y, right, y, c)
		default:
			e.settle(st, i, x, y, c)
			res.Settled++
			n--
			continue
		}
		res.Slid++
		i++
	}

	st.Stats.Ticks++
	res.Tick = st.Stats.Ticks
	res.Active = st.Drops.Len()
	return res
}

// sideAvailable reports whether a particle on row y may slide into column
// side. The column must be inside [0, RightBound), the row above the bottom,
// and the destination cell plus the cells above and below it empty. The
// above check is skipped on the top row. This keeps particles from
// tunneling through the corner of a pile.
func (e *Engine) sideAvailable(side, y int) bool {
	return side >= 0 && side < e.params.RightBound &&
		y < e.params.BottomRow &&
		(y == 0 || e.empty(side, y-1)) &&
		e.empty(side, y) &&
		e.empty(side, y+1)
}

func (e *Engine) empty(x, y int) bool {
	return e.grid.Color(x, y) == e.params.Empty
}

func (e *Engine) move(st *State, i, x, y, nx, ny int, c core.Color) {
	e.grid.SetColor(x, y, e.params.Empty)
	st.Drops.Update(i, nx, ny)
	e.grid.SetColor(nx, ny, c)
}

// settle paints the resting color and deregisters the particle.
func (e *Engine) settle(st *State, i, x, y int, c core.Color) {
	rest := c.Shade(e.params.SettleShade)
	if rest == e.params.Empty {
		rest = c
	}
	e.grid.SetColor(x, y, rest)
	st.Drops.Remove(i)
	st.Stats.Settled++
	e.logger.Debug("particle settled", "x", x, "y", y, "color", rest)
}
