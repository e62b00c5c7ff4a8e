// Package window hosts the sand simulation in a desktop window using
// ebiten. The GUI itself needs the ebiten build tag; the pixel and timing
// helpers in this file build everywhere.
package window

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sanddrop/internal/core"
	"github.com/vovakirdan/sanddrop/internal/sim"
)

// statusHeight is the pixel height of the status strip above the grid.
const statusHeight = 16

// Options configures a window session.
type Options struct {
	Params    sim.Params
	Seed      int64
	Scale     int // Pixels per cell
	FrameRate int // Window updates per second
	TickEvery int // Simulation tick every N updates
	Logger    *log.Logger
}

// fillRGBA writes the grid into buf as opaque RGBA pixels, row-major.
// buf must hold Width*Height*4 bytes.
func fillRGBA(buf []byte, g *core.Grid) {
	i := 0
	for y := range g.Height() {
		for x := range g.Width() {
			r, gr, b := g.Color(x, y).RGB()
			buf[i+0] = r
			buf[i+1] = gr
			buf[i+2] = b
			buf[i+3] = 0xff
			i += 4
		}
	}
}

// frameDivider fires once every n calls to Step.
type frameDivider struct {
	n     int
	count int
}

func newFrameDivider(n int) *frameDivider {
	if n < 1 {
		n = 1
	}
	return &frameDivider{n: n}
}

// Step advances the frame counter and reports whether a tick is due.
func (d *frameDivider) Step() bool {
	d.count++
	if d.count >= d.n {
		d.count = 0
		return true
	}
	return false
}

// cellAt converts window pixel coordinates to a grid cell.
func cellAt(px, py, scale int) core.Coord {
	if scale < 1 {
		scale = 1
	}
	y := py - statusHeight
	return core.C(floorDiv(px, scale), floorDiv(y, scale))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// interval is the wall-clock time between simulation ticks.
func (o Options) interval() time.Duration {
	return core.TickInterval(o.TickEvery, o.FrameRate)
}
