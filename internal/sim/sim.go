// Package sim implements the falling-sand core: the active particle
// registry, the per-tick update rule and the pointer input router.
//
// The package is host agnostic. It reads and paints cells through a
// Substrate and exposes four callbacks (OnPointerDown, OnPointerEnter,
// OnPointerUp, OnTick) that the host invokes from a single event loop.
// Nothing here is safe for concurrent use.
package sim

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sanddrop/internal/core"
)

// Substrate is the host grid: a fixed rectangle of colored cells.
// Callers bound-check before every access.
type Substrate interface {
	Color(x, y int) core.Color
	SetColor(x, y int, c core.Color)
}

// StatusSetter is implemented by substrates that show a status line.
type StatusSetter interface {
	SetStatus(text string)
}

// BorderSetter is implemented by substrates that draw cell borders.
type BorderSetter interface {
	SetBorder(width int)
}

// Filler is implemented by substrates with a bulk fill.
type Filler interface {
	Fill(c core.Color)
}

// Sim owns the simulation state and wires the engine and router to a
// substrate.
type Sim struct {
	params Params
	grid   Substrate
	state  State
	engine *Engine
	router *Router
	logger *log.Logger
}

// Option configures a Sim.
type Option func(*Sim)

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *log.Logger) Option {
	return func(s *Sim) {
		if l != nil {
			s.logger = l
		}
	}
}

// New builds a simulation over grid. The grid must be at least
// Width x Height cells. Call Setup before the first tick.
func New(p Params, grid Substrate, rng Rand, opts ...Option) (*Sim, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	s := &Sim{
		params: p,
		grid:   grid,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.engine = &Engine{params: p, grid: grid, rng: rng, logger: s.logger}
	s.router = &Router{params: p, grid: grid, logger: s.logger}
	s.state.Current = p.Palette[0]
	return s, nil
}

// Setup clears the grid, paints the palette and resets all state.
func (s *Sim) Setup() {
	if b, ok := s.grid.(BorderSetter); ok {
		b.SetBorder(0)
	}
	if st, ok := s.grid.(StatusSetter); ok {
		st.SetStatus(s.params.Status)
	}
	if f, ok := s.grid.(Filler); ok {
		f.Fill(s.params.Empty)
	} else {
		for y := 0; y < s.params.Height; y++ {
			for x := 0; x < s.params.Width; x++ {
				s.grid.SetColor(x, y, s.params.Empty)
			}
		}
	}
	paintPalette(s.grid, s.params)

	s.state.Drops.Reset()
	s.state.Current = s.params.Palette[0]
	s.state.Dragging = false
	s.state.Stats = Stats{}
	s.logger.Debug("simulation ready", "width", s.params.Width, "height", s.params.Height, "bottom", s.params.BottomRow)
}

// OnTick advances the simulation by one step.
func (s *Sim) OnTick() TickResult {
	return s.engine.Tick(&s.state)
}

// OnPointerDown handles a press at (x, y).
func (s *Sim) OnPointerDown(x, y int) {
	s.router.PointerDown(&s.state, x, y)
}

// OnPointerEnter handles the pointer moving into (x, y).
func (s *Sim) OnPointerEnter(x, y int) {
	s.router.PointerEnter(&s.state, x, y)
}

// OnPointerUp handles a release at (x, y).
func (s *Sim) OnPointerUp(x, y int) {
	s.router.PointerUp(&s.state)
}

// Dispatch routes a pointer event to the matching callback.
func (s *Sim) Dispatch(ev core.PointerEvent) {
	switch ev.Kind {
	case core.PointerDown:
		s.OnPointerDown(ev.X, ev.Y)
	case core.PointerEnter:
		s.OnPointerEnter(ev.X, ev.Y)
	case core.PointerUp:
		s.OnPointerUp(ev.X, ev.Y)
	}
}

// Spawn drops a particle at (x, y) with the current color, bypassing drag
// state. Headless drivers use it in place of pointer events.
func (s *Sim) Spawn(x, y int) bool {
	return s.router.Spawn(&s.state, x, y)
}

// Params returns the simulation parameters.
func (s *Sim) Params() Params {
	return s.params
}

// Current returns the color the next particle will have.
func (s *Sim) Current() core.Color {
	return s.state.Current
}

// Dragging reports whether the pointer is held down.
func (s *Sim) Dragging() bool {
	return s.state.Dragging
}

// Active returns the active particle coordinates in processing order.
func (s *Sim) Active() []core.Coord {
	return s.state.Drops.Coords()
}

// Stats returns the counters since the last Setup.
func (s *Sim) Stats() Stats {
	return s.state.Stats
}
