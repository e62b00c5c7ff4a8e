package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sanddrop/internal/core"
	"github.com/vovakirdan/sanddrop/internal/sim"
	"github.com/vovakirdan/sanddrop/internal/storage"
)

// Options configures an interactive session.
type Options struct {
	Params   sim.Params
	Seed     int64
	Interval time.Duration // Time between simulation ticks
	Store    *storage.Store
	Logger   *log.Logger
}

// Model is the Bubble Tea model hosting one sand simulation.
type Model struct {
	sim      *sim.Sim
	grid     *core.Grid
	store    *storage.Store
	logger   *log.Logger
	renderer *Renderer
	mouse    MouseMapper
	keys     PlayKeyMap
	help     help.Model
	interval time.Duration
	seed     int64
	started  time.Time
	quitting bool
}

// NewModel creates the grid and simulation for opts and runs setup.
func NewModel(opts Options) (Model, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	p := opts.Params
	grid := core.NewGrid(p.Width, p.Height, p.Empty)
	s, err := sim.New(p, grid, sim.NewRand(opts.Seed), sim.WithLogger(opts.Logger))
	if err != nil {
		return Model{}, err
	}
	s.Setup()

	return Model{
		sim:      s,
		grid:     grid,
		store:    opts.Store,
		logger:   opts.Logger,
		renderer: NewRenderer(CellWidth),
		mouse:    NewMouseMapper(0, gridOriginY, CellWidth),
		keys:     DefaultPlayKeyMap(),
		help:     help.New(),
		interval: opts.Interval,
		seed:     opts.Seed,
		started:  time.Now(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "width", m.grid.Width(), "height", m.grid.Height(), "seed", m.seed, "interval", m.interval)
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := m.mouse.Map(msg); ok {
			m.sim.Dispatch(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.sim.OnTick()
		return m, tickCmd(m.interval)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveSession()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reset):
		m.saveSession()
		m.sim.Setup()
		m.started = time.Now()
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// Session returns the statistics recorded so far.
func (m Model) Session() storage.Session {
	st := m.sim.Stats()
	return storage.Session{
		Mode:         "play",
		Seed:         m.seed,
		GridW:        m.grid.Width(),
		GridH:        m.grid.Height(),
		Ticks:        st.Ticks,
		Spawned:      st.Spawned,
		Settled:      st.Settled,
		ColorChanges: st.ColorChanges,
		Duration:     time.Since(m.started),
	}
}

// saveSession records the session when something happened in it.
// Storage errors are logged and otherwise ignored.
func (m Model) saveSession() {
	sess := m.Session()
	m.logger.Info("session ended", "ticks", sess.Ticks, "spawned", sess.Spawned, "settled", sess.Settled)
	if m.store == nil || sess.Spawned == 0 {
		return
	}
	if _, err := m.store.SaveSession(sess); err != nil {
		m.logger.Warn("cannot save session", "err", err)
	}
}

// saveScreenshot writes the grid as text to ~/.sanddrop/screenshots.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".sanddrop", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("sand_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.grid.ASCII(m.sim.Params().Empty, nil)+"\n"), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	status := m.renderer.RenderStatus(m.grid.Status(), m.sim.Current(), m.sim.Stats())
	return status + "\n" + m.renderer.RenderGrid(m.grid) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for opts and blocks until it exits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
