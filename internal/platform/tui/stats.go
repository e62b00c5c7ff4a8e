package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sanddrop/internal/storage"
)

// MaxSessions is how many sessions the stats screen loads.
const MaxSessions = 100

// StatsKeyMap defines the key bindings for the stats screen.
type StatsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SessionColumns are the headers shared by the table and plain output.
var SessionColumns = []string{"Date", "Mode", "Grid", "Ticks", "Spawned", "Settled", "Colors", "Time"}

// SessionRow formats one session for display.
func SessionRow(s storage.Session) []string {
	return []string{
		s.CreatedAt.Format("Jan 02 15:04"),
		s.Mode,
		fmt.Sprintf("%dx%d", s.GridW, s.GridH),
		fmt.Sprintf("%d", s.Ticks),
		fmt.Sprintf("%d", s.Spawned),
		fmt.Sprintf("%d", s.Settled),
		fmt.Sprintf("%d", s.ColorChanges),
		s.Duration.Round(time.Second).String(),
	}
}

// StatsModel is the Bubble Tea model for the session history screen.
type StatsModel struct {
	sessions []storage.Session
	totals   storage.Totals
	table    table.Model
	help     help.Model
	keys     StatsKeyMap
	width    int
	height   int
	quitting bool
}

// NewStatsModel creates a stats model from loaded data.
func NewStatsModel(sessions []storage.Session, totals storage.Totals, width, height int) StatsModel {
	m := StatsModel{
		sessions: sessions,
		totals:   totals,
		help:     help.New(),
		keys:     DefaultStatsKeyMap(),
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table sized to the window.
func (m *StatsModel) createTable() table.Model {
	widths := []int{13, 8, 7, 7, 8, 8, 7, 8}
	columns := make([]table.Column, len(SessionColumns))
	for i, title := range SessionColumns {
		columns[i] = table.Column{Title: title, Width: widths[i]}
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *StatsModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		rows[i] = SessionRow(s)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("SAND SESSIONS", m.width)))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(centerText(TotalsLine(m.totals), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.sessions) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No sessions recorded yet.\nRun sanddrop play to make some sand!")))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// TotalsLine summarizes the totals in one line.
func TotalsLine(t storage.Totals) string {
	return fmt.Sprintf("%d sessions  %d ticks  %d particles  %d settled", t.Sessions, t.Ticks, t.Spawned, t.Settled)
}

// centerText pads s on the left to center it in width columns.
func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

// RunStats loads recent sessions and shows them in a table.
func RunStats(store *storage.Store, width, height int) error {
	sessions, err := store.RecentSessions(MaxSessions)
	if err != nil {
		return err
	}
	totals, err := store.Totals()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewStatsModel(sessions, totals, width, height),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
