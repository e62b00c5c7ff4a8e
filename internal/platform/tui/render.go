package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sanddrop/internal/core"
	"github.com/vovakirdan/sanddrop/internal/sim"
)

// CellWidth is the number of terminal columns per grid cell. Two columns
// make cells roughly square in most fonts.
const CellWidth = 2

// gridOriginY is the screen row of the first grid row; the status line
// sits above it.
const gridOriginY = 1

// chromeRows counts the screen rows that are not grid: status and help.
const chromeRows = 2

// FitGrid returns the largest grid that fits a terminal of the given size.
func FitGrid(termW, termH int) (width, height int) {
	return max(termW/CellWidth, 1), max(termH-chromeRows, 2)
}

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// run is a horizontal stretch of cells sharing one color.
type run struct {
	color core.Color
	n     int
}

// rowRuns groups consecutive cells with the same color.
func rowRuns(row []core.Color) []run {
	var runs []run
	for _, c := range row {
		if len(runs) > 0 && runs[len(runs)-1].color == c {
			runs[len(runs)-1].n++
			continue
		}
		runs = append(runs, run{color: c, n: 1})
	}
	return runs
}

// Renderer draws grids as background-colored blocks. Styles are cached per
// color; a grid rarely holds more than a dozen distinct colors.
type Renderer struct {
	cellWidth int
	styles    map[core.Color]lipgloss.Style
}

// NewRenderer creates a renderer using width terminal columns per cell.
func NewRenderer(width int) *Renderer {
	if width < 1 {
		width = 1
	}
	return &Renderer{cellWidth: width, styles: make(map[core.Color]lipgloss.Style)}
}

func (r *Renderer) style(c core.Color) lipgloss.Style {
	s, ok := r.styles[c]
	if !ok {
		s = lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))
		r.styles[c] = s
	}
	return s
}

// RenderGrid converts the grid to a styled string, one line per row.
// Adjacent cells with the same color share one escape sequence.
func (r *Renderer) RenderGrid(g *core.Grid) string {
	var sb strings.Builder
	sb.Grow(g.Width()*g.Height()*r.cellWidth + g.Height())

	for y := range g.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, rn := range rowRuns(g.Row(y)) {
			sb.WriteString(r.style(rn.color).Render(strings.Repeat(" ", rn.n*r.cellWidth)))
		}
	}
	return sb.String()
}

// RenderStatus draws the status line: the grid's status text, a swatch of
// the color the next particle will get and the live counters.
func (r *Renderer) RenderStatus(status string, current core.Color, stats sim.Stats) string {
	swatch := r.style(current).Render(strings.Repeat(" ", r.cellWidth))
	info := fmt.Sprintf("falling %d  settled %d  tick %d", stats.Active(), stats.Settled, stats.Ticks)
	return statusStyle.Render(status) + " " + swatch + " " + infoStyle.Render(info)
}
