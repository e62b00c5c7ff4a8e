package core

import "strings"

// Grid is an in-memory cell substrate: a fixed width × height array of
// colors plus the status line shown above it. Hosts render it; the
// simulation reads and paints it by coordinate.
type Grid struct {
	width  int
	height int
	cells  []Color
	status string
	border int
}

// NewGrid allocates a grid with every cell set to fill.
func NewGrid(width, height int, fill Color) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Color, width*height),
	}
	g.Fill(fill)
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Bounds returns the grid rectangle anchored at the origin.
func (g *Grid) Bounds() Rect {
	return NewRect(0, 0, g.width, g.height)
}

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return g.Bounds().Contains(x, y)
}

// Color returns the color at (x, y).
// Out-of-bounds coordinates return the zero color.
func (g *Grid) Color(x, y int) Color {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.cells[y*g.width+x]
}

// SetColor paints a single cell. Out-of-bounds coordinates are ignored.
func (g *Grid) SetColor(x, y int, c Color) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = c
}

// Fill paints every cell with c.
func (g *Grid) Fill(c Color) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// SetStatus replaces the status line text.
func (g *Grid) SetStatus(text string) {
	g.status = text
}

// Status returns the status line text.
func (g *Grid) Status() string {
	return g.status
}

// SetBorder records the cell border width. Terminal hosts draw no borders,
// so the value is kept only for hosts that can.
func (g *Grid) SetBorder(width int) {
	g.border = width
}

// Border returns the recorded border width.
func (g *Grid) Border() int {
	return g.border
}

// Count returns how many cells hold exactly c.
func (g *Grid) Count(c Color) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Row returns a copy of row y, or nil when y is out of range.
func (g *Grid) Row(y int) []Color {
	if y < 0 || y >= g.height {
		return nil
	}
	row := make([]Color, g.width)
	copy(row, g.cells[y*g.width:(y+1)*g.width])
	return row
}

// ASCII renders the grid one rune per cell: empty cells become '.', every
// other color is looked up in glyphs and falls back to '#'.
func (g *Grid) ASCII(empty Color, glyphs map[Color]rune) string {
	var sb strings.Builder
	sb.Grow(g.width*g.height + g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < g.width; x++ {
			c := g.cells[y*g.width+x]
			switch r, ok := glyphs[c]; {
			case c == empty:
				sb.WriteRune('.')
			case ok:
				sb.WriteRune(r)
			default:
				sb.WriteRune('#')
			}
		}
	}
	return sb.String()
}
