package tui

import "github.com/gdamore/tcell/v2"

// Surface is the subset of tcell.Screen needed for painting
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// Cell is a single buffered screen cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// CellBuffer is an off-screen Surface with tcell.Screen-like access
type CellBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewCellBuffer creates a buffer with the specified dimensions
func NewCellBuffer(width, height int) *CellBuffer {
	b := &CellBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *CellBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank using exponential copy
func (b *CellBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Style: tcell.StyleDefault}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// SetContent writes a cell, combining runes are ignored
func (b *CellBuffer) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: primary, Style: style}
}

// GetContent reads a cell, width is always 1 and combining always nil
func (b *CellBuffer) GetContent(x, y int) (primary rune, combining []rune, style tcell.Style, width int) {
	if !b.inBounds(x, y) {
		return ' ', nil, tcell.StyleDefault, 1
	}
	c := b.cells[y*b.width+x]
	return c.Rune, nil, c.Style, 1
}

// Size returns buffer dimensions
func (b *CellBuffer) Size() (int, int) {
	return b.width, b.height
}

// Row returns the cells of line y, nil when out of bounds
func (b *CellBuffer) Row(y int) []Cell {
	if y < 0 || y >= b.height {
		return nil
	}
	return b.cells[y*b.width : (y+1)*b.width]
}

// Lines returns buffer content as plain text, one string per row
// Zero runes mark the trailing half of wide characters and are skipped
func (b *CellBuffer) Lines() []string {
	lines := make([]string, b.height)
	runes := make([]rune, 0, b.width)
	for y := 0; y < b.height; y++ {
		runes = runes[:0]
		for _, c := range b.Row(y) {
			if c.Rune == 0 {
				continue
			}
			runes = append(runes, c.Rune)
		}
		lines[y] = string(runes)
	}
	return lines
}

func (b *CellBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}
