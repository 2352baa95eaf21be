package locator

import "github.com/lixenwraith/sheetgrid/grid"

// DefaultCellHorizontalPadding is added on both sides of measured cell text
const DefaultCellHorizontalPadding = 1

// CellCoord is a resolved (row, column) pair, -1 components mean no match
type CellCoord struct {
	Row, Col int
}

// Valid returns true if both components resolved
func (c CellCoord) Valid() bool {
	return c.Row >= 0 && c.Col >= 0
}

// Locator maps screen coordinates onto grid indices and measures rendered cells
// It caches nothing but the grid reference and frozen counts, every query re-reads
// scroll offsets and bounding rects from its collaborators. Confine to the UI goroutine.
type Locator struct {
	table   TableElement
	scroll  ScrollContainer
	cells   BoundingBox
	measure TextMeasurer

	grid *grid.Grid

	// A click at the body origin maps to cell (0,0) while rows/columns are frozen,
	// and to whatever is scrolled under it otherwise
	numFrozenRows    int
	numFrozenColumns int

	padding float64
}

// New creates a locator
// table bounds valid clicks, scroll wraps the cell container, cells contains body cells only
func New(table TableElement, scroll ScrollContainer, cells BoundingBox, measure TextMeasurer) *Locator {
	return &Locator{
		table:   table,
		scroll:  scroll,
		cells:   cells,
		measure: measure,
		padding: DefaultCellHorizontalPadding,
	}
}

// --- Setters ---

// SetGrid replaces the grid used for subsequent queries
func (l *Locator) SetGrid(g *grid.Grid) *Locator {
	l.grid = g
	return l
}

// SetNumFrozenRows sets the count of leading rows exempt from scrolling
func (l *Locator) SetNumFrozenRows(n int) *Locator {
	l.numFrozenRows = n
	return l
}

// SetNumFrozenColumns sets the count of leading columns exempt from scrolling
func (l *Locator) SetNumFrozenColumns(n int) *Locator {
	l.numFrozenColumns = n
	return l
}

// SetCellHorizontalPadding sets padding added on each side of measured cell text
func (l *Locator) SetCellHorizontalPadding(p float64) *Locator {
	l.padding = p
	return l
}

// --- Getters ---

// Grid returns the current grid, nil before the first SetGrid
func (l *Locator) Grid() *grid.Grid {
	return l.grid
}

// NumFrozenRows returns frozen row count
func (l *Locator) NumFrozenRows() int {
	return l.numFrozenRows
}

// NumFrozenColumns returns frozen column count
func (l *Locator) NumFrozenColumns() int {
	return l.numFrozenColumns
}

// ViewportRect returns the visible window of the scroll container in its local frame
func (l *Locator) ViewportRect() grid.Rect {
	return grid.Rect{
		Left:   l.scroll.ScrollLeft(),
		Top:    l.scroll.ScrollTop(),
		Width:  l.scroll.ClientWidth(),
		Height: l.scroll.ClientHeight(),
	}
}

// HasVerticalOverflowOrExactFit reports whether rows fill or overflow the viewport below the header
// Exact fit counts: the layout still needs the overflow treatment at that size
func (l *Locator) HasVerticalOverflowOrExactFit(columnHeaderHeight float64, viewport grid.Rect) bool {
	if l.grid == nil {
		return false
	}
	return l.grid.Height() >= viewport.Height-columnHeaderHeight
}

// HasHorizontalOverflowOrExactFit reports whether columns fill or overflow the viewport beside the row header
func (l *Locator) HasHorizontalOverflowOrExactFit(rowHeaderWidth float64, viewport grid.Rect) bool {
	if l.grid == nil {
		return false
	}
	return l.grid.Width() >= viewport.Width-rowHeaderWidth
}

// VerticalOverflowOrExactFit is HasVerticalOverflowOrExactFit with the minimum header height
// and a freshly read viewport
func (l *Locator) VerticalOverflowOrExactFit() bool {
	if l.grid == nil {
		return false
	}
	return l.HasVerticalOverflowOrExactFit(grid.MinColumnHeaderHeight, l.ViewportRect())
}

// HorizontalOverflowOrExactFit is HasHorizontalOverflowOrExactFit with the minimum row header width
// and a freshly read viewport
func (l *Locator) HorizontalOverflowOrExactFit() bool {
	if l.grid == nil {
		return false
	}
	return l.HasHorizontalOverflowOrExactFit(grid.MinRowHeaderWidth, l.ViewportRect())
}

// --- Converters ---

// ConvertPointToColumn returns the column under screen x, -1 when x is outside the table
// With useMidpoint the result is the column whose left edge is closest, splitting on column
// midpoints, and may equal NumCols() for points past the last midpoint
func (l *Locator) ConvertPointToColumn(clientX float64, useMidpoint bool) int {
	if l.grid == nil || !l.table.BoundingRect().ContainsX(clientX) {
		return -1
	}
	return l.grid.Columns().Locate(l.toGridX(clientX), useMidpoint)
}

// ConvertPointToRow returns the row under screen y, -1 when y is outside the table
// With useMidpoint the result is the row whose top edge is closest
func (l *Locator) ConvertPointToRow(clientY float64, useMidpoint bool) int {
	if l.grid == nil || !l.table.BoundingRect().ContainsY(clientY) {
		return -1
	}
	return l.grid.Rows().Locate(l.toGridY(clientY), useMidpoint)
}

// ConvertPointToCell resolves both axes without checking the table bounds
// Points outside the table clamp to edge cells; callers needing bounds use ConvertPointToColumn/Row
func (l *Locator) ConvertPointToCell(clientX, clientY float64) CellCoord {
	if l.grid == nil {
		return CellCoord{Row: -1, Col: -1}
	}
	return CellCoord{
		Row: l.grid.Rows().Locate(l.toGridY(clientY), false),
		Col: l.grid.Columns().Locate(l.toGridX(clientX), false),
	}
}

// toGridX converts screen x into grid-local x
func (l *Locator) toGridX(clientX float64) float64 {
	scrollLeft := l.scroll.ScrollLeft()
	raw := clientX - (l.cells.BoundingRect().Left + scrollLeft)
	x := ClassifyAndTranslate(raw, frozenExtent(l.grid.Columns(), l.numFrozenColumns), scrollLeft)
	return x
}

// toGridY converts screen y into grid-local y
func (l *Locator) toGridY(clientY float64) float64 {
	scrollTop := l.scroll.ScrollTop()
	raw := clientY - (l.cells.BoundingRect().Top + scrollTop)
	y := ClassifyAndTranslate(raw, frozenExtent(l.grid.Rows(), l.numFrozenRows), scrollTop)
	return y
}

// frozenExtent returns the size covered by the first n entries, NoFrozenRegion when n <= 0
func frozenExtent(a grid.Axis, n int) float64 {
	if n <= 0 {
		return NoFrozenRegion
	}
	if n > a.Len() {
		n = a.Len()
	}
	return a.Before(n)
}
