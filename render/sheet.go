package render

import (
	"math"

	"github.com/lixenwraith/sheetgrid/grid"
	"github.com/lixenwraith/sheetgrid/locator"
	"github.com/lixenwraith/sheetgrid/tui"
)

// Data supplies cell text
type Data interface {
	Cell(row, col int) string
}

// SelectionKind tells what a Selection covers
type SelectionKind uint8

const (
	SelectNone SelectionKind = iota
	SelectCell
	SelectColumn
	SelectRow
)

// Selection is the highlighted cell, column or row
type Selection struct {
	Kind     SelectionKind
	Row, Col int
}

// covers returns true if (row, col) is highlighted, row -1 addresses the column header
func (s Selection) covers(row, col int) bool {
	switch s.Kind {
	case SelectCell:
		return row == s.Row && col == s.Col
	case SelectColumn:
		return col == s.Col
	case SelectRow:
		return row == s.Row && row >= 0
	default:
		return false
	}
}

// Sheet paints a grid with frozen panes and headers, and retains the painted nodes
// It is the table element, scroll container and cell container a locator reads from
type Sheet struct {
	grid    *grid.Grid
	data    Data
	columns []Column
	theme   Theme

	frozenRows int
	frozenCols int

	// Table bounds on screen
	x, y, w, h int

	headerHeight int
	gutterWidth  int

	scrollX tui.ViewportScroll
	scrollY tui.ViewportScroll

	selection Selection

	nodes []*Node
	index map[locator.Quadrant]map[int][]*Node
}

// NewSheet creates a sheet over g with cell text from data
// Columns without a definition are named by ColumnLetters and use FormatText
func NewSheet(g *grid.Grid, data Data, columns []Column) *Sheet {
	s := &Sheet{
		grid:         g,
		data:         data,
		columns:      columns,
		theme:        DefaultTheme(),
		headerHeight: grid.MinColumnHeaderHeight,
		gutterWidth:  grid.MinRowHeaderWidth,
		index:        make(map[locator.Quadrant]map[int][]*Node),
	}
	s.syncScroll()
	return s
}

// --- Configuration ---

// SetGrid replaces the grid, scroll offsets are re-clamped
func (s *Sheet) SetGrid(g *grid.Grid) {
	s.grid = g
	s.syncScroll()
}

// Grid returns the current grid
func (s *Sheet) Grid() *grid.Grid {
	return s.grid
}

// SetData replaces the cell text source
func (s *Sheet) SetData(d Data) {
	s.data = d
}

// SetColumns replaces column definitions
func (s *Sheet) SetColumns(columns []Column) {
	s.columns = columns
}

// SetTheme replaces paint styles
func (s *Sheet) SetTheme(t Theme) {
	s.theme = t
}

// SetFrozen sets frozen row and column counts
func (s *Sheet) SetFrozen(rows, cols int) {
	s.frozenRows = max(rows, 0)
	s.frozenCols = max(cols, 0)
}

// Frozen returns frozen row and column counts
func (s *Sheet) Frozen() (rows, cols int) {
	return s.frozenRows, s.frozenCols
}

// SetBounds places the table on screen
func (s *Sheet) SetBounds(x, y, w, h int) {
	s.x, s.y, s.w, s.h = x, y, max(w, 0), max(h, 0)
	s.syncScroll()
}

// SetHeaderSizes sets column header height and row number gutter width
func (s *Sheet) SetHeaderSizes(headerHeight, gutterWidth int) {
	s.headerHeight = max(headerHeight, 0)
	s.gutterWidth = max(gutterWidth, 0)
	s.syncScroll()
}

// HeaderSizes returns column header height and gutter width
func (s *Sheet) HeaderSizes() (headerHeight, gutterWidth int) {
	return s.headerHeight, s.gutterWidth
}

// SetSelection sets the highlighted region
func (s *Sheet) SetSelection(sel Selection) {
	s.selection = sel
}

// Selection returns the highlighted region
func (s *Sheet) Selection() Selection {
	return s.selection
}

// Column returns the definition of column j, synthesizing one if none was given
func (s *Sheet) Column(j int) Column {
	if j >= 0 && j < len(s.columns) {
		c := s.columns[j]
		if c.Name == "" {
			c.Name = ColumnLetters(j)
		}
		return c
	}
	return Column{Name: ColumnLetters(j)}
}

// --- Layout ---

// clientSize returns the body viewport size, one line and one column are kept for scrollbars
func (s *Sheet) clientSize() (w, h int) {
	return max(s.w-s.gutterWidth-1, 0), max(s.h-s.headerHeight-1, 0)
}

// BodyRect returns the screen rect of the scrollable body viewport
func (s *Sheet) BodyRect() grid.Rect {
	cw, ch := s.clientSize()
	return grid.RectFromInts(s.x+s.gutterWidth, s.y+s.headerHeight, cw, ch)
}

// HeaderRect returns the screen rect of the column header band above the body
func (s *Sheet) HeaderRect() grid.Rect {
	cw, _ := s.clientSize()
	return grid.RectFromInts(s.x+s.gutterWidth, s.y, cw, s.headerHeight)
}

// GutterRect returns the screen rect of the row number gutter beside the body
func (s *Sheet) GutterRect() grid.Rect {
	_, ch := s.clientSize()
	return grid.RectFromInts(s.x, s.y+s.headerHeight, s.gutterWidth, ch)
}

// frozenExtent returns the on-screen size of the frozen band of an axis, clipped to the viewport
func frozenExtent(a grid.Axis, n, client int) int {
	if n <= 0 {
		return 0
	}
	n = min(n, a.Len())
	return min(cells(a.Before(n)), client)
}

// frozenSize returns the frozen band width and height
func (s *Sheet) frozenSize() (fx, fy int) {
	if s.grid == nil {
		return 0, 0
	}
	cw, ch := s.clientSize()
	return frozenExtent(s.grid.Columns(), s.frozenCols, cw), frozenExtent(s.grid.Rows(), s.frozenRows, ch)
}

// cells converts a grid size to whole terminal cells, halves round up so whole-cell shifts commute
func cells(v float64) int {
	return int(math.Floor(v + 0.5))
}

// cellBox rounds a rect to whole terminal cells
func cellBox(r grid.Rect) (x, y, w, h int) {
	return cells(r.Left), cells(r.Top), cells(r.Width), cells(r.Height)
}

// --- Scrolling ---

// syncScroll refreshes scroll dimensions from grid and viewport
func (s *Sheet) syncScroll() {
	cw, ch := s.clientSize()
	var gw, gh int
	if s.grid != nil {
		gw, gh = cells(s.grid.Width()), cells(s.grid.Height())
	}
	s.scrollX.SetDimensions(gw, cw)
	s.scrollY.SetDimensions(gh, ch)
}

// ScrollBy moves the body by dx, dy cells
func (s *Sheet) ScrollBy(dx, dy int) {
	s.scrollX.ScrollBy(dx)
	s.scrollY.ScrollBy(dy)
}

// ScrollTo sets absolute scroll offsets
func (s *Sheet) ScrollTo(x, y int) {
	s.scrollX.ScrollTo(x)
	s.scrollY.ScrollTo(y)
}

// PageUp scrolls the body up by one viewport height
func (s *Sheet) PageUp() {
	s.scrollY.PageUp()
}

// PageDown scrolls the body down by one viewport height
func (s *Sheet) PageDown() {
	s.scrollY.PageDown()
}

// ScrollHome scrolls to the first row and column
func (s *Sheet) ScrollHome() {
	s.scrollX.Home()
	s.scrollY.Home()
}

// ScrollEnd scrolls to the last row, the column offset is kept
func (s *Sheet) ScrollEnd() {
	s.scrollY.End()
}

// VerticalScroll returns how far down the rows are scrolled in percent, ok is false when all rows fit
func (s *Sheet) VerticalScroll() (percent int, ok bool) {
	if !s.scrollY.CanScroll() {
		return 0, false
	}
	return tui.ScrollPercent(s.scrollY.Offset, s.scrollY.Viewport, s.scrollY.Content), true
}

// ScrollOffsets returns current scroll offsets
func (s *Sheet) ScrollOffsets() (x, y int) {
	return s.scrollX.Offset, s.scrollY.Offset
}

// EnsureCellVisible scrolls so that cell (row, col) is not hidden by scrolling or frozen panes
func (s *Sheet) EnsureCellVisible(row, col int) {
	if s.grid == nil {
		return
	}
	fx, fy := s.frozenSize()
	if col >= s.frozenCols && col >= 0 && col < s.grid.NumCols() {
		x, _, w, _ := cellBox(s.grid.ColumnRect(col))
		s.scrollX.EnsureVisible(x-fx, w+fx)
	}
	if row >= s.frozenRows && row >= 0 && row < s.grid.NumRows() {
		_, y, _, h := cellBox(s.grid.RowRect(row))
		s.scrollY.EnsureVisible(y-fy, h+fy)
	}
}

// ColumnSpan returns the screen x range [left, right) of column col, frozen columns ignore scrolling
func (s *Sheet) ColumnSpan(col int) (left, right int, ok bool) {
	if s.grid == nil || col < 0 || col >= s.grid.NumCols() {
		return 0, 0, false
	}
	r := s.grid.ColumnRect(col).Translate(float64(s.x+s.gutterWidth), 0)
	if col >= s.frozenCols {
		r = r.Translate(-s.ScrollLeft(), 0)
	}
	left, _, w, _ := cellBox(r)
	return left, left + w, true
}

// --- locator collaborators ---

// BoundingRect returns the table rect on screen, headers and scrollbars included
func (s *Sheet) BoundingRect() grid.Rect {
	return grid.RectFromInts(s.x, s.y, s.w, s.h)
}

// ScrollLeft returns horizontal scroll offset
func (s *Sheet) ScrollLeft() float64 {
	return float64(s.scrollX.Offset)
}

// ScrollTop returns vertical scroll offset
func (s *Sheet) ScrollTop() float64 {
	return float64(s.scrollY.Offset)
}

// ClientWidth returns body viewport width
func (s *Sheet) ClientWidth() float64 {
	w, _ := s.clientSize()
	return float64(w)
}

// ClientHeight returns body viewport height
func (s *Sheet) ClientHeight() float64 {
	_, h := s.clientSize()
	return float64(h)
}

// cellContainer is the unclipped body: its origin moves opposite to scrolling
type cellContainer struct {
	s *Sheet
}

// BoundingRect returns the body rect shifted by scroll offsets
func (c cellContainer) BoundingRect() grid.Rect {
	s := c.s
	var gw, gh float64
	if s.grid != nil {
		gw, gh = s.grid.Width(), s.grid.Height()
	}
	body := s.BodyRect()
	return grid.NewRect(body.Left-s.ScrollLeft(), body.Top-s.ScrollTop(), gw, gh)
}

// CellContainer returns the element holding all body cells
func (s *Sheet) CellContainer() locator.BoundingBox {
	return cellContainer{s: s}
}

// QueryColumnCells returns nodes of column col painted in quadrant q by the last Paint
func (s *Sheet) QueryColumnCells(q locator.Quadrant, col int, bodyOnly bool) []locator.Element {
	nodes := s.index[q][col]
	out := make([]locator.Element, 0, len(nodes))
	for _, n := range nodes {
		if bodyOnly && n.Header {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Nodes returns every node painted by the last Paint
func (s *Sheet) Nodes() []*Node {
	return s.nodes
}

// NewLocator creates a locator reading from this sheet, seeded with its grid and frozen counts
func (s *Sheet) NewLocator() *locator.Locator {
	loc := locator.New(s, s, s.CellContainer(), RuneWidthMeasurer{})
	if s.grid != nil {
		loc.SetGrid(s.grid)
	}
	return loc.SetNumFrozenRows(s.frozenRows).SetNumFrozenColumns(s.frozenCols)
}
