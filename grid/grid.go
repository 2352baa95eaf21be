package grid

// Sizing defaults in terminal cells
const (
	// MinColumnHeaderHeight is the header height assumed when callers do not supply one
	MinColumnHeaderHeight = 1
	// MinRowHeaderWidth is the row-number gutter width assumed when callers do not supply one
	MinRowHeaderWidth = 4

	DefaultRowHeight   = 1
	DefaultColumnWidth = 12
)

// Grid describes a 2D index space with independent row heights and column widths
// A Grid is immutable, resizing produces a new Grid
type Grid struct {
	rows Axis
	cols Axis
}

// New builds a grid from per-row heights and per-column widths
func New(rowHeights, columnWidths []float64) *Grid {
	return &Grid{
		rows: NewAxis(rowHeights),
		cols: NewAxis(columnWidths),
	}
}

// NewUniform builds a grid with equal row heights and equal column widths
func NewUniform(numRows, numCols int, rowHeight, columnWidth float64) *Grid {
	return New(Uniform(numRows, rowHeight), Uniform(numCols, columnWidth))
}

// NumRows returns row count
func (g *Grid) NumRows() int {
	return g.rows.Len()
}

// NumCols returns column count
func (g *Grid) NumCols() int {
	return g.cols.Len()
}

// Rows returns the row axis
func (g *Grid) Rows() Axis {
	return g.rows
}

// Columns returns the column axis
func (g *Grid) Columns() Axis {
	return g.cols
}

// RowHeight returns the height of row i
func (g *Grid) RowHeight(i int) float64 {
	return g.rows.Size(i)
}

// ColumnWidth returns the width of column j
func (g *Grid) ColumnWidth(j int) float64 {
	return g.cols.Size(j)
}

// CumulativeWidthAt returns the summed width of columns 0..j inclusive
func (g *Grid) CumulativeWidthAt(j int) float64 {
	return g.cols.At(j)
}

// CumulativeHeightAt returns the summed height of rows 0..i inclusive
func (g *Grid) CumulativeHeightAt(i int) float64 {
	return g.rows.At(i)
}

// CumulativeWidthBefore returns the summed width of columns before j
func (g *Grid) CumulativeWidthBefore(j int) float64 {
	return g.cols.Before(j)
}

// CumulativeHeightBefore returns the summed height of rows before i
func (g *Grid) CumulativeHeightBefore(i int) float64 {
	return g.rows.Before(i)
}

// Width returns total grid width
func (g *Grid) Width() float64 {
	return g.cols.Total()
}

// Height returns total grid height
func (g *Grid) Height() float64 {
	return g.rows.Total()
}

// ColumnRect returns the full-height rect of column j in grid-local space
func (g *Grid) ColumnRect(j int) Rect {
	return Rect{Left: g.cols.Before(j), Top: 0, Width: g.cols.Size(j), Height: g.Height()}
}

// RowRect returns the full-width rect of row i in grid-local space
func (g *Grid) RowRect(i int) Rect {
	return Rect{Left: 0, Top: g.rows.Before(i), Width: g.Width(), Height: g.rows.Size(i)}
}

// CellRect returns the rect of cell (row, col) in grid-local space
func (g *Grid) CellRect(row, col int) Rect {
	return Rect{
		Left:   g.cols.Before(col),
		Top:    g.rows.Before(row),
		Width:  g.cols.Size(col),
		Height: g.rows.Size(row),
	}
}

// ColumnRangeInRect returns the inclusive range of columns intersecting r horizontally
func (g *Grid) ColumnRangeInRect(r Rect) (first, last int, ok bool) {
	return g.cols.Range(r.Left, r.Right())
}

// RowRangeInRect returns the inclusive range of rows intersecting r vertically
func (g *Grid) RowRangeInRect(r Rect) (first, last int, ok bool) {
	return g.rows.Range(r.Top, r.Bottom())
}

// WithColumnWidth returns a new grid with column j resized
func (g *Grid) WithColumnWidth(j int, width float64) *Grid {
	return &Grid{rows: g.rows, cols: g.cols.With(j, width)}
}
