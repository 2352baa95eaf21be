package app

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/sheetgrid/feedback"
	"github.com/lixenwraith/sheetgrid/grid"
	"github.com/lixenwraith/sheetgrid/locator"
	"github.com/lixenwraith/sheetgrid/render"
	"github.com/lixenwraith/sheetgrid/tui"
)

const (
	doubleClickWindow = 400 * time.Millisecond
	minColumnWidth    = 1
	wheelStep         = 3
)

// Controller turns pointer and key input into selection, scrolling, resizing and auto-size
// It is front end agnostic, positions are screen cells in the surface the sheet paints to
type Controller struct {
	sheet   *render.Sheet
	loc     *locator.Locator
	player  feedback.Player
	surface tui.Surface // repainted before measuring

	// Pointer state
	buttonDown  bool
	resizing    int // column under resize, -1 when idle
	resizeX     int
	resizeWidth float64
	lastClick   time.Time
	lastTarget  clickTarget
}

// clickTarget identifies what a press landed on, used for double-click matching
type clickTarget struct {
	area  area
	index int
}

type area uint8

const (
	areaNone area = iota
	areaBody
	areaColumnHeader
	areaGutter
)

// NewController binds a locator to sheet, surface receives refresh paints before measurement
func NewController(sheet *render.Sheet, surface tui.Surface, player feedback.Player) *Controller {
	if player == nil {
		player = feedback.Nop{}
	}
	return &Controller{
		sheet:    sheet,
		loc:      sheet.NewLocator(),
		player:   player,
		surface:  surface,
		resizing: -1,
	}
}

// Sheet returns the controlled sheet
func (c *Controller) Sheet() *render.Sheet {
	return c.sheet
}

// Locator returns the locator bound to the sheet
func (c *Controller) Locator() *locator.Locator {
	return c.loc
}

// SetSurface replaces the refresh paint target
func (c *Controller) SetSurface(s tui.Surface) {
	c.surface = s
}

// SetGrid installs g on both sheet and locator
func (c *Controller) SetGrid(g *grid.Grid) {
	c.sheet.SetGrid(g)
	c.loc.SetGrid(g)
}

// SetFrozen sets frozen counts on both sheet and locator
func (c *Controller) SetFrozen(rows, cols int) {
	c.sheet.SetFrozen(rows, cols)
	c.loc.SetNumFrozenRows(rows).SetNumFrozenColumns(cols)
}

// Status returns the selection name followed by overflow markers
func (c *Controller) Status() string {
	sel := c.sheet.Selection()
	var where string
	switch sel.Kind {
	case render.SelectCell:
		where = fmt.Sprintf("%s%d", render.ColumnLetters(sel.Col), sel.Row+1)
	case render.SelectColumn:
		where = render.ColumnLetters(sel.Col)
	case render.SelectRow:
		where = fmt.Sprintf("row %d", sel.Row+1)
	default:
		where = "-"
	}
	if c.loc.HorizontalOverflowOrExactFit() {
		where += " ↔"
	}
	if c.loc.VerticalOverflowOrExactFit() {
		where += " ↕"
	}
	if pct, ok := c.sheet.VerticalScroll(); ok {
		where += fmt.Sprintf(" %d%%", pct)
	}
	return where
}

// --- Pointer ---

// Pointer feeds one left-button sample, down reports whether the button is held
// A held sample after a press is a drag
func (c *Controller) Pointer(x, y int, down bool, when time.Time) {
	if !down {
		c.release()
		return
	}
	if c.buttonDown {
		c.drag(x)
		return
	}
	c.buttonDown = true
	c.press(x, y, when)
}

// Wheel scrolls by steps in each direction
func (c *Controller) Wheel(dx, dy int) {
	c.sheet.ScrollBy(dx*wheelStep, dy*wheelStep)
}

// press handles a fresh left-button press
func (c *Controller) press(x, y int, when time.Time) {
	target := c.hit(x, y)

	double := target.area != areaNone && target == c.lastTarget && when.Sub(c.lastClick) <= doubleClickWindow
	c.lastTarget, c.lastClick = target, when
	if double {
		// A third press starts a new sequence
		c.lastTarget = clickTarget{}
	}

	switch target.area {
	case areaColumnHeader:
		if col, ok := c.resizeHandle(x); ok {
			c.resizing = col
			c.resizeX = x
			c.resizeWidth = c.sheet.Grid().ColumnWidth(col)
			return
		}
		if double {
			c.FitColumn(target.index)
			return
		}
		c.sheet.SetSelection(render.Selection{Kind: render.SelectColumn, Col: target.index})
	case areaGutter:
		if double {
			c.FitRows()
			return
		}
		c.sheet.SetSelection(render.Selection{Kind: render.SelectRow, Row: target.index})
	case areaBody:
		cx, cy := center(x, y)
		row := c.loc.ConvertPointToRow(cy, false)
		col := c.loc.ConvertPointToColumn(cx, false)
		if row < 0 || col < 0 {
			return
		}
		c.sheet.SetSelection(render.Selection{Kind: render.SelectCell, Row: row, Col: col})
	default:
		return
	}
	c.player.Click()
}

// hit classifies a screen point into body, header or gutter
func (c *Controller) hit(x, y int) clickTarget {
	fx, fy := center(x, y)
	switch {
	case c.sheet.BodyRect().Contains(fx, fy):
		return clickTarget{area: areaBody}
	case c.sheet.HeaderRect().Contains(fx, fy):
		if col := c.loc.ConvertPointToColumn(fx, false); col >= 0 {
			return clickTarget{area: areaColumnHeader, index: col}
		}
	case c.sheet.GutterRect().Contains(fx, fy):
		if row := c.loc.ConvertPointToRow(fy, false); row >= 0 {
			return clickTarget{area: areaGutter, index: row}
		}
	}
	return clickTarget{}
}

// resizeHandle reports the column whose right separator is at screen x
// The midpoint lookup picks the nearest column edge, the separator sits just left of it
func (c *Controller) resizeHandle(x int) (int, bool) {
	cx, _ := center(x, 0)
	col := c.loc.ConvertPointToColumn(cx, true) - 1
	if col < 0 {
		return 0, false
	}
	_, right, ok := c.sheet.ColumnSpan(col)
	if !ok || right != x+1 {
		return 0, false
	}
	return col, true
}

// drag resizes the grabbed column following the pointer
func (c *Controller) drag(x int) {
	if c.resizing < 0 {
		return
	}
	width := max(c.resizeWidth+float64(x-c.resizeX), minColumnWidth)
	g := c.sheet.Grid()
	if g.ColumnWidth(c.resizing) == width {
		return
	}
	c.SetGrid(g.WithColumnWidth(c.resizing, width))
}

func (c *Controller) release() {
	if c.resizing >= 0 {
		log.Printf("app: column %d resized to %v", c.resizing, c.sheet.Grid().ColumnWidth(c.resizing))
		c.player.Snap()
	}
	c.buttonDown = false
	c.resizing = -1
}

// --- Keyboard ---

// MoveSelection moves the selected cell and scrolls it into view
// With nothing selected the first move selects the origin cell
func (c *Controller) MoveSelection(dRow, dCol int) {
	g := c.sheet.Grid()
	if g == nil || g.NumRows() == 0 || g.NumCols() == 0 {
		return
	}
	sel := c.sheet.Selection()
	if sel.Kind == render.SelectNone {
		sel = render.Selection{Kind: render.SelectCell}
	} else {
		sel.Kind = render.SelectCell
		sel.Row = clamp(sel.Row+dRow, 0, g.NumRows()-1)
		sel.Col = clamp(sel.Col+dCol, 0, g.NumCols()-1)
	}
	c.sheet.SetSelection(sel)
	c.sheet.EnsureCellVisible(sel.Row, sel.Col)
}

// FitSelection auto-sizes the selected column
func (c *Controller) FitSelection() {
	if sel := c.sheet.Selection(); sel.Kind == render.SelectCell || sel.Kind == render.SelectColumn {
		c.FitColumn(sel.Col)
	}
}

// --- Auto-size ---

// FitColumn sets the width of col to its widest rendered cell
func (c *Controller) FitColumn(col int) {
	g := c.sheet.Grid()
	if g == nil || col < 0 || col >= g.NumCols() {
		return
	}
	c.refresh()
	width := c.loc.WidestVisibleCellInColumn(col)
	if width <= 0 {
		return
	}
	c.SetGrid(g.WithColumnWidth(col, width))
	c.player.Snap()
}

// FitRows sets every row to the height of the tallest rendered body cell across columns
func (c *Controller) FitRows() {
	g := c.sheet.Grid()
	if g == nil || g.NumRows() == 0 {
		return
	}
	c.refresh()
	var tallest float64
	for col := 0; col < g.NumCols(); col++ {
		tallest = max(tallest, c.loc.TallestVisibleCellInColumn(col))
	}
	if tallest <= 0 {
		return
	}
	c.SetGrid(grid.New(grid.Uniform(g.NumRows(), tallest), g.Columns().Sizes()))
	c.player.Snap()
}

// refresh repaints so measurement sees the current layout
func (c *Controller) refresh() {
	if c.surface != nil {
		c.sheet.Paint(c.surface)
	}
}

// center returns the middle of screen cell (x, y), cell edges are column and row boundaries
func center(x, y int) (float64, float64) {
	return float64(x) + 0.5, float64(y) + 0.5
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
