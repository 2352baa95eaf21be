package render

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sheetgrid/grid"
	"github.com/lixenwraith/sheetgrid/locator"
	"github.com/lixenwraith/sheetgrid/tui"
)

// pane is one quadrant's clip region and the grid-local point shown at its origin
type pane struct {
	quadrant locator.Quadrant
	clip     tui.Region
	originX  int
	originY  int
	maxRow   int // exclusive row limit, frozen panes stop at the frozen count
	maxCol   int
}

// Paint draws the sheet onto surf and rebuilds the node index
// Quadrants paint main first so frozen panes overlay their scrolled copies
func (s *Sheet) Paint(surf tui.Surface) {
	s.nodes = s.nodes[:0]
	clear(s.index)
	s.syncScroll()

	root := tui.NewRegion(surf, s.x, s.y, s.w, s.h)
	root.Fill(s.theme.Background)
	if s.grid == nil || root.Empty() {
		return
	}

	cw, ch := s.clientSize()
	fx, fy := s.frozenSize()
	sx, sy := s.scrollX.Offset, s.scrollY.Offset
	rows, cols := s.grid.NumRows(), s.grid.NumCols()
	fr, fc := min(s.frozenRows, rows), min(s.frozenCols, cols)

	body := root.Sub(s.gutterWidth, s.headerHeight, cw, ch)
	header := root.Sub(s.gutterWidth, 0, cw, s.headerHeight)
	gutter := root.Sub(0, s.headerHeight, s.gutterWidth, ch)

	panes := []pane{{locator.QuadrantMain, body, sx, sy, rows, cols}}
	if fy > 0 {
		panes = append(panes, pane{locator.QuadrantTop, body.Sub(0, 0, cw, fy), sx, 0, fr, cols})
	}
	if fx > 0 {
		panes = append(panes, pane{locator.QuadrantLeft, body.Sub(0, 0, fx, ch), 0, sy, rows, fc})
	}
	if fx > 0 && fy > 0 {
		panes = append(panes, pane{locator.QuadrantTopLeft, body.Sub(0, 0, fx, fy), 0, 0, fr, fc})
	}
	for _, p := range panes {
		s.paintBody(p)
	}

	// Column headers belong to the main and frozen-left quadrants
	s.paintHeaders(pane{locator.QuadrantMain, header, sx, 0, 0, cols})
	if fx > 0 {
		s.paintHeaders(pane{locator.QuadrantLeft, header.Sub(0, 0, fx, s.headerHeight), 0, 0, 0, fc})
	}

	s.paintGutter(gutter, sy, rows)
	if fy > 0 {
		s.paintGutter(gutter.Sub(0, 0, s.gutterWidth, fy), 0, fr)
	}

	root.Sub(0, 0, s.gutterWidth, s.headerHeight).Fill(s.theme.Header)

	tui.ScrollBar(root.Sub(s.w-1, s.headerHeight, 1, ch), 0, sy, ch, cells(s.grid.Height()), s.theme.ScrollBar)
	tui.HScrollBar(root.Sub(s.gutterWidth, s.h-1, cw, 1), 0, sx, cw, cells(s.grid.Width()), s.theme.ScrollBar)
}

// visible returns the inclusive row and column ranges a pane shows
func (s *Sheet) visible(p pane) (r0, r1, c0, c1 int, ok bool) {
	window := grid.RectFromInts(p.originX, p.originY, p.clip.W, p.clip.H)
	r0, r1, rok := s.grid.RowRangeInRect(window)
	c0, c1, cok := s.grid.ColumnRangeInRect(window)
	if !rok || !cok || p.maxRow <= 0 || p.maxCol <= 0 {
		return 0, 0, 0, 0, false
	}
	return r0, min(r1, p.maxRow-1), c0, min(c1, p.maxCol-1), r0 < p.maxRow && c0 < p.maxCol
}

// paintBody paints the body cells of one pane
func (s *Sheet) paintBody(p pane) {
	if p.clip.Empty() {
		return
	}
	r0, r1, c0, c1, ok := s.visible(p)
	if !ok {
		return
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x, y, w, h := cellBox(s.grid.CellRect(row, col).Translate(-float64(p.originX), -float64(p.originY)))
			if w <= 0 || h <= 0 {
				continue
			}
			s.paintCell(p, x, y, w, h, row, col)
		}
	}
}

// paintCell paints one body cell at pane-relative x, y and records its node
func (s *Sheet) paintCell(p pane, x, y, w, h, row, col int) {
	column := s.Column(col)
	style := s.cellStyle(row, col, p.quadrant)
	fillRect(p.clip, x, y, w, h, style)
	inner := s.paintSeparator(p.clip, x, y, w, h, style)

	n := &Node{
		Quadrant: p.quadrant,
		Row:      row,
		Col:      col,
		Rect:     grid.RectFromInts(p.clip.X+x, p.clip.Y+y, w, h),
		height:   float64(h),
	}

	if column.Loading {
		p.clip.Text(x, y, tui.RepeatRune('░', inner), s.theme.Skeleton)
		s.record(n)
		return
	}

	var text string
	if s.data != nil {
		text = s.data.Cell(row, col)
	}
	n.text = text

	switch column.Format {
	case FormatTruncated, FormatValue:
		lines := tui.WrapText(text, inner)
		kind := locator.PartTruncatedText
		if column.Format == FormatValue {
			kind = locator.PartValue
		}
		n.part = &partNode{kind: kind, text: text, height: float64(len(lines))}
		drawLines(p.clip, x, y, inner, h, lines, style)
	case FormatTruncatedFormat:
		lines := tui.SplitLines(text)
		n.part = &partNode{kind: locator.PartTruncatedFormatText, text: text, height: float64(len(lines))}
		drawLines(p.clip, x, y, inner, h, lines, style)
	default:
		p.clip.Text(x, y, tui.Truncate(tui.SplitLines(text)[0], inner), style)
	}
	s.record(n)
}

// paintHeaders paints column headers of a pane into its header band
func (s *Sheet) paintHeaders(p pane) {
	if p.clip.Empty() {
		return
	}
	window := grid.RectFromInts(p.originX, 0, p.clip.W, 1)
	c0, c1, ok := s.grid.ColumnRangeInRect(window)
	if !ok {
		return
	}
	c1 = min(c1, p.maxCol-1)
	for col := c0; col <= c1; col++ {
		x, _, w, _ := cellBox(s.grid.ColumnRect(col).Translate(-float64(p.originX), 0))
		if w <= 0 {
			continue
		}
		style := s.theme.Header
		if s.selection.Kind == SelectColumn && s.selection.Col == col {
			style = s.theme.Selected.Bold(true)
		}
		fillRect(p.clip, x, 0, w, p.clip.H, style)
		inner := s.paintSeparator(p.clip, x, 0, w, p.clip.H, style)
		name := s.Column(col).Name
		p.clip.Text(x, 0, tui.Truncate(name, inner), style)

		s.record(&Node{
			Quadrant: p.quadrant,
			Row:      -1,
			Col:      col,
			Header:   true,
			Rect:     grid.RectFromInts(p.clip.X+x, p.clip.Y, w, p.clip.H),
			text:     name,
			height:   float64(p.clip.H),
		})
	}
}

// paintGutter paints 1-based row numbers for rows [0, maxRow) scrolled by originY
func (s *Sheet) paintGutter(r tui.Region, originY, maxRow int) {
	if r.Empty() {
		return
	}
	r.Fill(s.theme.Gutter)
	window := grid.RectFromInts(0, originY, 1, r.H)
	r0, r1, ok := s.grid.RowRangeInRect(window)
	if !ok {
		return
	}
	r1 = min(r1, maxRow-1)
	for row := r0; row <= r1; row++ {
		_, y, _, h := cellBox(s.grid.RowRect(row).Translate(0, -float64(originY)))
		if y < 0 || h <= 0 {
			continue
		}
		style := s.theme.Gutter
		if s.selection.Kind == SelectRow && s.selection.Row == row {
			style = s.theme.Selected
		}
		line := r.Sub(0, y, r.W-1, 1)
		line.Fill(style)
		line.TextAligned(0, strconv.Itoa(row+1), style, tui.AlignRight)
	}
}

// paintSeparator draws the right-edge column separator, returns the width left for content
func (s *Sheet) paintSeparator(r tui.Region, x, y, w, h int, style tcell.Style) int {
	if w < 2 {
		return w
	}
	fg, _, _ := s.theme.Separator.Decompose()
	sep := style.Foreground(fg)
	for dy := 0; dy < h; dy++ {
		r.Cell(x+w-1, y+dy, '│', sep)
	}
	return w - 1
}

// cellStyle picks the style for a body cell
func (s *Sheet) cellStyle(row, col int, q locator.Quadrant) tcell.Style {
	switch {
	case s.selection.covers(row, col):
		return s.theme.Selected
	case q != locator.QuadrantMain:
		return s.theme.Frozen
	case row%2 == 1 && s.theme.AltCell != (tcell.Style{}):
		return s.theme.AltCell
	default:
		return s.theme.Cell
	}
}

// record appends a node and indexes it by quadrant and column
func (s *Sheet) record(n *Node) {
	s.nodes = append(s.nodes, n)
	byCol := s.index[n.Quadrant]
	if byCol == nil {
		byCol = make(map[int][]*Node)
		s.index[n.Quadrant] = byCol
	}
	byCol[n.Col] = append(byCol[n.Col], n)
}

// fillRect fills a pane-relative rect, clipped by the region
func fillRect(r tui.Region, x, y, w, h int, style tcell.Style) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			r.Cell(x+dx, y+dy, ' ', style)
		}
	}
}

// drawLines draws up to h lines, eliding the last visible one when content continues
func drawLines(r tui.Region, x, y, w, h int, lines []string, style tcell.Style) {
	for i := 0; i < h && i < len(lines); i++ {
		line := lines[i]
		if i == h-1 && len(lines) > h {
			line += "…"
		}
		r.Text(x, y+i, tui.Truncate(line, w), style)
	}
}
