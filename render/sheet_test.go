package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sheetgrid/grid"
	"github.com/lixenwraith/sheetgrid/locator"
	"github.com/lixenwraith/sheetgrid/tui"
)

type mapData map[[2]int]string

func (m mapData) Cell(row, col int) string {
	return m[[2]int{row, col}]
}

// newTestSheet builds a 5x4 sheet of 1x10 cells on a 30x8 table
// Body starts at (4, 1) and is 25x6
func newTestSheet(data mapData, columns []Column) *Sheet {
	s := NewSheet(grid.NewUniform(5, 4, 1, 10), data, columns)
	s.SetBounds(0, 0, 30, 8)
	return s
}

func runeAt(buf *tui.CellBuffer, x, y int) rune {
	ch, _, _, _ := buf.GetContent(x, y)
	return ch
}

func TestSheetLayout(t *testing.T) {
	s := newTestSheet(nil, nil)

	if got, want := s.BodyRect(), grid.RectFromInts(4, 1, 25, 6); got != want {
		t.Errorf("Expected body %+v, got %+v", want, got)
	}
	if got, want := s.HeaderRect(), grid.RectFromInts(4, 0, 25, 1); got != want {
		t.Errorf("Expected header %+v, got %+v", want, got)
	}
	if got, want := s.GutterRect(), grid.RectFromInts(0, 1, 4, 6); got != want {
		t.Errorf("Expected gutter %+v, got %+v", want, got)
	}
	if s.ClientWidth() != 25 || s.ClientHeight() != 6 {
		t.Errorf("Expected client 25x6, got %vx%v", s.ClientWidth(), s.ClientHeight())
	}
}

func TestPaintHeadersGutterAndCells(t *testing.T) {
	data := mapData{{0, 0}: "alpha", {1, 1}: "a very long text"}
	s := newTestSheet(data, []Column{{Name: "Name"}})
	buf := tui.NewCellBuffer(30, 8)
	s.Paint(buf)

	lines := buf.Lines()
	if !strings.HasPrefix(lines[0][4:], "Name") {
		t.Errorf("Expected first header 'Name', got %q", lines[0])
	}
	if got := runeAt(buf, 14, 0); got != 'B' {
		t.Errorf("Expected synthesized header 'B' at x=14, got %q", got)
	}
	if got := runeAt(buf, 13, 0); got != '│' {
		t.Errorf("Expected separator at x=13, got %q", got)
	}
	if got := runeAt(buf, 2, 1); got != '1' {
		t.Errorf("Expected row number 1 right-aligned at x=2, got %q", got)
	}
	if !strings.HasPrefix(lines[1][4:], "alpha") {
		t.Errorf("Expected 'alpha' in first body cell, got %q", lines[1])
	}

	// FormatText truncates to the inner width
	var sb strings.Builder
	for x := 14; x < 23; x++ {
		sb.WriteRune(runeAt(buf, x, 2))
	}
	if got := sb.String(); got != "a very l…" {
		t.Errorf("Expected truncated cell text, got %q", got)
	}
}

func TestPaintSelectionStyle(t *testing.T) {
	s := newTestSheet(nil, nil)
	s.SetSelection(Selection{Kind: SelectCell, Row: 1, Col: 0})
	buf := tui.NewCellBuffer(30, 8)
	s.Paint(buf)

	_, _, style, _ := buf.GetContent(5, 2)
	if style != s.theme.Selected {
		t.Errorf("Expected selected style on (1,0)")
	}
	_, _, style, _ = buf.GetContent(5, 1)
	if style == s.theme.Selected {
		t.Errorf("Expected unselected style on (0,0)")
	}
}

func TestPaintRecordsNodes(t *testing.T) {
	s := newTestSheet(mapData{{2, 1}: "x"}, nil)
	s.Paint(tui.NewCellBuffer(30, 8))

	body := s.QueryColumnCells(locator.QuadrantMain, 1, true)
	if len(body) != 5 {
		t.Fatalf("Expected 5 body nodes in column 1, got %d", len(body))
	}
	if all := s.QueryColumnCells(locator.QuadrantMain, 1, false); len(all) != 6 {
		t.Errorf("Expected 6 nodes with header, got %d", len(all))
	}
	if body[2].Text() != "x" {
		t.Errorf("Expected row 2 text 'x', got %q", body[2].Text())
	}

	// Column 3 starts at grid x 30, past the 25-wide viewport
	if got := s.QueryColumnCells(locator.QuadrantMain, 3, false); len(got) != 0 {
		t.Errorf("Expected no nodes for unscrolled column 3, got %d", len(got))
	}
	for _, q := range []locator.Quadrant{locator.QuadrantLeft, locator.QuadrantTop, locator.QuadrantTopLeft} {
		if got := s.QueryColumnCells(q, 0, false); len(got) != 0 {
			t.Errorf("Expected no %s nodes without frozen panes, got %d", q, len(got))
		}
	}
}

func TestPaintFrozenColumn(t *testing.T) {
	s := newTestSheet(mapData{{0, 0}: "key"}, nil)
	s.SetFrozen(0, 1)
	s.ScrollTo(5, 0)
	buf := tui.NewCellBuffer(30, 8)
	s.Paint(buf)

	left := s.QueryColumnCells(locator.QuadrantLeft, 0, true)
	if len(left) != 5 {
		t.Fatalf("Expected 5 frozen nodes, got %d", len(left))
	}
	if n := left[0].(*Node); n.Rect.Left != 4 {
		t.Errorf("Expected frozen cell at x=4, got %v", n.Rect.Left)
	}
	main := s.QueryColumnCells(locator.QuadrantMain, 0, true)
	if len(main) == 0 || main[0].(*Node).Rect.Left != -1 {
		t.Errorf("Expected scrolled copy of column 0 at x=-1")
	}

	// Frozen pane paints over the scrolled copy
	if got := runeAt(buf, 4, 1); got != 'k' {
		t.Errorf("Expected frozen text at x=4, got %q", got)
	}

	// Column 1 is scrolled under the frozen band by 5 cells
	if got := runeAt(buf, 14, 0); got == 'B' {
		t.Errorf("Expected column B header hidden under frozen band")
	}
	if got := runeAt(buf, 19, 0); got != 'C' {
		t.Errorf("Expected header 'C' at x=19, got %q", got)
	}
}

func TestPaintFrozenRows(t *testing.T) {
	s := NewSheet(grid.NewUniform(20, 2, 1, 10), mapData{{0, 0}: "head"}, nil)
	s.SetBounds(0, 0, 30, 8)
	s.SetFrozen(1, 0)
	s.ScrollTo(0, 4)
	buf := tui.NewCellBuffer(30, 8)
	s.Paint(buf)

	top := s.QueryColumnCells(locator.QuadrantTop, 0, true)
	if len(top) != 1 || top[0].(*Node).Row != 0 {
		t.Fatalf("Expected frozen row 0 in top quadrant, got %d nodes", len(top))
	}
	if got := runeAt(buf, 4, 1); got != 'h' {
		t.Errorf("Expected frozen row text on first body line, got %q", got)
	}
	if got := runeAt(buf, 2, 1); got != '1' {
		t.Errorf("Expected frozen row number 1, got %q", got)
	}
	// Second body line shows row 5 (grid y 5 at scroll 4)
	if got := runeAt(buf, 2, 2); got != '6' {
		t.Errorf("Expected row number 6 under frozen row, got %q", got)
	}
}

func TestPaintPartHeights(t *testing.T) {
	data := mapData{
		{0, 0}: "one two three four",
		{1, 0}: "short",
		{0, 1}: "a\nb\nc\nd",
	}
	cols := []Column{
		{Name: "wrap", Format: FormatTruncated},
		{Name: "pre", Format: FormatTruncatedFormat},
	}
	s := newTestSheet(data, cols)
	s.Paint(tui.NewCellBuffer(30, 8))

	loc := s.NewLocator()
	if got := loc.TallestVisibleCellInColumn(0); got != 3 {
		t.Errorf("Expected wrapped height 3, got %v", got)
	}
	if got := loc.TallestVisibleCellInColumn(1); got != 4 {
		t.Errorf("Expected preformatted height 4, got %v", got)
	}
	if got := loc.TallestVisibleCellInColumn(2); got != 1 {
		t.Errorf("Expected plain height 1, got %v", got)
	}
}

func TestPaintLoadingColumn(t *testing.T) {
	s := newTestSheet(mapData{{0, 0}: "hidden"}, []Column{{Name: "L", Loading: true}})
	buf := tui.NewCellBuffer(30, 8)
	s.Paint(buf)

	if got := runeAt(buf, 4, 1); got != '░' {
		t.Errorf("Expected skeleton rune, got %q", got)
	}
	if got := s.QueryColumnCells(locator.QuadrantMain, 0, true)[0].Text(); got != "" {
		t.Errorf("Expected empty text for loading cell, got %q", got)
	}
}

func TestSheetLocatorIntegration(t *testing.T) {
	s := newTestSheet(mapData{{0, 2}: "hello world"}, nil)
	s.Paint(tui.NewCellBuffer(30, 8))
	loc := s.NewLocator()

	if got := loc.ConvertPointToCell(4+15.5, 1+2.5); got != (locator.CellCoord{Row: 2, Col: 1}) {
		t.Errorf("Expected (2,1), got %+v", got)
	}
	if got := loc.WidestVisibleCellInColumn(2); got != 13 {
		t.Errorf("Expected widest 11+2 padding, got %v", got)
	}

	s.ScrollTo(5, 0)
	if got := loc.ConvertPointToColumn(4+15.5, false); got != 2 {
		t.Errorf("Expected column 2 after scroll, got %d", got)
	}

	s.SetFrozen(0, 1)
	loc.SetNumFrozenColumns(1)
	if got := loc.ConvertPointToColumn(4+3.5, false); got != 0 {
		t.Errorf("Expected frozen column 0, got %d", got)
	}
	if got := loc.ConvertPointToColumn(4+12.5, false); got != 1 {
		t.Errorf("Expected column 1 beside frozen band, got %d", got)
	}
	if got := loc.ConvertPointToColumn(40, false); got != -1 {
		t.Errorf("Expected -1 outside table, got %d", got)
	}
}

// paintedAt returns the body node drawn last over screen point (x, y)
func paintedAt(s *Sheet, x, y float64) *Node {
	nodes := s.Nodes()
	for i := len(nodes) - 1; i >= 0; i-- {
		if n := nodes[i]; !n.Header && n.Rect.Contains(x, y) {
			return n
		}
	}
	return nil
}

func TestLocatorMatchesPaintedCells(t *testing.T) {
	s := NewSheet(grid.NewUniform(20, 5, 1, 10), nil, nil)
	s.SetBounds(0, 0, 30, 8)
	s.SetFrozen(1, 1)
	s.ScrollTo(12, 3)
	s.Paint(tui.NewCellBuffer(30, 8))
	loc := s.NewLocator()

	body := s.BodyRect()
	for y := int(body.Top); y < int(body.Bottom()); y++ {
		for x := int(body.Left); x < int(body.Right()); x++ {
			cx, cy := float64(x)+0.5, float64(y)+0.5
			n := paintedAt(s, cx, cy)
			if n == nil {
				t.Fatalf("screen (%d,%d): nothing painted", x, y)
			}
			got := loc.ConvertPointToCell(cx, cy)
			if got.Row != n.Row || got.Col != n.Col {
				t.Errorf("screen (%d,%d): painted (%d,%d), located (%d,%d)", x, y, n.Row, n.Col, got.Row, got.Col)
			}
		}
	}

	// First cells past the frozen bands
	if n := paintedAt(s, 14.5, 1.5); n == nil || n.Col != 2 {
		t.Errorf("Expected column 2 right of the frozen column, got %+v", n)
	}
	if n := paintedAt(s, 4.5, 2.5); n == nil || n.Row != 4 {
		t.Errorf("Expected row 4 below the frozen row, got %+v", n)
	}
}

func TestSheetOnSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(30, 8)

	s := newTestSheet(mapData{{0, 0}: "sim"}, nil)
	s.Paint(screen)
	screen.Show()

	if ch, _, _, _ := screen.GetContent(4, 1); ch != 's' {
		t.Errorf("Expected 's' on simulation screen, got %q", ch)
	}
}

func TestEnsureCellVisible(t *testing.T) {
	s := newTestSheet(nil, nil)

	s.EnsureCellVisible(0, 3)
	if x, _ := s.ScrollOffsets(); x != 15 {
		t.Errorf("Expected scroll 15 to reveal column 3, got %d", x)
	}
	s.EnsureCellVisible(0, 0)
	if x, _ := s.ScrollOffsets(); x != 0 {
		t.Errorf("Expected scroll 0 to reveal column 0, got %d", x)
	}

	s.SetFrozen(0, 1)
	s.ScrollTo(15, 0)
	s.EnsureCellVisible(0, 1)
	if x, _ := s.ScrollOffsets(); x != 0 {
		t.Errorf("Expected column 1 placed beside frozen band, got %d", x)
	}
}

func TestVerticalScroll(t *testing.T) {
	s := newTestSheet(nil, nil)
	if _, ok := s.VerticalScroll(); ok {
		t.Error("Expected no vertical scroll when rows fit")
	}

	s.SetGrid(grid.NewUniform(26, 4, 1, 10))
	s.PageDown()
	if pct, ok := s.VerticalScroll(); !ok || pct != 30 {
		t.Errorf("Expected 30%% after one page, got %d ok=%v", pct, ok)
	}
	s.ScrollEnd()
	if pct, _ := s.VerticalScroll(); pct != 100 {
		t.Errorf("Expected 100%% at the end, got %d", pct)
	}
}

func TestSetGridClampsScroll(t *testing.T) {
	s := newTestSheet(nil, nil)
	s.ScrollTo(15, 0)
	s.SetGrid(grid.NewUniform(5, 2, 1, 10))
	if x, _ := s.ScrollOffsets(); x != 0 {
		t.Errorf("Expected scroll clamped to 0, got %d", x)
	}
}

func TestColumnSpan(t *testing.T) {
	s := newTestSheet(nil, nil)
	s.SetFrozen(0, 1)
	s.ScrollTo(5, 0)

	tests := []struct {
		col         int
		left, right int
		ok          bool
	}{
		{0, 4, 14, true},
		{1, 9, 19, true},
		{3, 29, 39, true},
		{4, 0, 0, false},
		{-1, 0, 0, false},
	}
	for _, tt := range tests {
		l, r, ok := s.ColumnSpan(tt.col)
		if l != tt.left || r != tt.right || ok != tt.ok {
			t.Errorf("ColumnSpan(%d): Expected %d,%d,%v got %d,%d,%v", tt.col, tt.left, tt.right, tt.ok, l, r, ok)
		}
	}
}
