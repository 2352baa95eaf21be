package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lixenwraith/sheetgrid/render"
	"github.com/lixenwraith/sheetgrid/tui"
)

// maxReportRows bounds the off-screen paint used for measurement
const maxReportRows = 1000

// report paints the whole sheet off-screen and tabulates per-column measurements
// Only the first maxReportRows rows are measured
func report(s *render.Sheet, padding float64) string {
	g := s.Grid()
	headerHeight, gutter := s.HeaderSizes()

	rows := min(g.NumRows(), maxReportRows)
	w := gutter + int(g.Width()) + 1
	h := headerHeight + int(g.CumulativeHeightBefore(rows)) + 1
	buf := tui.NewCellBuffer(w, h)

	// Measuring needs every column visible, frozen panes would only duplicate nodes
	frozenRows, frozenCols := s.Frozen()
	s.SetFrozen(0, 0)
	s.SetBounds(0, 0, w, h)
	s.ScrollTo(0, 0)
	s.Paint(buf)
	s.SetFrozen(frozenRows, frozenCols)

	loc := s.NewLocator().SetNumFrozenRows(0).SetNumFrozenColumns(0).SetCellHorizontalPadding(padding)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "column", "width", "fit width", "fit height")
	for j := 0; j < g.NumCols(); j++ {
		t.Row(
			render.ColumnLetters(j),
			s.Column(j).Name,
			fmt.Sprint(g.ColumnWidth(j)),
			fmt.Sprint(loc.WidestVisibleCellInColumn(j)),
			fmt.Sprint(loc.TallestVisibleCellInColumn(j)),
		)
	}
	return fmt.Sprintf("%d rows x %d columns (measured %d rows)\n%s\n", g.NumRows(), g.NumCols(), rows, t.String())
}
