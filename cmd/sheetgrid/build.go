package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/sheetgrid/config"
	"github.com/lixenwraith/sheetgrid/grid"
	"github.com/lixenwraith/sheetgrid/render"
	"github.com/lixenwraith/sheetgrid/sheet"
)

// maxAutoWidth caps content-derived column widths
const maxAutoWidth = 40

// buildSheet lays out table according to cfg
// Columns take their names from the table header unless [[columns]] names them
func buildSheet(cfg *config.Config, table *sheet.Table) *render.Sheet {
	n := table.NumCols()

	widths := cfg.ColumnWidths(n)
	if cfg.Grid.AutoSize {
		pad := 2 * cfg.Grid.CellPadding
		for j, w := range table.NaturalWidths() {
			if j < len(cfg.Columns) && cfg.Columns[j].Width > 0 {
				continue
			}
			widths[j] = min(float64(w)+pad, maxAutoWidth)
		}
	}
	heights := grid.Uniform(table.NumRows(), cfg.Grid.DefaultRowHeight)

	columns := cfg.RenderColumns()
	for len(columns) < n {
		columns = append(columns, render.Column{})
	}
	columns = columns[:n]
	for j := range columns {
		if columns[j].Name == "" {
			columns[j].Name = table.Header(j)
		}
		if columns[j].ID == "" {
			columns[j].ID = render.ColumnLetters(j)
		}
	}

	s := render.NewSheet(grid.New(heights, widths), table, columns)
	s.SetFrozen(cfg.Grid.FrozenRows, cfg.Grid.FrozenColumns)
	// Gutter grows with the row count so numbers stay readable
	gutter := max(cfg.Grid.RowHeaderWidth, len(strconv.Itoa(table.NumRows()))+1)
	s.SetHeaderSizes(cfg.Grid.ColumnHeaderHeight, gutter)
	return s
}

var demoWords = strings.Fields("alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima mike november oscar papa")

// demoTable generates a deterministic table exercising every column format
func demoTable() *sheet.Table {
	const rows = 200
	records := [][]string{{"id", "name", "notes", "multi-line", "qty", "price", "status"}}
	for i := 0; i < rows; i++ {
		w := func(k int) string { return demoWords[(i*7+k)%len(demoWords)] }
		notes := strings.Repeat(w(1)+" "+w(2)+" ", 1+i%4)
		multi := w(3)
		for k := 0; k < i%3; k++ {
			multi += "\n" + w(4+k)
		}
		records = append(records, []string{
			strconv.Itoa(i + 1),
			w(0) + "-" + w(5),
			strings.TrimSpace(notes),
			multi,
			strconv.Itoa((i * 37) % 101),
			fmt.Sprintf("%.2f", float64((i*113)%10000)/100),
			[]string{"open", "closed", "pending"}[i%3],
		})
	}
	return sheet.NewTable(records)
}
