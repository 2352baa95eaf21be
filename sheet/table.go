// Package sheet loads tabular data from csv, xlsx and xls files
package sheet

import "github.com/mattn/go-runewidth"

// Table is a header row plus body rows, rows are padded to NumCols
type Table struct {
	Headers []string
	Rows    [][]string
}

// NewTable builds a table from raw records, the first record is the header row
// Ragged records are padded with empty cells
func NewTable(records [][]string) *Table {
	t := &Table{}
	if len(records) == 0 {
		return t
	}
	width := 0
	for _, rec := range records {
		width = max(width, len(rec))
	}
	t.Headers = pad(records[0], width)
	t.Rows = make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		t.Rows = append(t.Rows, pad(rec, width))
	}
	return t
}

func pad(rec []string, width int) []string {
	if len(rec) == width {
		return rec
	}
	out := make([]string, width)
	copy(out, rec)
	return out
}

// NumRows returns body row count
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumCols returns column count
func (t *Table) NumCols() int {
	return len(t.Headers)
}

// Cell returns body cell text, empty when out of range
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// Header returns the name of column col, empty when out of range
func (t *Table) Header(col int) string {
	if col < 0 || col >= len(t.Headers) {
		return ""
	}
	return t.Headers[col]
}

// NaturalWidths returns per column the widest single line among header and body, in terminal cells
func (t *Table) NaturalWidths() []int {
	widths := make([]int, t.NumCols())
	measure := func(col int, s string) {
		w := 0
		for _, line := range splitLines(s) {
			w = max(w, runewidth.StringWidth(line))
		}
		widths[col] = max(widths[col], w)
	}
	for j, h := range t.Headers {
		measure(j, h)
	}
	for _, row := range t.Rows {
		for j, c := range row {
			measure(j, c)
		}
	}
	return widths
}

// NaturalHeights returns per row the line count of the tallest cell
func (t *Table) NaturalHeights() []int {
	heights := make([]int, len(t.Rows))
	for i, row := range t.Rows {
		h := 1
		for _, c := range row {
			h = max(h, len(splitLines(c)))
		}
		heights[i] = h
	}
	return heights
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}
