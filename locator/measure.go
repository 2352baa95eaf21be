package locator

import "math"

// heightParts lists content parts in preference order for height measurement
// Differently formatted cells wrap their real content at different nesting depths
var heightParts = [...]Part{PartValue, PartTruncatedFormatText, PartTruncatedText}

// WidestVisibleCellInColumn returns the width column col needs to show every rendered
// header and body cell without truncating or wrapping, 0 if nothing is rendered
func (l *Locator) WidestVisibleCellInColumn(col int) float64 {
	var maxWidth float64
	for _, el := range l.table.QueryColumnCells(l.columnQuadrant(col), col, false) {
		w := math.Ceil(l.measure.TextWidth(el)) + l.padding*2
		if w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// TallestVisibleCellInColumn returns the height the tallest rendered body cell of column col
// needs to show all its content, 0 if nothing is rendered
func (l *Locator) TallestVisibleCellInColumn(col int) float64 {
	var maxHeight float64
	for _, el := range l.table.QueryColumnCells(l.columnQuadrant(col), col, true) {
		h := contentHeight(el)
		if h > maxHeight {
			maxHeight = h
		}
	}
	return maxHeight
}

// columnQuadrant picks the always-visible copy of a column
// Frozen columns measured in the main quadrant may be scrolled out of view
func (l *Locator) columnQuadrant(col int) Quadrant {
	if col < l.numFrozenColumns {
		return QuadrantLeft
	}
	return QuadrantMain
}

// contentHeight returns the scroll height of the first recognized part, or the cell's own
func contentHeight(el Element) float64 {
	for _, p := range heightParts {
		if part, ok := el.Part(p); ok {
			return part.ScrollHeight()
		}
	}
	return el.ScrollHeight()
}
