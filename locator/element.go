package locator

import "github.com/lixenwraith/sheetgrid/grid"

// Quadrant identifies which rendered copy of the table a node belongs to
// Frozen columns are painted in QuadrantLeft on top of their scrolled copy in QuadrantMain
type Quadrant uint8

const (
	QuadrantMain Quadrant = iota
	QuadrantLeft
	QuadrantTop
	QuadrantTopLeft
)

// String returns quadrant tag name
func (q Quadrant) String() string {
	switch q {
	case QuadrantMain:
		return "main"
	case QuadrantLeft:
		return "frozen-left"
	case QuadrantTop:
		return "frozen-top"
	case QuadrantTopLeft:
		return "frozen-top-left"
	default:
		return "unknown"
	}
}

// Part tags a nested content element whose scroll height is the cell's true content height
type Part uint8

const (
	PartValue Part = iota
	PartTruncatedFormatText
	PartTruncatedText
)

// String returns part tag name
func (p Part) String() string {
	switch p {
	case PartValue:
		return "value"
	case PartTruncatedFormatText:
		return "truncated-format-text"
	case PartTruncatedText:
		return "truncated-text"
	default:
		return "unknown"
	}
}

// BoundingBox exposes an element's rect in the external (screen) frame
type BoundingBox interface {
	BoundingRect() grid.Rect
}

// ScrollContainer exposes scroll offsets and visible client size
type ScrollContainer interface {
	ScrollLeft() float64
	ScrollTop() float64
	ClientWidth() float64
	ClientHeight() float64
}

// Element is a rendered header or body cell
type Element interface {
	// ScrollHeight returns the height the content needs without clipping
	ScrollHeight() float64
	// Part returns a nested content element, ok is false if the cell has none of that kind
	Part(p Part) (Element, bool)
	// Text returns the element's text content
	Text() string
}

// TableElement is the root of the rendered table
type TableElement interface {
	BoundingBox
	// QueryColumnCells returns rendered cells of column col in quadrant q
	// bodyOnly excludes header cells
	QueryColumnCells(q Quadrant, col int, bodyOnly bool) []Element
}

// TextMeasurer returns the unwrapped width of an element's text content
type TextMeasurer interface {
	TextWidth(el Element) float64
}

// TextMeasurerFunc adapts a function to TextMeasurer
type TextMeasurerFunc func(el Element) float64

// TextWidth calls f(el)
func (f TextMeasurerFunc) TextWidth(el Element) float64 {
	return f(el)
}
