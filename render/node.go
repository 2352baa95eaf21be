package render

import (
	"github.com/lixenwraith/sheetgrid/grid"
	"github.com/lixenwraith/sheetgrid/locator"
	"github.com/lixenwraith/sheetgrid/tui"
)

// Node is a painted header or body cell, retained until the next Paint
type Node struct {
	Quadrant locator.Quadrant
	Row      int // -1 for column headers
	Col      int
	Header   bool
	Rect     grid.Rect // Full cell rect on screen, may extend past the quadrant clip

	text   string
	height float64
	part   *partNode
}

// partNode is nested content whose scroll height is the unclipped line count
type partNode struct {
	kind   locator.Part
	text   string
	height float64
}

// ScrollHeight returns the cell's rendered height
func (n *Node) ScrollHeight() float64 {
	return n.height
}

// Text returns the cell's full text content
func (n *Node) Text() string {
	return n.text
}

// Part returns the nested content element of kind p if the cell has one
func (n *Node) Part(p locator.Part) (locator.Element, bool) {
	if n.part == nil || n.part.kind != p {
		return nil, false
	}
	return n.part, true
}

func (p *partNode) ScrollHeight() float64 { return p.height }
func (p *partNode) Text() string          { return p.text }

// Part returns nothing, parts do not nest
func (p *partNode) Part(locator.Part) (locator.Element, bool) {
	return nil, false
}

// RuneWidthMeasurer measures element text in terminal columns, widest line wins
type RuneWidthMeasurer struct{}

// TextWidth returns the unwrapped width of el's text
func (RuneWidthMeasurer) TextWidth(el locator.Element) float64 {
	return float64(tui.MaxLineWidth(el.Text()))
}
