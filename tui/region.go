package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Align specifies text alignment within a region line
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Region represents a rectangular area of a Surface
// All coordinates are relative to the region's origin
type Region struct {
	Surface Surface
	X, Y    int // Absolute position on surface
	W, H    int // Region dimensions
}

// NewRegion creates a region over surface with bounds
func NewRegion(s Surface, x, y, w, h int) Region {
	return Region{Surface: s, X: x, Y: y, W: w, H: h}
}

// Full returns a region covering the whole surface
func Full(s Surface) Region {
	w, h := s.Size()
	return NewRegion(s, 0, 0, w, h)
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		Surface: r.Surface,
		X:       r.X + x,
		Y:       r.Y + y,
		W:       w,
		H:       h,
	}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Empty returns true if region has no area
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.Surface.SetContent(r.X+x, r.Y+y, ch, nil, style)
}

// Fill fills entire region with blanks in style
func (r Region) Fill(style tcell.Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', style)
		}
	}
}

// Text draws s starting at x, y clipped to the region, returns columns advanced
// Wide runes take two columns, a wide rune that would straddle the edge is dropped
func (r Region) Text(x, y int, s string, style tcell.Style) int {
	if y < 0 || y >= r.H {
		return 0
	}
	start := x
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > r.W {
			break
		}
		r.Cell(x, y, ch, style)
		if w == 2 {
			r.Cell(x+1, y, 0, style)
		}
		x += w
	}
	return x - start
}

// TextAligned draws s on line y aligned within the region width, truncating with … if needed
func (r Region) TextAligned(y int, s string, style tcell.Style, align Align) {
	s = Truncate(s, r.W)
	w := DisplayWidth(s)
	x := 0
	switch align {
	case AlignRight:
		x = r.W - w
	case AlignCenter:
		x = (r.W - w) / 2
	}
	r.Text(x, y, s, style)
}

// HLine draws a horizontal line across the region at y
func (r Region) HLine(y int, ch rune, style tcell.Style) {
	for x := 0; x < r.W; x++ {
		r.Cell(x, y, ch, style)
	}
}

// VLine draws a vertical line down the region at x
func (r Region) VLine(x int, ch rune, style tcell.Style) {
	for y := 0; y < r.H; y++ {
		r.Cell(x, y, ch, style)
	}
}
