package grid

// Rect is an axis-aligned rectangle in some coordinate frame
// Spans are half-open: a rect at Left 0 with Width 10 covers [0, 10)
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// NewRect creates a rect from position and dimensions
func NewRect(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// RectFromInts creates a rect from terminal cell bounds
func RectFromInts(x, y, w, h int) Rect {
	return Rect{Left: float64(x), Top: float64(y), Width: float64(w), Height: float64(h)}
}

// Right returns the exclusive right edge
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the exclusive bottom edge
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// ContainsX checks x against [Left, Right)
func (r Rect) ContainsX(x float64) bool {
	return x >= r.Left && x < r.Right()
}

// ContainsY checks y against [Top, Bottom)
func (r Rect) ContainsY(y float64) bool {
	return y >= r.Top && y < r.Bottom()
}

// Contains checks if point is within rect
func (r Rect) Contains(x, y float64) bool {
	return r.ContainsX(x) && r.ContainsY(y)
}

// Translate returns rect shifted by dx, dy
func (r Rect) Translate(dx, dy float64) Rect {
	r.Left += dx
	r.Top += dy
	return r
}
