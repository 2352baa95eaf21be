package tui

// ViewportScroll manages the scroll offset of one axis of a content area
// Offsets are in cells from the content origin
type ViewportScroll struct {
	Offset   int // First visible content cell
	Content  int // Total content extent
	Viewport int // Visible extent
}

// NewViewportScroll creates viewport scroll state
func NewViewportScroll() *ViewportScroll {
	return &ViewportScroll{}
}

// SetDimensions updates content and viewport extents, clamps offset
func (v *ViewportScroll) SetDimensions(content, viewport int) {
	v.Content = content
	v.Viewport = viewport
	v.clamp()
}

// MaxOffset returns maximum valid scroll offset
func (v *ViewportScroll) MaxOffset() int {
	maxOffset := v.Content - v.Viewport
	if maxOffset < 0 {
		return 0
	}
	return maxOffset
}

// CanScroll returns true if content exceeds viewport
func (v *ViewportScroll) CanScroll() bool {
	return v.Content > v.Viewport
}

// ScrollBy adjusts offset by delta
func (v *ViewportScroll) ScrollBy(delta int) {
	v.Offset += delta
	v.clamp()
}

// ScrollTo sets absolute offset
func (v *ViewportScroll) ScrollTo(pos int) {
	v.Offset = pos
	v.clamp()
}

// PageUp scrolls back by viewport extent
func (v *ViewportScroll) PageUp() {
	v.ScrollBy(-v.Viewport)
}

// PageDown scrolls forward by viewport extent
func (v *ViewportScroll) PageDown() {
	v.ScrollBy(v.Viewport)
}

// Home scrolls to start
func (v *ViewportScroll) Home() {
	v.Offset = 0
}

// End scrolls to end
func (v *ViewportScroll) End() {
	v.Offset = v.MaxOffset()
}

// EnsureVisible adjusts offset so that [pos, pos+size) is in view, leading edge wins when it cannot fit
func (v *ViewportScroll) EnsureVisible(pos, size int) {
	if pos+size > v.Offset+v.Viewport {
		v.Offset = pos + size - v.Viewport
	}
	if pos < v.Offset {
		v.Offset = pos
	}
	v.clamp()
}

func (v *ViewportScroll) clamp() {
	max := v.MaxOffset()
	if v.Offset > max {
		v.Offset = max
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}

// IsVisible returns true if content range intersects viewport
func (v *ViewportScroll) IsVisible(pos, size int) bool {
	return pos+size > v.Offset && pos < v.Offset+v.Viewport
}
