package grid

// Axis is a prefix-sum index over a sequence of non-negative sizes
// Rows and columns are both Axis instances; the zero value is an empty axis
type Axis struct {
	sizes      []float64
	cumulative []float64
}

// NewAxis builds an axis from sizes, negative sizes are treated as zero
func NewAxis(sizes []float64) Axis {
	a := Axis{
		sizes:      make([]float64, len(sizes)),
		cumulative: make([]float64, len(sizes)),
	}
	var sum float64
	for i, s := range sizes {
		if s < 0 {
			s = 0
		}
		a.sizes[i] = s
		sum += s
		a.cumulative[i] = sum
	}
	return a
}

// Uniform returns n copies of size
func Uniform(n int, size float64) []float64 {
	if n <= 0 {
		return nil
	}
	sizes := make([]float64, n)
	for i := range sizes {
		sizes[i] = size
	}
	return sizes
}

// Len returns entry count
func (a Axis) Len() int {
	return len(a.sizes)
}

// Size returns the size of entry i
func (a Axis) Size(i int) float64 {
	return a.sizes[i]
}

// Sizes returns a copy of the entry sizes
func (a Axis) Sizes() []float64 {
	out := make([]float64, len(a.sizes))
	copy(out, a.sizes)
	return out
}

// At returns the sum of sizes 0..i inclusive, i must be in [0, Len()-1]
func (a Axis) At(i int) float64 {
	return a.cumulative[i]
}

// Before returns the sum of sizes 0..i exclusive
// i may equal Len(), giving the extent of every entry
func (a Axis) Before(i int) float64 {
	if i == 0 {
		return 0
	}
	return a.cumulative[i-1]
}

// Midpoint returns the center of entry i
func (a Axis) Midpoint(i int) float64 {
	return (a.Before(i) + a.At(i)) / 2
}

// Total returns the full extent, 0 for an empty axis
func (a Axis) Total() float64 {
	if len(a.cumulative) == 0 {
		return 0
	}
	return a.cumulative[len(a.cumulative)-1]
}

// Locate maps an axis-local offset to an entry index
// Without midpoint snapping the result is the first entry with At(i) >= offset, so an offset on a
// boundary resolves to the preceding entry; offsets past the end clamp to the last entry.
// Callers sampling whole cells pass cell centres. With midpoint snapping the result is the
// entry whose leading edge is closest, Len() when offset lies beyond the last midpoint.
// Returns -1 for an empty axis.
func (a Axis) Locate(offset float64, useMidpoint bool) int {
	n := len(a.sizes)
	if n == 0 {
		return -1
	}
	if useMidpoint {
		return BinarySearch(offset, n, a.Midpoint)
	}
	return BinarySearch(offset, n-1, a.At)
}

// Range returns the inclusive index range of entries intersecting [start, end)
// ok is false when the axis is empty or the interval lies outside the axis
func (a Axis) Range(start, end float64) (first, last int, ok bool) {
	n := len(a.sizes)
	if n == 0 || end <= start || end <= 0 || start >= a.Total() {
		return 0, 0, false
	}
	first = BinarySearchAbove(start, n-1, a.At)
	last = BinarySearch(end, n-1, a.At)
	return first, last, true
}

// With returns a new axis with entry i resized
func (a Axis) With(i int, size float64) Axis {
	sizes := a.Sizes()
	sizes[i] = size
	return NewAxis(sizes)
}
