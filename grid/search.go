package grid

import "cmp"

// Search returns the smallest index in [0, limit) for which pred is true, or limit if none is
// pred must be monotonic (false...false true...true); pred(limit) is never evaluated
func Search(limit int, pred func(int) bool) int {
	lo, hi := 0, limit
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if pred(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// BinarySearch returns the smallest index i with lookup(i) >= target, clamped to limit
// lookup must be non-decreasing; flat runs resolve to their first index
func BinarySearch[T cmp.Ordered](target T, limit int, lookup func(int) T) int {
	return Search(limit, func(i int) bool {
		return lookup(i) >= target
	})
}

// BinarySearchAbove returns the smallest index i with lookup(i) > target, clamped to limit
// Used for half-open spans where a value on a boundary belongs to the next entry
func BinarySearchAbove[T cmp.Ordered](target T, limit int, lookup func(int) T) int {
	return Search(limit, func(i int) bool {
		return lookup(i) > target
	})
}
