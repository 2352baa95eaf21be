package locator

// NoFrozenRegion is the frozen extent used when an axis has no frozen entries
const NoFrozenRegion = -1.0

// ClassifyAndTranslate converts a viewport-relative offset into grid-local space
// Offsets at or before frozenExtent sit over frozen entries, which never scroll, and are returned as-is.
// Everything else is shifted by the scroll offset. A negative frozenExtent disables the frozen region.
func ClassifyAndTranslate(raw, frozenExtent, scroll float64) float64 {
	if frozenExtent >= 0 && raw <= frozenExtent {
		return raw
	}
	return raw + scroll
}
