package tui

import "github.com/gdamore/tcell/v2"

// thumb computes scrollbar thumb position and length along a track
func thumb(track, offset, visible, total int) (pos, length int) {
	length = (visible * track) / total
	if length < 1 {
		length = 1
	}
	if length > track {
		length = track
	}

	maxScroll := total - visible
	if maxScroll > 0 {
		pos = (offset * (track - length)) / maxScroll
	}
	if pos < 0 {
		pos = 0
	}
	if pos+length > track {
		pos = track - length
	}
	return pos, length
}

// ScrollBar draws vertical scrollbar track with thumb at column x
func ScrollBar(r Region, x int, offset, visible, total int, style tcell.Style) {
	if x < 0 || x >= r.W || r.H < 1 {
		return
	}

	track := r.H
	if total <= visible || track < 3 {
		// No scrolling needed or track too small
		r.VLine(x, '│', style.Dim(true))
		return
	}

	pos, length := thumb(track, offset, visible, total)
	for y := 0; y < track; y++ {
		ch := '░'
		if y >= pos && y < pos+length {
			ch = '█'
		}
		r.Cell(x, y, ch, style)
	}
}

// HScrollBar draws horizontal scrollbar track with thumb at line y
func HScrollBar(r Region, y int, offset, visible, total int, style tcell.Style) {
	if y < 0 || y >= r.H || r.W < 1 {
		return
	}

	track := r.W
	if total <= visible || track < 3 {
		r.HLine(y, '─', style.Dim(true))
		return
	}

	pos, length := thumb(track, offset, visible, total)
	for x := 0; x < track; x++ {
		ch := '░'
		if x >= pos && x < pos+length {
			ch = '█'
		}
		r.Cell(x, y, ch, style)
	}
}

// ScrollPercent returns scroll position as 0-100 percentage
func ScrollPercent(offset, visible, total int) int {
	if total <= visible {
		return 0
	}
	pct := (offset * 100) / (total - visible)
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}
