// Package tui provides immediate-mode drawing primitives over a tcell-compatible surface.
//
// Core abstraction is Region, a clipped rectangle of a Surface. Both tcell.Screen and the
// off-screen CellBuffer satisfy Surface, so the same paint code serves the interactive
// front end, the bubbletea view and headless measurement.
//
// Usage pattern:
//
//	buf := tui.NewCellBuffer(w, h)
//	root := tui.NewRegion(buf, 0, 0, w, h)
//	root.Fill(tcell.StyleDefault)
//	header := root.Sub(0, 0, w, 1)
//	header.Text(0, 0, "Name", style)
package tui
