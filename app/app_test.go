package app

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sheetgrid/grid"
	"github.com/lixenwraith/sheetgrid/render"
)

type fakePlayer struct {
	clicks, snaps int
}

func (p *fakePlayer) Click() { p.clicks++ }
func (p *fakePlayer) Snap()  { p.snaps++ }

type mapData map[[2]int]string

func (m mapData) Cell(row, col int) string {
	return m[[2]int{row, col}]
}

// newTestApp lays out a 5x4 grid of 1x10 cells on a 30x9 screen
// Body starts at (4, 1) and is 25x6, status is line 8
func newTestApp(t *testing.T, data mapData, columns []render.Column) (*App, *fakePlayer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(30, 9)

	sheet := render.NewSheet(grid.NewUniform(5, 4, 1, 10), data, columns)
	player := &fakePlayer{}
	a := New(screen, sheet, player)
	a.Draw()
	return a, player, screen
}

func mouse(x, y int, btn tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, btn, tcell.ModNone)
}

func click(a *App, x, y int) {
	a.HandleEvent(mouse(x, y, tcell.Button1))
	a.HandleEvent(mouse(x, y, tcell.ButtonNone))
}

func screenLine(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func TestClickSelectsCell(t *testing.T) {
	a, player, _ := newTestApp(t, nil, nil)

	click(a, 4+15, 1+2)
	want := render.Selection{Kind: render.SelectCell, Row: 2, Col: 1}
	if got := a.Sheet().Selection(); got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
	if player.clicks != 1 {
		t.Errorf("Expected 1 click tone, got %d", player.clicks)
	}
}

func TestClickScrolledFrozen(t *testing.T) {
	a, _, _ := newTestApp(t, nil, nil)
	a.SetFrozen(0, 1)
	a.Sheet().ScrollTo(5, 0)

	tests := []struct {
		x, col int
	}{
		{4 + 3, 0},  // frozen band
		{4 + 12, 1}, // grid x 17
		{4 + 24, 2}, // grid x 29
	}
	for _, tt := range tests {
		click(a, tt.x, 1)
		if got := a.Sheet().Selection().Col; got != tt.col {
			t.Errorf("x=%d: Expected column %d, got %d", tt.x, tt.col, got)
		}
	}
}

func TestClickBesideFrozenBandWhileScrolled(t *testing.T) {
	a, _, _ := newTestApp(t, nil, nil)
	a.SetGrid(grid.NewUniform(20, 5, 1, 10))
	a.SetFrozen(1, 1)
	a.Sheet().ScrollTo(12, 3)
	a.Draw()

	tests := []struct {
		name     string
		x, y     int
		row, col int
	}{
		{"Frozen corner", 13, 1, 0, 0},
		{"Right of frozen column", 14, 1, 0, 2},
		{"Below frozen row", 5, 2, 4, 0},
		{"Diagonal past both bands", 14, 2, 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			click(a, tt.x, tt.y)
			want := render.Selection{Kind: render.SelectCell, Row: tt.row, Col: tt.col}
			if got := a.Sheet().Selection(); got != want {
				t.Errorf("Expected %+v, got %+v", want, got)
			}
		})
	}
}

func TestClickHeaderAndGutter(t *testing.T) {
	a, _, _ := newTestApp(t, nil, nil)

	click(a, 15, 0)
	if got := a.Sheet().Selection(); got.Kind != render.SelectColumn || got.Col != 1 {
		t.Errorf("Expected column 1 selected, got %+v", got)
	}

	click(a, 1, 4)
	if got := a.Sheet().Selection(); got.Kind != render.SelectRow || got.Row != 3 {
		t.Errorf("Expected row 3 selected, got %+v", got)
	}

	// Corner and scrollbar select nothing new
	click(a, 0, 0)
	if got := a.Sheet().Selection(); got.Kind != render.SelectRow {
		t.Errorf("Expected selection unchanged, got %+v", got)
	}
}

func TestDragResizesColumn(t *testing.T) {
	a, player, _ := newTestApp(t, nil, nil)

	// Column 0 separator is the last cell of the column, x = 13
	a.HandleEvent(mouse(13, 0, tcell.Button1))
	a.HandleEvent(mouse(16, 0, tcell.Button1))
	a.HandleEvent(mouse(16, 0, tcell.ButtonNone))

	if got := a.Sheet().Grid().ColumnWidth(0); got != 13 {
		t.Errorf("Expected width 13, got %v", got)
	}
	if a.Locator().Grid() != a.Sheet().Grid() {
		t.Error("Expected locator and sheet to share the resized grid")
	}
	if player.snaps != 1 {
		t.Errorf("Expected snap on release, got %d", player.snaps)
	}
	if got := a.Sheet().Selection(); got.Kind != render.SelectNone {
		t.Errorf("Expected resize not to select, got %+v", got)
	}
}

func TestDragClampsWidth(t *testing.T) {
	a, _, _ := newTestApp(t, nil, nil)

	a.HandleEvent(mouse(13, 0, tcell.Button1))
	a.HandleEvent(mouse(0, 0, tcell.Button1))
	a.HandleEvent(mouse(0, 0, tcell.ButtonNone))

	if got := a.Sheet().Grid().ColumnWidth(0); got != minColumnWidth {
		t.Errorf("Expected minimum width, got %v", got)
	}
}

func TestDoubleClickFitsColumn(t *testing.T) {
	a, player, _ := newTestApp(t, mapData{{0, 1}: "hello world wide"}, nil)

	click(a, 15, 0)
	click(a, 15, 0)

	if got := a.Sheet().Grid().ColumnWidth(1); got != 18 {
		t.Errorf("Expected width 16+2 padding, got %v", got)
	}
	if player.snaps != 1 {
		t.Errorf("Expected 1 snap, got %d", player.snaps)
	}
}

func TestFitRowsFromWrappedColumn(t *testing.T) {
	columns := []render.Column{{Name: "notes", Format: render.FormatTruncated}}
	a, _, _ := newTestApp(t, mapData{{0, 0}: "one two three four"}, columns)

	a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))

	g := a.Sheet().Grid()
	for i := 0; i < g.NumRows(); i++ {
		if g.RowHeight(i) != 3 {
			t.Fatalf("Expected row %d height 3, got %v", i, g.RowHeight(i))
		}
	}
	if g.NumCols() != 4 || g.ColumnWidth(0) != 10 {
		t.Errorf("Expected columns untouched")
	}
}

func TestKeys(t *testing.T) {
	a, _, _ := newTestApp(t, nil, nil)

	tests := []struct {
		name string
		ev   *tcell.EventKey
		quit bool
	}{
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{"arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.HandleEvent(tt.ev); got != tt.quit {
				t.Errorf("Expected quit=%v, got %v", tt.quit, got)
			}
		})
	}
}

func TestArrowsMoveAndScroll(t *testing.T) {
	a, _, _ := newTestApp(t, nil, nil)
	right := tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)

	a.HandleEvent(right) // first press selects the origin cell
	for i := 0; i < 5; i++ {
		a.HandleEvent(right)
	}
	if got := a.Sheet().Selection(); got.Row != 0 || got.Col != 3 {
		t.Errorf("Expected (0,3) clamped, got %+v", got)
	}
	if x, _ := a.Sheet().ScrollOffsets(); x != 15 {
		t.Errorf("Expected scroll 15 to reveal column 3, got %d", x)
	}
}

func TestPagingKeys(t *testing.T) {
	a, _, _ := newTestApp(t, nil, nil)
	a.SetGrid(grid.NewUniform(40, 4, 1, 10))
	a.Sheet().ScrollTo(5, 0)

	tests := []struct {
		key  tcell.Key
		x, y int
	}{
		{tcell.KeyPgDn, 5, 6},
		{tcell.KeyPgDn, 5, 12},
		{tcell.KeyPgUp, 5, 6},
		{tcell.KeyEnd, 5, 34},
		{tcell.KeyPgDn, 5, 34},
		{tcell.KeyHome, 0, 0},
		{tcell.KeyPgUp, 0, 0},
	}
	for i, tt := range tests {
		a.HandleEvent(tcell.NewEventKey(tt.key, 0, tcell.ModNone))
		if x, y := a.Sheet().ScrollOffsets(); x != tt.x || y != tt.y {
			t.Errorf("step %d: Expected scroll (%d,%d), got (%d,%d)", i, tt.x, tt.y, x, y)
		}
	}
}

func TestWheelScrolls(t *testing.T) {
	a, _, _ := newTestApp(t, nil, nil)

	a.HandleEvent(mouse(10, 3, tcell.WheelRight))
	if x, _ := a.Sheet().ScrollOffsets(); x != wheelStep {
		t.Errorf("Expected scroll %d, got %d", wheelStep, x)
	}
	a.HandleEvent(mouse(10, 3, tcell.WheelLeft))
	if x, _ := a.Sheet().ScrollOffsets(); x != 0 {
		t.Errorf("Expected scroll 0, got %d", x)
	}
}

func TestResizeRelayout(t *testing.T) {
	a, _, screen := newTestApp(t, nil, nil)

	screen.SetSize(40, 12)
	a.HandleEvent(tcell.NewEventResize(40, 12))
	if a.Sheet().ClientWidth() != 35 || a.Sheet().ClientHeight() != 9 {
		t.Errorf("Expected client 35x9, got %vx%v", a.Sheet().ClientWidth(), a.Sheet().ClientHeight())
	}
}

func TestStatusLine(t *testing.T) {
	a, _, screen := newTestApp(t, nil, nil)

	click(a, 4+15, 1+2)
	a.Draw()

	line := screenLine(screen, 8)
	if !strings.HasPrefix(line, " B3 ↔ ↕") {
		t.Errorf("Expected selection and overflow flags in status, got %q", line)
	}
}
