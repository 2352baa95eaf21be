package locator

import "github.com/lixenwraith/sheetgrid/grid"

type fakeBox struct {
	rect grid.Rect
}

func (b *fakeBox) BoundingRect() grid.Rect { return b.rect }

type fakeScroll struct {
	left, top     float64
	width, height float64
}

func (s *fakeScroll) ScrollLeft() float64   { return s.left }
func (s *fakeScroll) ScrollTop() float64    { return s.top }
func (s *fakeScroll) ClientWidth() float64  { return s.width }
func (s *fakeScroll) ClientHeight() float64 { return s.height }

type fakeElement struct {
	text   string
	width  float64 // measured text width reported by fakeMeasurer
	height float64
	parts  map[Part]*fakeElement
}

func (e *fakeElement) ScrollHeight() float64 { return e.height }
func (e *fakeElement) Text() string          { return e.text }
func (e *fakeElement) Part(p Part) (Element, bool) {
	part, ok := e.parts[p]
	if !ok {
		return nil, false
	}
	return part, true
}

type fakeCell struct {
	el     *fakeElement
	header bool
}

type fakeTable struct {
	fakeBox
	cells map[Quadrant]map[int][]fakeCell
}

func (t *fakeTable) add(q Quadrant, col int, header bool, el *fakeElement) {
	if t.cells == nil {
		t.cells = make(map[Quadrant]map[int][]fakeCell)
	}
	if t.cells[q] == nil {
		t.cells[q] = make(map[int][]fakeCell)
	}
	t.cells[q][col] = append(t.cells[q][col], fakeCell{el: el, header: header})
}

func (t *fakeTable) QueryColumnCells(q Quadrant, col int, bodyOnly bool) []Element {
	var out []Element
	for _, c := range t.cells[q][col] {
		if bodyOnly && c.header {
			continue
		}
		out = append(out, c.el)
	}
	return out
}

var fakeMeasurer = TextMeasurerFunc(func(el Element) float64 {
	return el.(*fakeElement).width
})

// fixture lays out a table at the screen origin with a 1-row header and 4-column gutter
// The cell container moves with scrolling the way a scrolled child's bounding rect does
type fixture struct {
	table  *fakeTable
	scroll *fakeScroll
	cells  *fakeBox
	loc    *Locator
}

const (
	fixtureHeader = 1
	fixtureGutter = 4
)

func newFixture(g *grid.Grid) *fixture {
	f := &fixture{
		table:  &fakeTable{fakeBox: fakeBox{rect: grid.NewRect(0, 0, 200, 200)}},
		scroll: &fakeScroll{width: 196, height: 199},
		cells:  &fakeBox{},
	}
	f.loc = New(f.table, f.scroll, f.cells, fakeMeasurer)
	if g != nil {
		f.loc.SetGrid(g)
	}
	f.setScroll(0, 0)
	return f
}

func (f *fixture) setScroll(left, top float64) {
	f.scroll.left = left
	f.scroll.top = top
	f.cells.rect = grid.NewRect(fixtureGutter-left, fixtureHeader-top, 1000, 1000)
}

// screenX returns the screen x at which viewport-relative offset v is displayed
func (f *fixture) screenX(v float64) float64 { return fixtureGutter + v }

// screenY returns the screen y at which viewport-relative offset v is displayed
func (f *fixture) screenY(v float64) float64 { return fixtureHeader + v }
