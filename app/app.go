// Package app runs a sheet on a tcell screen with mouse selection, resizing and auto-size
package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sheetgrid/feedback"
	"github.com/lixenwraith/sheetgrid/render"
	"github.com/lixenwraith/sheetgrid/tui"
)

const helpText = "q quit  f fit column  r fit rows "

// App owns the screen and routes tcell events to a Controller
type App struct {
	*Controller

	screen        tcell.Screen
	width, height int
	statusStyle   tcell.Style
}

// New creates an app over an initialized screen
// The bottom line is reserved for status, the sheet takes the rest
func New(screen tcell.Screen, sheet *render.Sheet, player feedback.Player) *App {
	a := &App{
		Controller:  NewController(sheet, screen, player),
		screen:      screen,
		statusStyle: tcell.StyleDefault.Reverse(true),
	}
	a.layout()
	return a
}

func (a *App) layout() {
	a.width, a.height = a.screen.Size()
	a.sheet.SetBounds(0, 0, a.width, max(a.height-1, 0))
}

// Draw paints sheet and status line
func (a *App) Draw() {
	a.sheet.Paint(a.screen)
	a.drawStatus()
	a.screen.Show()
}

func (a *App) drawStatus() {
	if a.height < 1 {
		return
	}
	r := tui.NewRegion(a.screen, 0, a.height-1, a.width, 1)
	r.Fill(a.statusStyle)
	left := r.Text(1, 0, a.Status(), a.statusStyle) + 1
	if left+tui.DisplayWidth(helpText) < r.W {
		r.TextAligned(0, helpText, a.statusStyle, tui.AlignRight)
	}
}

// Run draws and processes events until quit
func (a *App) Run() {
	a.Draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		if a.HandleEvent(ev) {
			return
		}
		a.Draw()
	}
}

// HandleEvent applies one event, returns true when the app should quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
		a.layout()
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		a.MoveSelection(-1, 0)
	case tcell.KeyDown:
		a.MoveSelection(1, 0)
	case tcell.KeyLeft:
		a.MoveSelection(0, -1)
	case tcell.KeyRight:
		a.MoveSelection(0, 1)
	case tcell.KeyPgUp:
		a.sheet.PageUp()
	case tcell.KeyPgDn:
		a.sheet.PageDown()
	case tcell.KeyHome:
		a.sheet.ScrollHome()
	case tcell.KeyEnd:
		a.sheet.ScrollEnd()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'f':
			a.FitSelection()
		case 'r':
			a.FitRows()
		}
	}
	return false
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		a.Wheel(0, -1)
	case buttons&tcell.WheelDown != 0:
		a.Wheel(0, 1)
	case buttons&tcell.WheelLeft != 0:
		a.Wheel(-1, 0)
	case buttons&tcell.WheelRight != 0:
		a.Wheel(1, 0)
	default:
		a.Pointer(x, y, buttons&tcell.Button1 != 0, ev.When())
	}
}
