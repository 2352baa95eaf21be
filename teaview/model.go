// Package teaview renders a sheet as a bubbletea program
package teaview

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sheetgrid/app"
	"github.com/lixenwraith/sheetgrid/feedback"
	"github.com/lixenwraith/sheetgrid/render"
	"github.com/lixenwraith/sheetgrid/tui"
)

var (
	statusStyle = lipgloss.NewStyle().Reverse(true)
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

// Model is a tea.Model painting a sheet into an off-screen buffer
type Model struct {
	ctl    *app.Controller
	buf    *tui.CellBuffer
	styles map[tcell.Style]lipgloss.Style

	width, height int
	now           func() time.Time
}

// New creates a model over sheet, the sheet is laid out on the first WindowSizeMsg
func New(sheet *render.Sheet, player feedback.Player) Model {
	buf := tui.NewCellBuffer(0, 0)
	return Model{
		ctl:    app.NewController(sheet, buf, player),
		buf:    buf,
		styles: make(map[tcell.Style]lipgloss.Style),
		now:    time.Now,
	}
}

// Controller returns the input controller
func (m Model) Controller() *app.Controller {
	return m.ctl
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.buf.Resize(m.width, max(m.height-1, 0))
		m.ctl.Sheet().SetBounds(0, 0, m.width, max(m.height-1, 0))
		return m, nil
	case tea.MouseMsg:
		m.updateMouse(msg)
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.ctl.MoveSelection(-1, 0)
	case "down", "j":
		m.ctl.MoveSelection(1, 0)
	case "left", "h":
		m.ctl.MoveSelection(0, -1)
	case "right", "l":
		m.ctl.MoveSelection(0, 1)
	case "pgup":
		m.ctl.Sheet().PageUp()
	case "pgdown":
		m.ctl.Sheet().PageDown()
	case "home":
		m.ctl.Sheet().ScrollHome()
	case "end":
		m.ctl.Sheet().ScrollEnd()
	case "f":
		m.ctl.FitSelection()
	case "r":
		m.ctl.FitRows()
	}
	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.ctl.Wheel(0, -1)
		return
	case tea.MouseButtonWheelDown:
		m.ctl.Wheel(0, 1)
		return
	case tea.MouseButtonWheelLeft:
		m.ctl.Wheel(-1, 0)
		return
	case tea.MouseButtonWheelRight:
		m.ctl.Wheel(1, 0)
		return
	}

	switch msg.Action {
	case tea.MouseActionPress, tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			m.ctl.Pointer(msg.X, msg.Y, true, m.now())
		}
	case tea.MouseActionRelease:
		m.ctl.Pointer(msg.X, msg.Y, false, m.now())
	}
}

func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	m.buf.Clear()
	m.ctl.Sheet().Paint(m.buf)

	var b strings.Builder
	_, h := m.buf.Size()
	for y := 0; y < h; y++ {
		m.renderRow(&b, m.buf.Row(y))
		b.WriteString("\n")
	}

	status := " " + m.ctl.Status()
	if hint := "q quit  f fit column  r fit rows "; tui.DisplayWidth(status)+tui.DisplayWidth(hint) < m.width {
		status = tui.PadRight(status, m.width-tui.DisplayWidth(hint)) + hintStyle.Render(hint)
	}
	b.WriteString(statusStyle.Render(tui.PadRight(status, m.width)))
	return b.String()
}

// renderRow writes one buffer row, grouping runs of equal style into one lipgloss render
func (m Model) renderRow(b *strings.Builder, cells []tui.Cell) {
	var run strings.Builder
	var runStyle tcell.Style
	flush := func() {
		if run.Len() == 0 {
			return
		}
		b.WriteString(m.style(runStyle).Render(run.String()))
		run.Reset()
	}
	for i, c := range cells {
		if c.Rune == 0 {
			continue // trailing half of a wide rune
		}
		if i > 0 && c.Style != runStyle {
			flush()
		}
		runStyle = c.Style
		run.WriteRune(c.Rune)
	}
	flush()
}

// style converts a tcell style to lipgloss, memoized per style
func (m Model) style(st tcell.Style) lipgloss.Style {
	if ls, ok := m.styles[st]; ok {
		return ls
	}
	fg, bg, attr := st.Decompose()
	ls := lipgloss.NewStyle().
		Bold(attr&tcell.AttrBold != 0).
		Faint(attr&tcell.AttrDim != 0).
		Reverse(attr&tcell.AttrReverse != 0)
	if hex := fg.Hex(); hex >= 0 {
		ls = ls.Foreground(lipgloss.Color(fmt.Sprintf("#%06x", hex)))
	}
	if hex := bg.Hex(); hex >= 0 {
		ls = ls.Background(lipgloss.Color(fmt.Sprintf("#%06x", hex)))
	}
	m.styles[st] = ls
	return ls
}

// Run starts m as a full-screen program, mouse enables cell motion reporting
func Run(m Model, mouse bool) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
