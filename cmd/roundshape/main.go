// Command roundshape is a terminal front end for the symmetrical round
// shape drawing tool. Shapes are dragged out with the mouse and collected
// in a glyph that can be exported as PNG and SVG.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"honnef.co/go/roundshape"
	"honnef.co/go/roundshape/glyph"
	"honnef.co/go/roundshape/render"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	configPath := flag.String("config", "", "config file (default ~/.roundshaperc)")
	saveDir := flag.String("o", "", "directory for exported files")
	flag.Parse()

	cfg := loadConfig(*configPath)
	if *saveDir != "" {
		cfg.SaveDirectory = expandPath(*saveDir, "")
	}

	p := tea.NewProgram(
		newModel(cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

const panelWidth = 32

type model struct {
	cfg     *Config
	engine  *roundshape.Engine
	outline *glyph.Outline
	rec     *render.Recorder

	width, height int
	grid          grid
	canvas        *render.Canvas

	// sticky are the modifiers toggled from the keyboard, mouse those
	// reported with the last mouse event.
	sticky roundshape.Modifiers
	mouse  roundshape.Modifiers

	dragging bool
	last     roundshape.Point

	status string
}

func newModel(cfg *Config) *model {
	m := &model{
		cfg:     cfg,
		outline: glyph.NewOutline(nil),
		rec:     &render.Recorder{},
	}
	m.engine = roundshape.NewEngine(m.outline, m.rec)
	m.engine.Activate()
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) modifiers() roundshape.Modifiers {
	return m.sticky | m.mouse
}

func (m *model) setModifiers(sticky, mouse roundshape.Modifiers) {
	before := m.modifiers()
	m.sticky, m.mouse = sticky, mouse
	if m.modifiers() != before {
		m.engine.ModifiersChanged(m.modifiers())
	}
}

func mouseModifiers(msg tea.MouseMsg) roundshape.Modifiers {
	var mods roundshape.Modifiers
	if msg.Shift {
		mods |= roundshape.ModSquare
	}
	if msg.Alt {
		mods |= roundshape.ModCurves
	}
	if msg.Ctrl {
		mods |= roundshape.ModFlats
	}
	return mods
}

var toggles = map[string]roundshape.Modifiers{
	"s": roundshape.ModSquare,
	"c": roundshape.ModCurves,
	"f": roundshape.ModFlats,
	"p": roundshape.ModFineStep,
}

func (m *model) resize(width, height int) {
	m.width, m.height = width, height
	m.grid = grid{
		cols:  max(width-panelWidth, 10),
		rows:  max(height-1, 5),
		scale: m.cfg.Scale,
	}
	c, err := m.grid.canvas()
	if err != nil {
		m.status = err.Error()
		m.canvas = nil
		return
	}
	m.canvas = c
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		key := msg.String()
		if mod, ok := toggles[key]; ok {
			m.setModifiers(m.sticky^mod, m.mouse)
			m.status = "modifiers: " + m.modifiers().String()
			break
		}
		switch key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "u":
			m.report(m.outline.Undo())
		case "r":
			m.report(m.outline.Redo())
		case "e":
			m.export()
		case "y":
			m.yank()
		}

	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	if m.grid.scale <= 0 {
		return
	}
	m.setModifiers(m.sticky, mouseModifiers(msg))
	pt := m.grid.cellToFont(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.engine.PointerDown(pt)
		m.dragging = true
		m.last = pt
	case tea.MouseActionMotion:
		if !m.dragging {
			return
		}
		m.engine.PointerDrag(pt, pt.Sub(m.last))
		m.last = pt
	case tea.MouseActionRelease:
		if !m.dragging {
			return
		}
		m.dragging = false
		if m.engine.PointerUp(pt) {
			m.status = roundshape.CommitLabel
		}
	}
}

func (m *model) report(label string, err error) {
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = label
}

func (m *model) export() {
	var saved []string
	for _, f := range []func(*Config, *glyph.Outline) (string, error){exportPNG, exportSVG} {
		name, err := f(m.cfg, m.outline)
		if err != nil {
			m.status = "export: " + err.Error()
			return
		}
		saved = append(saved, name)
	}
	if _, ok := m.rec.Frame(); ok {
		name, err := exportOverlay(m.cfg, m.outline, m.rec)
		if err != nil {
			m.status = "export: " + err.Error()
			return
		}
		saved = append(saved, name)
	}
	m.status = "saved " + strings.Join(saved, ", ")
}

func (m *model) yank() {
	if m.outline.Len() == 0 {
		m.status = errEmpty.Error()
		return
	}
	if err := clipboard.WriteAll(m.outline.SVG(svgOptions)); err != nil {
		m.status = "clipboard: " + err.Error()
		return
	}
	m.status = "copied SVG path data"
}

var (
	panelStyle = lipgloss.NewStyle().
			Width(panelWidth-2).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpText    = "drag: draw  s/c/f/p: square/curves/flats/fine\nu/r: undo/redo  e: export  y: copy  q: quit"
)

func (m *model) View() string {
	if m.canvas == nil {
		return "loading…"
	}
	m.canvas.Clear()
	m.canvas.DrawOutline(m.outline.Path())
	m.rec.Draw(m.canvas, false)

	var frame *roundshape.Frame
	if f, ok := m.rec.Frame(); ok {
		frame = &f
	}
	drawing := m.grid.draw(m.canvas.Image(), frame)

	var panel strings.Builder
	panel.WriteString(titleStyle.Render("roundshape"))
	fmt.Fprintf(&panel, "\n\nmode %s\nmodifiers %s\n%s\ncontours %d\n",
		m.engine.Mode(), m.modifiers(), m.engine.Factors(), m.outline.Len())
	if frame != nil {
		panel.WriteString("\n" + frame.Caption + "\n")
	}
	panel.WriteString("\n" + helpText)

	body := lipgloss.JoinHorizontal(lipgloss.Top, drawing, panelStyle.Render(panel.String()))
	return body + "\n" + statusStyle.Render(m.status)
}
