package main

import (
	"errors"
	"image/png"
	"os"
	"strings"
	"testing"

	"honnef.co/go/roundshape"
	"honnef.co/go/roundshape/glyph"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

func testModel(t *testing.T) *model {
	t.Helper()
	cfg := defaultConfig()
	cfg.SaveDirectory = t.TempDir()
	m := newModel(cfg)
	m.Update(tea.WindowSizeMsg{Width: 80 + panelWidth, Height: 41})
	return m
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func drag(m *model, x0, y0, x1, y1 int) {
	m.Update(tea.MouseMsg{X: x0, Y: y0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: x1, Y: y1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: x1, Y: y1, Action: tea.MouseActionRelease})
}

func TestModelDrawAndUndo(t *testing.T) {
	m := testModel(t)
	diff(t, grid{cols: 80, rows: 40, scale: 10}, m.grid, cmp.AllowUnexported(grid{}))

	// From font (25, 10) to (125, 110).
	drag(m, 2, 39, 12, 34)
	diff(t, 1, m.outline.Len())
	diff(t, roundshape.CommitLabel, m.status)
	if m.rec.Visible() {
		t.Error("overlay visible after release")
	}
	bb := m.outline.BBox()
	diff(t, []float64{25, 10, 125, 110}, []float64{bb.LLx, bb.LLy, bb.URx, bb.URy}, approx)

	m.Update(key("u"))
	diff(t, 0, m.outline.Len())
	diff(t, roundshape.CommitLabel, m.status)
	m.Update(key("r"))
	diff(t, 1, m.outline.Len())
	m.Update(key("r"))
	diff(t, glyph.ErrNothingToRedo.Error(), m.status)

	if v := m.View(); !strings.Contains(v, "contours 1") {
		t.Errorf("view does not show the contour count:\n%s", v)
	}
}

func TestModelSmallDragNotCommitted(t *testing.T) {
	m := testModel(t)
	drag(m, 2, 39, 3, 38)
	diff(t, 0, m.outline.Len())
}

func TestModelModifiers(t *testing.T) {
	m := testModel(t)
	m.Update(key("c"))
	diff(t, roundshape.AdjustCurves, m.engine.Mode())

	// Ctrl on the mouse selects flats, which win over curves.
	m.Update(tea.MouseMsg{X: 5, Y: 5, Ctrl: true, Action: tea.MouseActionMotion})
	diff(t, roundshape.AdjustFlats, m.engine.Mode())
	m.Update(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionMotion})
	diff(t, roundshape.AdjustCurves, m.engine.Mode())

	m.Update(key("c"))
	diff(t, roundshape.Resize, m.engine.Mode())

	m.Update(key("s"))
	if !m.engine.ModifierState().ConstrainSquare {
		t.Error("square toggle had no effect")
	}
	m.Update(tea.MouseMsg{X: 5, Y: 5, Shift: true, Action: tea.MouseActionMotion})
	m.Update(key("s"))
	if !m.engine.ModifierState().ConstrainSquare {
		t.Error("shift no longer constrains after the toggle is released")
	}
}

func TestModelFactorDrag(t *testing.T) {
	m := testModel(t)
	m.Update(tea.MouseMsg{X: 2, Y: 39, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 12, Y: 34, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	before := m.engine.Factors()

	m.Update(key("c"))
	m.Update(tea.MouseMsg{X: 10, Y: 34, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	after := m.engine.Factors()
	if after.BezierPrimary <= before.BezierPrimary {
		t.Errorf("moving left did not raise the primary bezier factor: %v -> %v", before, after)
	}
	if f, ok := m.rec.Frame(); !ok || !strings.Contains(f.Caption, "bcp factor") {
		t.Errorf("caption does not name the bcp factor: %q", f.Caption)
	}
}

func TestExport(t *testing.T) {
	cfg := defaultConfig()
	cfg.SaveDirectory = t.TempDir()
	o := glyph.NewOutline(nil)

	if _, err := exportPNG(cfg, o); !errors.Is(err, errEmpty) {
		t.Errorf("exportPNG on empty outline: %v", err)
	}
	if _, err := exportSVG(cfg, o); !errors.Is(err, errEmpty) {
		t.Errorf("exportSVG on empty outline: %v", err)
	}

	g, _ := roundshape.Solve(roundshape.Pt(0, 0), roundshape.Pt(100, 50),
		roundshape.DefaultFactors(), false, roundshape.OrientationUnknown)
	o.Commit(roundshape.CommitLabel, g.Path())

	name, err := exportPNG(cfg, o)
	if err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, cfg.ImageSize, img.Bounds().Dx())

	name, err = exportSVG(cfg, o)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	doc := string(b)
	for _, want := range []string{
		`viewBox="0 -50 100 50"`,
		`d="` + o.SVG(svgOptions) + `"`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("SVG document lacks %s:\n%s", want, doc)
		}
	}
}

func TestExportOverlay(t *testing.T) {
	m := testModel(t)
	if _, err := exportOverlay(m.cfg, m.outline, m.rec); !errors.Is(err, errEmpty) {
		t.Errorf("exportOverlay without a shape: %v", err)
	}

	m.Update(tea.MouseMsg{X: 2, Y: 39, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 12, Y: 34, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	name, err := exportOverlay(m.cfg, m.outline, m.rec)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(name); err != nil {
		t.Error(err)
	}
}
