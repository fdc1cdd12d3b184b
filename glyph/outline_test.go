package glyph

import (
	"errors"
	"testing"

	"honnef.co/go/roundshape"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/sfnt/cff"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func shape(x0, y0, x1, y1 float64) roundshape.BezPath {
	g, _ := roundshape.Solve(roundshape.Pt(x0, y0), roundshape.Pt(x1, y1),
		roundshape.DefaultFactors().Swap(), false, roundshape.OrientationUnknown)
	return g.Path()
}

func TestCommitRoundTrip(t *testing.T) {
	o := NewOutline(nil)
	p := shape(0, 0, 100, 50)
	o.Commit(roundshape.CommitLabel, p)

	diff(t, 1, o.Len())
	diff(t, []roundshape.BezPath{p}, o.Contours())
	// CFF contours close implicitly.
	diff(t, len(p)-1, len(o.Glyph().Cmds))
}

func TestUndoRedo(t *testing.T) {
	o := NewOutline(nil)
	a := shape(0, 0, 100, 50)
	b := shape(200, 0, 250, 100)
	o.Commit("a", a)
	o.Commit("b", b)
	diff(t, 2, o.Len())

	label, err := o.Undo()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, "b", label)
	diff(t, []roundshape.BezPath{a}, o.Contours())

	if l, ok := o.CanRedo(); !ok || l != "b" {
		t.Errorf("CanRedo() = %q, %v", l, ok)
	}
	label, err = o.Redo()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, "b", label)
	diff(t, []roundshape.BezPath{a, b}, o.Contours())

	if _, err := o.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("Redo() error = %v, want ErrNothingToRedo", err)
	}
}

func TestCommitClearsRedo(t *testing.T) {
	o := NewOutline(nil)
	o.Commit("a", shape(0, 0, 100, 50))
	if _, err := o.Undo(); err != nil {
		t.Fatal(err)
	}
	o.Commit("b", shape(0, 0, 40, 80))
	if _, ok := o.CanRedo(); ok {
		t.Error("redo history survived a commit")
	}
	if l, ok := o.CanUndo(); !ok || l != "b" {
		t.Errorf("CanUndo() = %q, %v", l, ok)
	}
}

func TestUndoEmpty(t *testing.T) {
	o := NewOutline(nil)
	if _, err := o.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo() error = %v, want ErrNothingToUndo", err)
	}
}

func TestUndoKeepsExistingCommands(t *testing.T) {
	g := &cff.Glyph{Width: 500}
	g.MoveTo(0, 0)
	g.LineTo(10, 0)
	g.LineTo(10, 10)
	o := NewOutline(g)
	o.Commit("a", shape(20, 20, 60, 80))
	diff(t, 2, o.Len())
	if _, err := o.Undo(); err != nil {
		t.Fatal(err)
	}
	diff(t, 3, len(g.Cmds))

	want := roundshape.BezPath{
		roundshape.MoveTo(roundshape.Pt(0, 0)),
		roundshape.LineTo(roundshape.Pt(10, 0)),
		roundshape.LineTo(roundshape.Pt(10, 10)),
		roundshape.ClosePath(),
	}
	diff(t, []roundshape.BezPath{want}, o.Contours())
}

func TestPath(t *testing.T) {
	o := NewOutline(nil)
	p := shape(0, 0, 100, 50)
	o.Commit("a", p)
	d := o.Path()

	diff(t, len(p), len(d.Cmds))
	diff(t, path.CmdMoveTo, d.Cmds[0])
	diff(t, path.CmdClose, d.Cmds[len(d.Cmds)-1])
	// one point per move/line, three per cubic
	n := 1 + p.Count(roundshape.LineToKind) + 3*p.Count(roundshape.CubicToKind)
	diff(t, n, len(d.Coords))
}

func TestBBox(t *testing.T) {
	o := NewOutline(nil)
	diff(t, rect.Rect{}, o.BBox())

	o.Commit("a", shape(0, 0, 100, 50))
	o.Commit("b", shape(150, 20, 200, 120))
	diff(t, rect.Rect{LLx: 0, LLy: 0, URx: 200, URy: 120}, o.BBox(), cmpopts.EquateApprox(0, 1e-9))
}

func TestSVG(t *testing.T) {
	o := NewOutline(nil)
	diff(t, "", o.SVG(roundshape.SVGOptions{}))

	p := shape(0, 0, 100, 50)
	o.Commit("a", p)
	o.Commit("b", p)
	s := p.SVG(roundshape.SVGOptions{MaxPrecision: 3})
	diff(t, s+" "+s, o.SVG(roundshape.SVGOptions{MaxPrecision: 3}))
}
