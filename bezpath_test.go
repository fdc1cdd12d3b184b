package roundshape

import (
	"testing"
)

func TestBezPathBuild(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	p.CubicTo(Pt(15, 0), Pt(20, 5), Pt(20, 10))
	p.ClosePath()

	diff(t, 1, p.Count(MoveToKind))
	diff(t, 1, p.Count(CubicToKind))
	diff(t, "CubicTo((15, 0), (20, 5), (20, 10))", p[2].String())
	diff(t, "ClosePath", p[3].String())

	end, ok := p[2].EndPoint()
	if !ok || end != Pt(20, 10) {
		t.Errorf("got end point %v, %t, want (20, 10), true", end, ok)
	}
	if _, ok := p[3].EndPoint(); ok {
		t.Error("ClosePath has no end point")
	}
}

func TestBezPathBounds(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(0, 10), Pt(10, 10), Pt(10, 0))
	p.ClosePath()
	diff(t, Rect{0, 0, 10, 7.5}, p.BoundingBox(), approx)
	diff(t, Rect{}, BezPath(nil).BoundingBox())
}

func TestBezPathSubpaths(t *testing.T) {
	a := Rect{0, 0, 1, 1}.Path()
	b := Rect{5, 5, 6, 6}.Path()
	p := append(append(BezPath{}, a...), b...)
	subs := p.Subpaths()
	if len(subs) != 2 {
		t.Fatalf("got %d subpaths, want 2", len(subs))
	}
	diff(t, a, subs[0])
	diff(t, b, subs[1])
	if subs := BezPath(nil).Subpaths(); len(subs) != 0 {
		t.Errorf("got %d subpaths for empty path, want 0", len(subs))
	}
}

func TestBezPathTransform(t *testing.T) {
	p := Rect{0, 0, 2, 1}.Path()
	got := p.Transform(Translate(Vec(1, 1)).ThenScale(2, 2))
	diff(t, Rect{0, 0, 2, 1}.Path(), p)
	diff(t, Rect{2, 2, 6, 4}.Path(), got)
}
