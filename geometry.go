package roundshape

import (
	"iter"
	"math"
	"slices"
)

// MinEdgeLength is the length at or below which a straight edge of the shape
// is left out of the path.
const MinEdgeLength = 5

// Orientation records whether the last solved box was wider than tall.
type Orientation int

const (
	// OrientationUnknown is the state before the first solve. Any solved
	// orientation differs from it.
	OrientationUnknown Orientation = iota
	Horizontal
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Geometry is the solved shape: the normalized box plus the tangent (T) and
// control (B) coordinates. Coordinates suffixed V lie on the vertical axis
// (y values on the left and right edges), those suffixed H on the
// horizontal axis (x values on the top and bottom edges).
type Geometry struct {
	XMin, XMax    float64
	YMin, YMax    float64
	Width, Height float64
	Orientation   Orientation

	T1V, T2V float64
	T1H, T2H float64
	B1V, B2V float64
	B1H, B2H float64
}

// Solve computes the geometry for the box spanned by c1 and c2.
//
// With square set, the height is forced to the width and the box extends
// from the smaller corner coordinates. When the resulting orientation differs
// from prev, the returned factors are f with both pairs swapped, otherwise
// they are f unchanged. The returned geometry is computed from the returned
// factors.
func Solve(c1, c2 Point, f Factors, square bool, prev Orientation) (Geometry, Factors) {
	var g Geometry
	g.Width = math.Abs(c2.X - c1.X)
	g.Height = math.Abs(c2.Y - c1.Y)
	if square {
		g.Height = g.Width
	}

	g.Orientation = Vertical
	if g.Width > g.Height {
		g.Orientation = Horizontal
	}
	if g.Orientation != prev {
		f = f.Swap()
	}

	g.XMin = min(c1.X, c2.X)
	g.YMin = min(c1.Y, c2.Y)
	if square {
		g.XMax = g.XMin + g.Width
		g.YMax = g.YMin + g.Height
	} else {
		g.XMax = max(c1.X, c2.X)
		g.YMax = max(c1.Y, c2.Y)
	}

	halfW, halfH := 0.5*g.Width, 0.5*g.Height
	g.T1V = g.YMin + halfH - f.FlatSecondary*halfH
	g.T2V = g.YMin + halfH + f.FlatSecondary*halfH
	g.T1H = g.XMin + halfW - f.FlatPrimary*halfW
	g.T2H = g.XMin + halfW + f.FlatPrimary*halfW

	g.B1V = g.YMin + f.BezierSecondary*(g.T1V-g.YMin)
	g.B2V = g.T2V + (1-f.BezierSecondary)*(g.YMax-g.T2V)
	g.B1H = g.XMin + f.BezierPrimary*(g.T1H-g.XMin)
	g.B2H = g.T2H + (1-f.BezierPrimary)*(g.XMax-g.T2H)

	return g, f
}

// Bounds returns the normalized box.
func (g Geometry) Bounds() Rect {
	return Rect{X0: g.XMin, Y0: g.YMin, X1: g.XMax, Y1: g.YMax}
}

// Center returns the center of the box.
func (g Geometry) Center() Point {
	return Pt(0.5*(g.XMax+g.XMin), 0.5*(g.YMax+g.YMin))
}

// Size returns the solved width and height.
func (g Geometry) Size() Size {
	return Sz(g.Width, g.Height)
}

// Corners returns the four corner curves in path order: top left, top
// right, bottom right, bottom left.
func (g Geometry) Corners() [4]CubicBez {
	return [4]CubicBez{
		{Pt(g.XMin, g.T2V), Pt(g.XMin, g.B2V), Pt(g.B1H, g.YMax), Pt(g.T1H, g.YMax)},
		{Pt(g.T2H, g.YMax), Pt(g.B2H, g.YMax), Pt(g.XMax, g.B2V), Pt(g.XMax, g.T2V)},
		{Pt(g.XMax, g.T1V), Pt(g.XMax, g.B1V), Pt(g.B2H, g.YMin), Pt(g.T2H, g.YMin)},
		{Pt(g.T1H, g.YMin), Pt(g.B1H, g.YMin), Pt(g.XMin, g.B1V), Pt(g.XMin, g.T1V)},
	}
}

// PathElements yields the closed outline of the shape, starting at the
// upper tangent point of the left edge. A straight edge is emitted only when
// it is longer than [MinEdgeLength]. The left edge is always closed by
// ClosePath.
func (g Geometry) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		cs := g.Corners()
		if !yield(MoveTo(cs[0].P0)) {
			return
		}
		for i, c := range cs {
			if i > 0 {
				edge := Line{cs[i-1].P3, c.P0}
				if !edge.IsDegenerate(MinEdgeLength) && !yield(LineTo(c.P0)) {
					return
				}
			}
			if !yield(CubicTo(c.P1, c.P2, c.P3)) {
				return
			}
		}
		yield(ClosePath())
	}
}

// Path collects [Geometry.PathElements].
func (g Geometry) Path() BezPath {
	return slices.Collect(g.PathElements())
}

type MarkerKind int

const (
	TangentMarker MarkerKind = iota + 1
	ControlMarker
	CenterMarker
)

// Marker is a labeled point of the overlay. Stacked is set when the marker
// coincides with its mirrored counterpart, e.g. both vertical tangent points
// of an edge without a flat.
type Marker struct {
	Pos     Point
	Kind    MarkerKind
	Stacked bool
}

// NumMarkers is the number of overlay markers of a shape.
const NumMarkers = 17

// Markers returns the overlay markers: the eight tangent points, the eight
// control points and the center, in that order.
func (g Geometry) Markers() [NumMarkers]Marker {
	tv := g.T1V == g.T2V
	th := g.T1H == g.T2H
	bv := g.B1V == g.B2V
	bh := g.B1H == g.B2H
	t := func(x, y float64, stacked bool) Marker {
		return Marker{Pos: Pt(x, y), Kind: TangentMarker, Stacked: stacked}
	}
	b := func(x, y float64, stacked bool) Marker {
		return Marker{Pos: Pt(x, y), Kind: ControlMarker, Stacked: stacked}
	}
	return [NumMarkers]Marker{
		t(g.XMin, g.T1V, tv),
		t(g.XMax, g.T1V, tv),
		t(g.XMin, g.T2V, tv),
		t(g.XMax, g.T2V, tv),
		t(g.T1H, g.YMin, th),
		t(g.T1H, g.YMax, th),
		t(g.T2H, g.YMin, th),
		t(g.T2H, g.YMax, th),

		b(g.XMin, g.B1V, bv),
		b(g.XMax, g.B1V, bv),
		b(g.XMin, g.B2V, bv),
		b(g.XMax, g.B2V, bv),
		b(g.B1H, g.YMax, bh),
		b(g.B2H, g.YMax, bh),
		b(g.B1H, g.YMin, bh),
		b(g.B2H, g.YMin, bh),

		{Pos: g.Center(), Kind: CenterMarker},
	}
}
