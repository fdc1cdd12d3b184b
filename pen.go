package roundshape

import (
	"iter"
)

// Pen is the outline-construction interface of a glyph or canvas.
type Pen interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// DrawPath replays a sequence of path elements into pen.
func DrawPath(pen Pen, seq iter.Seq[PathElement]) {
	for el := range seq {
		switch el.Kind {
		case MoveToKind:
			pen.MoveTo(el.P0.X, el.P0.Y)
		case LineToKind:
			pen.LineTo(el.P0.X, el.P0.Y)
		case CubicToKind:
			pen.CurveTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case ClosePathKind:
			pen.ClosePath()
		}
	}
}

// PathPen is a [Pen] that records into a [BezPath].
type PathPen struct {
	Path BezPath
}

func (p *PathPen) MoveTo(x, y float64) { p.Path.MoveTo(Pt(x, y)) }
func (p *PathPen) LineTo(x, y float64) { p.Path.LineTo(Pt(x, y)) }
func (p *PathPen) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Path.CubicTo(Pt(x1, y1), Pt(x2, y2), Pt(x3, y3))
}
func (p *PathPen) ClosePath() { p.Path.ClosePath() }
