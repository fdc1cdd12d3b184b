// Package glyph stores committed shapes as the outline of a CFF glyph and
// keeps an undo history of the commits.
package glyph

import (
	"errors"

	"honnef.co/go/roundshape"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sfnt/cff"
)

var (
	ErrNothingToUndo = errors.New("glyph: nothing to undo")
	ErrNothingToRedo = errors.New("glyph: nothing to redo")
)

// edit is one commit. Its contour occupies the glyph commands from start
// onwards.
type edit struct {
	label string
	start int
	path  roundshape.BezPath
}

// Outline is a glyph outline that accepts committed shapes. It implements
// [roundshape.Committer].
type Outline struct {
	g    *cff.Glyph
	undo []edit
	redo []edit
}

// NewOutline returns an outline that appends to g. Commands already present
// in g are kept and cannot be undone. A nil g starts an empty glyph.
func NewOutline(g *cff.Glyph) *Outline {
	if g == nil {
		g = &cff.Glyph{Width: 1000}
	}
	return &Outline{g: g}
}

// Glyph returns the underlying glyph.
func (o *Outline) Glyph() *cff.Glyph { return o.g }

// glyphPen draws into a CFF glyph. Contours of a CFF glyph are closed
// implicitly.
type glyphPen struct {
	*cff.Glyph
}

func (glyphPen) ClosePath() {}

// Commit appends p as a new contour and records it under label. Any redo
// history is discarded.
func (o *Outline) Commit(label string, p roundshape.BezPath) {
	o.apply(edit{label: label, path: p})
	o.redo = o.redo[:0]
}

func (o *Outline) apply(e edit) {
	e.start = len(o.g.Cmds)
	roundshape.DrawPath(glyphPen{o.g}, e.path.Elements())
	o.undo = append(o.undo, e)
}

// Undo removes the most recent commit and returns its label.
func (o *Outline) Undo() (string, error) {
	if len(o.undo) == 0 {
		return "", ErrNothingToUndo
	}
	last := len(o.undo) - 1
	e := o.undo[last]
	o.undo = o.undo[:last]
	o.g.Cmds = o.g.Cmds[:e.start]
	o.redo = append(o.redo, e)
	return e.label, nil
}

// Redo reapplies the most recently undone commit and returns its label.
func (o *Outline) Redo() (string, error) {
	if len(o.redo) == 0 {
		return "", ErrNothingToRedo
	}
	last := len(o.redo) - 1
	e := o.redo[last]
	o.redo = o.redo[:last]
	o.apply(e)
	return e.label, nil
}

// CanUndo reports the label Undo would revert, if any.
func (o *Outline) CanUndo() (string, bool) {
	if len(o.undo) == 0 {
		return "", false
	}
	return o.undo[len(o.undo)-1].label, true
}

// CanRedo reports the label Redo would reapply, if any.
func (o *Outline) CanRedo() (string, bool) {
	if len(o.redo) == 0 {
		return "", false
	}
	return o.redo[len(o.redo)-1].label, true
}

// outline converts the glyph commands to a path with every contour closed.
func (o *Outline) outline() roundshape.BezPath {
	var p roundshape.BezPath
	for i, op := range o.g.Cmds {
		a := op.Args
		switch op.Op {
		case cff.OpMoveTo:
			if i > 0 {
				p.ClosePath()
			}
			p.MoveTo(roundshape.Pt(a[0], a[1]))
		case cff.OpLineTo:
			p.LineTo(roundshape.Pt(a[0], a[1]))
		case cff.OpCurveTo:
			p.CubicTo(roundshape.Pt(a[0], a[1]), roundshape.Pt(a[2], a[3]), roundshape.Pt(a[4], a[5]))
		}
	}
	if len(p) > 0 {
		p.ClosePath()
	}
	return p
}

// Contours returns the glyph's contours as closed paths.
func (o *Outline) Contours() []roundshape.BezPath {
	return o.outline().Subpaths()
}

// Len returns the number of contours.
func (o *Outline) Len() int {
	n := 0
	for _, op := range o.g.Cmds {
		if op.Op == cff.OpMoveTo {
			n++
		}
	}
	return n
}

// Path converts the outline to path data.
func (o *Outline) Path() *path.Data {
	d := &path.Data{}
	for _, el := range o.outline() {
		switch el.Kind {
		case roundshape.MoveToKind:
			d.Cmds = append(d.Cmds, path.CmdMoveTo)
			d.Coords = append(d.Coords, toVec(el.P0))
		case roundshape.LineToKind:
			d.Cmds = append(d.Cmds, path.CmdLineTo)
			d.Coords = append(d.Coords, toVec(el.P0))
		case roundshape.CubicToKind:
			d.Cmds = append(d.Cmds, path.CmdCubeTo)
			d.Coords = append(d.Coords, toVec(el.P0), toVec(el.P1), toVec(el.P2))
		case roundshape.ClosePathKind:
			d.Cmds = append(d.Cmds, path.CmdClose)
		}
	}
	return d
}

func toVec(p roundshape.Point) vec.Vec2 { return vec.Vec2{X: p.X, Y: p.Y} }

// BBox returns the bounding box of all contours. It is the zero rectangle
// for an empty outline.
func (o *Outline) BBox() rect.Rect {
	bb := o.outline().BoundingBox()
	return rect.Rect{LLx: bb.X0, LLy: bb.Y0, URx: bb.X1, URy: bb.Y1}
}

// SVG returns the outline as SVG path data, one subpath per contour.
func (o *Outline) SVG(opts roundshape.SVGOptions) string {
	return o.outline().SVG(opts)
}
