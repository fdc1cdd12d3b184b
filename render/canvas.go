// Package render draws glyph outlines and the live state of the drawing
// tool into raster images.
package render

import (
	"fmt"
	"image"
	"io"
	"iter"
	"strings"

	"honnef.co/go/roundshape"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Margin is the space in pixels NewCanvas leaves around the view.
const Margin = 16

const (
	activeDot = 10
	dot       = 4
	fontSize  = 12
)

// Canvas is a raster image with a transform from font units to pixels.
type Canvas struct {
	dc   *gg.Context
	aff  roundshape.Affine
	face font.Face
}

// NewCanvas returns a white w×h canvas that shows view, given in y-up font
// units, centered and as large as fits inside the margin.
func NewCanvas(w, h int, view roundshape.Rect) (*Canvas, error) {
	dst := roundshape.Rect{X1: float64(w), Y1: float64(h)}
	if w > 2*Margin && h > 2*Margin {
		dst = dst.Inflate(-Margin, -Margin)
	}
	return NewCanvasTransform(w, h, roundshape.FitRect(view, dst))
}

// NewCanvasTransform returns a white w×h canvas that maps font units to
// pixels with aff.
func NewCanvasTransform(w, h int, aff roundshape.Affine) (*Canvas, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	c := &Canvas{
		dc:  gg.NewContext(w, h),
		aff: aff,
		face: truetype.NewFace(f, &truetype.Options{
			Size:    fontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		}),
	}
	c.dc.SetFontFace(c.face)
	c.Clear()
	return c, nil
}

// Transform returns the font-to-pixel transform.
func (c *Canvas) Transform() roundshape.Affine { return c.aff }

// Clear fills the canvas with white.
func (c *Canvas) Clear() {
	c.dc.SetRGB(1, 1, 1)
	c.dc.Clear()
}

func (c *Canvas) pt(x, y float64) (float64, float64) {
	return roundshape.Pt(x, y).Transform(c.aff).Splat()
}

func (c *Canvas) trace(seq iter.Seq[roundshape.PathElement]) {
	c.dc.NewSubPath()
	for el := range seq {
		el = el.Transform(c.aff)
		switch el.Kind {
		case roundshape.MoveToKind:
			c.dc.MoveTo(el.P0.X, el.P0.Y)
		case roundshape.LineToKind:
			c.dc.LineTo(el.P0.X, el.P0.Y)
		case roundshape.CubicToKind:
			c.dc.CubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case roundshape.ClosePathKind:
			c.dc.ClosePath()
		}
	}
}

// DrawOutline fills the committed contours in d with black.
func (c *Canvas) DrawOutline(d *path.Data) {
	at := func(v vec.Vec2) (float64, float64) { return c.pt(v.X, v.Y) }
	i := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			c.dc.MoveTo(at(d.Coords[i]))
			i++
		case path.CmdLineTo:
			c.dc.LineTo(at(d.Coords[i]))
			i++
		case path.CmdQuadTo:
			x1, y1 := at(d.Coords[i])
			x2, y2 := at(d.Coords[i+1])
			c.dc.QuadraticTo(x1, y1, x2, y2)
			i += 2
		case path.CmdCubeTo:
			x1, y1 := at(d.Coords[i])
			x2, y2 := at(d.Coords[i+1])
			x3, y3 := at(d.Coords[i+2])
			c.dc.CubicTo(x1, y1, x2, y2, x3, y3)
			i += 3
		case path.CmdClose:
			c.dc.ClosePath()
		}
	}
	c.dc.SetRGB(0, 0, 0)
	c.dc.Fill()
}

// DrawPreview draws the ghost of a shape that is being dragged: a light
// fill with a dashed orange stroke.
func (c *Canvas) DrawPreview(p roundshape.BezPath) {
	c.trace(p.Elements())
	c.dc.SetRGBA(0, 0, 0, 0.15)
	c.dc.FillPreserve()
	c.dc.SetRGB(1, 0.5, 0)
	c.dc.SetLineWidth(1)
	c.dc.SetDash(4, 4)
	c.dc.Stroke()
	c.dc.SetDash()
}

// DrawOverlay draws the outline and markers of a frame. Markers of the kind
// the current mode moves are drawn larger; markers that coincide with their
// mirror image are blue.
func (c *Canvas) DrawOverlay(f roundshape.Frame) {
	c.trace(f.Path.Elements())
	c.dc.SetRGB(1, 0, 0)
	c.dc.SetLineWidth(0.5)
	c.dc.Stroke()

	for _, m := range f.Markers {
		x, y := c.pt(m.Pos.X, m.Pos.Y)
		c.dc.DrawCircle(x, y, 0.5*float64(DotSize(f.Mode, m.Kind)))
		if m.Stacked {
			c.dc.SetRGB(0, 0.5, 1)
		} else {
			c.dc.SetRGB(1, 0.5, 0)
		}
		c.dc.Fill()
	}
}

// DotSize returns the diameter in pixels of a marker of kind k in mode.
func DotSize(mode roundshape.DragMode, k roundshape.MarkerKind) int {
	switch {
	case mode == roundshape.AdjustCurves && k == roundshape.ControlMarker,
		mode == roundshape.AdjustFlats && k == roundshape.TangentMarker:
		return activeDot
	default:
		return dot
	}
}

// DrawCaption draws the frame's caption centered on the shape.
func (c *Canvas) DrawCaption(f roundshape.Frame) {
	lines := strings.Split(f.Caption, "\n")
	lh := c.dc.FontHeight() * 1.3
	cx, cy := c.pt(f.Geometry.Center().Splat())
	y := cy - 0.5*lh*float64(len(lines)-1)
	c.dc.SetRGB(0, 0, 0)
	for _, line := range lines {
		c.dc.DrawStringAnchored(line, cx, y, 0.5, 0.5)
		y += lh
	}
}

// Image returns the canvas content.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// SavePNG writes the canvas to the named file.
func (c *Canvas) SavePNG(name string) error {
	if err := c.dc.SavePNG(name); err != nil {
		return fmt.Errorf("failed to save %s: %w", name, err)
	}
	return nil
}

// EncodePNG writes the canvas to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
