package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"honnef.co/go/roundshape"
	"honnef.co/go/roundshape/glyph"
	"honnef.co/go/roundshape/render"
)

var errEmpty = errors.New("nothing to export")

var svgOptions = roundshape.SVGOptions{MaxPrecision: 3}

// viewRect returns the bounds of the outline in font units.
func viewRect(o *glyph.Outline) (roundshape.Rect, error) {
	if o.Len() == 0 {
		return roundshape.Rect{}, errEmpty
	}
	bb := o.BBox()
	return roundshape.Rect{X0: bb.LLx, Y0: bb.LLy, X1: bb.URx, Y1: bb.URy}, nil
}

// exportPNG renders the outline into a square image.
func exportPNG(cfg *Config, o *glyph.Outline) (string, error) {
	view, err := viewRect(o)
	if err != nil {
		return "", err
	}
	name, err := cfg.SavePath(cfg.Glyph + ".png")
	if err != nil {
		return "", err
	}
	c, err := render.NewCanvas(cfg.ImageSize, cfg.ImageSize, view)
	if err != nil {
		return "", err
	}
	c.DrawOutline(o.Path())
	if err := c.SavePNG(name); err != nil {
		return "", err
	}
	return name, nil
}

// svgDocument wraps the outline in a standalone SVG file. Font units grow
// upwards, so the path is flipped. The view box is rounded outwards to
// whole units.
func svgDocument(o *glyph.Outline) (string, error) {
	view, err := viewRect(o)
	if err != nil {
		return "", err
	}
	x0, y0 := math.Floor(view.X0), math.Floor(view.Y0)
	x1, y1 := math.Ceil(view.X1), math.Ceil(view.Y1)
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%g %g %g %g">
<path transform="scale(1,-1)" d="%s"/>
</svg>
`, x0, -y1, x1-x0, y1-y0, o.SVG(svgOptions)), nil
}

func exportSVG(cfg *Config, o *glyph.Outline) (string, error) {
	doc, err := svgDocument(o)
	if err != nil {
		return "", err
	}
	name, err := cfg.SavePath(cfg.Glyph + ".svg")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(name, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return name, nil
}

// exportOverlay renders the gesture in progress, with markers and caption,
// on top of the outline. It fails with errEmpty when no shape is showing.
func exportOverlay(cfg *Config, o *glyph.Outline, rec *render.Recorder) (string, error) {
	f, ok := rec.Frame()
	if !ok {
		return "", errEmpty
	}
	view := f.Geometry.Bounds()
	if o.Len() > 0 {
		ov, _ := viewRect(o)
		view = view.Union(ov)
	}
	name, err := cfg.SavePath(cfg.Glyph + "-overlay.png")
	if err != nil {
		return "", err
	}
	c, err := render.NewCanvas(cfg.ImageSize, cfg.ImageSize, view)
	if err != nil {
		return "", err
	}
	c.DrawOutline(o.Path())
	rec.Draw(c, true)
	if err := c.SavePNG(name); err != nil {
		return "", err
	}
	return name, nil
}
