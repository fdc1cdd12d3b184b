package render

import (
	"honnef.co/go/roundshape"
)

// Recorder is a [roundshape.Renderer] that keeps the latest preview and
// overlay so that a host can draw them when it repaints.
type Recorder struct {
	visible  bool
	preview  roundshape.BezPath
	frame    roundshape.Frame
	hasFrame bool
}

var _ roundshape.Renderer = (*Recorder)(nil)

func (r *Recorder) Preview(p roundshape.BezPath) { r.preview = p }

func (r *Recorder) Overlay(f roundshape.Frame) {
	r.frame = f
	r.hasFrame = true
}

// SetVisible shows or hides the recorded state. Hiding drops it; the engine
// sends a fresh frame whenever it becomes visible with a shape.
func (r *Recorder) SetVisible(visible bool) {
	r.visible = visible
	if !visible {
		r.preview = nil
		r.frame = roundshape.Frame{}
		r.hasFrame = false
	}
}

func (r *Recorder) Visible() bool { return r.visible }

// Frame returns the last overlay frame, if one is showing.
func (r *Recorder) Frame() (roundshape.Frame, bool) {
	return r.frame, r.visible && r.hasFrame
}

// PreviewPath returns the last preview path, if one is showing.
func (r *Recorder) PreviewPath() (roundshape.BezPath, bool) {
	return r.preview, r.visible && r.preview != nil
}

// Draw paints the recorded state onto c. With caption set, the overlay
// caption is drawn as well.
func (r *Recorder) Draw(c *Canvas, caption bool) {
	if p, ok := r.PreviewPath(); ok {
		c.DrawPreview(p)
	}
	if f, ok := r.Frame(); ok {
		c.DrawOverlay(f)
		if caption {
			c.DrawCaption(f)
		}
	}
}
