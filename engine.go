package roundshape

const (
	// MinWidth and MinHeight are the sizes a shape must exceed to be
	// committed on pointer-up.
	MinWidth  = 20
	MinHeight = 20

	// CommitLabel is the undo label of a committed shape.
	CommitLabel = "Add RoundShape"
)

// Committer receives finished shapes. Each call is one undoable edit.
type Committer interface {
	Commit(label string, path BezPath)
}

// Renderer draws the live state of a gesture.
type Renderer interface {
	// Preview receives the ghost outline after every geometry-affecting
	// event.
	Preview(path BezPath)
	// Overlay receives the outline together with markers and caption.
	Overlay(f Frame)
	// SetVisible shows or hides everything the renderer draws.
	SetVisible(visible bool)
}

// Frame is one overlay update.
type Frame struct {
	Geometry Geometry
	Mode     DragMode
	Factors  Factors
	Path     BezPath
	Markers  [NumMarkers]Marker
	Caption  string
}

type nopRenderer struct{}

func (nopRenderer) Preview(BezPath) {}
func (nopRenderer) Overlay(Frame)   {}
func (nopRenderer) SetVisible(bool) {}

type nopCommitter struct{}

func (nopCommitter) Commit(string, BezPath) {}

// session is the state of one gesture, from pointer-down to pointer-up.
type session struct {
	active     bool
	anchor     Point
	lastPoint  Point
	hasCorners bool
	corner1    Point
	corner2    Point
	comp       Vec2

	hasGeometry bool
	geometry    Geometry
}

// Engine is the state machine of the drawing tool. It is not safe for
// concurrent use; hosts deliver events from a single goroutine.
type Engine struct {
	committer Committer
	renderer  Renderer

	factors     Factors
	orientation Orientation
	mods        ModifierState

	sess session
}

// NewEngine returns an engine with default factors. Either collaborator may
// be nil.
func NewEngine(c Committer, r Renderer) *Engine {
	if c == nil {
		c = nopCommitter{}
	}
	if r == nil {
		r = nopRenderer{}
	}
	return &Engine{
		committer: c,
		renderer:  r,
		factors:   DefaultFactors(),
	}
}

// Factors returns the current shape factors.
func (e *Engine) Factors() Factors { return e.factors }

// Mode returns the current drag mode.
func (e *Engine) Mode() DragMode { return e.mods.Mode }

// ModifierState returns the resolved modifier state.
func (e *Engine) ModifierState() ModifierState { return e.mods }

// Orientation returns the orientation recorded by the last solve.
func (e *Engine) Orientation() Orientation { return e.orientation }

// Geometry returns the geometry of the current gesture. It reports false
// when no box has been solved yet.
func (e *Engine) Geometry() (Geometry, bool) {
	return e.sess.geometry, e.sess.hasGeometry
}

// Active reports whether a gesture is in progress.
func (e *Engine) Active() bool { return e.sess.active }

// PointerDown starts a gesture at pt.
func (e *Engine) PointerDown(pt Point) {
	rp := pt.Round()
	e.sess = session{
		active:    true,
		anchor:    rp,
		lastPoint: rp,
	}
}

// PointerDrag processes a pointer movement to pt. The engine derives
// movement from its own last point; delta is what the host reported and is
// not used.
//
// A drag without a preceding PointerDown starts a gesture at pt.
func (e *Engine) PointerDrag(pt Point, delta Vec2) {
	if !e.sess.active {
		e.PointerDown(pt)
	}
	e.renderer.SetVisible(true)

	s := &e.sess
	switch e.mods.Mode {
	case Resize:
		rp := pt.Round()
		if !s.hasCorners {
			s.corner1 = s.anchor
			s.hasCorners = true
		}
		s.corner2 = rp.Translate(s.comp)
		s.lastPoint = rp
	case AdjustCurves, AdjustFlats:
		d := s.lastPoint.Sub(pt)
		s.comp = s.comp.Add(d)
		if e.mods.Mode == AdjustCurves {
			e.factors = e.factors.AdjustCurves(d.X, d.Y, e.mods.Step())
		} else {
			e.factors = e.factors.AdjustFlats(d.X, d.Y, e.mods.Step())
		}
		s.lastPoint = pt
	}
	e.solve()
	e.render()
}

// PointerUp ends the gesture. The shape is committed if it is larger than
// MinWidth × MinHeight; it reports whether that happened. Factors survive,
// everything else about the gesture is discarded.
func (e *Engine) PointerUp(pt Point) bool {
	committed := false
	if g, ok := e.Geometry(); ok && g.Size().Exceeds(Sz(MinWidth, MinHeight)) {
		e.committer.Commit(CommitLabel, g.Path())
		committed = true
	}
	e.sess = session{}
	e.renderer.SetVisible(false)
	return committed
}

// ModifiersChanged updates the drag mode and flags. A change of the square
// constraint takes effect immediately.
func (e *Engine) ModifiersChanged(m Modifiers) {
	e.mods = Resolve(m)
	e.solve()
	e.render()
}

// Activate is called when the tool becomes the current tool.
func (e *Engine) Activate() {
	e.renderer.SetVisible(true)
	e.render()
}

// Deactivate is called when another tool takes over.
func (e *Engine) Deactivate() {
	e.renderer.SetVisible(false)
}

// solve recomputes the geometry from the corners. A box whose corners
// coincide has no geometry.
func (e *Engine) solve() {
	s := &e.sess
	if !s.hasCorners {
		return
	}
	if s.corner1 == s.corner2 {
		s.hasGeometry = false
		return
	}
	s.geometry, e.factors = Solve(s.corner1, s.corner2, e.factors, e.mods.ConstrainSquare, e.orientation)
	e.orientation = s.geometry.Orientation
	s.hasGeometry = true
}

func (e *Engine) render() {
	g, ok := e.Geometry()
	if !ok {
		return
	}
	path := g.Path()
	e.renderer.Preview(path)
	e.renderer.Overlay(Frame{
		Geometry: g,
		Mode:     e.mods.Mode,
		Factors:  e.factors,
		Path:     path,
		Markers:  g.Markers(),
		Caption:  Caption(e.mods.Mode, g, e.factors),
	})
}
