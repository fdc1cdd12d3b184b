package roundshape

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicBezExtrema(t *testing.T) {
	// A hump, with its only interior extremum at the apex.
	c := CubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	ex, n := c.Extrema()
	diff(t, []float64{0.5}, ex[:n], cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(5, 7.5), c.Eval(0.5), approx)
	diff(t, Rect{0, 0, 10, 7.5}, c.BoundingBox(), approx)
}

func TestCubicBezTransform(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 3), Pt(4, 3), Pt(5, 0)}
	got := c.Transform(FlipY)
	diff(t, CubicBez{Pt(0, 0), Pt(1, -3), Pt(4, -3), Pt(5, 0)}, got, approx)
}
