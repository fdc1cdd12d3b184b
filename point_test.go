package roundshape

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Translate(Vec(-10, 0)))
	diff(t, Vec(3, -4), Pt(5, 1).Sub(Pt(2, 5)))
}

func TestPointRound(t *testing.T) {
	f := func(in, want Point) {
		t.Helper()
		diff(t, want, in.Round())
	}
	f(Pt(0.4, 0.6), Pt(0, 1))
	f(Pt(2.5, -2.5), Pt(3, -3))
	f(Pt(-0.4, 99.49), Pt(0, 99))
}
