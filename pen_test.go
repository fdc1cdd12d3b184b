package roundshape

import (
	"testing"
)

func TestDrawPath(t *testing.T) {
	var pen PathPen
	want := wideGeometry.Path()
	DrawPath(&pen, want.Elements())
	diff(t, want, pen.Path)
}
