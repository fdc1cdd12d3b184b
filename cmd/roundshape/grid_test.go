package main

import (
	"testing"

	"honnef.co/go/roundshape"
	"honnef.co/go/roundshape/glyph"
)

func TestCellToFont(t *testing.T) {
	g := grid{cols: 80, rows: 24, scale: 10}
	diff(t, roundshape.Pt(5, 10), g.cellToFont(0, 23), approx)
	diff(t, roundshape.Pt(5, 470), g.cellToFont(0, 0), approx)
	diff(t, roundshape.Pt(795, 10), g.cellToFont(79, 23), approx)

	for row := range g.rows {
		for col := range g.cols {
			c, r, ok := g.cellOf(g.cellToFont(col, row))
			if !ok || c != col || r != row {
				t.Fatalf("cellOf(cellToFont(%d, %d)) = %d, %d, %v", col, row, c, r, ok)
			}
		}
	}
}

func TestCellOfOffGrid(t *testing.T) {
	g := grid{cols: 80, rows: 24, scale: 10}
	for _, pt := range []roundshape.Point{
		roundshape.Pt(-1, 10),
		roundshape.Pt(805, 10),
		roundshape.Pt(5, -1),
		roundshape.Pt(5, 485),
	} {
		if _, _, ok := g.cellOf(pt); ok {
			t.Errorf("cellOf(%v) is on the grid", pt)
		}
	}
}

func TestGridDraw(t *testing.T) {
	g := grid{cols: 4, rows: 2, scale: 10}
	c, err := g.canvas()
	if err != nil {
		t.Fatal(err)
	}
	// A 20×20 square fills the two lower left cells, a 20×10 bar the upper
	// half of the two cells to their right.
	o := glyph.NewOutline(nil)
	o.Commit("square", roundshape.Rect{X0: 0, Y0: 0, X1: 20, Y1: 20}.Path())
	o.Commit("bar", roundshape.Rect{X0: 20, Y0: 10, X1: 40, Y1: 20}.Path())
	c.DrawOutline(o.Path())

	diff(t, "    \n██▀▀", g.draw(c.Image(), nil))
}
