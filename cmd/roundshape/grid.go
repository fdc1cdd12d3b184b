package main

import (
	"image"
	"strings"

	"honnef.co/go/roundshape"
	"honnef.co/go/roundshape/render"

	"github.com/charmbracelet/lipgloss"
)

// subpixels is the number of canvas pixels per half cell in each direction.
const subpixels = 4

// grid is the drawing area of the terminal. Font units grow up and to the
// right from the bottom left corner of the grid.
type grid struct {
	cols, rows int
	scale      float64
}

// fontToCell maps font units to fractional cell coordinates.
func (g grid) fontToCell() roundshape.Affine {
	return roundshape.Scale(1/g.scale, -1/(2*g.scale)).
		ThenTranslate(roundshape.Vec(0, float64(g.rows)))
}

// cellToFont returns the font-unit position of the center of a cell.
func (g grid) cellToFont(col, row int) roundshape.Point {
	c := roundshape.Pt(float64(col)+0.5, float64(row)+0.5)
	return c.Transform(g.fontToCell().Invert())
}

// cellOf returns the cell containing pt and whether it is on the grid.
func (g grid) cellOf(pt roundshape.Point) (col, row int, ok bool) {
	c := pt.Transform(g.fontToCell())
	if c.X < 0 || c.Y < 0 {
		return 0, 0, false
	}
	col, row = int(c.X), int(c.Y)
	return col, row, col < g.cols && row < g.rows
}

// canvas returns a canvas covering the grid, each cell split into an upper
// and a lower half.
func (g grid) canvas() (*render.Canvas, error) {
	aff := g.fontToCell().ThenScale(subpixels, 2*subpixels)
	return render.NewCanvasTransform(g.cols*subpixels, g.rows*2*subpixels, aff)
}

func inked(img image.Image, x0, y0 int) bool {
	for y := y0; y < y0+subpixels; y++ {
		for x := x0; x < x0+subpixels; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r+g+b < 3*0xe000 {
				return true
			}
		}
	}
	return false
}

var blocks = [4]rune{' ', '▀', '▄', '█'}

var (
	markerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff8000"))
	stackedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0080ff"))
)

// draw turns the canvas into lines of half-block characters and puts the
// frame's markers on top.
func (g grid) draw(img image.Image, f *roundshape.Frame) string {
	cells := make([][]string, g.rows)
	for row := range cells {
		cells[row] = make([]string, g.cols)
		for col := range cells[row] {
			i := 0
			if inked(img, col*subpixels, row*2*subpixels) {
				i |= 1
			}
			if inked(img, col*subpixels, (row*2+1)*subpixels) {
				i |= 2
			}
			cells[row][col] = string(blocks[i])
		}
	}

	if f != nil {
		for _, m := range f.Markers {
			col, row, ok := g.cellOf(m.Pos)
			if !ok {
				continue
			}
			r := "•"
			if render.DotSize(f.Mode, m.Kind) > render.DotSize(roundshape.Resize, m.Kind) {
				r = "●"
			}
			if m.Stacked {
				cells[row][col] = stackedStyle.Render(r)
			} else {
				cells[row][col] = markerStyle.Render(r)
			}
		}
	}

	lines := make([]string, g.rows)
	for row, cs := range cells {
		lines[row] = strings.Join(cs, "")
	}
	return strings.Join(lines, "\n")
}
