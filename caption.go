package roundshape

import (
	"fmt"
	"strings"
)

// Caption returns the overlay text for a solved shape: a title with usage
// hints, the box size, the orientation and, while a factor mode is active,
// the pair of factors being changed.
func Caption(mode DragMode, g Geometry, f Factors) string {
	var sb strings.Builder
	sb.WriteString("the symmetrical,\nround shape\ndrawing tool\n")
	sb.WriteString("hold flats to move the flat\nhold curves to move the bcps\n\n")
	fmt.Fprintf(&sb, "width %3.3f\nheight %3.3f\n", g.Width, g.Height)
	if g.Orientation == Horizontal {
		sb.WriteString("horizontal")
	} else {
		sb.WriteString("vertical")
	}
	if x, y, ok := f.Pair(mode); ok {
		name := "bcp"
		if mode == AdjustFlats {
			name = "flat"
		}
		fmt.Fprintf(&sb, "\n\nyou're changing the %s factor\nx %3.3f\ny %3.3f", name, x, y)
	}
	return sb.String()
}
