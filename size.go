package roundshape

import (
	"fmt"
)

type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// Exceeds reports whether sz is strictly larger than o in both dimensions.
func (sz Size) Exceeds(o Size) bool {
	return sz.Width > o.Width && sz.Height > o.Height
}
