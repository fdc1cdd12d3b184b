package roundshape

import (
	"strings"
)

// Modifiers is the set of held modifier keys, from the fixed vocabulary of
// the tool. Hosts map their own keys onto these bits.
type Modifiers uint8

const (
	// ModSquare constrains the box to a square.
	ModSquare Modifiers = 1 << iota
	// ModFineStep makes factor adjustments twenty times finer.
	ModFineStep
	// ModFlats makes drags adjust the flat factors.
	ModFlats
	// ModCurves makes drags adjust the Bézier factors.
	ModCurves
)

// Contain reports whether m contains all modifiers in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (m Modifiers) String() string {
	if m == 0 {
		return "none"
	}
	var names []string
	for _, n := range []struct {
		mod  Modifiers
		name string
	}{
		{ModSquare, "square"},
		{ModFineStep, "fine"},
		{ModFlats, "flats"},
		{ModCurves, "curves"},
	} {
		if m.Contain(n.mod) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// DragMode selects what a pointer drag changes.
type DragMode int

const (
	Resize DragMode = iota
	AdjustCurves
	AdjustFlats
)

func (m DragMode) String() string {
	switch m {
	case Resize:
		return "size"
	case AdjustCurves:
		return "curves"
	case AdjustFlats:
		return "flats"
	default:
		return "invalid"
	}
}

// ModifierState is the outcome of resolving a modifier set.
type ModifierState struct {
	Mode            DragMode
	ConstrainSquare bool
	Precision       bool
}

// Resolve maps held modifiers to a drag mode and the two flags. Flats take
// precedence over curves; with neither held the mode is [Resize].
func Resolve(m Modifiers) ModifierState {
	st := ModifierState{
		ConstrainSquare: m.Contain(ModSquare),
		Precision:       m.Contain(ModFineStep),
	}
	switch {
	case m.Contain(ModFlats):
		st.Mode = AdjustFlats
	case m.Contain(ModCurves):
		st.Mode = AdjustCurves
	default:
		st.Mode = Resize
	}
	return st
}

// Step returns the factor change per unit of pointer movement.
func (st ModifierState) Step() float64 {
	if st.Precision {
		return FineStepSize
	}
	return StepSize
}
