package roundshape

import (
	"fmt"
	"math"
)

const (
	// CircleFactor is the Bézier factor at which a corner closely
	// approximates a quarter circle.
	CircleFactor = 1 - 0.552284749831

	// SnapThreshold is the distance within which a Bézier factor snaps to 0
	// or to CircleFactor.
	SnapThreshold = 0.02

	// StepSize is the factor change per unit of pointer movement.
	StepSize = 0.005
	// FineStepSize is StepSize while the fine-step modifier is held.
	FineStepSize = 0.00025

	MinBezierFactor = -0.5
	MaxBezierFactor = 1.0
	MinFlatFactor   = 0.0
	MaxFlatFactor   = 1.5
)

// Factors are the two pairs of shape factors. The primary factors apply to
// the horizontal axis and the secondary factors to the vertical axis.
//
// A flat factor is the fraction of half an edge taken up by its straight
// segment. A Bézier factor places a corner's control point between the
// tangent point (0) and the box extreme (1).
type Factors struct {
	FlatPrimary     float64
	FlatSecondary   float64
	BezierPrimary   float64
	BezierSecondary float64
}

// DefaultFactors returns the factors a new engine starts with.
func DefaultFactors() Factors {
	return Factors{
		FlatPrimary:     0.25,
		FlatSecondary:   0,
		BezierPrimary:   0.2,
		BezierSecondary: 0.2,
	}
}

func (f Factors) String() string {
	return fmt.Sprintf("flat(%.3f, %.3f) bezier(%.3f, %.3f)",
		f.FlatPrimary, f.FlatSecondary, f.BezierPrimary, f.BezierSecondary)
}

// Swap exchanges primary and secondary values of both pairs.
func (f Factors) Swap() Factors {
	return Factors{
		FlatPrimary:     f.FlatSecondary,
		FlatSecondary:   f.FlatPrimary,
		BezierPrimary:   f.BezierSecondary,
		BezierSecondary: f.BezierPrimary,
	}
}

// AdjustCurves applies a pointer movement to the Bézier factors. Moving left
// (positive dx) raises the primary factor, moving down (positive dy) lowers
// the secondary one. Results are clamped and then snapped.
func (f Factors) AdjustCurves(dx, dy, step float64) Factors {
	f.BezierPrimary = snapBezier(clamp(f.BezierPrimary+dx*step, MinBezierFactor, MaxBezierFactor))
	f.BezierSecondary = snapBezier(clamp(f.BezierSecondary-dy*step, MinBezierFactor, MaxBezierFactor))
	return f
}

// AdjustFlats applies a pointer movement to the flat factors. Moving left
// (positive dx) lowers the primary factor, moving down (positive dy) raises
// the secondary one. Flat factors do not snap.
func (f Factors) AdjustFlats(dx, dy, step float64) Factors {
	f.FlatPrimary = clamp(f.FlatPrimary-dx*step, MinFlatFactor, MaxFlatFactor)
	f.FlatSecondary = clamp(f.FlatSecondary+dy*step, MinFlatFactor, MaxFlatFactor)
	return f
}

// Pair returns the pair of factors that mode adjusts, primary first. Resize
// adjusts nothing and reports false.
func (f Factors) Pair(mode DragMode) (x, y float64, ok bool) {
	switch mode {
	case AdjustCurves:
		return f.BezierPrimary, f.BezierSecondary, true
	case AdjustFlats:
		return f.FlatPrimary, f.FlatSecondary, true
	default:
		return 0, 0, false
	}
}

var snapTargets = [...]float64{CircleFactor, 0}

func snapBezier(v float64) float64 {
	for _, target := range snapTargets {
		if math.Abs(v-target) < SnapThreshold {
			return target
		}
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
