package validate

import (
	"fmt"

	"github.com/sanjeekswipro/colortable/core"
	"github.com/sanjeekswipro/colortable/grid"
)

// ValidateMiniCube decides whether the mini-cube spanning anchor..inc
// meets the table's accuracy bound, and reports the verdict that
// should be latched into FlagCubeTested/FlagCubeLinear on the cube's anchor
// cell (the caller owns that cell and applies the flags; this
// function only computes the verdict).
//
// For I>=5 the check is skipped (cost prohibitive) and for
// Smoothness>=1.0 it is skipped by configuration; both report true
// unconditionally. Otherwise the evaluator is invoked once more at the
// cube's exact center and compared against a recursive pairwise
// average of the corners already resolved in src.
//
// Complexity: O(I) for the center input color, one evaluator call, and
// O(2^I) to fold the corners — dominated by whatever Source.Get costs
// for any corner not already resolved.
func ValidateMiniCube(anchor, inc []int, src grid.CornerSource, cfg *core.Config) (bool, error) {
	if cfg.I >= 5 || cfg.Smoothness >= 1.0 {
		return true, nil
	}

	center := make([]float64, cfg.I)
	for d := 0; d < cfg.I; d++ {
		center[d] = cfg.RangeBase[d] + cfg.RangeScale[d]*(float64(anchor[d])+float64(inc[d]))/2
	}

	trueColor := make([]uint16, cfg.O)
	if err := cfg.Eval.Evaluate(center, trueColor); err != nil {
		return false, fmt.Errorf("validate.ValidateMiniCube: %w: %v", core.ErrEvaluatorFailed, err)
	}

	interpolated, err := foldCenter(src, cfg)
	if err != nil {
		return false, err
	}

	var sumSq float64
	for o := 0; o < cfg.O; o++ {
		e := (interpolated[o] - float64(trueColor[o])) * cfg.ErrorScale[o]
		sumSq += e * e
	}
	return sumSq <= cfg.ToleranceSq, nil
}

// foldCenter estimates the cube-center color by recursively averaging
// corner pairs: first collapsing across dimension I-1 (corner k paired
// with k+2^(I-1)), then I-2, down to dimension 0, until a single value
// per output component remains. This is
// a pure multilinear interpolation of the center point, equivalent to
// a flat mean over the corners but computed pairwise, the way the
// interpolators themselves halve their working set.
func foldCenter(src grid.CornerSource, cfg *core.Config) ([]float64, error) {
	numCorners := cfg.NumCorners()
	values := make([][]float64, numCorners)
	for k := 0; k < numCorners; k++ {
		cell, err := src.Get(k)
		if err != nil {
			return nil, err
		}
		v := make([]float64, cfg.O)
		for o := 0; o < cfg.O; o++ {
			v[o] = float64(cell.Color[o])
		}
		values[k] = v
	}

	for n := numCorners; n > 1; n /= 2 {
		half := n / 2
		for k := 0; k < half; k++ {
			a, b := values[k], values[k+half]
			for o := 0; o < cfg.O; o++ {
				a[o] = (a[o] + b[o]) / 2
			}
		}
	}
	return values[0], nil
}
