package dispatch

import (
	"github.com/sanjeekswipro/colortable/core"
	"github.com/sanjeekswipro/colortable/grid"
	"github.com/sanjeekswipro/colortable/interp"
)

// Interpolator is the shape every specialized and generic interpolator
// in package interp shares: resolve 2^I corners from src, blend them
// by fracs, write cfg.O components to out.
type Interpolator func(src grid.CornerSource, fracs []int, cfg *core.Config, out []uint16) error

// Select picks the interpolator for a table's (Method, I), a closed
// world {Cubic1..Cubic4, CubicN, Tet2..Tet4, TetN} fixed at creation.
func Select(cfg *core.Config) Interpolator {
	if cfg.Method == core.Tetrahedral {
		switch cfg.I {
		case 2:
			return interp.Tet2
		case 3:
			return interp.Tet3
		case 4:
			return interp.Tet4
		case 1:
			return interp.Cubic1 // 1-D simplex and multilinear coincide
		default:
			return interp.TetN
		}
	}
	switch cfg.I {
	case 1:
		return interp.Cubic1
	case 2:
		return interp.Cubic2
	case 3:
		return interp.Cubic3
	case 4:
		return interp.Cubic4
	default:
		return interp.CubicN
	}
}
