package colortable

import (
	"github.com/sanjeekswipro/colortable/core"
	"github.com/sanjeekswipro/colortable/registry"
)

// Config carries a new Table's construction-time parameters: the
// lattice shape (I, O, S), the per-dimension input range each axis
// maps to, the output device's bit depth per component, the
// interpolation Method, and the reference Evaluator. It is consumed
// once by NewTable and never retained.
type Config struct {
	// I is the input (lattice) dimension, 1..16.
	I int
	// O is the output dimension, >0.
	O int
	// S is the grid side: number of grid points per axis, 2..33.
	S int

	// RangeLoHi holds, per input dimension, the [lo, hi] color range
	// grid index 0 and MaxIndex map to.
	RangeLoHi [][2]float64

	// DeviceLevels holds, per output component, the number of device
	// code levels (e.g. 65536 for 16-bit), used to normalize the
	// linearity validator's error tolerance.
	DeviceLevels []int

	// Method selects cubic (multilinear) or tetrahedral (simplex)
	// interpolation.
	Method core.Method

	// Eval is the external reference transform.
	Eval core.Evaluator

	// Smoothness in [0,1]; >=1.0 disables linearity validation
	// entirely (every mini-cube is treated as linear). Zero value (0)
	// enables validation with the default tolerance.
	Smoothness float64

	// WideCornerCache opts I=3/I=4 tables into the wider corner-pointer
	// cache sizing. No effect at other input dimensions.
	WideCornerCache bool

	// Mode selects FrontEnd (single-threaded) or BackEnd (per-table
	// mutex-serialized) threading discipline.
	Mode core.Mode

	// ToleranceSq overrides the squared normalized-error bound used by
	// the linearity validator. Zero value (0) uses the package default.
	ToleranceSq float64
}

// TableOption customizes a Table after construction but before it is
// registered and handed back to the caller. Most configuration lives
// on Config directly; TableOption exists for knobs that only make
// sense post-construction, such as substituting the registry a table
// joins (used by tests to avoid sharing process-global state).
type TableOption func(*Table)

// WithRegistry registers the table with r instead of the package-level
// default registry. Intended for tests that need isolation from other
// tables created in the same process.
func WithRegistry(r *registry.Registry) TableOption {
	return func(t *Table) { t.reg = r }
}

func (c Config) toCoreOptions() []core.ConfigOption {
	opts := []core.ConfigOption{
		core.WithThreadMode(c.Mode),
		core.WithWideCornerCache(c.WideCornerCache),
	}
	if c.Smoothness != 0 {
		opts = append(opts, core.WithSmoothness(c.Smoothness))
	}
	if c.ToleranceSq != 0 {
		opts = append(opts, core.WithToleranceSq(c.ToleranceSq))
	}
	return opts
}
