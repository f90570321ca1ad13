// This file declares Method, Mode, Evaluator, Config, ConfigOption,
// sentinel errors, and the NewConfig constructor.
//
// Errors:
//
//	ErrConfigError     - invalid I/O/S combination at table creation.
//	ErrOutOfMemory     - allocation failed and release could not recover.
//	ErrEvaluatorFailed - the external Evaluator reported failure.
package core

import (
	"errors"
)

// Sentinel errors for colortable operations. Every package wraps these
// with %w at its call boundary; callers branch with errors.Is.
var (
	// ErrConfigError indicates an invalid I/O/S combination at table
	// creation. The table is never returned when this is set.
	ErrConfigError = errors.New("core: invalid table configuration")

	// ErrOutOfMemory indicates an allocation failed and the low-memory
	// handler could not recover enough space to satisfy it.
	ErrOutOfMemory = errors.New("core: out of memory")

	// ErrEvaluatorFailed indicates the external Evaluator reported
	// failure for a requested input color.
	ErrEvaluatorFailed = errors.New("core: evaluator failed")
)

// FracBits is the number of fractional bits carried by scaled input
// colors.
const FracBits = 8

// FracSide is 1<<FracBits, the number of distinct fractional positions
// between two adjacent grid indices.
const FracSide = 1 << FracBits

// FracMask extracts the fractional part of a scaled input component.
const FracMask = FracSide - 1

// ScaledColor returns the constant a caller must scale raw [lo,hi]
// input colors into: [0, ScaledColor(maxIndex)]. maxIndex = S-1.
func ScaledColor(maxIndex int) int32 {
	return int32(maxIndex) << FracBits
}

// Method selects the interpolation algorithm a Table uses for every
// Convert call; it is fixed at table creation. The two methods trade
// accuracy differently and are not bit-exact with each other.
type Method int

const (
	// Cubic performs multilinear (trilinear for I=3) interpolation.
	Cubic Method = iota
	// Tetrahedral performs simplex interpolation using exactly I+1 corners.
	Tetrahedral
)

// String renders the Method name for logging and test failure messages.
func (m Method) String() string {
	switch m {
	case Cubic:
		return "cubic"
	case Tetrahedral:
		return "tetrahedral"
	default:
		return "unknown"
	}
}

// Mode selects a Table's threading discipline.
type Mode int

const (
	// FrontEnd tables are single-threaded; low-memory purges avoid
	// cells currently referenced by the dispatcher via a beingUsed flag.
	FrontEnd Mode = iota
	// BackEnd tables serialize Convert calls and low-memory purges of
	// that table behind a per-table mutex; a Solicit/Release that finds
	// it busy declines instead of waiting.
	BackEnd
)

// Evaluator is the external reference transform: given a scaled input
// color of Config.I components, it writes Config.O 16-bit device-code
// components to output. It must be referentially transparent and may
// fail, in which case it returns a non-nil error (wrapped by the
// caller into ErrEvaluatorFailed).
type Evaluator interface {
	Evaluate(input []float64, output []uint16) error
}

// EvaluatorFunc adapts a plain function to the Evaluator interface,
// mirroring the pluggable-callback idiom used for weight functions
// elsewhere in this codebase.
type EvaluatorFunc func(input []float64, output []uint16) error

// Evaluate calls f(input, output).
func (f EvaluatorFunc) Evaluate(input []float64, output []uint16) error {
	return f(input, output)
}

// Config is a Table's immutable, construction-time configuration. It
// is shared by reference (never copied) with every subpackage that
// needs it; nothing may mutate a Config's fields after NewConfig
// returns.
type Config struct {
	// I is the input (lattice) dimension, 1..16.
	I int
	// O is the output dimension, >0.
	O int
	// S is the grid side: number of grid points per axis, typically 3..33.
	S int
	// MaxIndex is S-1, the largest valid index along any axis.
	MaxIndex int

	// RangeBase and RangeScale map grid indices to evaluator input:
	// inputColor[d] = RangeBase[d] + RangeScale[d]*indices[d].
	RangeBase  []float64
	RangeScale []float64

	// ErrorScale maps a per-output-component device-code delta to a
	// normalized error, used by the linearity validator.
	ErrorScale []float64

	// ToleranceSq is the squared normalized-error bound a mini-cube's
	// center must satisfy to be marked linear.
	ToleranceSq float64

	// Smoothness in [0,1]; >=1.0 disables validation (always linear).
	Smoothness float64

	// Method selects the interpolation algorithm.
	Method Method

	// WideCornerCache opts I=3/I=4 tables into the wider corner-pointer
	// cache (see SizingPolicy in package cache).
	WideCornerCache bool

	// Mode selects the threading discipline.
	Mode Mode

	// Eval is the external evaluator handle.
	Eval Evaluator
}

// ConfigOption customizes a Config before NewConfig validates it.
type ConfigOption func(*Config)

// WithSmoothness sets the validation-skip smoothness parameter.
// s>=1.0 disables linearity validation; every mini-cube is accepted.
func WithSmoothness(s float64) ConfigOption {
	return func(c *Config) { c.Smoothness = s }
}

// WithWideCornerCache opts 3-D/4-D tables into the wider corner-pointer
// cache. No effect at other input dimensions.
func WithWideCornerCache(enabled bool) ConfigOption {
	return func(c *Config) { c.WideCornerCache = enabled }
}

// WithThreadMode selects FrontEnd or BackEnd threading discipline.
func WithThreadMode(mode Mode) ConfigOption {
	return func(c *Config) { c.Mode = mode }
}

// NewConfig validates and builds a Config from the required table
// creation parameters plus options.
//
// Complexity: O(I+O) to allocate and populate the range/error vectors.
func NewConfig(i, o, s int, rangeLoHi [][2]float64, deviceLevels []int, method Method, eval Evaluator, opts ...ConfigOption) (*Config, error) {
	if i < 1 || i > 16 {
		return nil, ErrConfigError
	}
	if o < 1 {
		return nil, ErrConfigError
	}
	if s < 2 || s > 33 {
		return nil, ErrConfigError
	}
	if len(rangeLoHi) != i {
		return nil, ErrConfigError
	}
	if len(deviceLevels) != o {
		return nil, ErrConfigError
	}
	if eval == nil {
		return nil, ErrConfigError
	}

	maxIndex := s - 1
	rangeBase := make([]float64, i)
	rangeScale := make([]float64, i)
	for d := 0; d < i; d++ {
		lo, hi := rangeLoHi[d][0], rangeLoHi[d][1]
		rangeBase[d] = lo
		if maxIndex > 0 {
			rangeScale[d] = (hi - lo) / float64(maxIndex)
		}
	}

	errorScale := make([]float64, o)
	for k := 0; k < o; k++ {
		if deviceLevels[k] <= 0 {
			return nil, ErrConfigError
		}
		errorScale[k] = 1.0 / float64(deviceLevels[k])
	}

	cfg := &Config{
		I:           i,
		O:           o,
		S:           s,
		MaxIndex:    maxIndex,
		RangeBase:   rangeBase,
		RangeScale:  rangeScale,
		ErrorScale:  errorScale,
		ToleranceSq: defaultToleranceSq,
		Smoothness:  0,
		Method:      method,
		Mode:        FrontEnd,
		Eval:        eval,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg, nil
}

// defaultToleranceSq is the default squared-error bound used by the
// linearity validator when the caller doesn't override it via
// WithToleranceSq. Since ErrorScale is 1/deviceLevels, it corresponds
// to a normalized error of 0.5: half of one component's full device
// code range.
const defaultToleranceSq = 0.25

// WithToleranceSq overrides the squared normalized-error bound used by
// the linearity validator.
func WithToleranceSq(tolSq float64) ConfigOption {
	return func(c *Config) { c.ToleranceSq = tolSq }
}
