package colortable

import "github.com/sanjeekswipro/colortable/core"

// Aliases and constants re-exported from core so a caller can build
// and drive a Table without importing the internal hub package.
type (
	// Method selects the interpolation algorithm.
	Method = core.Method
	// Mode selects a Table's threading discipline.
	Mode = core.Mode
	// Evaluator is the external reference-transform callback.
	Evaluator = core.Evaluator
	// EvaluatorFunc adapts a plain function to Evaluator.
	EvaluatorFunc = core.EvaluatorFunc
)

const (
	// Cubic performs multilinear interpolation.
	Cubic = core.Cubic
	// Tetrahedral performs simplex interpolation using I+1 corners.
	Tetrahedral = core.Tetrahedral

	// FrontEnd marks a single-threaded table.
	FrontEnd = core.FrontEnd
	// BackEnd marks a table serialized across render threads.
	BackEnd = core.BackEnd

	// FracBits is the number of fractional bits in a scaled input color.
	FracBits = core.FracBits
	// FracSide is 1<<FracBits.
	FracSide = core.FracSide
)

// ScaledColor returns the top of the scaled input range for a table
// whose largest grid index is maxIndex: callers must map raw [lo,hi]
// colors into [0, ScaledColor(maxIndex)] before Convert.
func ScaledColor(maxIndex int) int32 {
	return core.ScaledColor(maxIndex)
}
