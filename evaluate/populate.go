package evaluate

import (
	"fmt"

	"github.com/sanjeekswipro/colortable/core"
	"github.com/sanjeekswipro/colortable/grid"
)

// PopulateCell evaluates the external transform at the input color
// derived from indices and records the result on cell.
//
// Precondition: cell.ColorPresent() is false.
//
// On success, cell.Color holds cfg.O components and FlagColorPresent
// is set. On failure the cell is left unpopulated and the error is
// ErrEvaluatorFailed (wrapping the Evaluator's own error) or
// ErrOutOfMemory (allocation failure — not produced by make() in
// practice, reserved for callers that plug in a failing pooled
// allocator).
//
// Complexity: O(I) to derive the input color, plus the Evaluator's own cost.
func PopulateCell(cell *grid.Cell, indices []int, cfg *core.Config) error {
	if cell.ColorPresent() {
		return ErrAlreadyPresent
	}

	inputColor := make([]float64, cfg.I)
	cfg.InputColor(indices, inputColor)

	output := make([]uint16, cfg.O)
	if err := cfg.Eval.Evaluate(inputColor, output); err != nil {
		return fmt.Errorf("evaluate.PopulateCell: %w: %v", core.ErrEvaluatorFailed, err)
	}

	cell.SetColor(output)
	return nil
}
