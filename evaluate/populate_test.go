package evaluate_test

import (
	"errors"
	"testing"

	"github.com/sanjeekswipro/colortable/core"
	"github.com/sanjeekswipro/colortable/evaluate"
	"github.com/sanjeekswipro/colortable/grid"
	"github.com/stretchr/testify/require"
)

func TestPopulateCellInvokesEvaluatorAndSetsFlag(t *testing.T) {
	var calls int
	eval := core.EvaluatorFunc(func(input []float64, output []uint16) error {
		calls++
		output[0] = uint16(input[0])
		output[1] = uint16(input[1])
		return nil
	})
	cfg, err := core.NewConfig(2, 2, 5, [][2]float64{{0, 4}, {0, 4}}, []int{256, 256}, core.Cubic, eval)
	require.NoError(t, err)

	cell := &grid.Cell{}
	err = evaluate.PopulateCell(cell, []int{2, 1}, cfg)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.True(t, cell.ColorPresent())
	require.Equal(t, uint16(2), cell.Color[0])
	require.Equal(t, uint16(1), cell.Color[1])
}

func TestPopulateCellPropagatesEvaluatorFailure(t *testing.T) {
	boom := errors.New("boom")
	eval := core.EvaluatorFunc(func(input []float64, output []uint16) error {
		return boom
	})
	cfg, err := core.NewConfig(1, 1, 3, [][2]float64{{0, 1}}, []int{256}, core.Cubic, eval)
	require.NoError(t, err)

	cell := &grid.Cell{}
	err = evaluate.PopulateCell(cell, []int{0}, cfg)
	require.ErrorIs(t, err, core.ErrEvaluatorFailed)
	require.False(t, cell.ColorPresent())
	require.Nil(t, cell.Color)
}

func TestPopulateCellRejectsAlreadyPresent(t *testing.T) {
	cfg, err := core.NewConfig(1, 1, 3, [][2]float64{{0, 1}}, []int{256}, core.Cubic,
		core.EvaluatorFunc(func(input []float64, output []uint16) error { return nil }))
	require.NoError(t, err)

	cell := &grid.Cell{}
	cell.SetColor([]uint16{1})

	err = evaluate.PopulateCell(cell, []int{0}, cfg)
	require.ErrorIs(t, err, evaluate.ErrAlreadyPresent)
}
