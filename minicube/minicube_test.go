package minicube_test

import (
	"testing"

	"github.com/sanjeekswipro/colortable/core"
	"github.com/sanjeekswipro/colortable/grid"
	"github.com/sanjeekswipro/colortable/minicube"
	"github.com/stretchr/testify/require"
)

func sumEval(i, o int) core.EvaluatorFunc {
	return func(input []float64, output []uint16) error {
		var sum float64
		for _, v := range input {
			sum += v
		}
		for k := 0; k < o; k++ {
			output[k] = uint16(sum)
		}
		return nil
	}
}

func TestBoundsDerivesAnchorIncFracs(t *testing.T) {
	cfg, err := core.NewConfig(2, 1, 5, [][2]float64{{0, 4}, {0, 4}}, []int{256}, core.Cubic, sumEval(2, 1))
	require.NoError(t, err)

	input := []int32{1*core.FracSide + 64, 2 * core.FracSide}
	anchor, inc, fracs := minicube.Bounds(input, cfg)
	require.Equal(t, []int{1, 2}, anchor)
	require.Equal(t, []int{2, 3}, inc)
	require.Equal(t, []int{64, 0}, fracs)
}

func TestBoundsClampsAtUpperFace(t *testing.T) {
	cfg, err := core.NewConfig(1, 1, 3, [][2]float64{{0, 1}}, []int{256}, core.Cubic, sumEval(1, 1))
	require.NoError(t, err)

	input := []int32{int32(cfg.MaxIndex) << core.FracBits} // exactly at max index, frac 0
	anchor, inc, _ := minicube.Bounds(input, cfg)
	require.Equal(t, cfg.MaxIndex, anchor[0])
	require.Equal(t, cfg.MaxIndex, inc[0], "inc clamps to MaxIndex on upper face")
}

func TestEnsureCornersPopulatesAll2PowICorners(t *testing.T) {
	cfg, err := core.NewConfig(3, 1, 5, [][2]float64{{0, 4}, {0, 4}, {0, 4}}, []int{256}, core.Cubic, sumEval(3, 1))
	require.NoError(t, err)
	g := grid.New(3, 5)

	anchor := []int{1, 1, 1}
	inc := []int{2, 2, 2}
	src, err := minicube.EnsureCorners(g, cfg, anchor, inc)
	require.NoError(t, err)

	for k := 0; k < 8; k++ {
		cell, err := src.Get(k)
		require.NoError(t, err)
		require.True(t, cell.ColorPresent())
	}
}

func TestEnsureCornersHighDimDoesNotEagerlyPopulate(t *testing.T) {
	const i = 6
	lo := make([][2]float64, i)
	anchor := make([]int, i)
	inc := make([]int, i)
	for d := 0; d < i; d++ {
		lo[d] = [2]float64{0, 4}
		anchor[d] = 1
		inc[d] = 2
	}
	cfg, err := core.NewConfig(i, 1, 5, lo, []int{256}, core.Tetrahedral, sumEval(i, 1))
	require.NoError(t, err)
	g := grid.New(i, 5)

	_, err = minicube.EnsureCorners(g, cfg, anchor, inc)
	require.NoError(t, err)
	require.Equal(t, 0, g.RowCount(), "no corner should be populated eagerly for I>=5")
}

func TestSourceGetIsMemoized(t *testing.T) {
	var calls int
	eval := core.EvaluatorFunc(func(input []float64, output []uint16) error {
		calls++
		output[0] = 1
		return nil
	})
	cfg, err := core.NewConfig(2, 1, 5, [][2]float64{{0, 4}, {0, 4}}, []int{256}, core.Cubic, eval)
	require.NoError(t, err)
	g := grid.New(2, 5)

	src := minicube.NewSource(g, cfg, []int{1, 1}, []int{2, 2})
	_, err = src.Get(0)
	require.NoError(t, err)
	_, err = src.Get(0)
	require.NoError(t, err)
	require.Equal(t, 1, calls, "second Get for the same corner must not re-invoke the evaluator")
}

func TestSourceGetRejectsOutOfRangeCorner(t *testing.T) {
	cfg, err := core.NewConfig(2, 1, 5, [][2]float64{{0, 4}, {0, 4}}, []int{256}, core.Cubic, sumEval(2, 1))
	require.NoError(t, err)
	g := grid.New(2, 5)
	src := minicube.NewSource(g, cfg, []int{1, 1}, []int{2, 2})

	_, err = src.Get(4)
	require.ErrorIs(t, err, minicube.ErrBadCorner)
}
