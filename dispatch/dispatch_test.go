package dispatch_test

import (
	"errors"
	"testing"

	"github.com/sanjeekswipro/colortable/cache"
	"github.com/sanjeekswipro/colortable/core"
	"github.com/sanjeekswipro/colortable/dispatch"
	"github.com/sanjeekswipro/colortable/grid"
	"github.com/stretchr/testify/require"
)

// identityRGB returns the input color (truncated), zero-padding any
// output components beyond I. With rangeScale chosen so a grid index
// maps back to the same numeric value as its raw scaled input, this
// makes exact grid points round-trip without interpolation error.
func identityRGB() core.EvaluatorFunc {
	return func(input []float64, output []uint16) error {
		for k := range output {
			if k < len(input) {
				output[k] = uint16(input[k])
			} else {
				output[k] = 0
			}
		}
		return nil
	}
}

// identityRange returns an input-range slice [0, maxIndex<<FracBits]
// per dimension, so grid index d's input color equals d<<FracBits —
// the same numeric scale Convert's raw inputs use.
func identityRange(i, s int) [][2]float64 {
	hi := float64((s - 1) << core.FracBits)
	lo := make([][2]float64, i)
	for d := 0; d < i; d++ {
		lo[d] = [2]float64{0, hi}
	}
	return lo
}

func newDispatcher(t *testing.T, i, o, s int, method core.Method, opts ...core.ConfigOption) (*dispatch.Dispatcher, *core.Config) {
	t.Helper()
	levels := make([]int, o)
	for k := range levels {
		levels[k] = 65536
	}
	cfg, err := core.NewConfig(i, o, s, identityRange(i, s), levels, method, identityRGB(), opts...)
	require.NoError(t, err)
	g := grid.New(i, s)
	c := cache.New(i, s, cfg.WideCornerCache)
	return dispatch.New(cfg, g, c), cfg
}

func TestConvertExactGridPointHasNoInterpolationError(t *testing.T) {
	d, _ := newDispatcher(t, 1, 1, 3, core.Cubic)
	inputs := []int32{0, 128, 256, 384, 512}
	outputs := make([]uint16, 5)
	require.NoError(t, d.Convert(inputs, outputs, 5))
	require.Equal(t, []uint16{0, 128, 256, 384, 512}, outputs)
}

func TestConvertTetrahedralIdentity(t *testing.T) {
	d, _ := newDispatcher(t, 3, 4, 5, core.Tetrahedral)
	input := []int32{256, 256, 256}
	out := make([]uint16, 4)
	require.NoError(t, d.Convert(input, out, 1))
	require.Equal(t, []uint16{256, 256, 256, 0}, out)
}

func TestConvertRepeatedInputShortCircuits(t *testing.T) {
	var evalCalls int
	cfg, err := core.NewConfig(3, 4, 5, identityRange(3, 5), []int{65536, 65536, 65536, 65536}, core.Tetrahedral,
		core.EvaluatorFunc(func(input []float64, output []uint16) error {
			evalCalls++
			for k := range output {
				if k < len(input) {
					output[k] = uint16(input[k])
				}
			}
			return nil
		}))
	require.NoError(t, err)
	g := grid.New(3, 5)
	c := cache.New(3, 5, cfg.WideCornerCache)
	d := dispatch.New(cfg, g, c)

	inputs := make([]int32, 3*1000)
	for p := 0; p < 1000; p++ {
		inputs[p*3+0] = 512
		inputs[p*3+1] = 512
		inputs[p*3+2] = 512
	}
	outputs := make([]uint16, 4*1000)
	require.NoError(t, d.Convert(inputs, outputs, 1000))

	first := evalCalls
	require.Greater(t, first, 0)
	// A second identical Convert call must perform zero further
	// evaluations: the table's last-input shadow state already covers it.
	require.NoError(t, d.Convert(inputs, outputs, 1000))
	require.Equal(t, first, evalCalls, "idempotent Convert calls must not re-invoke the evaluator")
}

func TestConvertSweepPopulatesEveryGridPointExactlyOnce(t *testing.T) {
	var evalCalls int
	// Smoothness 1.0 disables the linearity check so the evaluator is
	// reached only from PopulateCell — one call per distinct grid point.
	cfg, err := core.NewConfig(4, 4, 3, identityRange(4, 3), []int{65536, 65536, 65536, 65536}, core.Cubic,
		core.EvaluatorFunc(func(input []float64, output []uint16) error {
			evalCalls++
			for k := range output {
				if k < len(input) {
					output[k] = uint16(input[k])
				}
			}
			return nil
		}), core.WithSmoothness(1.0))
	require.NoError(t, err)
	g := grid.New(4, 3)
	c := cache.New(4, 3, cfg.WideCornerCache)
	d := dispatch.New(cfg, g, c)

	var inputs []int32
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			for cc := 0; cc < 3; cc++ {
				for e := 0; e < 3; e++ {
					inputs = append(inputs, int32(a)<<core.FracBits, int32(b)<<core.FracBits, int32(cc)<<core.FracBits, int32(e)<<core.FracBits)
				}
			}
		}
	}
	outputs := make([]uint16, 4*81)
	require.NoError(t, d.Convert(inputs, outputs, 81))
	require.Equal(t, 81, evalCalls, "every grid point in a dense sweep populates exactly once")
}

func TestConvertEvaluatorFailureMidSequenceRecovers(t *testing.T) {
	// Fails for any reference input at or beyond grid index 2 (input
	// 512), so a fresh table converts the low end of the axis and then
	// trips partway through the sequence.
	failing := false
	eval := core.EvaluatorFunc(func(input []float64, output []uint16) error {
		if failing && input[0] >= 500 {
			return errors.New("transform chain error")
		}
		for k := range output {
			if k < len(input) {
				output[k] = uint16(input[k])
			}
		}
		return nil
	})
	cfg, err := core.NewConfig(1, 1, 5, identityRange(1, 5), []int{65536}, core.Cubic, eval)
	require.NoError(t, err)
	g := grid.New(1, 5)
	c := cache.New(1, 5, cfg.WideCornerCache)
	d := dispatch.New(cfg, g, c)

	inputs := make([]int32, 100)
	for p := range inputs {
		inputs[p] = int32(p * 10)
	}
	reference := make([]uint16, 100)
	require.NoError(t, d.Convert(inputs, reference, 100))

	// A fresh table hitting an evaluator failure partway through
	// surfaces the error; pixels converted before the failure match
	// the reference run. Inputs below 256 stay within the first
	// mini-cube (corners at 0 and 256), so pixels 0..25 complete
	// before pixel 26 first needs the failing corner at 512.
	g2 := grid.New(1, 5)
	c2 := cache.New(1, 5, cfg.WideCornerCache)
	d2 := dispatch.New(cfg, g2, c2)

	failing = true
	outputs := make([]uint16, 100)
	err = d2.Convert(inputs, outputs, 100)
	require.ErrorIs(t, err, core.ErrEvaluatorFailed)
	require.Equal(t, reference[:26], outputs[:26])

	// Once the evaluator recovers, the same call succeeds in full and
	// matches the reference.
	failing = false
	require.NoError(t, d2.Convert(inputs, outputs, 100))
	require.Equal(t, reference, outputs)
}

func TestSpecializedPathMatchesGenericPath(t *testing.T) {
	// The same pixel run through a cache-backed table (which takes the
	// dedicated I=3/O=4 tetrahedral routine) and a cache-less one
	// (generic pipeline) must produce identical colors.
	mix := core.EvaluatorFunc(func(input []float64, output []uint16) error {
		output[0] = uint16(input[0])
		output[1] = uint16(input[1] / 2)
		output[2] = uint16((input[0] + input[2]) / 2)
		output[3] = uint16(input[2] / 4)
		return nil
	})
	levels := []int{65536, 65536, 65536, 65536}

	inputs := []int32{
		100, 200, 300,
		300, 200, 100,
		512, 512, 512,
		511, 767, 1023,
		511, 767, 1023,
	}
	const n = 5

	cfgFast, err := core.NewConfig(3, 4, 5, identityRange(3, 5), levels, core.Tetrahedral, mix, core.WithWideCornerCache(true))
	require.NoError(t, err)
	dFast := dispatch.New(cfgFast, grid.New(3, 5), cache.New(3, 5, true))
	outFast := make([]uint16, 4*n)
	require.NoError(t, dFast.Convert(inputs, outFast, n))

	cfgSlow, err := core.NewConfig(3, 4, 5, identityRange(3, 5), levels, core.Tetrahedral, mix)
	require.NoError(t, err)
	dSlow := dispatch.New(cfgSlow, grid.New(3, 5), cache.New(3, 5, false))
	outSlow := make([]uint16, 4*n)
	require.NoError(t, dSlow.Convert(inputs, outSlow, n))

	require.Equal(t, outSlow, outFast)
}

func TestReleaseMidConvertPreservesInFlightMiniCube(t *testing.T) {
	// The evaluator triggers a low-memory release re-entrantly, the way
	// a real allocation under pressure would: mid-population of the
	// second pixel's mini-cube. The purge must spare that cube's rows
	// and let the conversion finish.
	var d *dispatch.Dispatcher
	released := false
	eval := core.EvaluatorFunc(func(input []float64, output []uint16) error {
		if !released && input[0] >= 700 {
			released = true
			_, ok := d.Release(1 << 30)
			require.True(t, ok)
		}
		output[0] = uint16(input[0])
		return nil
	})
	cfg, err := core.NewConfig(2, 1, 5, identityRange(2, 5), []int{65536}, core.Cubic, eval)
	require.NoError(t, err)
	g := grid.New(2, 5)
	c := cache.New(2, 5, cfg.WideCornerCache)
	d = dispatch.New(cfg, g, c)

	inputs := []int32{
		100, 100, // anchor (0,0): rows 0 and 1
		600, 600, // anchor (2,2): corner at 768 fires the release
	}
	outputs := make([]uint16, 2)
	require.NoError(t, d.Convert(inputs, outputs, 2))
	require.Equal(t, uint16(600), outputs[1], "the in-flight pixel completes correctly across the purge")

	// The first pixel's rows were purgeable; the in-flight cube's were not.
	_, err = g.LocateCell([]int{0, 0}, false)
	require.ErrorIs(t, err, grid.ErrCellAbsent)
	cell, err := g.LocateCell([]int{2, 2}, false)
	require.NoError(t, err)
	require.True(t, cell.ColorPresent())
	require.True(t, released)
}

func TestConvertNonlinearTransformApproximatesProduct(t *testing.T) {
	product := core.EvaluatorFunc(func(input []float64, output []uint16) error {
		output[0] = uint16(input[0] * input[1] / 256)
		return nil
	})
	// The methods disagree about the true product (64): bilinear
	// blends all four corners and hits it exactly; the simplex split
	// puts (128,128) on the shared diagonal, blending only the (0,0)
	// and (1,1) corners, and gives 128. Neither method guarantees
	// bit-exact parity with the other.
	cases := []struct {
		method core.Method
		delta  float64
	}{
		{core.Cubic, 2},
		{core.Tetrahedral, 70},
	}
	for _, tc := range cases {
		t.Run(tc.method.String(), func(t *testing.T) {
			cfg, err := core.NewConfig(2, 1, 3, identityRange(2, 3), []int{65536}, tc.method, product)
			require.NoError(t, err)
			g := grid.New(2, 3)
			c := cache.New(2, 3, cfg.WideCornerCache)
			d := dispatch.New(cfg, g, c)

			out := make([]uint16, 1)
			require.NoError(t, d.Convert([]int32{128, 128}, out, 1))
			require.InDelta(t, 64, int(out[0]), tc.delta)
		})
	}
}
