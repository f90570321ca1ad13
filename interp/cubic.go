package interp

import (
	"github.com/sanjeekswipro/colortable/core"
	"github.com/sanjeekswipro/colortable/grid"
)

// CubicN computes the multilinear interpolation of a mini-cube of any
// dimension: successive linear passes, each halving the working set by
// pairing corners along the current dimension and blending them by
// that dimension's fraction. The working values carry FracBits of
// extra precision across every pass and are rounded only at the end.
//
// A dimension whose fraction is zero lies exactly on a grid hyperplane
// and needs no blending: its corners are never fetched and its pass is
// skipped entirely, so an input with z zero fractions costs 2^(I-z)
// corner fetches instead of 2^I.
//
// Complexity: O(2^(I-z)) corner fetches, O(2^(I-z) · O) arithmetic.
func CubicN(src grid.CornerSource, fracs []int, cfg *core.Config, out []uint16) error {
	active := make([]int, 0, cfg.I)
	for d := 0; d < cfg.I; d++ {
		if fracs[d] != 0 {
			active = append(active, d)
		}
	}

	n := 1 << uint(len(active))
	working := make([][]int32, n)
	for m := 0; m < n; m++ {
		k := 0
		for j, d := range active {
			if m&(1<<uint(j)) != 0 {
				k |= 1 << uint(d)
			}
		}
		cell, err := src.Get(k)
		if err != nil {
			return err
		}
		row := make([]int32, cfg.O)
		for o := 0; o < cfg.O; o++ {
			row[o] = scale(cell.Color[o])
		}
		working[m] = row
	}

	for _, d := range active {
		f := fracs[d]
		half := n / 2
		for m := 0; m < half; m++ {
			a, b := working[2*m], working[2*m+1]
			for o := 0; o < cfg.O; o++ {
				a[o] = blend(a[o], b[o], f)
			}
			working[m] = a
		}
		n = half
	}

	result := working[0]
	for o := 0; o < cfg.O; o++ {
		out[o] = round(result[o])
	}
	return nil
}

// Cubic1 is the dedicated 1-D (linear) interpolator: two corners, one
// blend pass.
func Cubic1(src grid.CornerSource, fracs []int, cfg *core.Config, out []uint16) error {
	c0, err := src.Get(0)
	if err != nil {
		return err
	}
	c1, err := src.Get(1)
	if err != nil {
		return err
	}
	f := fracs[0]
	for o := 0; o < cfg.O; o++ {
		out[o] = round(blend(scale(c0.Color[o]), scale(c1.Color[o]), f))
	}
	return nil
}

// Cubic2 is the dedicated bilinear interpolator over the 4 corners of
// a 2-D mini-cube.
func Cubic2(src grid.CornerSource, fracs []int, cfg *core.Config, out []uint16) error {
	corners := make([][]uint16, 4)
	for k := 0; k < 4; k++ {
		cell, err := src.Get(k)
		if err != nil {
			return err
		}
		corners[k] = cell.Color
	}
	f0, f1 := fracs[0], fracs[1]
	for o := 0; o < cfg.O; o++ {
		a0 := blend(scale(corners[0][o]), scale(corners[1][o]), f0)
		a1 := blend(scale(corners[2][o]), scale(corners[3][o]), f0)
		out[o] = round(blend(a0, a1, f1))
	}
	return nil
}

// Cubic3 is the dedicated trilinear interpolator over the 8 corners of
// a 3-D mini-cube (the common ICC device-link case).
func Cubic3(src grid.CornerSource, fracs []int, cfg *core.Config, out []uint16) error {
	corners := make([][]uint16, 8)
	for k := 0; k < 8; k++ {
		cell, err := src.Get(k)
		if err != nil {
			return err
		}
		corners[k] = cell.Color
	}
	f0, f1, f2 := fracs[0], fracs[1], fracs[2]
	for o := 0; o < cfg.O; o++ {
		a0 := blend(scale(corners[0][o]), scale(corners[1][o]), f0)
		a1 := blend(scale(corners[2][o]), scale(corners[3][o]), f0)
		a2 := blend(scale(corners[4][o]), scale(corners[5][o]), f0)
		a3 := blend(scale(corners[6][o]), scale(corners[7][o]), f0)

		b0 := blend(a0, a1, f1)
		b1 := blend(a2, a3, f1)

		out[o] = round(blend(b0, b1, f2))
	}
	return nil
}

// Cubic4 is the dedicated quadrilinear interpolator over the 16
// corners of a 4-D mini-cube.
func Cubic4(src grid.CornerSource, fracs []int, cfg *core.Config, out []uint16) error {
	corners := make([][]uint16, 16)
	for k := 0; k < 16; k++ {
		cell, err := src.Get(k)
		if err != nil {
			return err
		}
		corners[k] = cell.Color
	}
	f0, f1, f2, f3 := fracs[0], fracs[1], fracs[2], fracs[3]

	var a [8]int32
	for o := 0; o < cfg.O; o++ {
		for k := 0; k < 8; k++ {
			a[k] = blend(scale(corners[2*k][o]), scale(corners[2*k+1][o]), f0)
		}
		var b [4]int32
		for k := 0; k < 4; k++ {
			b[k] = blend(a[2*k], a[2*k+1], f1)
		}
		c0 := blend(b[0], b[1], f2)
		c1 := blend(b[2], b[3], f2)

		out[o] = round(blend(c0, c1, f3))
	}
	return nil
}
