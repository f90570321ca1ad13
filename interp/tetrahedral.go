package interp

import (
	"sort"

	"github.com/sanjeekswipro/colortable/core"
	"github.com/sanjeekswipro/colortable/grid"
)

// TetN computes the simplex (tetrahedral) interpolation of a mini-cube
// of any dimension: the I fractions are sorted descending, selecting
// I+1 of the 2^I corners that form the simplex containing the input.
// Weights are the differences between consecutive sorted fractions,
// with an implicit FracSide above the largest and 0 below the
// smallest; they sum to exactly FracSide, so the accumulator
// carries FracBits of extra precision dropped once at the end. A
// dimension whose fraction sorts to 0 contributes a zero weight and
// its corner is never fetched.
//
// Complexity: O(I log I) to sort, O(I) corner fetches in the worst
// case (fewer when trailing fractions are zero), O(I·O) arithmetic.
func TetN(src grid.CornerSource, fracs []int, cfg *core.Config, out []uint16) error {
	order := make([]int, cfg.I)
	for d := range order {
		order[d] = d
	}
	sort.Slice(order, func(a, b int) bool {
		return fracs[order[a]] > fracs[order[b]]
	})
	return tetWalk(order, fracs, src, cfg, out)
}

// sortDesc3 returns the permutation of {0,1,2} that sorts fracs[0..2]
// descending, via explicit comparisons rather than sort.Slice — the
// specialized paths avoid the sort package's overhead for a fixed,
// tiny dimension count.
func sortDesc3(fracs []int) [3]int {
	p := [3]int{0, 1, 2}
	if fracs[p[0]] < fracs[p[1]] {
		p[0], p[1] = p[1], p[0]
	}
	if fracs[p[1]] < fracs[p[2]] {
		p[1], p[2] = p[2], p[1]
	}
	if fracs[p[0]] < fracs[p[1]] {
		p[0], p[1] = p[1], p[0]
	}
	return p
}

func sortDesc4(fracs []int) [4]int {
	p := [4]int{0, 1, 2, 3}
	// a small sorting network for 4 elements, descending.
	swap := func(i, j int) {
		if fracs[p[i]] < fracs[p[j]] {
			p[i], p[j] = p[j], p[i]
		}
	}
	swap(0, 1)
	swap(2, 3)
	swap(0, 2)
	swap(1, 3)
	swap(1, 2)
	return p
}

// tetWalk accumulates the simplex corners along the sorted path from
// the anchor to the far corner: corner k starts at the anchor and
// gains the bit for each dimension in sorted order; its weight is the
// drop between consecutive sorted fractions.
func tetWalk(order []int, fracs []int, src grid.CornerSource, cfg *core.Config, out []uint16) error {
	acc := make([]int32, cfg.O)
	k := 0
	prev := core.FracSide
	for j := 0; j <= len(order); j++ {
		cur := 0
		if j < len(order) {
			cur = fracs[order[j]]
		}
		weight := prev - cur
		if weight > 0 {
			cell, err := src.Get(k)
			if err != nil {
				return err
			}
			for o := 0; o < cfg.O; o++ {
				acc[o] += int32(weight) * int32(cell.Color[o])
			}
		}
		if j < len(order) {
			k |= 1 << uint(order[j])
		}
		prev = cur
	}

	for o := 0; o < cfg.O; o++ {
		out[o] = round(acc[o])
	}
	return nil
}

// Tet2 is the dedicated 2-D simplex interpolator (a triangle split of
// the unit square — 3 of its 4 corners are used).
func Tet2(src grid.CornerSource, fracs []int, cfg *core.Config, out []uint16) error {
	order := []int{0, 1}
	if fracs[0] < fracs[1] {
		order[0], order[1] = 1, 0
	}
	return tetWalk(order, fracs, src, cfg, out)
}

// Tet3 is the dedicated 3-D tetrahedral interpolator: 4 of the 8 cube
// corners selected by the descending order of the 3 fractions.
func Tet3(src grid.CornerSource, fracs []int, cfg *core.Config, out []uint16) error {
	p := sortDesc3(fracs)
	return tetWalk(p[:], fracs, src, cfg, out)
}

// Tet4 is the dedicated 4-D simplex interpolator: 5 of the 16
// hypercube corners.
func Tet4(src grid.CornerSource, fracs []int, cfg *core.Config, out []uint16) error {
	p := sortDesc4(fracs)
	return tetWalk(p[:], fracs, src, cfg, out)
}
