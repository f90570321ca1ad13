package minicube

import (
	"fmt"
	"math/bits"

	"github.com/sanjeekswipro/colortable/core"
	"github.com/sanjeekswipro/colortable/evaluate"
	"github.com/sanjeekswipro/colortable/grid"
)

// EnsureCorners builds a corner Source for the mini-cube anchored at
// (anchor, inc). For I<=4 every one of the 2^I corners is located and
// populated immediately, walked in Gray-code order so that exactly one
// index component changes per step — when that component is the
// innermost dimension, the previous step's LeafRow is reused instead
// of re-walking the grid. For I>=5 no corner is populated eagerly; the
// returned Source resolves each corner lazily the first time the
// selected interpolator asks for it.
//
// Complexity: for I<=4, O(2^I) LocateCell-equivalent work, with half
// as many LeafRow lookups as corners. For I>=5, O(1) — the real cost
// is deferred to whichever corners interp ends up requesting.
func EnsureCorners(g *grid.Grid, cfg *core.Config, anchor, inc []int) (*Source, error) {
	src := NewSource(g, cfg, anchor, inc)
	if cfg.I > 4 {
		return src, nil
	}

	numCorners := 1 << uint(cfg.I)
	indices := make([]int, cfg.I)
	copy(indices, anchor)

	var row *grid.LeafRow
	var err error

	for i := 0; i < numCorners; i++ {
		k := cornerWalk(i, cfg.I)
		if i == 0 {
			row, err = g.LocateLeafRow(indices, true)
		} else {
			prevK := cornerWalk(i-1, cfg.I)
			changedBit := bits.TrailingZeros(uint(k ^ prevK))
			if indices[changedBit] == anchor[changedBit] {
				indices[changedBit] = inc[changedBit]
			} else {
				indices[changedBit] = anchor[changedBit]
			}
			// When only the innermost-dimension index changed, the
			// previous corner's LeafRow still covers this one.
			if changedBit != cfg.I-1 {
				row, err = g.LocateLeafRow(indices, true)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("minicube.EnsureCorners: %w", core.ErrOutOfMemory)
		}
		g.TouchLeafRow(row)

		cell := &row.Cells[indices[cfg.I-1]]
		if !cell.ColorPresent() {
			if perr := evaluate.PopulateCell(cell, indices, cfg); perr != nil {
				return nil, perr
			}
		}
		src.store(k, cell)
	}

	return src, nil
}

// grayCode returns the reflected binary Gray code of i: g(i) = i ^ (i>>1).
// Consecutive values differ in exactly one bit.
func grayCode(i int) int {
	return i ^ (i >> 1)
}

// cornerWalk maps step i to a corner index such that consecutive steps
// flip exactly one dimension, with the innermost dimension (dim-1,
// the leaf row's dense axis) flipping most often: the Gray code's bits
// are reversed so its fastest-changing bit lands on the dimension
// whose corners share a leaf row, making every other step a free
// in-row move.
func cornerWalk(i, dim int) int {
	g := grayCode(i)
	k := 0
	for b := 0; b < dim; b++ {
		if g&(1<<uint(b)) != 0 {
			k |= 1 << uint(dim-1-b)
		}
	}
	return k
}
