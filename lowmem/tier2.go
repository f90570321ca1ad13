package lowmem

import (
	"math"

	"github.com/sanjeekswipro/colortable/grid"
)

// PurgeLeafRows performs the tier-2 release: number every leaf row
// 1..K along the MRU list, free those older than
// round(K*(1-purgeFraction)), and walk upward freeing any ancestor
// subarray that becomes empty. When preserveAnchor/preserveInc are
// non-nil, the mini-cube's own 2^I corners are protected from this
// pass regardless of age, and every row that survives has FlagCubeTested
// cleared on all its cells afterward (a surviving anchor may have lost
// a non-anchor corner it depended on for validation).
func PurgeLeafRows(g *grid.Grid, purgeFraction float64, preserveAnchor, preserveInc []int) (freedRows int, preserving bool) {
	k := g.NumberMRU()
	if k == 0 {
		return 0, len(preserveAnchor) > 0
	}
	threshold := int(math.Round(float64(k) * (1 - purgeFraction)))

	preserving = len(preserveAnchor) > 0
	protected := map[*grid.LeafRow]struct{}{}
	if preserving {
		for _, row := range protectedRows(g, preserveAnchor, preserveInc) {
			protected[row] = struct{}{}
		}
	}

	var toFree []*grid.LeafRow
	g.WalkMRU(func(row *grid.LeafRow) {
		if row.Timestamp() <= threshold {
			return
		}
		if _, ok := protected[row]; ok {
			return
		}
		toFree = append(toFree, row)
	})
	for _, row := range toFree {
		g.FreeLeafRow(row)
	}
	freedRows = len(toFree)

	if preserving {
		g.WalkMRU(func(row *grid.LeafRow) {
			for i := range row.Cells {
				row.Cells[i].ClearTested()
			}
		})
	}
	return freedRows, preserving
}

// protectedRows locates (without allocating) the leaf rows holding
// every one of a mini-cube's 2^I corners.
func protectedRows(g *grid.Grid, anchor, inc []int) []*grid.LeafRow {
	i := g.Dim()
	numCorners := 1 << uint(i)
	idx := make([]int, i)
	seen := make(map[*grid.LeafRow]struct{}, numCorners)
	rows := make([]*grid.LeafRow, 0, numCorners)
	for k := 0; k < numCorners; k++ {
		for d := 0; d < i; d++ {
			if k&(1<<uint(d)) != 0 {
				idx[d] = inc[d]
			} else {
				idx[d] = anchor[d]
			}
		}
		row, err := g.LocateLeafRow(idx, false)
		if err != nil {
			continue
		}
		if _, ok := seen[row]; ok {
			continue
		}
		seen[row] = struct{}{}
		rows = append(rows, row)
	}
	return rows
}
