package lowmem

import (
	"github.com/sanjeekswipro/colortable/cache"
	"github.com/sanjeekswipro/colortable/grid"
)

// pointerBytes approximates the per-slot cost of the corner-pointer
// cache: one *Cell per corner.
const pointerBytes = 8

// Solicit reports an upper bound on bytes this table could release
// without actually freeing anything: the main cache array (if
// enabled) plus every cell of every currently-allocated leaf row, at
// bytesPerCell per cell. bytesPerCell is supplied by the caller (it depends on O, which
// this package does not otherwise need to know).
func Solicit(g *grid.Grid, c *cache.Cache, bytesPerCell int) int {
	offer := c.NumSlots() * pointerBytes
	offer += g.RowCount() * g.Side() * bytesPerCell
	return offer
}

// Release performs the two-tier release until
// bytesNeeded is satisfied or there is nothing left to free, and
// reports the bytes actually reclaimed. preserveHash/preserveAnchor/
// preserveInc identify the mini-cube the dispatcher is mid-Convert on
// (front-end re-entrancy or an explicit preserving request); pass a
// nil preserveAnchor when no such protection is needed.
func Release(g *grid.Grid, c *cache.Cache, bytesNeeded, bytesPerCell int, preserveHash uint32, preserveAnchor, preserveInc []int) int {
	reclaimed := 0
	preserve := len(preserveAnchor) > 0

	if freedSlots, ok := CollapseCache(c, preserveHash, preserve); ok {
		reclaimed += freedSlots * pointerBytes
	}
	if reclaimed >= bytesNeeded {
		return reclaimed
	}

	remaining := bytesNeeded - reclaimed
	total := g.RowCount() * g.Side() * bytesPerCell
	var fraction float64
	if total > 0 {
		fraction = float64(remaining) / float64(total)
		if fraction > 1 {
			fraction = 1
		}
	}

	freedRows, _ := PurgeLeafRows(g, fraction, preserveAnchor, preserveInc)
	reclaimed += freedRows * g.Side() * bytesPerCell

	// Freed cells may still be referenced from surviving cache
	// entries; wipe everything but the protected mini-cube's entry so
	// no later probe hits an id whose pointers are dead.
	if freedRows > 0 {
		if preserve {
			c.RetainOnly(preserveAnchor)
		} else {
			c.Collapse()
		}
	}
	return reclaimed
}
