package cache

import "github.com/sanjeekswipro/colortable/grid"

// InvalidID marks a slot or fallback entry as not currently caching
// any mini-cube. Its top 2 bits are set, which can never occur in a
// real id (an id uses at most 30 bits).
const InvalidID uint32 = 0xC0000000

// Entry memoizes the 2^I pointers to a mini-cube's corner output
// vectors. Pointers[k] references corner k's grid.Cell (not its
// Color directly) so a caller can verify ColorPresent is still set
// before dereferencing it.
type Entry struct {
	ID       uint32
	Pointers []*grid.Cell
}

// Get implements grid.CornerSource directly over this entry's already
// resolved pointers, so a cache hit can be handed straight to an
// interpolator or the linearity validator without any adaptation.
func (e *Entry) Get(k int) (*grid.Cell, error) {
	if k < 0 || k >= len(e.Pointers) || e.Pointers[k] == nil {
		return nil, ErrCornerOutOfRange
	}
	return e.Pointers[k], nil
}

// Live reports whether every pointer in this entry still references a
// populated cell, the cache's liveness invariant. A purge that
// frees a referenced cell must invalidate the cache wholesale rather
// than relying on this check at every probe, but it is exposed for
// tests and diagnostics.
func (e *Entry) Live() bool {
	if e.ID == InvalidID {
		return false
	}
	for _, p := range e.Pointers {
		if p == nil || !p.ColorPresent() {
			return false
		}
	}
	return true
}
