package cache

import (
	"math/bits"

	"github.com/sanjeekswipro/colortable/grid"
)

// maxAnchorBits is the widest an id/hash may be: the top 2 bits of a
// 32-bit id are reserved for the InvalidID sentinel, leaving 30 bits
// for the concatenated per-dimension index fields.
const maxAnchorBits = 30

// CubeSideBits returns ceil(log2(s)), the number of bits needed to
// represent a single dimension's index in [0, s-1].
func CubeSideBits(s int) int {
	if s <= 1 {
		return 1
	}
	return bits.Len(uint(s - 1))
}

// SizingPolicy chooses the number of hash bits per dimension (b) for
// an I-dimensional, S-side table, chosen per input dimension:
//
//	I == 1, 2: b = CubeSideBits(s) — an exact direct-mapped cover,
//	           since I*b never exceeds maxAnchorBits for valid S.
//	I == 3:    b = 5 if the table opted into the wide corner cache,
//	           else 0 (disabled).
//	I == 4:    b = 4 if wide corner cache, else 0.
//	I >= 5:    b = 0 always; the cache would thrash at that many
//	           corners per anchor and is not worth the memory.
//
// The result is clamped so that I*b <= maxAnchorBits regardless of
// table, a safety margin that never actually binds for S in the
// documented [2,33] range but guards against misconfiguration.
func SizingPolicy(i, s int, wideCornerCache bool) int {
	var b int
	switch {
	case i <= 2:
		b = CubeSideBits(s)
	case i == 3:
		if wideCornerCache {
			b = 5
		}
	case i == 4:
		if wideCornerCache {
			b = 4
		}
	}
	for b > 0 && i*b > maxAnchorBits {
		b--
	}
	return b
}

// Cache is a direct-mapped, hash-indexed memo of corner pointers for
// the most recently filled mini-cubes. The main slot array is nil when
// b==0; every Probe/Fill then goes through the one-slot fallback.
type Cache struct {
	i, s, b      int
	cubeSideBits int
	numCorners   int
	slots        []*Entry
	fallback     *Entry
	Duplicates   uint64 // advisory collision counter; nothing branches on it
}

// New builds a Cache for an I-dimensional, S-side table. wideCornerCache
// mirrors core.Config.WideCornerCache.
func New(i, s int, wideCornerCache bool) *Cache {
	b := SizingPolicy(i, s, wideCornerCache)
	c := &Cache{
		i:            i,
		s:            s,
		b:            b,
		cubeSideBits: CubeSideBits(s),
		numCorners:   1 << uint(i),
		fallback:     &Entry{ID: InvalidID, Pointers: make([]*grid.Cell, 1<<uint(i))},
	}
	if b > 0 {
		c.slots = make([]*Entry, 1<<uint(i*b))
	}
	return c
}

// Enabled reports whether the main direct-mapped array is in use.
func (c *Cache) Enabled() bool {
	return c.b > 0
}

// NumSlots returns the number of slots in the main array, 0 when
// disabled. Used only for low-memory byte-estimation; it carries no
// semantic weight.
func (c *Cache) NumSlots() int {
	return len(c.slots)
}

// DisableMain permanently frees the main direct-mapped array and
// repoints the cache onto its single fallback slot, the tier-1
// low-memory release. When preserve is true and
// preserveHash names a slot holding a live entry, that entry is moved
// into the fallback before the rest of the array is discarded, so the
// mini-cube the dispatcher is mid-Convert on survives the collapse.
// Returns false if the cache was already disabled (nothing to free).
func (c *Cache) DisableMain(preserveHash uint32, preserve bool) bool {
	if c.b == 0 {
		return false
	}
	if preserve && int(preserveHash) < len(c.slots) {
		if preserved := c.slots[preserveHash]; preserved != nil && preserved.ID != InvalidID {
			c.fallback.ID = preserved.ID
			copy(c.fallback.Pointers, preserved.Pointers)
		}
	}
	c.slots = nil
	c.b = 0
	return true
}

// EncodeAnchor derives the (id, hash) pair for a mini-cube's anchor
// indices: id concatenates each dimension's full index at cubeSideBits
// width, uniquely identifying the anchor; hash concatenates only the
// low b bits of each dimension's index and selects a main-array slot.
func (c *Cache) EncodeAnchor(indices []int) (id uint32, hash uint32) {
	for d := 0; d < c.i; d++ {
		id |= uint32(indices[d]) << uint(c.cubeSideBits*d)
		if c.b > 0 {
			mask := uint32(1<<uint(c.b)) - 1
			hash |= (uint32(indices[d]) & mask) << uint(c.b*d)
		}
	}
	return id, hash
}

// Probe looks up the anchor's cached entry. hit is true only when an
// entry already carries this exact id. On a miss, the returned entry
// is the slot (or fallback) the caller should Fill and is already
// reset to a fresh, writable state.
func (c *Cache) Probe(indices []int) (entry *Entry, hit bool) {
	id, hash := c.EncodeAnchor(indices)

	if c.b == 0 {
		if c.fallback.ID == id {
			return c.fallback, true
		}
		c.fallback.ID = InvalidID
		return c.fallback, false
	}

	existing := c.slots[hash]
	if existing != nil {
		if existing.ID == id {
			return existing, true
		}
		c.Duplicates++
	}

	fresh := &Entry{ID: InvalidID, Pointers: make([]*grid.Cell, c.numCorners)}
	c.slots[hash] = fresh
	return fresh, false
}

// Fill records corners as the contents of entry and stamps it with id,
// completing the write-half of a Probe miss. corners must have
// len == 2^I, one cell pointer per mini-cube corner in the same order
// minicube.Source indexes them.
func (e *Entry) Fill(id uint32, corners []*grid.Cell) {
	copy(e.Pointers, corners)
	e.ID = id
}

// Collapse discards every cached entry, used by the low-memory release
// after a non-preserving tier-2 purge has freed leaf rows (tier 1 uses
// DisableMain): the cache is pure memo, so dropping it loses
// no color data and only costs a future Probe miss.
func (c *Cache) Collapse() {
	for i := range c.slots {
		c.slots[i] = nil
	}
	c.fallback.ID = InvalidID
}

// RetainOnly invalidates every entry except one caching the mini-cube
// anchored at indices. A purge that frees grid cells calls this (or
// Collapse) before returning: any surviving entry could otherwise hit
// with pointers into freed cells, violating the cache invariant that a
// matched id implies live, populated corners.
func (c *Cache) RetainOnly(indices []int) {
	id, _ := c.EncodeAnchor(indices)
	for i, e := range c.slots {
		if e != nil && e.ID != id {
			c.slots[i] = nil
		}
	}
	if c.fallback.ID != id {
		c.fallback.ID = InvalidID
	}
}

// Invalidate forces the next Probe for this exact anchor to miss,
// without discarding the rest of the cache. The low-memory purge does
// not call it; it wipes entries with Collapse or RetainOnly instead.
func (c *Cache) Invalidate(indices []int) {
	id, hash := c.EncodeAnchor(indices)
	if c.b == 0 {
		if c.fallback.ID == id {
			c.fallback.ID = InvalidID
		}
		return
	}
	if existing := c.slots[hash]; existing != nil && existing.ID == id {
		existing.ID = InvalidID
	}
}
