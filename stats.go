package colortable

// TableStats is a read-only snapshot of a Table's current occupancy,
// useful for diagnostics and for deciding whether to call a low-memory
// release proactively.
type TableStats struct {
	// RowCount is the number of populated leaf rows currently linked
	// into the grid's MRU list.
	RowCount int

	// CacheSlots is the number of slots in the corner-pointer cache's
	// main array, 0 when the cache has been collapsed or was never
	// sized (I>=5, or I=3/4 without WideCornerCache).
	CacheSlots int

	// CacheDuplicates is the advisory-only count of cache misses that
	// landed on a slot already occupied by a different mini-cube. It
	// carries no correctness meaning; nothing in Convert depends on it.
	CacheDuplicates uint64
}

// Stats returns a snapshot of t's current grid and cache occupancy.
func (t *Table) Stats() TableStats {
	return TableStats{
		RowCount:        t.g.RowCount(),
		CacheSlots:      t.c.NumSlots(),
		CacheDuplicates: t.c.Duplicates,
	}
}
