package lowmem

import "github.com/sanjeekswipro/colortable/cache"

// CollapseCache performs the tier-1 release: if the cache's main array
// is enabled, free it entirely and fall back to the single-entry slot.
// When preserve is true, the entry at preserveHash (the dispatcher's
// current mini-cube) is first copied into the fallback so it survives
// the collapse. Reports whether anything was actually freed — a cache
// already running off the fallback has nothing left for tier 1 to do,
// and the caller should fall through to tier 2 immediately.
func CollapseCache(c *cache.Cache, preserveHash uint32, preserve bool) (freedSlots int, collapsed bool) {
	slots := c.NumSlots()
	if !c.DisableMain(preserveHash, preserve) {
		return 0, false
	}
	return slots, true
}
