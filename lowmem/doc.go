// Package lowmem implements the two-tier low-memory release: a cheap
// tier-1 collapse of the corner-pointer cache, followed — only if
// still needed — by a tier-2 LRU purge of grid leaf rows, optionally
// preserving the rows an in-flight Convert still needs.
//
// Byte accounting here is an estimate, not a real allocator's
// ledger — the memory pool itself is an external collaborator this
// package never sees inside. Solicit/Release
// report sizes in terms of slots and cells freed, which is the only
// unit this package actually owns.
//
// Concurrency: every function here assumes its caller already holds
// whatever lock protects the grid/cache pair (the Table's mutex in
// back-end mode, nothing in front-end mode); lowmem itself is
// stateless between calls.
package lowmem
