// Package cache implements the corner-pointer cache: a hash-indexed
// MRU-ish memo of the 2^I pointers to a recently used mini-cube's
// corner output vectors.
//
// A Cache is direct-mapped: 2^(I*b) slots, where b is chosen once at
// table creation by SizingPolicy. A one-slot fallback always exists
// and is used whenever the main cache is disabled (b==0). While the
// main array is in use, Probe always allocates a new slot entry on a
// miss and never falls back to the single slot.
//
// Concurrency: Cache holds no lock of its own; callers serialize
// access per the Table's threading mode, exactly as grid.Grid does.
package cache
