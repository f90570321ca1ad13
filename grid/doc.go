// Package grid implements the sparse N-dimensional array of precomputed
// output colors backing a colortable Table.
//
// The top I-1 dimensions are arrays-of-pointers-to-subarray, lazily
// allocated; the innermost dimension is a dense LeafRow of S Cells,
// the unit of purge. A non-nil subarray pointer at any level means all
// child slots exist as pointers (possibly nil); population of a Cell's
// color is independent of its parents' existence.
//
// Complexity: LocateCell costs O(I) per call (one pointer hop per
// dimension); a purge of a LeafRow costs O(S) plus O(I) to walk back
// up and free now-empty ancestors.
//
// Concurrency: Grid itself holds no lock — callers (dispatch, lowmem)
// serialize access per the Table's threading mode, exactly as core.Config
// is read without locking because it is immutable.
package grid
