// Package dispatch implements the per-table Convert pipeline: the
// previous-input short-circuit, mini-cube derivation, corner-pointer
// cache probe, corner assembly/population, linearity validation, and
// the final interpolator call, run once per input pixel.
//
// A Dispatcher owns only the "shadow state": the last pixel's raw
// input, derived anchor, and output — everything needed to decide
// whether the next pixel can skip straight to interpolation. It does
// not own the grid or cache themselves; those belong to the Table and
// are passed in.
package dispatch
