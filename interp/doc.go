// Package interp implements the cubic (multilinear) and tetrahedral
// interpolator families: given a mini-cube's 2^I
// corner colors and the input's fractional offsets within the cube,
// produce the output color vector.
//
// Cubic1..Cubic4 and Tet2..Tet4 are dedicated implementations for the
// input dimensions the corner-pointer cache is tuned for; CubicN and
// TetN handle any I, including I<=4 when nothing selects a
// specialization. All of them request corner k through a
// grid.CornerSource. CubicN, TetN and Tet2..Tet4 never request a corner
// that a zero fraction makes unnecessary, so a lazy source never
// populates it; Cubic1..Cubic4 always request all 2^I corners.
//
// Arithmetic is fixed point: corner colors gain core.FracBits of
// working precision on entry, every blend pass preserves them, and the
// final rounding happens exactly once per output component.
//
// Concurrency: stateless; every call operates only on its arguments.
package interp
