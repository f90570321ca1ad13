// Package validate implements the linearity validator: the check that
// decides whether interpolation within a mini-cube stays within the
// table's accuracy bound. The verdict is latched on the anchor cell;
// a cube that fails is still interpolated, accepting the error.
//
// ValidateMiniCube runs once per mini-cube, the first time a pixel
// lands in it while its anchor cell has FlagCubeTested clear. It is deliberately cheap
// relative to a full interpolation pass: one extra evaluator call at
// the cube's exact center, compared against a recursive pairwise
// average of the already-resolved corners.
package validate
