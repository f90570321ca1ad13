// Package minicube assembles a mini-cube's corners on demand: given
// the anchor (floor corner) of an input color's enclosing mini-cube,
// it ensures the grid points referenced by the selected interpolation
// method exist and are populated.
//
// For I<=4 every one of the 2^I corners is walked in Gray-code order
// — exactly one index component changes per step — so that the
// innermost-dimension LeafRow lookup can be reused across the pair of
// corners that share it, and all corners are returned eagerly.
//
// For I>=5, corners are not populated eagerly; a Source is returned
// instead, and the interpolator (interp.CubicN / interp.TetN) pulls
// only the corners it actually visits, lazily populating each the
// first time it is requested.
package minicube
