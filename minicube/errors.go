package minicube

import "errors"

// ErrBadCorner indicates a corner index outside [0, 2^I) was requested
// from a Source.
var ErrBadCorner = errors.New("minicube: corner index out of range")
