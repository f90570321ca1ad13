package evaluate

import "errors"

// ErrAlreadyPresent indicates PopulateCell was called on a cell whose
// FlagColorPresent is already set, violating its precondition that the
// flag is clear.
var ErrAlreadyPresent = errors.New("evaluate: cell already populated")
