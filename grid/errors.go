package grid

import "errors"

// Sentinel errors for grid operations. Wrapped with %w at call sites.
var (
	// ErrOutOfMemory indicates an allocation failed while ensuring a
	// grid level, a leaf row, or a cell's color vector.
	ErrOutOfMemory = errors.New("grid: out of memory")

	// ErrIndexOutOfRange indicates an index vector component fell
	// outside [0, MaxIndex].
	ErrIndexOutOfRange = errors.New("grid: index out of range")

	// ErrCellAbsent indicates LocateCell was called with ensure=false
	// and the requested cell's storage does not yet exist.
	ErrCellAbsent = errors.New("grid: cell not allocated")
)
