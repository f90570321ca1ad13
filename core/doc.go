// Package core defines the shared configuration, error sentinels, and
// external-collaborator interfaces used across colortable's subpackages.
//
// It is the hub of the module: evaluate, minicube, validate, interp and
// dispatch depend on core, and core depends on none of the module's
// packages. A Config is resolved once, at table creation,
// from a set of functional options, and is treated as immutable afterwards
// — reading it requires no lock.
//
// Configuration Options (ConfigOption):
//
//	– WithSmoothness(s float64)
//	    s in [0,1]; s>=1.0 disables linearity validation entirely
//	    (every mini-cube is treated as linear).
//
//	– WithWideCornerCache(bool)
//	    Opts a 3-D or 4-D table into the wider corner-pointer cache
//	    (5 bits/dim at I=3, 4 bits/dim at I=4) instead of the disabled
//	    default. No effect at other dimensions.
//
//	– WithThreadMode(Mode)
//	    FrontEnd (default): single-threaded, beingUsed flag guards purges.
//	    BackEnd: Convert calls are serialized by a per-table mutex.
//
// Errors:
//
//	ErrConfigError     - invalid I/O/S combination at table creation.
//	ErrOutOfMemory     - an allocation failed and low-memory release
//	                     could not recover enough space.
//	ErrEvaluatorFailed - the external Evaluator reported failure.
package core
