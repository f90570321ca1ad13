// Package colortable is a lazily-populated, sparse N-dimensional color
// lookup table for raster/ICC color conversion pipelines.
//
// A Table wraps a caller-supplied reference Evaluator (e.g. a full
// color-management transform) behind a sparse grid of SxSx...xS
// sample points, an optional corner-pointer cache, and a choice of
// multilinear ("cubic") or simplex ("tetrahedral") interpolation.
// Convert walks the grid lazily: only the mini-cube corners a pixel's
// input actually needs are ever populated, and a per-mini-cube
// linearity check records whether interpolation there meets the
// configured error bound (every mini-cube is interpolated either way).
//
// Tables are registered with a process-wide registry so that a
// caller-driven low-memory condition can ask every live table how much
// it could give back (Solicit) or forcibly reclaim it (Release), in two
// tiers: first collapsing the corner-pointer cache, then purging the
// least-recently-used grid rows.
//
// Basic usage:
//
//	tbl, err := colortable.NewTable(colortable.Config{
//		I: 3, O: 4, S: 17,
//		RangeLoHi:    [][2]float64{{0, 255}, {0, 255}, {0, 255}},
//		DeviceLevels: []int{65536, 65536, 65536, 65536},
//		Method:       colortable.Tetrahedral,
//		Eval:         myEvaluator,
//	})
//	if err != nil { ... }
//	defer tbl.Destroy()
//
//	out := make([]uint16, 4*len(pixels))
//	err = tbl.Convert(scaledInputs, out, len(pixels))
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	core/      — Config, Method, Mode, Evaluator, fixed-point constants
//	grid/      — sparse N-D cell storage and the MRU leaf-row list
//	minicube/  — mini-cube bounds derivation and corner assembly
//	cache/     — the direct-mapped corner-pointer cache
//	validate/  — the per-mini-cube linearity check
//	interp/    — the cubic and tetrahedral interpolator families
//	dispatch/  — the per-pixel Convert pipeline
//	lowmem/    — the two-tier low-memory release policy
//	registry/  — the process-wide list of live tables
package colortable
