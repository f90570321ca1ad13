package dispatch

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sanjeekswipro/colortable/cache"
	"github.com/sanjeekswipro/colortable/core"
	"github.com/sanjeekswipro/colortable/grid"
	"github.com/sanjeekswipro/colortable/lowmem"
	"github.com/sanjeekswipro/colortable/minicube"
	"github.com/sanjeekswipro/colortable/validate"
)

// bytesPerCell estimates a populated cell's footprint for low-memory
// byte accounting: O 16-bit components plus a small flat overhead.
func bytesPerCell(cfg *core.Config) int {
	return cfg.O*2 + 8
}

// Dispatcher runs the per-pixel Convert pipeline for one table.
// It owns the "shadow state": the previous pixel's raw input, derived
// anchor, and output, used by the previous-input short-circuit and the
// indices-unchanged fast path. The Grid and Cache are owned by the
// Table and passed in; Dispatcher never allocates them.
type Dispatcher struct {
	cfg *core.Config
	g   *grid.Grid
	c   *cache.Cache

	interpolate Interpolator

	mu        sync.Mutex // held for the duration of Convert in BackEnd mode
	beingUsed bool       // set for the duration of Convert in FrontEnd mode

	havePrev   bool
	prevInput  []int32
	prevAnchor []int
	prevOutput []uint16
	prevSource *minicube.Source // retained only along the lazy (non-cache) path
	prevEntry  *cache.Entry     // retained only along the cache-hit path

	// curAnchor/curInc bound the mini-cube of the pixel currently in
	// flight; a re-entrant low-memory release (front-end mode) uses
	// them to protect the cells it must not free. Nil between pixels.
	curAnchor []int
	curInc    []int
}

// New builds a Dispatcher for cfg over the given Grid and Cache, which
// the caller (the root Table) is assumed to have sized to match cfg.
func New(cfg *core.Config, g *grid.Grid, c *cache.Cache) *Dispatcher {
	return &Dispatcher{
		cfg:         cfg,
		g:           g,
		c:           c,
		interpolate: Select(cfg),
	}
}

// InvalidateCache drops the dispatcher's shadow state, forcing the
// next pixel through the full pipeline regardless of its input. Used
// after any operation that may have freed referenced cells.
func (d *Dispatcher) InvalidateCache() {
	d.havePrev = false
	d.prevSource = nil
	d.prevEntry = nil
}

// Convert processes ncolors pixels: inputs has ncolors*I components (8
// fractional bits each, per core.FracBits), outputs receives
// ncolors*O components.
func (d *Dispatcher) Convert(inputs []int32, outputs []uint16, ncolors int) error {
	if d.cfg.Mode == core.BackEnd {
		d.mu.Lock()
		defer d.mu.Unlock()
	} else {
		d.beingUsed = true
		defer func() { d.beingUsed = false }()
	}
	defer func() { d.curAnchor, d.curInc = nil, nil }()

	i, o := d.cfg.I, d.cfg.O
	specialized := d.specializedEligible()
	for p := 0; p < ncolors; p++ {
		in := inputs[p*i : p*i+i]
		out := outputs[p*o : p*o+o]

		var err error
		if specialized {
			err = d.convertOneSpecialized(in, out)
			if errors.Is(err, errRetryGeneric) {
				err = d.convertOne(in, out)
			}
		} else {
			err = d.convertOne(in, out)
		}
		if err != nil {
			d.InvalidateCache()
			return fmt.Errorf("dispatch.Convert: pixel %d: %w", p, err)
		}
	}
	return nil
}

func (d *Dispatcher) convertOne(input []int32, out []uint16) error {
	if d.havePrev && sameInt32s(d.prevInput, input) {
		copy(out, d.prevOutput)
		return nil
	}

	anchor, inc, fracs := minicube.Bounds(input, d.cfg)
	d.curAnchor, d.curInc = anchor, inc
	indicesChanged := !(d.havePrev && sameInts(anchor, d.prevAnchor))

	var src grid.CornerSource
	var err error

	switch {
	case !indicesChanged && d.prevSource != nil:
		src = d.prevSource
	case !indicesChanged && d.prevEntry != nil:
		src = d.prevEntry
	default:
		src, err = d.resolveCorners(anchor, inc)
		if err != nil {
			return err
		}
	}

	anchorCell, err := d.g.LocateCell(anchor, true)
	if err != nil {
		return fmt.Errorf("dispatch.convertOne: %w", core.ErrOutOfMemory)
	}
	if !anchorCell.CubeTested() {
		linear, verr := validate.ValidateMiniCube(anchor, inc, src, d.cfg)
		if verr != nil {
			return verr
		}
		anchorCell.SetTested(linear)
	}

	if err := d.interpolate(src, fracs, d.cfg, out); err != nil {
		return err
	}

	d.rememberPixel(input, anchor, out, src)
	return nil
}

// resolveCorners probes the cache, and on a miss ensures the
// mini-cube's corners exist and fills the probed entry with their
// addresses. For I<=4 the probe happens even when the main array is
// disabled — the one-slot fallback still memoizes the hottest
// mini-cube. For I>=5 nothing is cached and corners are always
// resolved lazily from the grid: filling an entry would populate all
// 2^I corners, and I*CubeSideBits(S) can exceed the 30 usable id bits.
func (d *Dispatcher) resolveCorners(anchor, inc []int) (grid.CornerSource, error) {
	if d.cfg.I > 4 {
		src, err := minicube.EnsureCorners(d.g, d.cfg, anchor, inc)
		if err != nil {
			return nil, err
		}
		return src, nil
	}

	entry, hit := d.c.Probe(anchor)
	if hit {
		return entry, nil
	}

	src, err := minicube.EnsureCorners(d.g, d.cfg, anchor, inc)
	if err != nil {
		return nil, err
	}

	corners := make([]*grid.Cell, d.cfg.NumCorners())
	for k := range corners {
		cell, cerr := src.Get(k)
		if cerr != nil {
			return nil, cerr
		}
		corners[k] = cell
	}
	id, _ := d.c.EncodeAnchor(anchor)
	entry.Fill(id, corners)
	return entry, nil
}

func (d *Dispatcher) rememberPixel(input []int32, anchor []int, out []uint16, src grid.CornerSource) {
	d.havePrev = true
	d.prevInput = append(d.prevInput[:0], input...)
	d.prevAnchor = append(d.prevAnchor[:0], anchor...)
	d.prevOutput = append(d.prevOutput[:0], out...)

	d.prevSource = nil
	d.prevEntry = nil
	switch s := src.(type) {
	case *minicube.Source:
		d.prevSource = s
	case *cache.Entry:
		d.prevEntry = s
	}
}

func sameInt32s(a []int32, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Solicit implements registry.Member: report an upper bound on
// recoverable bytes, declining if a BackEnd table's mutex is busy.
func (d *Dispatcher) Solicit(bytesNeeded int) (offer int, ok bool) {
	if d.cfg.Mode == core.BackEnd {
		if !d.mu.TryLock() {
			return 0, false
		}
		defer d.mu.Unlock()
	}
	return lowmem.Solicit(d.g, d.c, bytesPerCell(d.cfg)), true
}

// Release implements registry.Member: run the two-tier release. A
// back-end table mid-Convert declines (its mutex is busy); a front-end
// table mid-Convert instead runs a preserving purge that protects the
// in-flight mini-cube's cells.
func (d *Dispatcher) Release(bytesNeeded int) (reclaimed int, ok bool) {
	if d.cfg.Mode == core.BackEnd {
		if !d.mu.TryLock() {
			return 0, false
		}
		defer d.mu.Unlock()
	}

	var preserveAnchor, preserveInc []int
	var preserveHash uint32
	if d.beingUsed && d.curAnchor != nil {
		preserveAnchor, preserveInc = d.curAnchor, d.curInc
		_, preserveHash = d.c.EncodeAnchor(preserveAnchor)
	}

	reclaimed = lowmem.Release(d.g, d.c, bytesNeeded, bytesPerCell(d.cfg), preserveHash, preserveAnchor, preserveInc)
	if preserveAnchor == nil {
		d.InvalidateCache()
	} else {
		// Shadow pointers may reference entries or sources whose
		// non-protected cells are gone; the protected cells themselves
		// stay live, so havePrev (and the output short-circuit) survive.
		d.prevEntry = nil
		d.prevSource = nil
	}
	return reclaimed, true
}
