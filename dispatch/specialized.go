package dispatch

import (
	"errors"
	"fmt"

	"github.com/sanjeekswipro/colortable/core"
	"github.com/sanjeekswipro/colortable/grid"
	"github.com/sanjeekswipro/colortable/minicube"
	"github.com/sanjeekswipro/colortable/validate"
)

// errRetryGeneric signals that the specialized path aborted because a
// nested allocation collapsed the corner-pointer cache mid-pixel; the
// caller must retry the same pixel through the generic path.
var errRetryGeneric = errors.New("dispatch: cache collapsed mid-pixel, retry generic")

// specializedEligible reports whether cfg qualifies for the dedicated
// (I=3, O=4, tetrahedral, cache-backed) path. That path calls the same
// helpers as convertOne (Bounds, resolveCorners, ValidateMiniCube, and
// the Tet3 interpolator); it is not inlined into one routine, and it
// differs only in aborting for a retry when the cache collapses mid-pixel.
func (d *Dispatcher) specializedEligible() bool {
	return d.cfg.I == 3 && d.cfg.O == 4 && d.cfg.Method == core.Tetrahedral && d.c.Enabled()
}

// convertOneSpecialized is that fast path. It mirrors convertOne's
// steps but watches the cache's enabled bit across every step that can
// allocate; if a nested low-memory purge disabled the cache out from
// under it, it aborts with errRetryGeneric instead of finishing on a
// now-stale assumption about cache state.
func (d *Dispatcher) convertOneSpecialized(input []int32, out []uint16) error {
	if d.havePrev && sameInt32s(d.prevInput, input) {
		copy(out, d.prevOutput)
		return nil
	}

	anchor, inc, fracs := minicube.Bounds(input, d.cfg)
	d.curAnchor, d.curInc = anchor, inc
	indicesChanged := !(d.havePrev && sameInts(anchor, d.prevAnchor))
	wasEnabled := d.c.Enabled()

	var src grid.CornerSource
	var err error
	if !indicesChanged && d.prevEntry != nil {
		src = d.prevEntry
	} else {
		src, err = d.resolveCorners(anchor, inc)
		if err != nil {
			return err
		}
	}
	if wasEnabled && !d.c.Enabled() {
		return errRetryGeneric
	}

	anchorCell, err := d.g.LocateCell(anchor, true)
	if err != nil {
		return fmt.Errorf("dispatch.convertOneSpecialized: %w", core.ErrOutOfMemory)
	}
	if !anchorCell.CubeTested() {
		linear, verr := validate.ValidateMiniCube(anchor, inc, src, d.cfg)
		if verr != nil {
			return verr
		}
		anchorCell.SetTested(linear)
		if wasEnabled && !d.c.Enabled() {
			return errRetryGeneric
		}
	}

	if err := d.interpolate(src, fracs, d.cfg, out); err != nil {
		return err
	}

	d.rememberPixel(input, anchor, out, src)
	return nil
}
