package colortable

import (
	"fmt"

	"github.com/sanjeekswipro/colortable/cache"
	"github.com/sanjeekswipro/colortable/core"
	"github.com/sanjeekswipro/colortable/dispatch"
	"github.com/sanjeekswipro/colortable/grid"
	"github.com/sanjeekswipro/colortable/registry"
)

// defaultRegistry is the process-wide table list Tables join unless a
// caller overrides it with WithRegistry.
var defaultRegistry = registry.New()

// Table is a lazily-populated N-dimensional color lookup table: a
// sparse grid of sample points plus an optional corner-pointer cache,
// addressed through Convert.
type Table struct {
	cfg *core.Config
	g   *grid.Grid
	c   *cache.Cache
	d   *dispatch.Dispatcher

	reg *registry.Registry
	id  int
}

// NewTable validates cfg and builds a Table ready to Convert. The
// returned Table is registered with the default process-wide registry
// (or the one supplied via WithRegistry) so that Solicit/Release can
// reach it under memory pressure; callers must call Destroy when done
// with it.
func NewTable(cfg Config, opts ...TableOption) (*Table, error) {
	coreCfg, err := core.NewConfig(cfg.I, cfg.O, cfg.S, cfg.RangeLoHi, cfg.DeviceLevels, cfg.Method, cfg.Eval, cfg.toCoreOptions()...)
	if err != nil {
		return nil, fmt.Errorf("colortable.NewTable: %w", err)
	}

	g := grid.New(coreCfg.I, coreCfg.S)
	c := cache.New(coreCfg.I, coreCfg.S, coreCfg.WideCornerCache)

	t := &Table{
		cfg: coreCfg,
		g:   g,
		c:   c,
		d:   dispatch.New(coreCfg, g, c),
		reg: defaultRegistry,
	}
	for _, opt := range opts {
		opt(t)
	}

	t.id = t.reg.Register(t.d)
	return t, nil
}

// Convert maps ncolors pixels from inputs (ncolors*I scaled components,
// core.FracBits fractional bits each) to outputs (ncolors*O device
// code components), per the per-pixel pipeline of the underlying
// dispatcher.
func (t *Table) Convert(inputs []int32, outputs []uint16, ncolors int) error {
	return t.d.Convert(inputs, outputs, ncolors)
}

// Destroy removes the table from its registry. A destroyed Table must
// not be used again.
func (t *Table) Destroy() {
	t.reg.Unregister(t.id)
}

// Solicit reports an upper bound on bytes this table could release
// under memory pressure, implementing registry.Member directly so a
// Table can also be driven standalone without going through a
// Registry (e.g. single-table embedders).
func (t *Table) Solicit(bytesNeeded int) (offer int, ok bool) {
	return t.d.Solicit(bytesNeeded)
}

// Release forces this table's two-tier low-memory release, per
// lowmem.Release.
func (t *Table) Release(bytesNeeded int) (reclaimed int, ok bool) {
	return t.d.Release(bytesNeeded)
}
