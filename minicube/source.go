package minicube

import (
	"fmt"

	"github.com/sanjeekswipro/colortable/core"
	"github.com/sanjeekswipro/colortable/evaluate"
	"github.com/sanjeekswipro/colortable/grid"
)

// Bounds derives an input color's mini-cube: anchor is the floor
// corner (smallest index per dimension), inc is the floor+1 corner,
// clamped to MaxIndex on the upper face, and fracs holds each
// component's FracBits fractional offset.
func Bounds(input []int32, cfg *core.Config) (anchor, inc, fracs []int) {
	anchor = make([]int, cfg.I)
	inc = make([]int, cfg.I)
	fracs = make([]int, cfg.I)
	for d := 0; d < cfg.I; d++ {
		idx := int(input[d] >> core.FracBits)
		anchor[d] = cfg.ClampIndex(idx)
		inc[d] = cfg.ClampIndex(idx + 1)
		fracs[d] = int(input[d] & core.FracMask)
	}
	return anchor, inc, fracs
}

// Source lazily resolves and populates mini-cube corners by their
// bit-pattern index k (bit j of k selects floor vs floor+1 in
// dimension j). It memoizes results so a given corner is located and
// populated at most once per Convert step.
type Source struct {
	cfg    *core.Config
	g      *grid.Grid
	anchor []int
	inc    []int

	// small caches: array form for I<=4 (at most 16 corners), map form
	// for I>=5 so an untouched corner costs nothing.
	arr []*grid.Cell
	m   map[int]*grid.Cell

	scratch []int // reused index-vector scratch buffer
}

// NewSource builds a corner Source for the mini-cube anchored at anchor.
func NewSource(g *grid.Grid, cfg *core.Config, anchor, inc []int) *Source {
	s := &Source{cfg: cfg, g: g, anchor: anchor, inc: inc, scratch: make([]int, cfg.I)}
	if cfg.I <= 4 {
		s.arr = make([]*grid.Cell, 1<<uint(cfg.I))
	} else {
		s.m = make(map[int]*grid.Cell)
	}
	return s
}

// cornerIndices fills out with the index vector for corner k.
func (s *Source) cornerIndices(k int, out []int) {
	for d := 0; d < s.cfg.I; d++ {
		if k&(1<<uint(d)) != 0 {
			out[d] = s.inc[d]
		} else {
			out[d] = s.anchor[d]
		}
	}
}

// Get returns corner k's output-color cell, locating and populating it
// on first request. Subsequent calls for the same k return the cached
// cell without touching the grid again.
//
// Complexity: O(I) on first access to a given corner, O(1) thereafter.
func (s *Source) Get(k int) (*grid.Cell, error) {
	numCorners := 1 << uint(s.cfg.I)
	if k < 0 || k >= numCorners {
		return nil, ErrBadCorner
	}

	if cached := s.cached(k); cached != nil {
		return cached, nil
	}

	s.cornerIndices(k, s.scratch)
	cell, err := s.g.LocateCell(s.scratch, true)
	if err != nil {
		return nil, fmt.Errorf("minicube.Source.Get: %w", core.ErrOutOfMemory)
	}
	row, _ := s.g.LocateLeafRow(s.scratch, false)
	if row != nil {
		s.g.TouchLeafRow(row)
	}

	if !cell.ColorPresent() {
		if err := evaluate.PopulateCell(cell, s.scratch, s.cfg); err != nil {
			return nil, err
		}
	}

	s.store(k, cell)
	return cell, nil
}

func (s *Source) cached(k int) *grid.Cell {
	if s.arr != nil {
		return s.arr[k]
	}
	return s.m[k]
}

func (s *Source) store(k int, cell *grid.Cell) {
	if s.arr != nil {
		s.arr[k] = cell
		return
	}
	s.m[k] = cell
}
