package grid_test

import (
	"testing"

	"github.com/sanjeekswipro/colortable/grid"
	"github.com/stretchr/testify/require"
)

func TestLocateCellEnsureFalseAbsent(t *testing.T) {
	g := grid.New(3, 5)
	_, err := g.LocateCell([]int{0, 0, 0}, false)
	require.ErrorIs(t, err, grid.ErrCellAbsent)
}

func TestLocateCellAllocatesAndPersists(t *testing.T) {
	g := grid.New(3, 5)
	cell, err := g.LocateCell([]int{1, 2, 3}, true)
	require.NoError(t, err)
	require.NotNil(t, cell)

	cell.Color = []uint16{42}
	cell.Flags |= grid.FlagColorPresent

	again, err := g.LocateCell([]int{1, 2, 3}, false)
	require.NoError(t, err)
	require.True(t, again.ColorPresent())
	require.Equal(t, uint16(42), again.Color[0])
}

func TestLocateCellDim1(t *testing.T) {
	g := grid.New(1, 5)
	cell, err := g.LocateCell([]int{3}, true)
	require.NoError(t, err)
	cell.Color = []uint16{7}
	cell.Flags |= grid.FlagColorPresent

	again, err := g.LocateCell([]int{3}, false)
	require.NoError(t, err)
	require.Equal(t, uint16(7), again.Color[0])
}

func TestLocateCellOutOfRange(t *testing.T) {
	g := grid.New(2, 5)
	_, err := g.LocateCell([]int{5, 0}, true)
	require.ErrorIs(t, err, grid.ErrIndexOutOfRange)

	_, err = g.LocateCell([]int{0, 0, 0}, true)
	require.ErrorIs(t, err, grid.ErrIndexOutOfRange)
}

func TestTouchLeafRowMovesMRUHead(t *testing.T) {
	g := grid.New(2, 5)
	_, err := g.LocateCell([]int{0, 0}, true)
	require.NoError(t, err)
	_, err = g.LocateCell([]int{1, 0}, true)
	require.NoError(t, err)

	// Most recently allocated row (indices[0]=1) should be head.
	head := g.MRUHead()
	require.NotNil(t, head)

	tail := g.MRUTail()
	require.NotNil(t, tail)
	g.TouchLeafRow(tail)
	require.Equal(t, tail, g.MRUHead())
}

func TestFreeLeafRowClearsCellsAndFreesEmptyAncestors(t *testing.T) {
	g := grid.New(3, 4)
	cell, err := g.LocateCell([]int{2, 1, 0}, true)
	require.NoError(t, err)
	cell.Color = []uint16{9}
	cell.Flags |= grid.FlagColorPresent
	require.Equal(t, 1, g.RowCount())

	row := g.MRUHead()
	g.FreeLeafRow(row)
	require.Equal(t, 0, g.RowCount())

	// Cell storage should be gone; LocateCell with ensure=false absent.
	_, err = g.LocateCell([]int{2, 1, 0}, false)
	require.ErrorIs(t, err, grid.ErrCellAbsent)
}

func TestNumberMRUAssignsDescendingRecency(t *testing.T) {
	// A 2-D grid keys its leaf rows by indices[0], so three distinct
	// first indices allocate three rows (a 1-D grid has only one row).
	g := grid.New(2, 10)
	for _, idx := range []int{0, 1, 2} {
		_, err := g.LocateCell([]int{idx, 0}, true)
		require.NoError(t, err)
	}
	k := g.NumberMRU()
	require.Equal(t, 3, k)
	require.Equal(t, 1, g.MRUHead().Timestamp())
}
