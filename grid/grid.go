package grid

// subArray is one non-leaf level of the sparse grid: an S-slot array
// of pointers, either to further subArrays (isLeafLevel=false) or
// directly to LeafRows (isLeafLevel=true, the last of the I-1 pointer
// levels). live counts non-nil slots so a purge can detect emptiness
// without a full rescan, mirroring the lazy-allocation idiom of a
// map-of-maps adjacency list collapsed to fixed-width slices.
type subArray struct {
	isLeafLevel bool
	children    []*subArray // valid when !isLeafLevel, len==S
	leaves      []*LeafRow  // valid when isLeafLevel, len==S
	live        int         // count of non-nil slots
	parent      *subArray
	slot        int // this array's index within parent's children
}

// Grid is the sparse (I)-dimensional array of Cells backing a Table.
// Only paths touched by actual pixel inputs materialize.
type Grid struct {
	i int // input dimension
	s int // grid side

	// root is the level-0 subArray for I>=2. For I==1 there are no
	// pointer levels at all and singleLeaf is used directly.
	root       *subArray
	singleLeaf *LeafRow

	// MRU doubly linked list of LeafRows, head = most recently used.
	head, tail *LeafRow
	rowCount   int
}

// New builds an empty Grid for the given input dimension and grid side.
func New(i, s int) *Grid {
	g := &Grid{i: i, s: s}
	if i >= 2 {
		g.root = &subArray{isLeafLevel: i == 2, children: nil, leaves: nil}
		if g.root.isLeafLevel {
			g.root.leaves = make([]*LeafRow, s)
		} else {
			g.root.children = make([]*subArray, s)
		}
	}
	return g
}

// Dim returns the input dimension this Grid was built for.
func (g *Grid) Dim() int { return g.i }

// Side returns the grid side S.
func (g *Grid) Side() int { return g.s }

// LocateCell walks the grid from the root to the cell named by
// indices. If ensure is true, absent levels (and the leaf row) are
// allocated along the way; a newly allocated leaf row is spliced at
// the MRU head. If ensure is false and any level is absent,
// ErrCellAbsent is returned. Allocation failure returns ErrOutOfMemory
// and leaves the grid structurally consistent: partial parents remain,
// harmless and eligible for purge.
//
// Complexity: O(I).
func (g *Grid) LocateCell(indices []int, ensure bool) (cell *Cell, err error) {
	if len(indices) != g.i {
		return nil, ErrIndexOutOfRange
	}
	for d := 0; d < g.i; d++ {
		if indices[d] < 0 || indices[d] > g.s-1 {
			return nil, ErrIndexOutOfRange
		}
	}

	row, err := g.LocateLeafRow(indices, ensure)
	if err != nil {
		return nil, err
	}
	return &row.Cells[indices[g.i-1]], nil
}

// LocateLeafRow finds (or allocates, if ensure) the LeafRow holding
// indices' final-dimension cell, without indexing into it. Exposed so
// callers that touch several corners sharing a leaf row (the minicube
// assembler's Gray-code walk) can reuse a single lookup across them.
//
// Complexity: O(I).
func (g *Grid) LocateLeafRow(indices []int, ensure bool) (*LeafRow, error) {
	if len(indices) != g.i {
		return nil, ErrIndexOutOfRange
	}
	for d := 0; d < g.i; d++ {
		if indices[d] < 0 || indices[d] > g.s-1 {
			return nil, ErrIndexOutOfRange
		}
	}

	if g.i == 1 {
		if g.singleLeaf == nil {
			if !ensure {
				return nil, ErrCellAbsent
			}
			g.singleLeaf = newLeafRow(g.s)
			g.pushMRU(g.singleLeaf)
		}
		return g.singleLeaf, nil
	}

	cur := g.root
	// Walk levels 0..i-3, descending through non-leaf subArrays.
	for d := 0; d < g.i-2; d++ {
		idx := indices[d]
		next := cur.children[idx]
		if next == nil {
			if !ensure {
				return nil, ErrCellAbsent
			}
			next = &subArray{isLeafLevel: d+1 == g.i-2, parent: cur, slot: idx}
			if next.isLeafLevel {
				next.leaves = make([]*LeafRow, g.s)
			} else {
				next.children = make([]*subArray, g.s)
			}
			cur.children[idx] = next
			cur.live++
		}
		cur = next
	}

	// cur is now the final (leaf-level) subArray; its slots are *LeafRow.
	leafIdx := indices[g.i-2]
	row := cur.leaves[leafIdx]
	if row == nil {
		if !ensure {
			return nil, ErrCellAbsent
		}
		row = newLeafRow(g.s)
		row.Parent = cur
		row.Slot = leafIdx
		cur.leaves[leafIdx] = row
		cur.live++
		g.pushMRU(row)
	}
	return row, nil
}

// TouchLeafRow moves row to the MRU head. Called whenever a cell in
// row is read or written for interpolation.
//
// Complexity: O(1).
func (g *Grid) TouchLeafRow(row *LeafRow) {
	if g.head == row {
		return
	}
	g.unlinkMRU(row)
	g.pushMRU(row)
}

func (g *Grid) pushMRU(row *LeafRow) {
	row.prev = nil
	row.next = g.head
	if g.head != nil {
		g.head.prev = row
	}
	g.head = row
	if g.tail == nil {
		g.tail = row
	}
	g.rowCount++
}

func (g *Grid) unlinkMRU(row *LeafRow) {
	if row.prev != nil {
		row.prev.next = row.next
	} else {
		g.head = row.next
	}
	if row.next != nil {
		row.next.prev = row.prev
	} else {
		g.tail = row.prev
	}
	row.prev, row.next = nil, nil
	g.rowCount--
}

// RowCount returns the number of currently allocated leaf rows.
func (g *Grid) RowCount() int { return g.rowCount }

// MRUHead returns the most recently used LeafRow, or nil if empty.
func (g *Grid) MRUHead() *LeafRow { return g.head }

// MRUTail returns the least recently used LeafRow, or nil if empty.
func (g *Grid) MRUTail() *LeafRow { return g.tail }

// WalkMRU calls visit(row) for every LeafRow from the MRU head to the
// tail (most to least recently used). visit must not mutate the list.
func (g *Grid) WalkMRU(visit func(row *LeafRow)) {
	for r := g.head; r != nil; r = r.next {
		visit(r)
	}
}

// NumberMRU assigns timestamp 1..K to every leaf row along the MRU
// list (1 = most recently used), the numbering the tier-2 purge
// threshold is computed over. Returns K.
func (g *Grid) NumberMRU() int {
	k := 0
	for r := g.head; r != nil; r = r.next {
		k++
		r.timestamp = k
	}
	return k
}

// FreeLeafRow releases row's cells and detaches it from the MRU list
// and its parent subArray, walking upward to free now-empty ancestor
// subArrays. Used by the low-memory handler's tier-2 purge.
//
// Complexity: O(S) to reset cells, plus O(I) to walk ancestors.
func (g *Grid) FreeLeafRow(row *LeafRow) {
	g.unlinkMRU(row)
	for i := range row.Cells {
		row.Cells[i].reset()
	}

	if g.i == 1 {
		if g.singleLeaf == row {
			g.singleLeaf = nil
		}
		return
	}

	parent := row.Parent
	if parent == nil {
		return
	}
	parent.leaves[row.Slot] = nil
	parent.live--
	g.freeEmptyAncestors(parent)
}

// freeEmptyAncestors walks upward from sa, detaching and discarding
// any subArray whose live count has dropped to zero.
func (g *Grid) freeEmptyAncestors(sa *subArray) {
	for sa != nil && sa.live == 0 && sa.parent != nil {
		parent := sa.parent
		parent.children[sa.slot] = nil
		parent.live--
		sa = parent
	}
	// Root (sa.parent == nil) is never discarded; it is part of Grid
	// itself and is reused for future allocations.
}
