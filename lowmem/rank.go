package lowmem

import (
	"container/heap"

	"github.com/sanjeekswipro/colortable/grid"
)

// candidateHeap is a max-heap on timestamp (least-recently-used
// first), grounded on the same container/heap idiom used for
// shortest-path frontier selection: here it orders purge candidates by
// age instead of path weight.
type candidateHeap []*grid.LeafRow

func (h candidateHeap) Len() int { return len(h) }
func (h candidateHeap) Less(i, j int) bool {
	return h[i].Timestamp() > h[j].Timestamp()
}
func (h candidateHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x interface{}) {
	*h = append(*h, x.(*grid.LeafRow))
}
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// RankPurgeCandidates reports the topN least-recently-used leaf rows,
// oldest first. This is diagnostic only — PurgeLeafRows decides what
// to free by a plain threshold scan, not by consulting this ranking;
// callers use it for low-memory telemetry, not for correctness.
func RankPurgeCandidates(g *grid.Grid, topN int) []*grid.LeafRow {
	g.NumberMRU()
	h := make(candidateHeap, 0, g.RowCount())
	g.WalkMRU(func(row *grid.LeafRow) {
		h = append(h, row)
	})
	heap.Init(&h)

	if topN > h.Len() {
		topN = h.Len()
	}
	out := make([]*grid.LeafRow, 0, topN)
	for i := 0; i < topN; i++ {
		out = append(out, heap.Pop(&h).(*grid.LeafRow))
	}
	return out
}
