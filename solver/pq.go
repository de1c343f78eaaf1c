package solver

import (
	"container/heap"

	"github.com/nanastas-mit/pextant/grid"
)

// openItem is a single entry in the open set. Lazy deletion: when a
// strictly better g is found for a cell already in the queue, a new item
// is pushed rather than updating the old one in place; stale items are
// skipped on pop by comparing against the authoritative gBest table.
type openItem struct {
	cell  grid.Cell
	g     float64 // cost from source
	h     float64 // inflated heuristic to goal
	seq   int     // insertion order, for FIFO tie-breaking
	index int     // heap.Interface bookkeeping
}

func (item *openItem) f() float64 { return item.g + item.h }

// openPQ is a min-heap of *openItem ordered by f ascending, then h
// ascending, then insertion order.
type openPQ []*openItem

func (pq openPQ) Len() int { return len(pq) }

func (pq openPQ) Less(i, j int) bool {
	fi, fj := pq[i].f(), pq[j].f()
	if fi != fj {
		return fi < fj
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}
	return pq[i].seq < pq[j].seq
}

func (pq openPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *openPQ) Push(x interface{}) {
	item := x.(*openItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

var _ heap.Interface = (*openPQ)(nil)
