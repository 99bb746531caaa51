package search

import (
	"container/heap"

	"github.com/herohde/kinolattice/pkg/arena"
)

// openQueue is OPEN: a min-priority queue ordered by f ascending. Ties have
// no secondary key: their pop order follows the heap's internal layout, not
// insertion order, and callers must not rely on it. Duplicate vertex entries are expected and handled lazily by
// SearchTree.PopBest, not here.
//
// Adapted from the teacher engine's move-ordering heap (pkg/search/movelist.go):
// same container/heap scaffolding, generalized from a fixed-size, Push-panics
// move list to a real growable OPEN queue, since search nodes (unlike a
// position's legal moves) are produced continuously over the life of a search.
type openQueue struct {
	h elmHeap
}

type elm struct {
	node arena.Handle
	f    float64
}

type elmHeap []elm

func (h elmHeap) Len() int            { return len(h) }
func (h elmHeap) Less(i, j int) bool  { return h[i].f < h[j].f }
func (h elmHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *elmHeap) Push(x interface{}) { *h = append(*h, x.(elm)) }
func (h *elmHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func (q *openQueue) push(node arena.Handle, f float64) {
	heap.Push(&q.h, elm{node: node, f: f})
}

// pop returns and removes the minimum-f element, or (NilHandle, false) if
// empty.
func (q *openQueue) pop() (arena.Handle, bool) {
	if len(q.h) == 0 {
		return arena.NilHandle, false
	}
	item := heap.Pop(&q.h).(elm)
	return item.node, true
}

func (q *openQueue) empty() bool {
	return len(q.h) == 0
}
