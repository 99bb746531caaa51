// Package search implements the A* engine: the OPEN/CLOSED search tree,
// the lattice and type-graph Params adaptors, the generic A* step/search
// loop, and the PARALL hybrid coordinator.
package search

import "github.com/herohde/kinolattice/pkg/arena"

// SearchTree owns OPEN, CLOSED, and the expanded-node ledger for a single
// search. It does not own the Arena (multiple trees may share one; in
// PARALL, the lattice and type searches keep separate arenas and separate
// trees).
type SearchTree struct {
	arena  *arena.Arena
	open   openQueue
	closed closedBackend

	// expanded holds the handles admitted to CLOSED with KeepAfterClosed
	// == true; used for teardown release and path reconstruction.
	expanded []arena.Handle
}

// Config bounds the bit-array CLOSED backend's index space. Ignored when
// UseBitClosed is false.
type Config struct {
	UseBitClosed        bool
	MaxH, MaxW, MaxInfo int
}

// NewSearchTree creates a tree bound to the given arena, with the CLOSED
// backend selected by cfg.UseBitClosed.
func NewSearchTree(a *arena.Arena, cfg Config) *SearchTree {
	var cb closedBackend
	if cfg.UseBitClosed {
		cb = newBitClosed(cfg.MaxH, cfg.MaxW, cfg.MaxInfo)
	} else {
		cb = newHashClosed()
	}
	return &SearchTree{arena: a, closed: cb}
}

// OpenEmpty reports whether OPEN has no more entries.
func (t *SearchTree) OpenEmpty() bool {
	return t.open.empty()
}

// PushOpen enqueues a search node by its current f value.
func (t *SearchTree) PushOpen(node arena.Handle) {
	t.open.push(node, t.arena.DerefNode(node).F)
}

// WasExpanded reports whether v is already in CLOSED.
func (t *SearchTree) WasExpanded(v arena.Vertex) bool {
	i, j, key := v.Key()
	return t.closed.Test(i, j, key)
}

// AdmitClosed marks the node's vertex as CLOSED. If the node's
// KeepAfterClosed flag is set, it is retained in the expanded ledger for
// path reconstruction and eventual teardown release; otherwise its storage
// (node and vertex) is released immediately.
func (t *SearchTree) AdmitClosed(node arena.Handle) {
	n := t.arena.DerefNode(node)
	v := *t.arena.DerefVertex(n.Vertex)
	i, j, key := v.Key()
	t.closed.Add(i, j, key)

	if n.KeepAfterClosed {
		t.expanded = append(t.expanded, node)
	} else {
		t.arena.ReleaseNode(node)
	}
}

// PopBest repeatedly pops OPEN's minimum-f entry; if its vertex is already
// CLOSED it is a stale duplicate and is released, and the loop continues.
// Returns NilHandle once OPEN drains.
func (t *SearchTree) PopBest() arena.Handle {
	for {
		node, ok := t.open.pop()
		if !ok {
			return arena.NilHandle
		}
		v := *t.arena.DerefVertex(t.arena.DerefNode(node).Vertex)
		if t.WasExpanded(v) {
			t.arena.ReleaseNode(node)
			continue
		}
		return node
	}
}

// Teardown releases every remaining OPEN node and every ledger node back
// to the arena. Well-formed usage leaves the arena's free counts equal to
// its capacity afterward (modulo any final node the caller is still
// holding).
func (t *SearchTree) Teardown() {
	for {
		node, ok := t.open.pop()
		if !ok {
			break
		}
		t.arena.ReleaseNode(node)
	}
	for _, node := range t.expanded {
		t.arena.ReleaseNode(node)
	}
	t.expanded = nil
}

// Expanded returns the ledger of CLOSED-admitted, retained nodes, in
// admission order.
func (t *SearchTree) Expanded() []arena.Handle {
	return t.expanded
}
