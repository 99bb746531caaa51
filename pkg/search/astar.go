package search

import (
	"context"

	"github.com/herohde/kinolattice/pkg/arena"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Step performs one A* iteration: pop the best OPEN node, test for goal,
// expand successors, admit the popped node to CLOSED. scratch is reused
// across calls to avoid per-step allocation, mirroring the reference
// engine's single reusable successor list.
//
// Returns the goal node (not present in OPEN or CLOSED -- the caller owns
// it) and true if a goal was found this step; otherwise NilHandle, false.
func Step(ctx context.Context, p Params, scratch *[]Successor) (arena.Handle, bool) {
	if contextx.IsCancelled(ctx) {
		return arena.NilHandle, false
	}

	current := p.Tree().PopBest()
	if current == arena.NilHandle {
		return arena.NilHandle, false
	}

	a := p.Arena()
	currentVertex := *a.DerefVertex(a.DerefNode(current).Vertex)
	if p.IsGoal(currentVertex) {
		return current, true
	}

	p.Successors(ctx, currentVertex, scratch)

	currentG := a.DerefNode(current).G
	for _, s := range *scratch {
		neighbor := *a.DerefVertex(s.Vertex)
		if p.Tree().WasExpanded(neighbor) {
			a.ReleaseVertex(s.Vertex)
			continue
		}

		n := a.NewSearchNode(s.Vertex)
		node := a.DerefNode(n)
		node.G = currentG + s.Cost
		node.F = node.G + p.Heuristic(neighbor)
		p.ApplyParentPolicy(current, n)

		p.Tree().PushOpen(n)
	}

	p.Tree().AdmitClosed(current)
	return arena.NilHandle, false
}

// Search drives Step to completion from p.StartVertex(). Returns whether a
// goal was found, the number of steps taken, and (if found) the final
// node handle -- owned by the caller, not present in OPEN or CLOSED.
func Search(ctx context.Context, p Params) (found bool, steps int, final arena.Handle) {
	start := p.StartVertex(ctx)
	a := p.Arena()

	s := a.NewSearchNode(start)
	node := a.DerefNode(s)
	node.G = 0
	node.F = p.Heuristic(*a.DerefVertex(start))
	p.Tree().PushOpen(s)

	scratch := make([]Successor, 0, 16)
	for {
		steps++

		r, ok := Step(ctx, p, &scratch)
		if ok {
			return true, steps, r
		}
		if p.Tree().OpenEmpty() {
			return false, steps, arena.NilHandle
		}
	}
}

// ReconstructPath walks final.Parent back to the start, returning the
// vertices along the path in travel order. In type-graph mode, only
// goal-type cells and the start cell appear, per the parent-chain
// invariant.
func ReconstructPath(a *arena.Arena, final arena.Handle) []arena.Vertex {
	var path []arena.Vertex
	for h := final; h != arena.NilHandle; h = a.DerefNode(h).Parent {
		path = append(path, *a.DerefVertex(a.DerefNode(h).Vertex))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
