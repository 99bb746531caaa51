package search

import (
	"context"

	"github.com/herohde/kinolattice/pkg/arena"
	"go.uber.org/atomic"
)

// ParallCounters exposes live progress counters for a running Parall call.
// A caller that launches Parall on a goroutine may poll Steps from another
// goroutine without additional synchronization; this mirrors the teacher
// engine's use of go.uber.org/atomic for cross-goroutine handle state in
// pkg/search/iterative.go, adapted here to a read-only progress counter
// since PARALL itself has no cancellation contract (see design notes).
type ParallCounters struct {
	Steps atomic.Uint64
}

// ParallResult is the outcome of a PARALL_T run: which adaptor (lattice or
// type-graph) produced the final node, if any, matters for interpreting
// Final, since it is a handle into that adaptor's own arena.
type ParallResult struct {
	Found       bool
	Steps       int
	Final       arena.Handle
	FromLattice bool
}

// Parall implements PARALL_T (§4.8): the type-graph search runs one step
// per iteration, the lattice search runs one step every T-th iteration
// (or every iteration once the type search's OPEN has drained). Only
// lattice exhaustion is authoritative for "no path" -- the type search
// losing its frontier is non-fatal, since coalescing may have cost it
// completeness.
func Parall(ctx context.Context, lat, typ Params, t int, counters *ParallCounters) ParallResult {
	pushStart(ctx, lat)
	pushStart(ctx, typ)

	scratchLat := make([]Successor, 0, 16)
	scratchTyp := make([]Successor, 0, 16)

	steps := 0
	for {
		useTypes := !typ.Tree().OpenEmpty()
		if lat.Tree().OpenEmpty() {
			return ParallResult{Found: false, Steps: steps}
		}

		steps++
		if counters != nil {
			counters.Steps.Store(uint64(steps))
		}

		if useTypes {
			if r, ok := Step(ctx, typ, &scratchTyp); ok {
				return ParallResult{Found: true, Steps: steps, Final: r, FromLattice: false}
			}
		}

		if steps%t == 0 || !useTypes {
			if r, ok := Step(ctx, lat, &scratchLat); ok {
				return ParallResult{Found: true, Steps: steps, Final: r, FromLattice: true}
			}
		}
	}
}

func pushStart(ctx context.Context, p Params) {
	start := p.StartVertex(ctx)
	a := p.Arena()

	s := a.NewSearchNode(start)
	node := a.DerefNode(s)
	node.G = 0
	node.F = p.Heuristic(*a.DerefVertex(start))
	p.Tree().PushOpen(s)
}
