package search

import (
	"context"
	"math"

	"github.com/herohde/kinolattice/internal/assertx"
	"github.com/herohde/kinolattice/pkg/arena"
	"github.com/herohde/kinolattice/pkg/gridmap"
	"github.com/herohde/kinolattice/pkg/primitive"
	"github.com/herohde/kinolattice/pkg/typegraph"
)

// Mode selects the edge-cost/heuristic pairing for LatticeParams.
type Mode int

const (
	// PRIM uses primitive length as edge cost and Euclidean distance as
	// the heuristic.
	PRIM Mode = iota
	// COST uses swept collision cost as edge cost and octile distance as
	// the heuristic.
	COST
)

func (m Mode) String() string {
	if m == COST {
		return "COST"
	}
	return "PRIM"
}

// Successor is a candidate neighbor produced by Params.Successors: an
// already-allocated vertex handle and the edge cost to reach it.
type Successor struct {
	Vertex arena.Handle
	Cost   float64
}

// Params is the contract the A* engine (Step/Search) drives: a start
// vertex, a goal predicate, a successor generator, an admissible
// heuristic, and the parent-link policy applied when a new node is
// produced from an expansion.
type Params interface {
	Arena() *arena.Arena
	Tree() *SearchTree
	StartVertex(ctx context.Context) arena.Handle
	IsGoal(v arena.Vertex) bool
	Successors(ctx context.Context, v arena.Vertex, out *[]Successor)
	Heuristic(v arena.Vertex) float64
	// ApplyParentPolicy sets newNode's parent (and, for type-graph search,
	// its KeepAfterClosed flag) given the node being expanded, current.
	ApplyParentPolicy(current, newNode arena.Handle)
}

// LatticeParams drives A* over discrete (i, j, theta) states using
// ControlSet primitives as edges.
type LatticeParams struct {
	A        *arena.Arena
	T        *SearchTree
	Map      *gridmap.Map
	Controls *primitive.ControlSet
	Start    arena.Vertex
	Finish   arena.Vertex
	R        float64
	Ang      int
	Mode     Mode
	AngleNum int
}

func (p *LatticeParams) Arena() *arena.Arena { return p.A }
func (p *LatticeParams) Tree() *SearchTree   { return p.T }

func (p *LatticeParams) StartVertex(ctx context.Context) arena.Handle {
	assertx.Require(ctx, p.Start.Theta >= 0 && p.Start.Theta < p.AngleNum,
		"lattice params: start heading %d out of range [0,%d)", p.Start.Theta, p.AngleNum)
	return p.A.NewVertexState(p.Start.I, p.Start.J, p.Start.Theta)
}

func (p *LatticeParams) IsGoal(v arena.Vertex) bool {
	di := float64(v.I - p.Finish.I)
	dj := float64(v.J - p.Finish.J)
	if di*di+dj*dj > p.R*p.R {
		return false
	}
	return CyclicAngleDist(v.Theta, p.Finish.Theta, p.AngleNum) <= p.Ang
}

func (p *LatticeParams) Successors(ctx context.Context, v arena.Vertex, out *[]Successor) {
	assertx.Require(ctx, p.Mode == PRIM || p.Mode == COST, "lattice params: invalid mode %d", int(p.Mode))

	*out = (*out)[:0]
	for _, prim := range p.Controls.GetByHeading(v.Theta) {
		if !p.collisionClear(v.I, v.J, prim) {
			continue
		}

		ni := v.I + prim.Goal.DI
		nj := v.J + prim.Goal.DJ
		nh := p.A.NewVertexState(ni, nj, prim.Goal.Theta)

		cost := prim.Length
		if p.Mode == COST {
			cost = prim.CollisionCost
		}
		*out = append(*out, Successor{Vertex: nh, Cost: cost})
	}
}

func (p *LatticeParams) collisionClear(i, j int, prim primitive.Primitive) bool {
	for _, c := range prim.CollisionTrace {
		ci, cj := i+c.I, j+c.J
		if !p.Map.InBounds(ci, cj) || !p.Map.Traversable(ci, cj) {
			return false
		}
	}
	return true
}

func (p *LatticeParams) Heuristic(v arena.Vertex) float64 {
	if p.Mode == COST {
		return OctileDist(v.I, v.J, p.Finish.I, p.Finish.J)
	}
	return EuclidDist(v.I, v.J, p.Finish.I, p.Finish.J)
}

// ApplyParentPolicy in lattice mode always chains to the node being
// expanded: every lattice state on the path is retained.
func (p *LatticeParams) ApplyParentPolicy(current, newNode arena.Handle) {
	p.A.DerefNode(newNode).Parent = current
}

// TypeParams drives A* over coalesced type cells (i, j, type), per §4.6.2.
// Start/Finish are still expressed as lattice states: the initial type
// cell and the goal predicate are derived from them via the TypeInfo
// tables.
type TypeParams struct {
	A        *arena.Arena
	T        *SearchTree
	Map      *gridmap.Map
	Types    *typegraph.TypeInfo
	Start    arena.Vertex
	Finish   arena.Vertex
	R        float64
	Ang      int
	AngleNum int
}

func (p *TypeParams) Arena() *arena.Arena { return p.A }
func (p *TypeParams) Tree() *SearchTree   { return p.T }

func (p *TypeParams) StartVertex(ctx context.Context) arena.Handle {
	assertx.Require(ctx, p.Start.Theta >= 0 && p.Start.Theta < p.AngleNum,
		"type params: start heading %d out of range [0,%d)", p.Start.Theta, p.AngleNum)
	t0 := p.Types.StartTypeByTheta[p.Start.Theta]
	assertx.Require(ctx, t0 >= 0 && t0 < len(p.Types.Successors),
		"type params: start type %d out of range [0,%d)", t0, len(p.Types.Successors))
	return p.A.NewVertexType(p.Start.I, p.Start.J, t0, p.Types.AddInfoByType[t0])
}

// IsGoal implements §4.6.2's predicate, including its single-heading
// branch's lack of fallback to the multi-heading loop -- see design note
// in DESIGN.md: this mirrors the reference implementation exactly and is
// intentional, not an oversight to silently "fix" here.
func (p *TypeParams) IsGoal(v arena.Vertex) bool {
	gt := p.Types.GoalThetaByType[v.Type]
	if gt == typegraph.NoGoal {
		return false
	}

	di := float64(v.I - p.Finish.I)
	dj := float64(v.J - p.Finish.J)
	if di*di+dj*dj > p.R*p.R {
		return false
	}

	if gt >= 0 {
		return CyclicAngleDist(gt, p.Finish.Theta, p.AngleNum) <= p.Ang
	}

	for d := -p.Ang; d <= p.Ang; d++ {
		theta := ((p.Finish.Theta+d)%p.AngleNum + p.AngleNum) % p.AngleNum
		if p.Types.IsGoalByThetaType[theta][v.Type] {
			return true
		}
	}
	return false
}

func (p *TypeParams) Successors(ctx context.Context, v arena.Vertex, out *[]Successor) {
	assertx.Require(ctx, v.Type >= 0 && v.Type < len(p.Types.Successors),
		"type params: type cell %d out of range [0,%d)", v.Type, len(p.Types.Successors))

	*out = (*out)[:0]
	for _, s := range p.Types.Successors[v.Type] {
		ni, nj := v.I+s.DI, v.J+s.DJ
		if !p.Map.InBounds(ni, nj) || !p.Map.Traversable(ni, nj) {
			continue
		}

		nh := p.A.NewVertexType(ni, nj, s.Type, p.Types.AddInfoByType[s.Type])
		cost := 1.0
		if s.DI != 0 && s.DJ != 0 {
			cost = math.Sqrt2
		}
		*out = append(*out, Successor{Vertex: nh, Cost: cost})
	}
}

func (p *TypeParams) Heuristic(v arena.Vertex) float64 {
	return OctileDist(v.I, v.J, p.Finish.I, p.Finish.J)
}

// ApplyParentPolicy implements §4.6.3: non-goal type cells are skipped in
// the retained parent chain, and a new node whose own type is non-goal is
// marked for immediate release on CLOSED admission.
func (p *TypeParams) ApplyParentPolicy(current, newNode arena.Handle) {
	cur := p.A.DerefNode(current)
	curVertex := *p.A.DerefVertex(cur.Vertex)
	nn := p.A.DerefNode(newNode)

	if p.Types.IsGoalType(curVertex.Type) {
		nn.Parent = current
	} else {
		nn.Parent = cur.Parent
	}

	newVertex := *p.A.DerefVertex(nn.Vertex)
	if !p.Types.IsGoalType(newVertex.Type) {
		nn.KeepAfterClosed = false
	}
}
