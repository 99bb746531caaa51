// Package arena implements the pool allocator for Vertex and SearchNode
// records used by the lattice and type-graph searches. Records are indexed
// by small integer handles rather than native pointers: the backing slices
// are append-only, so growing them never invalidates an outstanding handle,
// and equality between handles is a plain integer comparison.
//
// This mirrors the teacher engine's transposition table, which keys entries
// by Zobrist hash into a fixed-size slice of records rather than allocating
// per-node on the heap; here the slices grow instead of wrapping at a fixed
// size, since the arena must serve an unbounded number of live nodes over
// the course of a single search.
package arena

// Handle is a small integer reference into one of the arena's pools.
type Handle int32

// NilHandle is the reserved sentinel for "no handle".
const NilHandle Handle = -1

// initialCapacity is the default starting size for each pool, per the
// design notes (N0 = 100,000).
const initialCapacity = 100_000

// Vertex is a node of either search graph. Role is discriminated by Type:
// Type == LatticeRole (-1) means a lattice state carrying Theta; Type >= 0
// means a type cell carrying Info in the same slot. Equality and hashing
// must use only (I, J, Key) where Key is Theta for lattice states and Info
// for type cells -- see Key().
type Vertex struct {
	I, J int
	// Theta (lattice state) and Info (type cell) occupy the same semantic
	// field; Key() projects whichever is active.
	Theta, Info int
	// Type is -1 for a lattice state, >= 0 for a type cell.
	Type int
}

// LatticeRole is the sentinel Type value for a lattice state.
const LatticeRole = -1

// IsLatticeState reports whether v is a lattice state rather than a type cell.
func (v Vertex) IsLatticeState() bool {
	return v.Type == LatticeRole
}

// Key returns the shared (i, j, key) projection used for equality and
// hashing, per the data model's invariant that the two roles compare equal
// only via this common triple.
func (v Vertex) Key() (i, j, key int) {
	if v.IsLatticeState() {
		return v.I, v.J, v.Theta
	}
	return v.I, v.J, v.Info
}

// Equals reports whether two vertices refer to the same (i, j, key-or-info)
// in the same role.
func (v Vertex) Equals(o Vertex) bool {
	if v.IsLatticeState() != o.IsLatticeState() {
		return false
	}
	vi, vj, vk := v.Key()
	oi, oj, ok := o.Key()
	return vi == oi && vj == oj && vk == ok
}

// SearchNode is an A* search node: a vertex handle plus the bookkeeping A*
// needs (cost so far, priority, parent chain, retention policy).
type SearchNode struct {
	Vertex Handle
	G, F   float64
	Parent Handle
	// KeepAfterClosed, when false, means the node's storage is returned to
	// the arena immediately on CLOSED admission -- used by type-graph
	// search to retain only goal-type ancestors (see pkg/search parent
	// policy).
	KeepAfterClosed bool
}

// Arena is a pool allocator for Vertex and SearchNode records, indexed by
// Handle. Not safe for concurrent use -- a search owns its arena for the
// duration of the search, per the single-threaded cooperative execution
// model.
type Arena struct {
	vertices []Vertex
	nodes    []SearchNode

	freeVertices []Handle
	freeNodes    []Handle
}

// New creates an arena with the given initial per-pool capacity. A
// capacity <= 0 uses the default (100,000).
func New(capacity int) *Arena {
	if capacity <= 0 {
		capacity = initialCapacity
	}
	a := &Arena{
		vertices: make([]Vertex, capacity),
		nodes:    make([]SearchNode, capacity),
	}
	a.freeVertices = make([]Handle, capacity)
	a.freeNodes = make([]Handle, capacity)
	for i := 0; i < capacity; i++ {
		a.freeVertices[i] = Handle(i)
		a.freeNodes[i] = Handle(i)
	}
	return a
}

// growVertices doubles the vertex pool and appends the new indices to the
// free list. Existing handles remain valid: the slice is append-only and
// previously issued indices keep their position.
func (a *Arena) growVertices() {
	n := len(a.vertices)
	a.vertices = append(a.vertices, make([]Vertex, n)...)
	for i := n; i < 2*n; i++ {
		a.freeVertices = append(a.freeVertices, Handle(i))
	}
}

func (a *Arena) growNodes() {
	n := len(a.nodes)
	a.nodes = append(a.nodes, make([]SearchNode, n)...)
	for i := n; i < 2*n; i++ {
		a.freeNodes = append(a.freeNodes, Handle(i))
	}
}

func (a *Arena) takeVertex() Handle {
	if len(a.freeVertices) == 0 {
		a.growVertices()
	}
	n := len(a.freeVertices) - 1
	h := a.freeVertices[n]
	a.freeVertices = a.freeVertices[:n]
	return h
}

func (a *Arena) takeNode() Handle {
	if len(a.freeNodes) == 0 {
		a.growNodes()
	}
	n := len(a.freeNodes) - 1
	h := a.freeNodes[n]
	a.freeNodes = a.freeNodes[:n]
	return h
}

// NewVertexState allocates a lattice-state vertex (i, j, theta).
func (a *Arena) NewVertexState(i, j, theta int) Handle {
	h := a.takeVertex()
	a.vertices[h] = Vertex{I: i, J: j, Theta: theta, Type: LatticeRole}
	return h
}

// NewVertexType allocates a type-cell vertex (i, j, typ, info).
func (a *Arena) NewVertexType(i, j, typ, info int) Handle {
	h := a.takeVertex()
	a.vertices[h] = Vertex{I: i, J: j, Info: info, Type: typ}
	return h
}

// NewSearchNode allocates a search node wrapping the given vertex handle,
// with g = 0, f = 0, parent = nil, keepAfterClosed = true.
func (a *Arena) NewSearchNode(v Handle) Handle {
	h := a.takeNode()
	a.nodes[h] = SearchNode{Vertex: v, Parent: NilHandle, KeepAfterClosed: true}
	return h
}

// ReleaseVertex returns a vertex slot to the free list.
func (a *Arena) ReleaseVertex(h Handle) {
	if h == NilHandle {
		return
	}
	a.freeVertices = append(a.freeVertices, h)
}

// ReleaseNode returns a search node slot to the free list, and also
// releases its contained vertex.
func (a *Arena) ReleaseNode(h Handle) {
	if h == NilHandle {
		return
	}
	a.ReleaseVertex(a.nodes[h].Vertex)
	a.freeNodes = append(a.freeNodes, h)
}

// DerefVertex returns a mutable pointer to the vertex at h.
func (a *Arena) DerefVertex(h Handle) *Vertex {
	return &a.vertices[h]
}

// DerefNode returns a mutable pointer to the search node at h.
func (a *Arena) DerefNode(h Handle) *SearchNode {
	return &a.nodes[h]
}

// Stats reports free/capacity counts for both pools, used by the
// arena-balance testable property: after a well-formed search and
// teardown, free counts must equal capacity.
func (a *Arena) Stats() (vertexFree, vertexCap, nodeFree, nodeCap int) {
	return len(a.freeVertices), len(a.vertices), len(a.freeNodes), len(a.nodes)
}

// Balanced reports whether every allocated slot has been released, i.e.
// free count equals capacity for both pools.
func (a *Arena) Balanced() bool {
	vf, vc, nf, nc := a.Stats()
	return vf == vc && nf == nc
}
