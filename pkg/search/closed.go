package search

// closedBackend is the CLOSED set behind a SearchTree: either a flat bit
// array (fast, bounded memory) or a hash set (flexible, unbounded key
// space). Both are addressed by the (i, j, key) triple shared by lattice
// states and type cells (see arena.Vertex.Key).
type closedBackend interface {
	Test(i, j, key int) bool
	Add(i, j, key int)
}

// bitClosed is a flat bit array sized maxH*maxW*maxInfo, per the design
// notes' memory budget discussion (~90MB for 1200x1200x500).
type bitClosed struct {
	bits             []uint64
	maxH, maxW, maxI int
}

func newBitClosed(maxH, maxW, maxInfo int) *bitClosed {
	n := maxH * maxW * maxInfo
	return &bitClosed{
		bits: make([]uint64, (n+63)/64),
		maxH: maxH, maxW: maxW, maxI: maxInfo,
	}
}

func (b *bitClosed) index(i, j, key int) int {
	return key*b.maxH*b.maxW + i*b.maxW + j
}

func (b *bitClosed) Test(i, j, key int) bool {
	idx := b.index(i, j, key)
	return b.bits[idx/64]&(1<<uint(idx%64)) != 0
}

func (b *bitClosed) Add(i, j, key int) {
	idx := b.index(i, j, key)
	b.bits[idx/64] |= 1 << uint(idx%64)
}

// vkey is the hash-set backend's key: the same (i, j, key) triple used by
// the bit-array backend, so both backends observe identical semantics.
type vkey struct {
	I, J, Key int
}

type hashClosed struct {
	set map[vkey]struct{}
}

func newHashClosed() *hashClosed {
	return &hashClosed{set: make(map[vkey]struct{})}
}

func (h *hashClosed) Test(i, j, key int) bool {
	_, ok := h.set[vkey{i, j, key}]
	return ok
}

func (h *hashClosed) Add(i, j, key int) {
	h.set[vkey{i, j, key}] = struct{}{}
}
