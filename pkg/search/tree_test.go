package search_test

import (
	"testing"

	"github.com/herohde/kinolattice/pkg/arena"
	"github.com/herohde/kinolattice/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTreeAndArena(useBit bool) (*arena.Arena, *search.SearchTree) {
	a := arena.New(16)
	tr := search.NewSearchTree(a, search.Config{UseBitClosed: useBit, MaxH: 10, MaxW: 10, MaxInfo: 8})
	return a, tr
}

func TestPopBestReturnsMinimumF(t *testing.T) {
	for _, useBit := range []bool{true, false} {
		a, tr := newTreeAndArena(useBit)

		v1 := a.NewVertexState(0, 0, 0)
		n1 := a.NewSearchNode(v1)
		a.DerefNode(n1).F = 5

		v2 := a.NewVertexState(1, 1, 0)
		n2 := a.NewSearchNode(v2)
		a.DerefNode(n2).F = 2

		tr.PushOpen(n1)
		tr.PushOpen(n2)

		best := tr.PopBest()
		assert.Equal(t, n2, best, "bit=%v", useBit)
	}
}

func TestPopBestSkipsDuplicatesAlreadyClosed(t *testing.T) {
	a, tr := newTreeAndArena(true)

	v := a.NewVertexState(0, 0, 0)
	n1 := a.NewSearchNode(v)
	a.DerefNode(n1).F = 1

	tr.PushOpen(n1)
	first := tr.PopBest()
	require.Equal(t, n1, first)
	tr.AdmitClosed(first)

	// A duplicate push of an equivalent (but distinct) vertex/node.
	v2 := a.NewVertexState(0, 0, 0)
	n2 := a.NewSearchNode(v2)
	a.DerefNode(n2).F = 0.5
	tr.PushOpen(n2)

	second := tr.PopBest()
	assert.Equal(t, arena.NilHandle, second, "duplicate of an already-closed vertex must be discarded")
}

func TestAdmitClosedDiscardsWhenNotKeepAfterClosed(t *testing.T) {
	a, tr := newTreeAndArena(false)

	v := a.NewVertexType(0, 0, 1, 0)
	n := a.NewSearchNode(v)
	a.DerefNode(n).KeepAfterClosed = false

	tr.AdmitClosed(n)
	assert.Empty(t, tr.Expanded())
	assert.True(t, a.Balanced())
}

func TestAdmitClosedRetainsWhenKeepAfterClosed(t *testing.T) {
	a, tr := newTreeAndArena(false)

	v := a.NewVertexState(0, 0, 0)
	n := a.NewSearchNode(v)

	tr.AdmitClosed(n)
	assert.Equal(t, []arena.Handle{n}, tr.Expanded())
	assert.False(t, a.Balanced(), "ledger node is still outstanding")

	tr.Teardown()
	assert.True(t, a.Balanced())
}

func TestBitAndHashClosedAgree(t *testing.T) {
	aBit, trBit := newTreeAndArena(true)
	aHash, trHash := newTreeAndArena(false)

	vBit := aBit.NewVertexState(3, 4, 2)
	vHash := aHash.NewVertexState(3, 4, 2)

	assert.False(t, trBit.WasExpanded(*aBit.DerefVertex(vBit)))
	assert.False(t, trHash.WasExpanded(*aHash.DerefVertex(vHash)))

	nBit := aBit.NewSearchNode(vBit)
	nHash := aHash.NewSearchNode(vHash)
	trBit.AdmitClosed(nBit)
	trHash.AdmitClosed(nHash)

	assert.True(t, trBit.WasExpanded(*aBit.DerefVertex(vBit)))
	assert.True(t, trHash.WasExpanded(*aHash.DerefVertex(vHash)))
}

func TestOpenEmpty(t *testing.T) {
	a, tr := newTreeAndArena(true)
	assert.True(t, tr.OpenEmpty())

	v := a.NewVertexState(0, 0, 0)
	n := a.NewSearchNode(v)
	tr.PushOpen(n)
	assert.False(t, tr.OpenEmpty())
}
