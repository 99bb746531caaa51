package arena_test

import (
	"testing"

	"github.com/herohde/kinolattice/pkg/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVertexStateAndType(t *testing.T) {
	a := arena.New(4)

	s := a.NewVertexState(1, 2, 3)
	v := a.DerefVertex(s)
	assert.Equal(t, 1, v.I)
	assert.Equal(t, 2, v.J)
	assert.Equal(t, 3, v.Theta)
	assert.True(t, v.IsLatticeState())

	c := a.NewVertexType(4, 5, 2, 9)
	vt := a.DerefVertex(c)
	assert.False(t, vt.IsLatticeState())
	assert.Equal(t, 2, vt.Type)
	assert.Equal(t, 9, vt.Info)
}

func TestVertexKeyAndEquals(t *testing.T) {
	lat := arena.Vertex{I: 1, J: 2, Theta: 3, Type: arena.LatticeRole}
	i, j, k := lat.Key()
	assert.Equal(t, [3]int{1, 2, 3}, [3]int{i, j, k})

	typ := arena.Vertex{I: 1, J: 2, Info: 3, Type: 0}
	assert.False(t, lat.Equals(typ), "lattice state and type cell with same triple must not compare equal")

	lat2 := arena.Vertex{I: 1, J: 2, Theta: 3, Type: arena.LatticeRole}
	assert.True(t, lat.Equals(lat2))
}

func TestNewSearchNodeDefaults(t *testing.T) {
	a := arena.New(4)
	v := a.NewVertexState(0, 0, 0)
	n := a.NewSearchNode(v)

	node := a.DerefNode(n)
	assert.Equal(t, float64(0), node.G)
	assert.Equal(t, float64(0), node.F)
	assert.Equal(t, arena.NilHandle, node.Parent)
	assert.True(t, node.KeepAfterClosed)
}

func TestReleaseNodeReleasesVertex(t *testing.T) {
	a := arena.New(2)
	v := a.NewVertexState(0, 0, 0)
	n := a.NewSearchNode(v)

	vf0, _, nf0, _ := a.Stats()
	a.ReleaseNode(n)
	vf1, _, nf1, _ := a.Stats()

	assert.Equal(t, vf0+1, vf1)
	assert.Equal(t, nf0+1, nf1)
}

func TestGrowthPreservesHandles(t *testing.T) {
	a := arena.New(2)

	h1 := a.NewVertexState(1, 1, 0)
	h2 := a.NewVertexState(2, 2, 0)
	// Forces growth: capacity 2 exhausted by the third allocation.
	h3 := a.NewVertexState(3, 3, 0)

	assert.Equal(t, 1, a.DerefVertex(h1).I)
	assert.Equal(t, 2, a.DerefVertex(h2).I)
	assert.Equal(t, 3, a.DerefVertex(h3).I)

	_, vcap, _, _ := a.Stats()
	assert.Equal(t, 4, vcap)
}

func TestArenaBalanceAfterReleaseAll(t *testing.T) {
	a := arena.New(8)

	var handles []arena.Handle
	for i := 0; i < 20; i++ {
		v := a.NewVertexState(i, 0, 0)
		handles = append(handles, a.NewSearchNode(v))
	}
	for _, h := range handles {
		a.ReleaseNode(h)
	}

	require.True(t, a.Balanced())
}
