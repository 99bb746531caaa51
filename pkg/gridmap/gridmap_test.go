package gridmap_test

import (
	"testing"

	"github.com/herohde/kinolattice/pkg/gridmap"
	"github.com/stretchr/testify/assert"
)

func TestInBounds(t *testing.T) {
	m := gridmap.New(3, 4)

	assert.True(t, m.InBounds(0, 0))
	assert.True(t, m.InBounds(2, 3))
	assert.False(t, m.InBounds(3, 0))
	assert.False(t, m.InBounds(0, 4))
	assert.False(t, m.InBounds(-1, 0))
}

func TestTraversable(t *testing.T) {
	m := gridmap.New(2, 2)
	assert.True(t, m.Traversable(0, 0))

	m.Block(0, 0)
	assert.False(t, m.Traversable(0, 0))
	assert.True(t, m.Traversable(1, 1))
}
