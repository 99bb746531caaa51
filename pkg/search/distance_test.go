package search_test

import (
	"testing"

	"github.com/herohde/kinolattice/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestCyclicAngleDistSymmetric(t *testing.T) {
	assert.Equal(t, search.CyclicAngleDist(1, 6, 8), search.CyclicAngleDist(6, 1, 8))
}

func TestCyclicAngleDistZeroIffEqualModAngleNum(t *testing.T) {
	assert.Equal(t, 0, search.CyclicAngleDist(3, 3, 8))
	assert.NotEqual(t, 0, search.CyclicAngleDist(3, 4, 8))
}

func TestCyclicAngleDistWrapsAround(t *testing.T) {
	// 0 and 7 are adjacent on an 8-heading circle.
	assert.Equal(t, 1, search.CyclicAngleDist(0, 7, 8))
}

func TestOctileDistMatchesEuclidOnAxis(t *testing.T) {
	assert.InDelta(t, 5.0, search.OctileDist(0, 0, 5, 0), 1e-9)
}

func TestOctileDistDiagonal(t *testing.T) {
	// pure diagonal of 3: 3 * sqrt(2)
	got := search.OctileDist(0, 0, 3, 3)
	assert.InDelta(t, 4.242640687, got, 1e-6)
}

func TestEuclidDist(t *testing.T) {
	assert.InDelta(t, 5.0, search.EuclidDist(0, 0, 3, 4), 1e-9)
}
