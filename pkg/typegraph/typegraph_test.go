package typegraph_test

import (
	"testing"

	"github.com/herohde/kinolattice/pkg/typegraph"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaultsToNoGoal(t *testing.T) {
	ti := typegraph.New(8, 4)
	for typ := 0; typ < 4; typ++ {
		assert.Equal(t, typegraph.NoGoal, ti.GoalThetaByType[typ])
		assert.False(t, ti.IsGoalType(typ))
	}
}

func TestMarkGoalSingleHeading(t *testing.T) {
	ti := typegraph.New(8, 4)
	ti.MarkGoal(3, 1)

	assert.Equal(t, 3, ti.GoalThetaByType[1])
	assert.True(t, ti.IsGoalByThetaType[3][1])
	assert.True(t, ti.IsGoalType(1))
}

// A repeated listing of the same heading still escalates to MultiGoal: the
// original loader's counter is per listed token, not per distinct heading.
func TestMarkGoalSameHeadingTwiceBecomesMultiGoal(t *testing.T) {
	ti := typegraph.New(8, 4)
	ti.MarkGoal(3, 1)
	ti.MarkGoal(3, 1)

	assert.Equal(t, typegraph.MultiGoal, ti.GoalThetaByType[1])
}

func TestMarkGoalMultipleHeadingsBecomesMultiGoal(t *testing.T) {
	ti := typegraph.New(8, 4)
	ti.MarkGoal(3, 1)
	ti.MarkGoal(5, 1)

	assert.Equal(t, typegraph.MultiGoal, ti.GoalThetaByType[1])
	assert.True(t, ti.IsGoalByThetaType[3][1])
	assert.True(t, ti.IsGoalByThetaType[5][1])
}

func TestAddSuccessor(t *testing.T) {
	ti := typegraph.New(8, 4)
	ti.AddSuccessor(0, typegraph.Successor{DI: 1, DJ: 0, Type: 1})
	ti.AddSuccessor(0, typegraph.Successor{DI: 0, DJ: 1, Type: 2})

	assert.Len(t, ti.Successors[0], 2)
	assert.Equal(t, 1, ti.Successors[0][0].Type)
}
