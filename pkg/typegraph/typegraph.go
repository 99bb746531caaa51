// Package typegraph implements the static tables that drive the
// type-graph search: how type cells connect, which cells and headings are
// goals, and the merge key used to coalesce lattice states into type cells.
package typegraph

// Successor is a neighbor of a type cell: offset (DI, DJ) to a cell of type
// Type.
type Successor struct {
	DI, DJ, Type int
}

// NoGoal and MultiGoal are the sentinel values for GoalThetaByType.
const (
	NoGoal    = -1
	MultiGoal = -2
)

// TypeInfo holds the static type-graph tables described in the data model.
type TypeInfo struct {
	// Successors[t] lists the neighbors of a type-t cell.
	Successors [][]Successor
	// StartTypeByTheta[theta] is the type of the initial cell for an agent
	// pointing at theta.
	StartTypeByTheta []int
	// IsGoalByThetaType[theta][t] is true iff a primitive terminating at
	// heading theta ends in a cell of type t.
	IsGoalByThetaType [][]bool
	// GoalThetaByType[t] is NoGoal if t is never a goal, theta after exactly
	// one MarkGoal call for t, or MultiGoal after two or more calls (even if
	// they repeat the same heading; see MarkGoal).
	GoalThetaByType []int
	// AddInfoByType[t] is the merge key for type t.
	AddInfoByType []int

	// goalCount[t] counts raw MarkGoal calls for type t, including repeats
	// of the same heading -- mirrors the original loader's per-token
	// counter, which escalates to MultiGoal on the second listed heading
	// token regardless of whether it repeats the first.
	goalCount []int
}

// New allocates an empty TypeInfo for the given number of headings and
// maximum number of types.
func New(angleNum, maxTypes int) *TypeInfo {
	t := &TypeInfo{
		Successors:        make([][]Successor, maxTypes),
		StartTypeByTheta:  make([]int, angleNum),
		IsGoalByThetaType: make([][]bool, angleNum),
		GoalThetaByType:   make([]int, maxTypes),
		AddInfoByType:     make([]int, maxTypes),
		goalCount:         make([]int, maxTypes),
	}
	for theta := range t.IsGoalByThetaType {
		t.IsGoalByThetaType[theta] = make([]bool, maxTypes)
	}
	for typ := range t.GoalThetaByType {
		t.GoalThetaByType[typ] = NoGoal
	}
	return t
}

// AddSuccessor registers a (di, dj, t') successor edge for type t.
func (t *TypeInfo) AddSuccessor(typ int, s Successor) {
	t.Successors[typ] = append(t.Successors[typ], s)
}

// MarkGoal records that a primitive ending at heading theta terminates in a
// cell of type typ, maintaining the GoalThetaByType single/multi-heading
// summary: the first call wins the slot, any second call escalates it to
// MultiGoal -- even a repeat of the same heading, matching the original
// loader's raw per-token counter (it counts listed headings, not distinct
// ones).
func (t *TypeInfo) MarkGoal(theta, typ int) {
	t.IsGoalByThetaType[theta][typ] = true

	t.goalCount[typ]++
	if t.goalCount[typ] == 1 {
		t.GoalThetaByType[typ] = theta
	} else {
		t.GoalThetaByType[typ] = MultiGoal
	}
}

// IsGoalType reports whether typ can ever terminate a primitive (i.e. has
// at least one goal heading).
func (t *TypeInfo) IsGoalType(typ int) bool {
	return t.GoalThetaByType[typ] != NoGoal
}
