// Package primitive implements the control set: a library of precomputed
// motion primitives grouped by starting heading.
package primitive

import "math"

// Cell is a grid cell swept by a primitive's collision trace.
type Cell struct {
	I, J int
}

// Offset is the state a primitive ends in, relative to its (0, 0) start.
type Offset struct {
	DI, DJ, Theta int
}

// Primitive is a single precomputed motion: a fixed starting heading and a
// fixed displacement, annotated with the cells it sweeps and its costs.
type Primitive struct {
	StartTheta int
	Goal       Offset
	// CollisionTrace is the ordered sequence of cells the primitive sweeps,
	// in travel order, relative to a (0, 0) start.
	CollisionTrace []Cell
	// Length is the primitive's arc length, taken as-is from its source
	// (loader or literal construction) and never recomputed here -- per
	// the open question on Length vs. CollisionCost authority.
	Length float64
	// CollisionCost is the sum of step costs along CollisionTrace and is
	// always derived from the trace, never trusted from an external source.
	CollisionCost float64
	// Turning is the net heading change; informational only.
	Turning int
}

// ComputeCollisionCost sums step costs between consecutive trace cells:
// 1 for a side step, sqrt(2) for a diagonal step.
func ComputeCollisionCost(trace []Cell) float64 {
	var cost float64
	for k := 1; k < len(trace); k++ {
		di := trace[k].I - trace[k-1].I
		dj := trace[k].J - trace[k-1].J
		if di != 0 && dj != 0 {
			cost += math.Sqrt2
		} else {
			cost += 1
		}
	}
	return cost
}

// NewPrimitive builds a Primitive, deriving CollisionCost from trace.
func NewPrimitive(startTheta int, goal Offset, trace []Cell, length float64, turning int) Primitive {
	return Primitive{
		StartTheta:     startTheta,
		Goal:           goal,
		CollisionTrace: trace,
		Length:         length,
		CollisionCost:  ComputeCollisionCost(trace),
		Turning:        turning,
	}
}

// ControlSet is the library of primitives, indexed by starting heading.
type ControlSet struct {
	primsByHeading [][]Primitive
}

// NewControlSet allocates an empty control set for the given number of
// discrete headings.
func NewControlSet(angleNum int) *ControlSet {
	return &ControlSet{primsByHeading: make([][]Primitive, angleNum)}
}

// Add registers a primitive under its StartTheta bucket.
func (c *ControlSet) Add(p Primitive) {
	c.primsByHeading[p.StartTheta] = append(c.primsByHeading[p.StartTheta], p)
}

// GetByHeading returns the primitives whose StartTheta == theta.
func (c *ControlSet) GetByHeading(theta int) []Primitive {
	return c.primsByHeading[theta]
}
