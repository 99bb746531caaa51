package search

import (
	"fmt"

	"github.com/herohde/kinolattice/pkg/arena"
)

// ResultSearch is the search result produced for a harness to report:
// whether a path was found, how many steps it took, and the cost of the
// path (final.g), if found.
type ResultSearch struct {
	Found bool
	Steps int
	Final arena.Handle
	G     float64
}

// NewResultSearch captures the cost of the final node (if found) before
// the caller releases it, so the result remains meaningful after teardown.
func NewResultSearch(a *arena.Arena, found bool, steps int, final arena.Handle) ResultSearch {
	r := ResultSearch{Found: found, Steps: steps, Final: final, G: -1}
	if found {
		r.G = a.DerefNode(final).G
	}
	return r
}

// Format renders the harness result line from §6: "result <NAME>: <found>
// <steps> <g-or-minus-one>".
func (r ResultSearch) Format(name string) string {
	g := -1.0
	if r.Found {
		g = r.G
	}
	return fmt.Sprintf("result %s: %v %d %v", name, r.Found, r.Steps, g)
}
