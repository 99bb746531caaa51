// Package scenario runs named search problems end to end: build the
// arenas and trees for a scenario's map/control-set/type-table triple,
// drive the requested engine, and collect a ResultSearch per scenario.
// Grounded in original_source's KC_testing.cpp run_tests loop, without
// its multi-process fan-out (out of core scope).
package scenario

import (
	"context"
	"fmt"

	"github.com/herohde/kinolattice/pkg/arena"
	"github.com/herohde/kinolattice/pkg/gridmap"
	"github.com/herohde/kinolattice/pkg/primitive"
	"github.com/herohde/kinolattice/pkg/search"
	"github.com/herohde/kinolattice/pkg/typegraph"
	"github.com/seekerror/logw"
)

// Engine selects which search(es) a Scenario runs.
type Engine int

const (
	// LatticeOnly runs only the state-lattice A* search.
	LatticeOnly Engine = iota
	// TypeGraphOnly runs only the coalesced type-graph A* search.
	TypeGraphOnly
	// ParallT runs the PARALL_T hybrid coordinator over both.
	ParallT
)

func (e Engine) String() string {
	switch e {
	case TypeGraphOnly:
		return "type"
	case ParallT:
		return "parall"
	default:
		return "lattice"
	}
}

// Scenario is one named search problem: a map, the state-lattice or
// type-graph tables it runs against, a start/finish pair, and the goal
// tolerance and engine parameters spec §3/§4 describe.
type Scenario struct {
	Name     string
	Map      *gridmap.Map
	Controls *primitive.ControlSet
	Types    *typegraph.TypeInfo
	Start    arena.Vertex
	Finish   arena.Vertex
	R        float64
	Ang      int
	AngleNum int
	Mode     search.Mode
	Engine   Engine
	// T is PARALL_T's lattice-step period; only meaningful for ParallT.
	T int
}

// Options bounds resource allocation shared by every scenario in a batch.
type Options struct {
	UseBitClosed  bool
	ArenaCapacity int
	MaxInfo       int
}

// RunAll runs every scenario in order and collects one ResultSearch per
// scenario, in input order. A scenario whose engine requires tables the
// scenario omits (e.g. TypeGraphOnly with Types == nil) is reported as an
// error through logw and skipped with a not-found result, rather than
// aborting the batch.
func RunAll(ctx context.Context, scenarios []Scenario, opts Options) []search.ResultSearch {
	results := make([]search.ResultSearch, len(scenarios))
	for i, s := range scenarios {
		results[i] = Run(ctx, s, opts)
	}
	return results
}

// Run builds fresh arenas and trees for s, drives the requested engine to
// completion, and tears down every tree it built before returning -- the returned
// ResultSearch.G is captured before teardown, so it remains valid.
func Run(ctx context.Context, s Scenario, opts Options) search.ResultSearch {
	logw.Infof(ctx, "scenario %s: running %s", s.Name, s.Engine)

	switch s.Engine {
	case TypeGraphOnly:
		if s.Types == nil {
			logw.Errorf(ctx, "scenario %s: type-graph engine requested without a TypeInfo", s.Name)
			return search.NewResultSearch(nil, false, 0, arena.NilHandle)
		}
		a, tree, params := s.buildType(opts)
		found, steps, final := search.Search(ctx, params)
		r := search.NewResultSearch(a, found, steps, final)
		tree.Teardown()
		if final != arena.NilHandle {
			a.ReleaseNode(final)
		}
		return r

	case ParallT:
		if s.Types == nil || s.Controls == nil {
			logw.Errorf(ctx, "scenario %s: PARALL_T requires both a ControlSet and a TypeInfo", s.Name)
			return search.NewResultSearch(nil, false, 0, arena.NilHandle)
		}
		latArena, latTree, lat := s.buildLattice(opts)
		typArena, typTree, typ := s.buildType(opts)

		t := s.T
		if t <= 0 {
			t = 1
		}
		pr := search.Parall(ctx, lat, typ, t, nil)

		resultArena := typArena
		if pr.FromLattice {
			resultArena = latArena
		}
		r := search.NewResultSearch(resultArena, pr.Found, pr.Steps, pr.Final)

		latTree.Teardown()
		typTree.Teardown()
		if pr.Found {
			resultArena.ReleaseNode(pr.Final)
		}
		return r

	default:
		if s.Controls == nil {
			logw.Errorf(ctx, "scenario %s: lattice engine requested without a ControlSet", s.Name)
			return search.NewResultSearch(nil, false, 0, arena.NilHandle)
		}
		a, tree, params := s.buildLattice(opts)
		found, steps, final := search.Search(ctx, params)
		r := search.NewResultSearch(a, found, steps, final)
		tree.Teardown()
		if final != arena.NilHandle {
			a.ReleaseNode(final)
		}
		return r
	}
}

func (s Scenario) buildLattice(opts Options) (*arena.Arena, *search.SearchTree, *search.LatticeParams) {
	a := arena.New(opts.ArenaCapacity)
	tree := search.NewSearchTree(a, search.Config{
		UseBitClosed: opts.UseBitClosed,
		MaxH:         s.Map.Height,
		MaxW:         s.Map.Width,
		MaxInfo:      s.AngleNum,
	})
	p := &search.LatticeParams{
		A: a, T: tree, Map: s.Map, Controls: s.Controls,
		Start: s.Start, Finish: s.Finish, R: s.R, Ang: s.Ang,
		Mode: s.Mode, AngleNum: s.AngleNum,
	}
	return a, tree, p
}

func (s Scenario) buildType(opts Options) (*arena.Arena, *search.SearchTree, *search.TypeParams) {
	a := arena.New(opts.ArenaCapacity)
	tree := search.NewSearchTree(a, search.Config{
		UseBitClosed: opts.UseBitClosed,
		MaxH:         s.Map.Height,
		MaxW:         s.Map.Width,
		MaxInfo:      opts.MaxInfo,
	})
	p := &search.TypeParams{
		A: a, T: tree, Map: s.Map, Types: s.Types,
		Start: s.Start, Finish: s.Finish, R: s.R, Ang: s.Ang,
		AngleNum: s.AngleNum,
	}
	return a, tree, p
}

// Validate reports a descriptive error for a scenario missing the tables
// its engine needs, without running anything. Callers that want to fail a
// batch fast (rather than Run's per-scenario skip-and-report) can call
// this up front.
func Validate(s Scenario) error {
	if s.Map == nil {
		return fmt.Errorf("scenario %s: missing map", s.Name)
	}
	if (s.Engine == LatticeOnly || s.Engine == ParallT) && s.Controls == nil {
		return fmt.Errorf("scenario %s: engine %s requires a ControlSet", s.Name, s.Engine)
	}
	if (s.Engine == TypeGraphOnly || s.Engine == ParallT) && s.Types == nil {
		return fmt.Errorf("scenario %s: engine %s requires a TypeInfo", s.Name, s.Engine)
	}
	return nil
}
