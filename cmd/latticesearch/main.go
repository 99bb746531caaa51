package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/herohde/kinolattice/internal/loader"
	"github.com/herohde/kinolattice/internal/scenario"
	"github.com/herohde/kinolattice/pkg/arena"
	"github.com/herohde/kinolattice/pkg/gridmap"
	"github.com/herohde/kinolattice/pkg/primitive"
	"github.com/herohde/kinolattice/pkg/search"
	"github.com/herohde/kinolattice/pkg/typegraph"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/spf13/viper"
)

var version = build.NewVersion(0, 1, 0)

var (
	config       = flag.String("config", "", "Path to a YAML scenario config file")
	mapPath      = flag.String("map", "", "Path to a MovingAI-style occupancy grid (overrides config)")
	controlPath  = flag.String("control_set", "", "Path to a control-set file (overrides config)")
	typeTable    = flag.String("type_table", "", "Path to a type-table file (overrides config)")
	angleNum     = flag.Int("angle_num", 8, "Number of discrete headings")
	maxInfo      = flag.Int("max_info", 1024, "Upper bound on distinct type-graph types")
	useBitClosed = flag.Bool("bit_closed", true, "Use the flat-bit-array CLOSED backend instead of a hash set")
	obstacles    = flag.Bool("obstacles", true, "Honor map obstacle characters (false treats every cell as free)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: latticesearch -config scenarios.yaml [options]

latticesearch runs state-lattice A*, type-graph A*, or PARALL_T scenarios
against a map/control-set/type-table triple and prints one result line per
scenario.
Options:
`)
		flag.PrintDefaults()
	}
}

// fileConfig is the YAML shape loaded through viper: a shared map/control-
// set/type-table triple plus a list of scenario runs against it.
type fileConfig struct {
	Map        string           `mapstructure:"map"`
	ControlSet string           `mapstructure:"control_set"`
	TypeTable  string           `mapstructure:"type_table"`
	Scenarios  []scenarioConfig `mapstructure:"scenarios"`
}

type scenarioConfig struct {
	Name   string  `mapstructure:"name"`
	Start  [3]int  `mapstructure:"start"`
	Finish [3]int  `mapstructure:"finish"`
	R      float64 `mapstructure:"r"`
	Ang    int     `mapstructure:"ang"`
	Mode   string  `mapstructure:"mode"`
	Engine string  `mapstructure:"engine"`
	T      int     `mapstructure:"t"`
}

func main() {
	flag.Parse()
	ctx := context.Background()

	logw.Infof(ctx, "latticesearch %v starting", version)

	var fc fileConfig
	if *config != "" {
		viper.SetConfigFile(*config)
		if err := viper.ReadInConfig(); err != nil {
			logw.Exitf(ctx, "failed to read config %s: %v", *config, err)
		}
		if err := viper.Unmarshal(&fc); err != nil {
			logw.Exitf(ctx, "failed to parse config %s: %v", *config, err)
		}
	}
	if *mapPath != "" {
		fc.Map = *mapPath
	}
	if *controlPath != "" {
		fc.ControlSet = *controlPath
	}
	if *typeTable != "" {
		fc.TypeTable = *typeTable
	}

	if fc.Map == "" {
		flag.Usage()
		logw.Exitf(ctx, "no map supplied")
	}

	m, err := loadMap(fc.Map, *obstacles)
	if err != nil {
		logw.Exitf(ctx, "%v", err)
	}

	cs, err := loadControlSet(fc.ControlSet, *angleNum)
	if err != nil {
		logw.Exitf(ctx, "%v", err)
	}

	ti, err := loadTypeInfo(fc.TypeTable, *angleNum, *maxInfo)
	if err != nil {
		logw.Exitf(ctx, "%v", err)
	}

	scenarios := make([]scenario.Scenario, 0, len(fc.Scenarios))
	for _, sc := range fc.Scenarios {
		s := scenario.Scenario{
			Name:     sc.Name,
			Map:      m,
			Controls: cs,
			Types:    ti,
			Start:    vertexOf(sc.Start, *angleNum),
			Finish:   vertexOf(sc.Finish, *angleNum),
			R:        sc.R,
			Ang:      sc.Ang,
			AngleNum: *angleNum,
			Mode:     modeOf(sc.Mode),
			Engine:   engineOf(sc.Engine),
			T:        sc.T,
		}
		if err := scenario.Validate(s); err != nil {
			logw.Exitf(ctx, "%v", err)
		}
		scenarios = append(scenarios, s)
	}

	opts := scenario.Options{UseBitClosed: *useBitClosed, MaxInfo: *maxInfo}
	results := scenario.RunAll(ctx, scenarios, opts)
	for i, r := range results {
		fmt.Println(r.Format(scenarios[i].Name))
	}
}

func loadMap(path string, obstacles bool) (*gridmap.Map, error) {
	if path == "" {
		return nil, fmt.Errorf("no map path supplied")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening map %s: %w", path, err)
	}
	defer f.Close()

	height, width, cells, err := loader.LoadMap(f, obstacles)
	if err != nil {
		return nil, err
	}
	m := gridmap.New(height, width)
	m.Cells = cells
	return m, nil
}

func loadControlSet(path string, angleNum int) (*primitive.ControlSet, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening control-set %s: %w", path, err)
	}
	defer f.Close()

	return loader.LoadControlSet(f, angleNum)
}

func loadTypeInfo(path string, angleNum, maxTypes int) (*typegraph.TypeInfo, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening type-table %s: %w", path, err)
	}
	defer f.Close()

	return loader.LoadTypeInfo(f, angleNum, maxTypes)
}

func vertexOf(v [3]int, angleNum int) arena.Vertex {
	return arena.Vertex{I: v[0], J: v[1], Theta: v[2] % angleNum, Type: arena.LatticeRole}
}

func modeOf(s string) search.Mode {
	if s == "cost" {
		return search.COST
	}
	return search.PRIM
}

func engineOf(s string) scenario.Engine {
	switch s {
	case "type":
		return scenario.TypeGraphOnly
	case "parall":
		return scenario.ParallT
	default:
		return scenario.LatticeOnly
	}
}
