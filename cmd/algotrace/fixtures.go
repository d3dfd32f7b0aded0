package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algostep/graph"
	"github.com/katalvlaran/algostep/tree"
)

// graphFixture is the YAML shape of a custom graph:
//
//	default_weight: 1
//	nodes:
//	  - {id: A, x: 100, y: 100}
//	edges:
//	  - {from: A, to: B, weight: 4}
type graphFixture struct {
	DefaultWeight int64        `yaml:"default_weight"`
	Nodes         []graph.Node `yaml:"nodes"`
	Edges         []graph.Edge `yaml:"edges"`
}

func (f graphFixture) options() []graph.GraphOption {
	if f.DefaultWeight == 0 {
		return nil
	}

	return []graph.GraphOption{graph.WithDefaultWeight(f.DefaultWeight)}
}

// loadGraph reads a graph fixture, or returns the sample graph for "".
func loadGraph(path string) (graphFixture, error) {
	if path == "" {
		nodes, edges := graph.Sample()
		return graphFixture{Nodes: nodes, Edges: edges}, nil
	}
	var f graphFixture
	if err := decodeFile(path, &f); err != nil {
		return graphFixture{}, err
	}
	if len(f.Nodes) == 0 {
		return graphFixture{}, fmt.Errorf("graph file %s: no nodes", path)
	}

	return f, nil
}

// errShape reports a malformed --shape value.
var errShape = errors.New("shape must look like cycle:6, path:4, star:5, wheel:6, complete:5, grid:3x4 or random:8:0.3")

// shapeGraph generates the graph described by desc, such as "grid:3x4".
// Weights are drawn from [1, maxWeight] with rng; maxWeight ≤ 1 keeps every
// weight at 1.
func shapeGraph(desc string, rng *rand.Rand, maxWeight int64) (graphFixture, error) {
	name, args, _ := strings.Cut(desc, ":")
	parts := strings.Split(args, ":")
	opts := []graph.ShapeOption{graph.WithRand(rng)}
	if maxWeight > 1 {
		opts = append(opts, graph.WithWeights(1, maxWeight))
	}

	var (
		nodes []graph.Node
		edges []graph.Edge
		err   error
	)
	switch name {
	case "cycle", "path", "star", "wheel", "complete":
		n, convErr := strconv.Atoi(parts[0])
		if convErr != nil || len(parts) != 1 {
			return graphFixture{}, errShape
		}
		gen := map[string]func(int, ...graph.ShapeOption) ([]graph.Node, []graph.Edge, error){
			"cycle": graph.Cycle, "path": graph.Path, "star": graph.Star,
			"wheel": graph.Wheel, "complete": graph.Complete,
		}[name]
		nodes, edges, err = gen(n, opts...)
	case "grid":
		r, c, ok := strings.Cut(parts[0], "x")
		rows, rErr := strconv.Atoi(r)
		cols, cErr := strconv.Atoi(c)
		if !ok || rErr != nil || cErr != nil || len(parts) != 1 {
			return graphFixture{}, errShape
		}
		nodes, edges, err = graph.Grid(rows, cols, opts...)
	case "random":
		if len(parts) != 2 {
			return graphFixture{}, errShape
		}
		n, nErr := strconv.Atoi(parts[0])
		p, pErr := strconv.ParseFloat(parts[1], 64)
		if nErr != nil || pErr != nil {
			return graphFixture{}, errShape
		}
		nodes, edges, err = graph.RandomSparse(n, p, opts...)
	default:
		return graphFixture{}, errShape
	}
	if err != nil {
		return graphFixture{}, err
	}

	return graphFixture{Nodes: nodes, Edges: edges}, nil
}

// loadTree reads a tree fixture, a single root node with nested left and
// right children, or returns the sample tree for "".
func loadTree(path string) (*tree.Node, error) {
	if path == "" {
		return tree.Sample(), nil
	}
	var root tree.Node
	if err := decodeFile(path, &root); err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	for _, n := range tree.Nodes(&root) {
		if n.ID == "" {
			return nil, fmt.Errorf("tree file %s: node with value %d has no id", path, n.Value)
		}
		if seen[n.ID] {
			return nil, fmt.Errorf("tree file %s: duplicate node id %q", path, n.ID)
		}
		seen[n.ID] = true
	}

	return &root, nil
}

func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixture: %w", err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode fixture %s: %w", path, err)
	}

	return nil
}
