package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algostep/catalog"
	"github.com/katalvlaran/algostep/graph"
	"github.com/katalvlaran/algostep/internal/output"
	"github.com/katalvlaran/algostep/stepper"
)

func newGraphCommand(a *app) *cobra.Command {
	var (
		algos     []string
		start     string
		file      string
		shape     string
		maxWeight int64
		distances bool
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Trace a graph traversal or shortest-path run",
		Long: `Runs BFS, DFS, Dijkstra, Prim or Kruskal on the built-in six-node sample
graph, on the undirected weighted graph described by --file, or on a generated
--shape. Without --start a generated graph starts from its first node.`,
		Example: `  algotrace graph --algo bfs --start A --format text
  algotrace graph --algo dijkstra --file city.yaml --start depot --final
  algotrace graph --algo prim,kruskal --shape random:8:0.4 --max-weight 9 --seed 3`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file != "" && shape != "" {
				return errors.New("--file and --shape are mutually exclusive")
			}
			var (
				fx  graphFixture
				err error
			)
			if shape != "" {
				fx, err = shapeGraph(shape, a.rng, maxWeight)
				if err == nil && !cmd.Flags().Changed("start") {
					start = fx.Nodes[0].ID
				}
			} else {
				fx, err = loadGraph(file)
			}
			if err != nil {
				return err
			}
			g, err := graph.Build(fx.Nodes, fx.Edges, fx.options()...)
			if err != nil {
				return err
			}
			if !g.HasNode(start) {
				return fmt.Errorf("start node %q is not in the graph", start)
			}
			cache, err := newCache[graph.Snapshot](a)
			if err != nil {
				return err
			}

			return a.write(cmd, func(out *output.Writer) error {
				for _, id := range expand(algos, graph.Algorithms) {
					f, err := replayable(func() (stepper.Stepper[graph.Snapshot], error) {
						return graph.New(id, fx.Nodes, fx.Edges, start, fx.options()...)
					})
					if err != nil {
						return err
					}
					err = emit(a, out, cache, run[graph.Snapshot]{
						family:    catalog.Graph,
						algorithm: string(id),
						key:       traceKey(catalog.Graph, string(id), fx, start),
						factory:   f,
						summarize: func(s graph.Snapshot) string { return s.Message },
					})
					if err != nil {
						return err
					}
				}
				if distances {
					return writeDistances(out, g, start)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&algos, "algo", []string{string(graph.BFS)},
		"algorithms to run, comma separated, or all")
	cmd.Flags().StringVar(&start, "start", "A", "start node id")
	cmd.Flags().StringVar(&file, "file", "", "YAML graph fixture (sample graph when empty)")
	cmd.Flags().StringVar(&shape, "shape", "",
		"generated graph: cycle:N, path:N, star:N, wheel:N, complete:N, grid:RxC or random:N:P")
	cmd.Flags().BoolVar(&distances, "distances", false,
		"after the runs, print all-pairs shortest distances from the start node")
	cmd.Flags().Int64Var(&maxWeight, "max-weight", 1, "shape: draw edge weights from [1, max-weight]")

	return cmd
}

// distance is one row entry of the all-pairs table.
type distance struct {
	From     string `json:"from" yaml:"from"`
	To       string `json:"to" yaml:"to"`
	Distance *int64 `json:"distance" yaml:"distance"`
}

// writeDistances prints the Floyd–Warshall row of start; a nil distance
// marks an unreachable node.
func writeDistances(out *output.Writer, g *graph.Graph, start string) error {
	if err := out.Heading("Floyd–Warshall · time O(V³) · space O(V²)"); err != nil {
		return err
	}
	table := graph.AllPairs(g)
	for _, n := range g.Nodes() {
		d := distance{From: start, To: n.ID}
		line := fmt.Sprintf("%s → %s: unreachable", start, n.ID)
		if v := table.Between(start, n.ID); v != graph.Unreachable {
			d.Distance = &v
			line = fmt.Sprintf("%s → %s: %d", start, n.ID, v)
		}
		if err := out.Item(d, line); err != nil {
			return err
		}
	}

	return nil
}
