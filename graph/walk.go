package graph

import (
	"fmt"
	"maps"
	"strings"

	"github.com/katalvlaran/algostep/stepper"
)

// New builds a graph from nodes and edges and returns a stepper running algo
// from start. The start node is not required to be declared; Kruskal ignores
// it.
func New(algo Algorithm, nodes []Node, edges []Edge, start string, opts ...GraphOption) (stepper.Stepper[Snapshot], error) {
	g, err := Build(nodes, edges, opts...)
	if err != nil {
		return nil, err
	}

	switch algo {
	case BFS:
		return g.BFS(start), nil
	case DFS:
		return g.DFS(start), nil
	case Dijkstra:
		return g.Dijkstra(start), nil
	case Prim:
		return g.Prim(start), nil
	case Kruskal:
		return g.Kruskal(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}

// trail is the bookkeeping every traversal shares.
type trail struct {
	g         *Graph
	start     string
	visited   map[string]bool
	order     []string
	traversed []Arc
	done      bool
}

func newTrail(g *Graph, start string) trail {
	return trail{
		g:         g,
		start:     start,
		visited:   make(map[string]bool, len(g.nodes)),
		order:     []string{},
		traversed: []Arc{},
	}
}

func (t *trail) visit(id string) {
	t.visited[id] = true
	t.order = append(t.order, id)
}

// snapshot copies the shared state. Queue and Stack are left empty for the
// caller to fill.
func (t *trail) snapshot(current, msg string) Snapshot {
	return Snapshot{
		Visited:   append([]string{}, t.order...),
		Current:   current,
		Queue:     []string{},
		Stack:     []string{},
		Path:      []string{},
		Traversed: append([]Arc{}, t.traversed...),
		Message:   msg,
	}
}

// finish marks the trail done and returns the terminal snapshot.
func (t *trail) finish(msg string) Snapshot {
	t.done = true
	snap := t.snapshot("", msg)
	snap.Path = append([]string{}, t.order...)

	return snap
}

func (t *trail) orderText() string { return strings.Join(t.order, " → ") }

// frontier walks one node's adjacency list across Advance calls.
type frontier struct {
	from  string
	list  []neighbor
	next  int
	ready bool
}

func (f *frontier) load(from string, list []neighbor) {
	f.from, f.list, f.next, f.ready = from, list, 0, true
}

// take returns the next neighbor accepted by keep, or false when the list
// is exhausted.
func (f *frontier) take(keep func(neighbor) bool) (neighbor, bool) {
	for f.ready && f.next < len(f.list) {
		nb := f.list[f.next]
		f.next++
		if keep(nb) {
			return nb, true
		}
	}
	f.ready = false

	return neighbor{}, false
}

func formatDistance(d int64) string {
	if d == Unreachable {
		return "∞"
	}

	return fmt.Sprint(d)
}

func cloneDistances(m map[string]int64) map[string]int64 {
	if m == nil {
		return nil
	}

	return maps.Clone(m)
}
