package graph

import (
	"fmt"
	"slices"
)

// neighbor is one adjacency entry.
type neighbor struct {
	id     string
	weight int64
}

// Graph is an immutable undirected weighted graph. Adjacency lists keep edge
// insertion order: each edge {u, v} appends v to u's list and u to v's list.
//
// Endpoints of an edge need not appear in the node list; they still get
// adjacency entries but take no part in Nodes or in Dijkstra's distance table
// until reached.
type Graph struct {
	defaultWeight int64
	err           error // first option violation

	nodes []Node
	index map[string]int
	edges []Edge
	adj   map[string][]neighbor
}

// GraphOption configures a Graph before it is built.
type GraphOption func(g *Graph)

// WithDefaultWeight sets the weight used for edges declared with weight 0.
func WithDefaultWeight(w int64) GraphOption {
	return func(g *Graph) {
		if w <= 0 {
			g.err = fmt.Errorf("%w: %d", ErrBadDefaultWeight, w)
			return
		}
		g.defaultWeight = w
	}
}

// Build copies nodes and edges into a new Graph.
//
// Returns ErrEmptyNodeID, ErrDuplicateNode, ErrNegativeWeight or
// ErrBadDefaultWeight for malformed input.
func Build(nodes []Node, edges []Edge, opts ...GraphOption) (*Graph, error) {
	g := &Graph{
		defaultWeight: DefaultWeight,
		nodes:         slices.Clone(nodes),
		index:         make(map[string]int, len(nodes)),
		edges:         make([]Edge, 0, len(edges)),
		adj:           make(map[string][]neighbor, len(nodes)),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.err != nil {
		return nil, g.err
	}

	for i, n := range g.nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("%w: node #%d", ErrEmptyNodeID, i)
		}
		if _, dup := g.index[n.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
		}
		g.index[n.ID] = i
	}

	for _, e := range edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edge %q–%q", ErrEmptyNodeID, e.From, e.To)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s–%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
		if e.Weight == 0 {
			e.Weight = g.defaultWeight
		}
		g.edges = append(g.edges, e)
		g.adj[e.From] = append(g.adj[e.From], neighbor{id: e.To, weight: e.Weight})
		g.adj[e.To] = append(g.adj[e.To], neighbor{id: e.From, weight: e.Weight})
	}

	return g, nil
}

// Nodes returns a copy of the node list in declaration order.
func (g *Graph) Nodes() []Node { return slices.Clone(g.nodes) }

// Edges returns a copy of the edges with default weights resolved.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// HasNode reports whether id was declared as a node.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Neighbors returns the IDs adjacent to id in insertion order.
// The same ID may appear twice when parallel edges were declared.
func (g *Graph) Neighbors(id string) []string {
	list := g.adj[id]
	out := make([]string, len(list))
	for i, nb := range list {
		out[i] = nb.id
	}

	return out
}

// Weight returns the weight of the first edge joining u and v.
func (g *Graph) Weight(u, v string) (int64, bool) {
	for _, nb := range g.adj[u] {
		if nb.id == v {
			return nb.weight, true
		}
	}

	return 0, false
}
