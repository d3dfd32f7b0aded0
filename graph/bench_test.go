package graph_test

import (
	"testing"

	"github.com/katalvlaran/algostep/graph"
	"github.com/katalvlaran/algostep/stepper"
)

// benchGrid builds a 10×10 lattice with weights in [1, 9].
func benchGrid(b *testing.B) *graph.Graph {
	b.Helper()
	nodes, edges, err := graph.Grid(10, 10, graph.WithWeights(1, 9), graph.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	g, err := graph.Build(nodes, edges)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkDijkstra measures a full replay of Dijkstra from a grid corner.
func BenchmarkDijkstra(b *testing.B) {
	g := benchGrid(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		stepper.Count(g.Dijkstra("0,0"))
	}
}

// BenchmarkPrim measures a full replay of Prim from a grid corner.
func BenchmarkPrim(b *testing.B) {
	g := benchGrid(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		stepper.Count(g.Prim("0,0"))
	}
}
