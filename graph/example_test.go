package graph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/algostep/graph"
	"github.com/katalvlaran/algostep/stepper"
)

// ExampleNew runs BFS over the sample graph and prints the terminal message.
func ExampleNew() {
	nodes, edges := graph.Sample()
	s, err := graph.New(graph.BFS, nodes, edges, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	final, _ := stepper.Last(s)
	fmt.Println(final.Message)
	// Output: BFS complete, traversal order: A → B → C → D → E → F
}

// ExampleGraph_Dijkstra prints every distance improvement from A.
func ExampleGraph_Dijkstra() {
	nodes, edges := graph.Sample()
	g, _ := graph.Build(nodes, edges)
	for snap := range stepper.All(g.Dijkstra("A")) {
		if strings.HasPrefix(snap.Message, "Updated") {
			fmt.Println(snap.Message)
		}
	}
	// Output:
	// Updated distance to B: ∞ → 4
	// Updated distance to C: ∞ → 2
	// Updated distance to E: ∞ → 7
	// Updated distance to F: ∞ → 4
	// Updated distance to D: ∞ → 7
	// Updated distance to E: 7 → 5
}

// ExampleCycle builds a four-node ring and spans it with Kruskal.
func ExampleCycle() {
	nodes, edges, err := graph.Cycle(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g, _ := graph.Build(nodes, edges)
	final, _ := stepper.Last(g.Kruskal())
	fmt.Println(final.Message)
	// Output: Kruskal complete, MST weight 3: A–B, B–C, C–D
}
