package graph

// Sample returns the six-node demonstration graph: nodes A–F laid out on a
// 400×330 canvas and eight weighted edges. Every node is reachable from A.
func Sample() ([]Node, []Edge) {
	nodes := []Node{
		{ID: "A", Label: "A", X: 200, Y: 50},
		{ID: "B", Label: "B", X: 100, Y: 150},
		{ID: "C", Label: "C", X: 300, Y: 150},
		{ID: "D", Label: "D", X: 50, Y: 280},
		{ID: "E", Label: "E", X: 200, Y: 280},
		{ID: "F", Label: "F", X: 350, Y: 280},
	}
	edges := []Edge{
		{From: "A", To: "B", Weight: 4},
		{From: "A", To: "C", Weight: 2},
		{From: "B", To: "D", Weight: 3},
		{From: "B", To: "E", Weight: 1},
		{From: "C", To: "E", Weight: 5},
		{From: "C", To: "F", Weight: 2},
		{From: "D", To: "E", Weight: 2},
		{From: "E", To: "F", Weight: 3},
	}

	return nodes, edges
}
