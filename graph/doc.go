// Package graph models a small undirected weighted graph and instruments
// breadth-first search, depth-first search, Dijkstra's algorithm and the
// Prim and Kruskal minimum spanning tree constructions as Steppers.
//
// Model:
//
//   - Node carries an ID, an optional label and display coordinates.
//   - Edge is undirected. Weight 0 means the default weight (1 unless
//     WithDefaultWeight says otherwise).
//   - Build inserts each edge in both directions. Adjacency lists keep edge
//     insertion order, and every traversal observes that order.
//
// Traversals:
//
//   - BFS marks a node visited when it leaves the FIFO queue and enqueues a
//     neighbor only if it is neither visited nor already waiting.
//   - DFS is iterative. The stack may hold duplicates, which are skipped
//     silently when popped.
//   - Dijkstra selects the next node by linear scan (O(V) per step) in
//     declaration order, keeping the first minimum on ties.
//   - Prim pops candidate edges from a min-heap and reports stale ones as
//     skipped. Kruskal scans edges by ascending weight over a union-find
//     forest and reports cycle-closing edges as skipped. Traversed holds the
//     tree edges.
//
// Every run starts with a snapshot naming the start node (Kruskal: the sorted
// edge list) and ends with a terminal snapshot whose Current is "" and whose
// Path is the full visit order. AllPairs (Floyd–Warshall) provides an independent reference table
// for checking Dijkstra's distances.
//
// Example:
//
//	nodes, edges := graph.Sample()
//	s, err := graph.New(graph.Dijkstra, nodes, edges, "A")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for snap := range stepper.All(s) {
//	    fmt.Println(snap.Message)
//	}
package graph
