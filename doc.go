// Package algostep turns classic algorithms into step-by-step traces you can
// replay, inspect and print.
//
// Every algorithm is exposed as a stepper: a pull-based sequence of deep-copied
// snapshots that describes one observable state per step, ending with a
// terminal snapshot that carries the result and a human-readable message.
//
// What is inside:
//
//	stepper/   — the Stepper contract plus Collect, Last, Count and Frames
//	sorting/   — bubble, selection, insertion, quick, merge and heap sort
//	searching/ — linear and binary search
//	graph/     — BFS, DFS, Dijkstra, Prim, Kruskal, all-pairs distances and
//	             shape generators (cycle, path, star, wheel, grid, random)
//	tree/      — inorder, preorder, postorder and level-order traversal
//	dp/        — memoized Fibonacci, 0/1 knapsack, LCS and dynamic time warping
//	catalog/   — display names and asymptotic costs per algorithm
//	input/     — validation of user-supplied inputs
//	trace/     — recorded runs with IDs and an LRU cache of them
//
// The algotrace command under cmd/ prints traces as JSON lines, YAML or text:
//
//	algotrace sort --algo quick --values 5,3,8,1,9 --format text
//	algotrace graph --algo dijkstra --start A --final
//
// Quick example:
//
//	s, err := sorting.New(sorting.BubbleSort, []int{3, 1, 2})
//	if err != nil {
//		return err
//	}
//	for snap, ok := s.Advance(); ok; snap, ok = s.Advance() {
//		fmt.Println(snap.Array, snap.Message)
//	}
package algostep
