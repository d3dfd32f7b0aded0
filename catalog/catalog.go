// Package catalog lists every instrumented algorithm with its display name and
// asymptotic cost, grouped by family.
package catalog

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algostep/dp"
	"github.com/katalvlaran/algostep/graph"
	"github.com/katalvlaran/algostep/searching"
	"github.com/katalvlaran/algostep/sorting"
	"github.com/katalvlaran/algostep/tree"
)

// ErrNotFound is returned by Lookup for an unknown family or id.
var ErrNotFound = errors.New("catalog: algorithm not found")

// Family groups algorithms that share a snapshot shape.
type Family string

// Families.
const (
	Sorting   Family = "sorting"
	Searching Family = "searching"
	Graph     Family = "graph"
	Tree      Family = "tree"
	DP        Family = "dp"
)

// Families lists every family in display order.
var Families = []Family{Sorting, Searching, Graph, Tree, DP}

// Info describes one algorithm.
type Info struct {
	ID     string `json:"id" yaml:"id"`
	Family Family `json:"family" yaml:"family"`
	Name   string `json:"name" yaml:"name"`
	Time   string `json:"time" yaml:"time"`
	Space  string `json:"space" yaml:"space"`
}

var entries = []Info{
	{string(sorting.BubbleSort), Sorting, "Bubble Sort", "O(n²)", "O(1)"},
	{string(sorting.SelectionSort), Sorting, "Selection Sort", "O(n²)", "O(1)"},
	{string(sorting.InsertionSort), Sorting, "Insertion Sort", "O(n²)", "O(1)"},
	{string(sorting.QuickSort), Sorting, "Quick Sort", "O(n log n)", "O(log n)"},
	{string(sorting.MergeSort), Sorting, "Merge Sort", "O(n log n)", "O(n)"},
	{string(sorting.HeapSort), Sorting, "Heap Sort", "O(n log n)", "O(1)"},

	{string(searching.LinearSearch), Searching, "Linear Search", "O(n)", "O(1)"},
	{string(searching.BinarySearch), Searching, "Binary Search", "O(log n)", "O(1)"},

	{string(graph.BFS), Graph, "BFS", "O(V + E)", "O(V)"},
	{string(graph.DFS), Graph, "DFS", "O(V + E)", "O(V)"},
	{string(graph.Dijkstra), Graph, "Dijkstra", "O(V² or V log V)", "O(V)"},
	{string(graph.Prim), Graph, "Prim", "O(E log V)", "O(V + E)"},
	{string(graph.Kruskal), Graph, "Kruskal", "O(E log E)", "O(V)"},

	{string(tree.Inorder), Tree, "Inorder", "O(n)", "O(h)"},
	{string(tree.Preorder), Tree, "Preorder", "O(n)", "O(h)"},
	{string(tree.Postorder), Tree, "Postorder", "O(n)", "O(h)"},
	{string(tree.LevelOrder), Tree, "Level Order", "O(n)", "O(w)"},

	{string(dp.FibonacciMemo), DP, "Fibonacci", "O(n)", "O(n)"},
	{string(dp.KnapsackTable), DP, "0/1 Knapsack", "O(n×W)", "O(n×W)"},
	{string(dp.LCSTable), DP, "LCS", "O(m×n)", "O(m×n)"},
	{string(dp.DTWTable), DP, "Dynamic Time Warping", "O(n×m)", "O(n×m)"},
}

// All returns every entry, family by family.
func All() []Info {
	out := make([]Info, len(entries))
	copy(out, entries)

	return out
}

// ByFamily returns the entries of f in display order.
func ByFamily(f Family) []Info {
	var out []Info
	for _, e := range entries {
		if e.Family == f {
			out = append(out, e)
		}
	}

	return out
}

// Lookup finds one entry.
func Lookup(f Family, id string) (Info, error) {
	for _, e := range entries {
		if e.Family == f && e.ID == id {
			return e, nil
		}
	}

	return Info{}, fmt.Errorf("%w: %s/%s", ErrNotFound, f, id)
}
