package graph

import (
	"errors"
	"math"
)

// Sentinel errors for graph construction and stepper dispatch.
var (
	// ErrUnknownAlgorithm is returned by New for an unrecognized algorithm id.
	ErrUnknownAlgorithm = errors.New("graph: unknown algorithm")

	// ErrEmptyNodeID indicates a node or edge endpoint with an empty ID.
	ErrEmptyNodeID = errors.New("graph: node ID is empty")

	// ErrDuplicateNode indicates two nodes share an ID.
	ErrDuplicateNode = errors.New("graph: duplicate node ID")

	// ErrNegativeWeight indicates an edge with a negative weight.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrBadDefaultWeight indicates WithDefaultWeight was given a non-positive value.
	ErrBadDefaultWeight = errors.New("graph: default weight must be positive")
)

// Unreachable is the distance of a node no path reaches.
const Unreachable int64 = math.MaxInt64

// DefaultWeight is used for edges declared without a weight.
const DefaultWeight int64 = 1

// Algorithm identifies a traversal.
type Algorithm string

// Supported algorithm ids.
const (
	BFS      Algorithm = "bfs"
	DFS      Algorithm = "dfs"
	Dijkstra Algorithm = "dijkstra"
	Prim     Algorithm = "prim"
	Kruskal  Algorithm = "kruskal"
)

// Algorithms lists every supported id.
var Algorithms = []Algorithm{BFS, DFS, Dijkstra, Prim, Kruskal}

// Node is a graph vertex with display coordinates.
type Node struct {
	ID    string  `json:"id" yaml:"id"`
	Label string  `json:"label,omitempty" yaml:"label,omitempty"`
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
}

// Edge is an undirected connection. Weight 0 means the graph default.
type Edge struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Weight int64  `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// Arc is a followed edge, oriented in the direction of travel.
type Arc struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Snapshot is the state of a traversal at one instrumentation point.
type Snapshot struct {
	// Visited lists nodes in the order they were visited or finalized.
	Visited []string `json:"visited" yaml:"visited"`

	// Current is the node being processed, "" when none.
	Current string `json:"current" yaml:"current"`

	// Queue is the BFS frontier, front first.
	Queue []string `json:"queue" yaml:"queue"`

	// Stack is the DFS frontier, bottom first.
	Stack []string `json:"stack" yaml:"stack"`

	// Distances holds Dijkstra's tentative distances. Unreachable encodes ∞.
	Distances map[string]int64 `json:"distances,omitempty" yaml:"distances,omitempty"`

	// Path is the full visit order, set only on the terminal snapshot.
	Path []string `json:"path" yaml:"path"`

	// Traversed lists the arcs followed so far.
	Traversed []Arc `json:"traversed" yaml:"traversed"`

	Message string `json:"message" yaml:"message"`
}
