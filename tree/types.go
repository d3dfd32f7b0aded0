package tree

import "errors"

// ErrUnknownAlgorithm is returned by New for an unrecognized algorithm id.
var ErrUnknownAlgorithm = errors.New("tree: unknown algorithm")

// Algorithm identifies a traversal order.
type Algorithm string

// Supported algorithm ids.
const (
	Inorder    Algorithm = "inorder"
	Preorder   Algorithm = "preorder"
	Postorder  Algorithm = "postorder"
	LevelOrder Algorithm = "levelorder"
)

// Algorithms lists every supported id.
var Algorithms = []Algorithm{Inorder, Preorder, Postorder, LevelOrder}

// Node is a binary tree node. IDs are unique within a tree.
type Node struct {
	ID    string `json:"id" yaml:"id"`
	Value int    `json:"value" yaml:"value"`
	Left  *Node  `json:"left,omitempty" yaml:"left,omitempty"`
	Right *Node  `json:"right,omitempty" yaml:"right,omitempty"`
}

// Point is a display coordinate.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Link is a parent→child edge referenced by ID.
type Link struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Edge is a parent→child edge with both endpoint values.
type Edge struct {
	Link
	FromValue int `json:"from_value" yaml:"from_value"`
	ToValue   int `json:"to_value" yaml:"to_value"`
}

// Snapshot is the state of a traversal at one instrumentation point.
type Snapshot struct {
	// Visited lists node IDs in visit order.
	Visited []string `json:"visited" yaml:"visited"`

	// Current is the node being processed, "" when none.
	Current string `json:"current" yaml:"current"`

	// Values lists node values in visit order.
	Values []int `json:"values" yaml:"values"`

	// Highlight is the edge being followed, if any.
	Highlight *Link `json:"highlight,omitempty" yaml:"highlight,omitempty"`

	Message string `json:"message" yaml:"message"`
}
