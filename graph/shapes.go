package graph

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Shape errors.
var (
	// ErrShapeTooSmall indicates a size parameter below the shape's minimum.
	ErrShapeTooSmall = errors.New("graph: shape parameter too small")

	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("graph: probability out of range")

	// ErrBadWeightRange indicates WithWeights got lo < 1 or hi < lo.
	ErrBadWeightRange = errors.New("graph: invalid weight range")
)

// Default canvas for generated layouts.
const (
	DefaultCanvasWidth  = 600.0
	DefaultCanvasHeight = 400.0
	canvasMargin        = 40.0
)

// ShapeOption configures a shape generator.
type ShapeOption func(c *shapeConfig)

type shapeConfig struct {
	rng           *rand.Rand
	lo, hi        int64
	width, height float64
	err           error
}

func newShapeConfig(opts []ShapeOption) (shapeConfig, error) {
	c := shapeConfig{
		rng:    rand.New(rand.NewSource(1)),
		lo:     DefaultWeight,
		hi:     DefaultWeight,
		width:  DefaultCanvasWidth,
		height: DefaultCanvasHeight,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c, c.err
}

// WithRand draws random weights and random edges from r. A nil r is ignored.
func WithRand(r *rand.Rand) ShapeOption {
	return func(c *shapeConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed draws from a fresh source seeded with seed on every generator
// call, so reusing the option reproduces the same graph.
func WithSeed(seed int64) ShapeOption {
	return func(c *shapeConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeights draws every edge weight uniformly from [lo, hi].
func WithWeights(lo, hi int64) ShapeOption {
	return func(c *shapeConfig) {
		if lo < 1 || hi < lo {
			c.err = fmt.Errorf("%w: [%d, %d]", ErrBadWeightRange, lo, hi)
			return
		}
		c.lo, c.hi = lo, hi
	}
}

// WithCanvas sets the area node coordinates are laid out in.
func WithCanvas(width, height float64) ShapeOption {
	return func(c *shapeConfig) {
		if width > 0 && height > 0 {
			c.width, c.height = width, height
		}
	}
}

func (c *shapeConfig) weight() int64 {
	if c.lo == c.hi {
		return c.lo
	}

	return c.lo + c.rng.Int63n(c.hi-c.lo+1)
}

func (c *shapeConfig) edge(u, v string) Edge { return Edge{From: u, To: v, Weight: c.weight()} }

// ring lays n nodes on a circle, the first at the top, clockwise.
func (c *shapeConfig) ring(n int) []Node {
	cx, cy := c.width/2, c.height/2
	radius := math.Min(c.width, c.height)/2 - canvasMargin
	nodes := make([]Node, n)
	for i := range nodes {
		angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		nodes[i] = Node{
			ID: Label(i),
			X:  math.Round((cx+radius*math.Cos(angle))*100) / 100,
			Y:  math.Round((cy+radius*math.Sin(angle))*100) / 100,
		}
	}

	return nodes
}

// Label returns spreadsheet-column IDs: 0→A, 25→Z, 26→AA.
func Label(i int) string {
	var out []byte
	for ; i >= 0; i = i/26 - 1 {
		out = append([]byte{byte('A' + i%26)}, out...)
	}

	return string(out)
}

func tooSmall(shape string, n, least int) error {
	return fmt.Errorf("%w: %s needs n ≥ %d, got %d", ErrShapeTooSmall, shape, least, n)
}

// Cycle returns the ring C_n with edges i→i+1 and n-1→0. n ≥ 3.
func Cycle(n int, opts ...ShapeOption) ([]Node, []Edge, error) {
	if n < 3 {
		return nil, nil, tooSmall("cycle", n, 3)
	}
	c, err := newShapeConfig(opts)
	if err != nil {
		return nil, nil, err
	}
	nodes := c.ring(n)
	edges := make([]Edge, 0, n)
	for i := range n {
		edges = append(edges, c.edge(nodes[i].ID, nodes[(i+1)%n].ID))
	}

	return nodes, edges, nil
}

// Path returns the chain P_n laid out left to right. n ≥ 1.
func Path(n int, opts ...ShapeOption) ([]Node, []Edge, error) {
	if n < 1 {
		return nil, nil, tooSmall("path", n, 1)
	}
	c, err := newShapeConfig(opts)
	if err != nil {
		return nil, nil, err
	}
	nodes := make([]Node, n)
	step := 0.0
	if n > 1 {
		step = (c.width - 2*canvasMargin) / float64(n-1)
	}
	for i := range nodes {
		x := canvasMargin + step*float64(i)
		if n == 1 {
			x = c.width / 2
		}
		nodes[i] = Node{ID: Label(i), X: x, Y: c.height / 2}
	}
	edges := make([]Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, c.edge(nodes[i-1].ID, nodes[i].ID))
	}

	return nodes, edges, nil
}

// Star returns a center node A joined to n-1 leaves around it. n ≥ 2.
func Star(n int, opts ...ShapeOption) ([]Node, []Edge, error) {
	if n < 2 {
		return nil, nil, tooSmall("star", n, 2)
	}
	c, err := newShapeConfig(opts)
	if err != nil {
		return nil, nil, err
	}
	hub := Node{ID: Label(0), X: c.width / 2, Y: c.height / 2}
	leaves := c.ring(n - 1)
	nodes := []Node{hub}
	edges := make([]Edge, 0, n-1)
	for i, leaf := range leaves {
		leaf.ID = Label(i + 1)
		nodes = append(nodes, leaf)
		edges = append(edges, c.edge(hub.ID, leaf.ID))
	}

	return nodes, edges, nil
}

// Wheel returns the cycle C_{n-1} plus a hub, the last node, joined to every
// rim node. Rim edges come first, then spokes. n ≥ 4.
func Wheel(n int, opts ...ShapeOption) ([]Node, []Edge, error) {
	if n < 4 {
		return nil, nil, tooSmall("wheel", n, 4)
	}
	c, err := newShapeConfig(opts)
	if err != nil {
		return nil, nil, err
	}
	rim := c.ring(n - 1)
	edges := make([]Edge, 0, 2*(n-1))
	for i := range rim {
		edges = append(edges, c.edge(rim[i].ID, rim[(i+1)%len(rim)].ID))
	}
	hub := Node{ID: Label(n - 1), X: c.width / 2, Y: c.height / 2}
	for _, r := range rim {
		edges = append(edges, c.edge(hub.ID, r.ID))
	}

	return append(rim, hub), edges, nil
}

// Complete returns K_n laid out on a ring, edges in (i, j>i) order. n ≥ 1.
func Complete(n int, opts ...ShapeOption) ([]Node, []Edge, error) {
	if n < 1 {
		return nil, nil, tooSmall("complete", n, 1)
	}
	c, err := newShapeConfig(opts)
	if err != nil {
		return nil, nil, err
	}
	nodes := c.ring(n)
	edges := make([]Edge, 0, n*(n-1)/2)
	for i := range n {
		for j := i + 1; j < n; j++ {
			edges = append(edges, c.edge(nodes[i].ID, nodes[j].ID))
		}
	}

	return nodes, edges, nil
}

// Grid returns a rows×cols lattice with IDs "r,c" in row-major order. Each
// cell is joined to its right and bottom neighbors, in that order.
func Grid(rows, cols int, opts ...ShapeOption) ([]Node, []Edge, error) {
	if rows < 1 || cols < 1 {
		return nil, nil, fmt.Errorf("%w: grid needs rows, cols ≥ 1, got %d×%d", ErrShapeTooSmall, rows, cols)
	}
	c, err := newShapeConfig(opts)
	if err != nil {
		return nil, nil, err
	}
	dx := (c.width - 2*canvasMargin) / float64(max(cols-1, 1))
	dy := (c.height - 2*canvasMargin) / float64(max(rows-1, 1))
	id := func(r, col int) string { return fmt.Sprintf("%d,%d", r, col) }

	nodes := make([]Node, 0, rows*cols)
	var edges []Edge
	for r := range rows {
		for col := range cols {
			nodes = append(nodes, Node{ID: id(r, col), X: canvasMargin + dx*float64(col), Y: canvasMargin + dy*float64(r)})
			if col+1 < cols {
				edges = append(edges, c.edge(id(r, col), id(r, col+1)))
			}
			if r+1 < rows {
				edges = append(edges, c.edge(id(r, col), id(r+1, col)))
			}
		}
	}

	return nodes, edges, nil
}

// RandomSparse returns n ring-laid nodes where each pair (i, j>i) is joined
// independently with probability p. The same seed yields the same graph.
func RandomSparse(n int, p float64, opts ...ShapeOption) ([]Node, []Edge, error) {
	if n < 1 {
		return nil, nil, tooSmall("random", n, 1)
	}
	if p < 0 || p > 1 || math.IsNaN(p) {
		return nil, nil, fmt.Errorf("%w: p=%g", ErrInvalidProbability, p)
	}
	c, err := newShapeConfig(opts)
	if err != nil {
		return nil, nil, err
	}
	nodes := c.ring(n)
	var edges []Edge
	for i := range n {
		for j := i + 1; j < n; j++ {
			if c.rng.Float64() < p {
				edges = append(edges, c.edge(nodes[i].ID, nodes[j].ID))
			}
		}
	}

	return nodes, edges, nil
}
