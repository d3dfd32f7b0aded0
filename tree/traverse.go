package tree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/algostep/stepper"
)

// New returns a stepper traversing a private copy of root in the given order.
func New(algo Algorithm, root *Node) (stepper.Stepper[Snapshot], error) {
	switch algo {
	case Inorder:
		return InorderOf(root), nil
	case Preorder:
		return PreorderOf(root), nil
	case Postorder:
		return PostorderOf(root), nil
	case LevelOrder:
		return LevelOrderOf(root), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}

// action is one step of a recursive call body.
type action uint8

const (
	visitSelf action = iota
	goLeft
	goRight
)

// order describes one depth-first traversal.
type order struct {
	name  string
	shape string // e.g. "left → root → right"
	body  [3]action
	note  string // appended to visit messages
}

var (
	inorder   = order{"Inorder", "left → root → right", [3]action{goLeft, visitSelf, goRight}, "root"}
	preorder  = order{"Preorder", "root → left → right", [3]action{visitSelf, goLeft, goRight}, "root first"}
	postorder = order{"Postorder", "left → right → root", [3]action{goLeft, goRight, visitSelf}, "root last"}
)

// InorderOf visits the left subtree, the node, then the right subtree.
func InorderOf(root *Node) stepper.Stepper[Snapshot] { return newDepthRun(inorder, root) }

// PreorderOf visits the node before either subtree.
func PreorderOf(root *Node) stepper.Stepper[Snapshot] { return newDepthRun(preorder, root) }

// PostorderOf visits the node after both subtrees.
func PostorderOf(root *Node) stepper.Stepper[Snapshot] { return newDepthRun(postorder, root) }

// walk is the bookkeeping shared by every traversal.
type walk struct {
	root    *Node
	name    string
	visited []string
	values  []int
	started bool
	done    bool
}

func (w *walk) visit(n *Node) {
	w.visited = append(w.visited, n.ID)
	w.values = append(w.values, n.Value)
}

func (w *walk) snapshot(current, msg string, edge *Link) Snapshot {
	return Snapshot{
		Visited:   append([]string{}, w.visited...),
		Current:   current,
		Values:    append([]int{}, w.values...),
		Highlight: edge,
		Message:   msg,
	}
}

func (w *walk) finish() Snapshot {
	w.done = true
	parts := make([]string, len(w.values))
	for i, v := range w.values {
		parts[i] = strconv.Itoa(v)
	}

	return w.snapshot("", fmt.Sprintf("%s complete, order: %s", w.name, strings.Join(parts, " → ")), nil)
}

// call is one suspended recursive invocation.
type call struct {
	node *Node
	pc   int // index into order.body
}

// depthRun runs inorder, preorder or postorder on an explicit call stack.
type depthRun struct {
	walk
	order order
	calls stepper.Frames[call]
}

func newDepthRun(o order, root *Node) *depthRun {
	return &depthRun{walk: walk{root: Clone(root), name: o.name}, order: o}
}

func (r *depthRun) Advance() (Snapshot, bool) {
	if r.done {
		return Snapshot{}, false
	}
	if !r.started {
		r.started = true
		if r.root == nil {
			return r.finish(), true
		}
		r.calls.Push(call{node: r.root})
		return r.snapshot(r.root.ID, fmt.Sprintf("Starting %s traversal (%s)", strings.ToLower(r.name), r.order.shape), nil), true
	}

	for !r.calls.Empty() {
		c := r.calls.Top()
		if c.pc == len(r.order.body) {
			r.calls.Pop()
			continue
		}
		n := c.node
		act := r.order.body[c.pc]
		c.pc++

		switch act {
		case visitSelf:
			r.visit(n)
			return r.snapshot(n.ID, fmt.Sprintf("Visit %d (%s)", n.Value, r.order.note), nil), true
		case goLeft:
			if n.Left != nil {
				r.calls.Push(call{node: n.Left})
				return r.snapshot(n.ID, fmt.Sprintf("Going left from %d", n.Value), &Link{From: n.ID, To: n.Left.ID}), true
			}
		case goRight:
			if n.Right != nil {
				r.calls.Push(call{node: n.Right})
				return r.snapshot(n.ID, fmt.Sprintf("Going right from %d", n.Value), &Link{From: n.ID, To: n.Right.ID}), true
			}
		}
	}

	return r.finish(), true
}

// levelRun is a FIFO traversal that reports each enqueued child.
type levelRun struct {
	walk
	queue []*Node
	cur   *Node // node whose children are being enqueued
	side  int   // 0 left, 1 right, 2 finished
}

// LevelOrderOf visits nodes level by level, left to right.
func LevelOrderOf(root *Node) stepper.Stepper[Snapshot] {
	return &levelRun{walk: walk{root: Clone(root), name: "Level order"}}
}

func (r *levelRun) Advance() (Snapshot, bool) {
	if r.done {
		return Snapshot{}, false
	}
	if !r.started {
		r.started = true
		if r.root == nil {
			return r.finish(), true
		}
		r.queue = []*Node{r.root}
		return r.snapshot(r.root.ID, "Starting level order traversal (level by level)", nil), true
	}

	for {
		for r.cur != nil && r.side < 2 {
			child, label := r.cur.Left, "left"
			if r.side == 1 {
				child, label = r.cur.Right, "right"
			}
			r.side++
			if child == nil {
				continue
			}
			r.queue = append(r.queue, child)
			msg := fmt.Sprintf("Adding %s child %d to queue", label, child.Value)
			return r.snapshot(r.cur.ID, msg, &Link{From: r.cur.ID, To: child.ID}), true
		}
		r.cur = nil

		if len(r.queue) == 0 {
			break
		}
		n := r.queue[0]
		r.queue = r.queue[1:]
		r.visit(n)
		r.cur, r.side = n, 0

		return r.snapshot(n.ID, fmt.Sprintf("Visit %d at current level", n.Value), nil), true
	}

	return r.finish(), true
}
