package graph

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/algostep/stepper"
)

// dfsRun is the suspended state of an iterative depth-first traversal.
type dfsRun struct {
	trail
	stack   []string
	edges   frontier
	started bool
}

// DFS returns a stepper for depth-first traversal from start.
//
// The stack is seeded with start. A node is marked visited when popped, and
// its unvisited neighbors are pushed in reverse adjacency order so the visit
// order matches the recursive formulation. The stack may hold duplicates;
// popping an already visited node is skipped without a snapshot.
func (g *Graph) DFS(start string) stepper.Stepper[Snapshot] {
	return &dfsRun{trail: newTrail(g, start)}
}

func (r *dfsRun) Advance() (Snapshot, bool) {
	if r.done {
		return Snapshot{}, false
	}
	if !r.started {
		r.started = true
		r.stack = []string{r.start}
		return r.frame(r.start, "Starting DFS from node "+r.start), true
	}

	for {
		if nb, ok := r.edges.take(r.unvisited); ok {
			r.stack = append(r.stack, nb.id)
			r.traversed = append(r.traversed, Arc{From: r.edges.from, To: nb.id})
			return r.frame(r.edges.from, fmt.Sprintf("Adding %s to stack", nb.id)), true
		}
		if len(r.stack) == 0 {
			break
		}

		top := len(r.stack) - 1
		cur := r.stack[top]
		r.stack = r.stack[:top]
		if r.visited[cur] {
			continue
		}
		r.visit(cur)

		list := slices.Clone(r.g.adj[cur])
		slices.Reverse(list)
		r.edges.load(cur, list)

		return r.frame(cur, "Visiting node "+cur), true
	}

	return r.finish("DFS complete, traversal order: " + r.orderText()), true
}

func (r *dfsRun) unvisited(nb neighbor) bool { return !r.visited[nb.id] }

func (r *dfsRun) frame(current, msg string) Snapshot {
	snap := r.snapshot(current, msg)
	snap.Stack = append(snap.Stack, r.stack...)

	return snap
}
