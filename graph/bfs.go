package graph

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/algostep/stepper"
)

// bfsRun is the suspended state of a breadth-first traversal.
type bfsRun struct {
	trail
	queue   []string
	edges   frontier
	started bool
}

// BFS returns a stepper for breadth-first traversal from start.
//
// A node is marked visited when it is dequeued. A neighbor is enqueued only
// if it is neither visited nor already queued, and the arc is recorded at
// that moment.
func (g *Graph) BFS(start string) stepper.Stepper[Snapshot] {
	return &bfsRun{trail: newTrail(g, start)}
}

func (r *bfsRun) Advance() (Snapshot, bool) {
	if r.done {
		return Snapshot{}, false
	}
	if !r.started {
		r.started = true
		r.queue = []string{r.start}
		return r.frame(r.start, "Starting BFS from node "+r.start), true
	}

	for {
		if nb, ok := r.edges.take(r.enqueueable); ok {
			r.queue = append(r.queue, nb.id)
			r.traversed = append(r.traversed, Arc{From: r.edges.from, To: nb.id})
			return r.frame(r.edges.from, fmt.Sprintf("Adding %s to queue", nb.id)), true
		}
		if len(r.queue) == 0 {
			break
		}

		cur := r.queue[0]
		r.queue = r.queue[1:]
		if r.visited[cur] {
			continue
		}
		r.visit(cur)
		r.edges.load(cur, r.g.adj[cur])

		return r.frame(cur, "Visiting node "+cur), true
	}

	return r.finish("BFS complete, traversal order: " + r.orderText()), true
}

func (r *bfsRun) enqueueable(nb neighbor) bool {
	return !r.visited[nb.id] && !slices.Contains(r.queue, nb.id)
}

func (r *bfsRun) frame(current, msg string) Snapshot {
	snap := r.snapshot(current, msg)
	snap.Queue = append(snap.Queue, r.queue...)

	return snap
}
