package graph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/algostep/stepper"
)

// dijkstraRun is the suspended state of a Dijkstra run.
type dijkstraRun struct {
	trail
	dist    map[string]int64
	keys    []string // distance table order: declared nodes, then nodes reached later
	relax   frontier
	started bool
}

// Dijkstra returns a stepper computing shortest distances from start.
//
// Selection is a linear scan over the distance table in node declaration
// order; the first strictly smallest unvisited entry wins, so ties go to the
// earlier node. Each finalized node emits a processing snapshot, and every
// strict improvement while relaxing its unvisited neighbors emits an update
// snapshot. The run stops once no finite unvisited distance remains.
func (g *Graph) Dijkstra(start string) stepper.Stepper[Snapshot] {
	r := &dijkstraRun{
		trail: newTrail(g, start),
		dist:  make(map[string]int64, len(g.nodes)),
		keys:  make([]string, 0, len(g.nodes)),
	}
	for _, n := range g.nodes {
		r.keys = append(r.keys, n.ID)
		r.dist[n.ID] = Unreachable
	}
	if _, ok := r.dist[start]; ok {
		r.dist[start] = 0
	}

	return r
}

func (r *dijkstraRun) Advance() (Snapshot, bool) {
	if r.done {
		return Snapshot{}, false
	}
	if !r.started {
		r.started = true
		return r.frame(r.start, fmt.Sprintf("Initializing distances: %s = 0, others = ∞", r.start)), true
	}

	for {
		if nb, ok := r.relax.take(r.unvisited); ok {
			cur := r.relax.from
			cand := r.dist[cur] + nb.weight
			old, known := r.dist[nb.id]
			if !known {
				old = Unreachable
			}
			if cand >= old {
				continue
			}
			if !known {
				r.keys = append(r.keys, nb.id)
			}
			r.dist[nb.id] = cand
			r.traversed = append(r.traversed, Arc{From: cur, To: nb.id})

			return r.frame(cur, fmt.Sprintf("Updated distance to %s: %s → %d", nb.id, formatDistance(old), cand)), true
		}

		cur, ok := r.closest()
		if !ok {
			break
		}
		r.visit(cur)
		r.relax.load(cur, r.g.adj[cur])

		return r.frame(cur, fmt.Sprintf("Processing node %s with distance %d", cur, r.dist[cur])), true
	}

	parts := make([]string, len(r.keys))
	for i, id := range r.keys {
		parts[i] = id + ": " + formatDistance(r.dist[id])
	}
	snap := r.finish(fmt.Sprintf("Dijkstra complete, shortest distances from %s: %s", r.start, strings.Join(parts, ", ")))
	snap.Distances = cloneDistances(r.dist)

	return snap, true
}

// closest returns the unvisited node with the smallest finite distance.
func (r *dijkstraRun) closest() (string, bool) {
	best, low := "", Unreachable
	for _, id := range r.keys {
		if !r.visited[id] && r.dist[id] < low {
			best, low = id, r.dist[id]
		}
	}

	return best, best != ""
}

func (r *dijkstraRun) unvisited(nb neighbor) bool { return !r.visited[nb.id] }

func (r *dijkstraRun) frame(current, msg string) Snapshot {
	snap := r.snapshot(current, msg)
	snap.Distances = cloneDistances(r.dist)

	return snap
}
