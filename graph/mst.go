package graph

import (
	"cmp"
	"container/heap"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/algostep/stepper"
)

// candidate is an edge offered to Prim's tree. seq orders equal weights by
// the time they were offered.
type candidate struct {
	from, to string
	weight   int64
	seq      int
}

type candidates []candidate

func (c candidates) Len() int { return len(c) }
func (c candidates) Less(i, j int) bool {
	if c[i].weight != c[j].weight {
		return c[i].weight < c[j].weight
	}
	return c[i].seq < c[j].seq
}
func (c candidates) Swap(i, j int) { c[i], c[j] = c[j], c[i] }
func (c *candidates) Push(x any)   { *c = append(*c, x.(candidate)) }
func (c *candidates) Pop() any {
	old := *c
	last := old[len(old)-1]
	*c = old[:len(old)-1]

	return last
}

// spanning is the result bookkeeping both MST runs share.
type spanning struct {
	trail
	total int64
	kept  []string // "A–C" labels in the order edges joined the tree
}

func (s *spanning) keep(from, to string, w int64) {
	s.traversed = append(s.traversed, Arc{From: from, To: to})
	s.total += w
	s.kept = append(s.kept, from+"–"+to)
}

func (s *spanning) summary(name string) string {
	msg := fmt.Sprintf("%s complete, MST weight %d", name, s.total)
	if len(s.kept) > 0 {
		msg += ": " + strings.Join(s.kept, ", ")
	}
	if n := len(s.g.nodes); n > 0 && len(s.kept) < n-1 {
		msg += " (graph is disconnected)"
	}

	return msg
}

// uncovered counts declared nodes not yet in the tree.
func (s *spanning) uncovered() int {
	n := 0
	for _, node := range s.g.nodes {
		if !s.visited[node.ID] {
			n++
		}
	}

	return n
}

type primRun struct {
	spanning
	pq      candidates
	seq     int
	started bool
}

// Prim returns a stepper growing a minimum spanning tree from start.
//
// Edges leaving the tree wait in a min-heap ordered by weight, then by the
// order they were offered. Each pop emits one snapshot: the edge joins the
// tree, or it is skipped because both ends are already in it. The run ends
// when every declared node is in the tree or the heap is empty; on a
// disconnected graph the result spans start's component only.
func (g *Graph) Prim(start string) stepper.Stepper[Snapshot] {
	return &primRun{spanning: spanning{trail: newTrail(g, start), kept: []string{}}}
}

func (r *primRun) Advance() (Snapshot, bool) {
	if r.done {
		return Snapshot{}, false
	}
	if !r.started {
		r.started = true
		r.visit(r.start)
		r.offer(r.start)
		return r.snapshot(r.start, fmt.Sprintf("Starting Prim from node %s", r.start)), true
	}

	if r.pq.Len() > 0 && (len(r.g.nodes) == 0 || r.uncovered() > 0) {
		c := heap.Pop(&r.pq).(candidate)
		if r.visited[c.to] {
			return r.snapshot(c.from, fmt.Sprintf("Skipping edge %s–%s (weight %d): %s already in tree", c.from, c.to, c.weight, c.to)), true
		}
		r.visit(c.to)
		r.keep(c.from, c.to, c.weight)
		r.offer(c.to)

		return r.snapshot(c.to, fmt.Sprintf("Adding edge %s–%s (weight %d) to tree", c.from, c.to, c.weight)), true
	}

	return r.finish(r.summary("Prim")), true
}

// offer pushes every edge from id to a node outside the tree.
func (r *primRun) offer(id string) {
	for _, nb := range r.g.adj[id] {
		if r.visited[nb.id] {
			continue
		}
		heap.Push(&r.pq, candidate{from: id, to: nb.id, weight: nb.weight, seq: r.seq})
		r.seq++
	}
}

// forest is a disjoint-set over node IDs with path compression and union by
// rank.
type forest struct {
	parent map[string]string
	rank   map[string]int
}

func (f *forest) find(u string) string {
	if _, ok := f.parent[u]; !ok {
		f.parent[u] = u
	}
	for f.parent[u] != u {
		f.parent[u] = f.parent[f.parent[u]]
		u = f.parent[u]
	}

	return u
}

// union merges the sets of u and v, reporting false when they were already
// one set.
func (f *forest) union(u, v string) bool {
	ru, rv := f.find(u), f.find(v)
	if ru == rv {
		return false
	}
	switch {
	case f.rank[ru] < f.rank[rv]:
		f.parent[ru] = rv
	case f.rank[ru] > f.rank[rv]:
		f.parent[rv] = ru
	default:
		f.parent[rv] = ru
		f.rank[ru]++
	}

	return true
}

type kruskalRun struct {
	spanning
	sorted  []Edge
	next    int
	sets    forest
	started bool
}

// Kruskal returns a stepper building a minimum spanning forest by scanning
// the edges in ascending weight. Equal weights keep declaration order.
//
// Each examined edge emits one snapshot: it joins the forest, or it is
// skipped because it would close a cycle. Nodes enter Visited as their first
// edge is accepted. The scan stops early once a spanning tree over all
// declared nodes is complete.
func (g *Graph) Kruskal() stepper.Stepper[Snapshot] {
	sorted := slices.Clone(g.edges)
	slices.SortStableFunc(sorted, func(a, b Edge) int { return cmp.Compare(a.Weight, b.Weight) })

	return &kruskalRun{
		spanning: spanning{trail: newTrail(g, ""), kept: []string{}},
		sorted:   sorted,
		sets:     forest{parent: map[string]string{}, rank: map[string]int{}},
	}
}

func (r *kruskalRun) Advance() (Snapshot, bool) {
	if r.done {
		return Snapshot{}, false
	}
	if !r.started {
		r.started = true
		parts := make([]string, len(r.sorted))
		for i, e := range r.sorted {
			parts[i] = fmt.Sprintf("%s–%s(%d)", e.From, e.To, e.Weight)
		}
		return r.snapshot("", "Sorted edges by weight: "+strings.Join(parts, ", ")), true
	}

	complete := len(r.g.nodes) > 0 && len(r.kept) == len(r.g.nodes)-1
	if r.next < len(r.sorted) && !complete {
		e := r.sorted[r.next]
		r.next++
		if !r.sets.union(e.From, e.To) {
			return r.snapshot("", fmt.Sprintf("Skipping edge %s–%s (weight %d): would form a cycle", e.From, e.To, e.Weight)), true
		}
		for _, id := range []string{e.From, e.To} {
			if !r.visited[id] {
				r.visit(id)
			}
		}
		r.keep(e.From, e.To, e.Weight)

		return r.snapshot(e.To, fmt.Sprintf("Adding edge %s–%s (weight %d) to forest", e.From, e.To, e.Weight)), true
	}

	return r.finish(r.summary("Kruskal")), true
}
