package graph

// Distances is an all-pairs shortest-path table over a Graph's nodes.
type Distances struct {
	ids   []string
	index map[string]int
	d     []int64 // row-major n×n
}

// AllPairs runs Floyd–Warshall over g. Rows cover the declared nodes followed
// by any undeclared edge endpoints in first-appearance order.
//
// Loop order is fixed (k → i → j) and relaxation is strict, so the result is
// deterministic. Complexity: O(n³) time, O(n²) space.
func AllPairs(g *Graph) *Distances {
	t := &Distances{index: make(map[string]int, len(g.nodes))}
	add := func(id string) {
		if _, ok := t.index[id]; !ok {
			t.index[id] = len(t.ids)
			t.ids = append(t.ids, id)
		}
	}
	for _, n := range g.nodes {
		add(n.ID)
	}
	for _, e := range g.edges {
		add(e.From)
		add(e.To)
	}

	n := len(t.ids)
	t.d = make([]int64, n*n)
	for i := range t.d {
		t.d[i] = Unreachable
	}
	for i := 0; i < n; i++ {
		t.d[i*n+i] = 0
	}
	for _, e := range g.edges {
		u, v := t.index[e.From], t.index[e.To]
		if u == v {
			continue
		}
		if e.Weight < t.d[u*n+v] {
			t.d[u*n+v] = e.Weight
			t.d[v*n+u] = e.Weight
		}
	}

	var ik, kj, cand int64
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik = t.d[i*n+k]
			if ik == Unreachable {
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj = t.d[baseK+j]
				if kj == Unreachable {
					continue
				}
				if cand = ik + kj; cand < t.d[baseI+j] {
					t.d[baseI+j] = cand
				}
			}
		}
	}

	return t
}

// Between returns the shortest distance from u to v, or Unreachable.
func (t *Distances) Between(u, v string) int64 {
	i, ok := t.index[u]
	if !ok {
		return Unreachable
	}
	j, ok := t.index[v]
	if !ok {
		return Unreachable
	}

	return t.d[i*len(t.ids)+j]
}

// Row returns every distance from u, keyed by node ID.
func (t *Distances) Row(u string) map[string]int64 {
	row := make(map[string]int64, len(t.ids))
	for _, v := range t.ids {
		row[v] = t.Between(u, v)
	}

	return row
}
