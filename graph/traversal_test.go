package graph_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/graph"
	"github.com/katalvlaran/algostep/stepper"
)

func sample(t *testing.T) *graph.Graph {
	t.Helper()
	nodes, edges := graph.Sample()
	g, err := graph.Build(nodes, edges)
	require.NoError(t, err)

	return g
}

func TestNew_UnknownAlgorithm(t *testing.T) {
	nodes, edges := graph.Sample()
	_, err := graph.New("astar", nodes, edges, "A")
	require.True(t, errors.Is(err, graph.ErrUnknownAlgorithm))
}

func TestNew_BuildError(t *testing.T) {
	_, err := graph.New(graph.BFS, []graph.Node{{ID: "A"}, {ID: "A"}}, nil, "A")
	require.True(t, errors.Is(err, graph.ErrDuplicateNode))
}

func TestBFS_Sample(t *testing.T) {
	snaps := stepper.Collect(sample(t).BFS("A"))
	require.Len(t, snaps, 13, "start + 6 visits + 5 enqueues + terminal")

	first := snaps[0]
	assert.Equal(t, "A", first.Current)
	assert.Equal(t, []string{"A"}, first.Queue)
	assert.Empty(t, first.Visited)

	// visit A, then enqueue B and C with their arcs
	assert.Equal(t, "Visiting node A", snaps[1].Message)
	assert.Empty(t, snaps[1].Queue)
	assert.Equal(t, []string{"B"}, snaps[2].Queue)
	assert.Equal(t, []graph.Arc{{From: "A", To: "B"}}, snaps[2].Traversed)
	assert.Equal(t, []string{"B", "C"}, snaps[3].Queue)

	last := snaps[len(snaps)-1]
	assert.Equal(t, "", last.Current)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, last.Visited)
	assert.Equal(t, last.Visited, last.Path)
	assert.Len(t, last.Traversed, 5, "spanning tree of 6 nodes")
	assert.Equal(t, "BFS complete, traversal order: A → B → C → D → E → F", last.Message)
}

func TestBFS_NeverQueuesTwice(t *testing.T) {
	for snap := range stepper.All(sample(t).BFS("A")) {
		seen := map[string]bool{}
		for _, id := range snap.Queue {
			require.False(t, seen[id], "duplicate %s in queue %v", id, snap.Queue)
			seen[id] = true
		}
	}
}

func TestDFS_Sample(t *testing.T) {
	snaps := stepper.Collect(sample(t).DFS("A"))
	require.Len(t, snaps, 16)

	assert.Equal(t, []string{"A"}, snaps[0].Stack)
	// A's neighbors B, C are pushed reversed: C first, then B on top
	assert.Equal(t, []string{"C"}, snaps[2].Stack)
	assert.Equal(t, []string{"C", "B"}, snaps[3].Stack)
	assert.Equal(t, "Adding B to stack", snaps[3].Message)

	last := snaps[len(snaps)-1]
	assert.Equal(t, []string{"A", "B", "D", "E", "C", "F"}, last.Path)
	assert.Empty(t, last.Stack)
	assert.Empty(t, last.Queue)
}

func TestTraversals_VisitEveryReachableNodeOnce(t *testing.T) {
	g := sample(t)
	for _, start := range []string{"A", "C", "F"} {
		bfs, _ := stepper.Last(g.BFS(start))
		dfs, _ := stepper.Last(g.DFS(start))

		require.Len(t, bfs.Visited, 6)
		require.Len(t, dfs.Visited, 6)
		require.ElementsMatch(t, bfs.Visited, dfs.Visited)
		require.Equal(t, start, bfs.Visited[0])
		require.Equal(t, start, dfs.Visited[0])
	}
}

func TestTraversals_Disconnected(t *testing.T) {
	g, err := graph.Build(
		[]graph.Node{{ID: "A"}, {ID: "B"}, {ID: "Z"}},
		[]graph.Edge{{From: "A", To: "B"}},
	)
	require.NoError(t, err)

	bfs, _ := stepper.Last(g.BFS("A"))
	assert.Equal(t, []string{"A", "B"}, bfs.Path)

	dij, _ := stepper.Last(g.Dijkstra("A"))
	assert.Equal(t, graph.Unreachable, dij.Distances["Z"])
	assert.Equal(t, []string{"A", "B"}, dij.Path)
	assert.Contains(t, dij.Message, "Z: ∞")
}

func TestDijkstra_Sample(t *testing.T) {
	snaps := stepper.Collect(sample(t).Dijkstra("A"))
	require.Len(t, snaps, 14)

	initial := snaps[0]
	assert.EqualValues(t, 0, initial.Distances["A"])
	assert.Equal(t, graph.Unreachable, initial.Distances["F"])

	assert.Equal(t, "Processing node A with distance 0", snaps[1].Message)
	assert.Equal(t, "Updated distance to B: ∞ → 4", snaps[2].Message)

	// B and F tie at 4; B is declared first and wins
	assert.Equal(t, "Processing node B with distance 4", snaps[7].Message)
	assert.Equal(t, "Updated distance to E: 7 → 5", snaps[9].Message)

	last := snaps[len(snaps)-1]
	assert.Equal(t, []string{"A", "C", "B", "F", "E", "D"}, last.Path)
	assert.Equal(t, "Dijkstra complete, shortest distances from A: A: 0, B: 4, C: 2, D: 7, E: 5, F: 4", last.Message)
}

func TestDijkstra_MatchesFloydWarshall(t *testing.T) {
	g := sample(t)
	table := graph.AllPairs(g)
	for _, n := range g.Nodes() {
		final, _ := stepper.Last(g.Dijkstra(n.ID))
		require.Equal(t, table.Row(n.ID), final.Distances, "start %s", n.ID)
	}
}

// requireFinalizedStable checks that a node already in Visited never has its
// distance raised by a later snapshot.
func requireFinalizedStable(t *testing.T, snaps []graph.Snapshot, label string) {
	t.Helper()
	for k := 1; k < len(snaps); k++ {
		prev, cur := snaps[k-1], snaps[k]
		for _, v := range prev.Visited {
			require.LessOrEqual(t, cur.Distances[v], prev.Distances[v],
				"%s: distance to finalized %s rose at step %d", label, v, k)
		}
	}
}

func TestDijkstra_FinalizedDistancesNeverIncrease(t *testing.T) {
	g := sample(t)
	for _, n := range g.Nodes() {
		requireFinalizedStable(t, stepper.Collect(g.Dijkstra(n.ID)), "sample from "+n.ID)
	}

	for seed := int64(1); seed <= 20; seed++ {
		nodes, edges, err := graph.RandomSparse(8, 0.4, graph.WithSeed(seed), graph.WithWeights(1, 9))
		require.NoError(t, err)
		rg, err := graph.Build(nodes, edges)
		require.NoError(t, err)
		requireFinalizedStable(t, stepper.Collect(rg.Dijkstra(nodes[0].ID)), fmt.Sprintf("seed %d", seed))
	}
}

func TestSnapshotsAreIndependent(t *testing.T) {
	snaps := stepper.Collect(sample(t).Dijkstra("A"))
	snaps[0].Distances["A"] = 42
	snaps[1].Visited[0] = "mutated"
	assert.EqualValues(t, 0, snaps[1].Distances["A"])
	assert.Equal(t, "A", snaps[2].Visited[0])
}

func TestDeterministicAndSticky(t *testing.T) {
	for _, algo := range graph.Algorithms {
		nodes, edges := graph.Sample()
		a, err := graph.New(algo, nodes, edges, "B")
		require.NoError(t, err)
		b, _ := graph.New(algo, nodes, edges, "B")
		require.Equal(t, stepper.Collect(a), stepper.Collect(b), algo)

		_, ok := a.Advance()
		require.False(t, ok)
	}
}
