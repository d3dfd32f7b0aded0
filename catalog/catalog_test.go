package catalog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/catalog"
	"github.com/katalvlaran/algostep/dp"
	"github.com/katalvlaran/algostep/graph"
	"github.com/katalvlaran/algostep/searching"
	"github.com/katalvlaran/algostep/sorting"
	"github.com/katalvlaran/algostep/tree"
)

func ids(infos []catalog.Info) []string {
	out := make([]string, len(infos))
	for i, in := range infos {
		out[i] = in.ID
	}
	return out
}

// TestCoversEveryEngine keeps the catalog in step with each package's
// Algorithms list.
func TestCoversEveryEngine(t *testing.T) {
	var want []string
	for _, a := range sorting.Algorithms {
		want = append(want, string(a))
	}
	assert.Equal(t, want, ids(catalog.ByFamily(catalog.Sorting)))

	want = want[:0]
	for _, a := range searching.Algorithms {
		want = append(want, string(a))
	}
	assert.Equal(t, want, ids(catalog.ByFamily(catalog.Searching)))

	want = want[:0]
	for _, a := range graph.Algorithms {
		want = append(want, string(a))
	}
	assert.Equal(t, want, ids(catalog.ByFamily(catalog.Graph)))

	want = want[:0]
	for _, a := range tree.Algorithms {
		want = append(want, string(a))
	}
	assert.Equal(t, want, ids(catalog.ByFamily(catalog.Tree)))

	want = want[:0]
	for _, a := range dp.Algorithms {
		want = append(want, string(a))
	}
	assert.Equal(t, want, ids(catalog.ByFamily(catalog.DP)))

	assert.Len(t, catalog.All(), 21)
}

func TestLookup(t *testing.T) {
	info, err := catalog.Lookup(catalog.Sorting, "quick")
	require.NoError(t, err)
	assert.Equal(t, "Quick Sort", info.Name)
	assert.Equal(t, "O(n log n)", info.Time)
	assert.Equal(t, "O(log n)", info.Space)

	info, err = catalog.Lookup(catalog.Graph, "dijkstra")
	require.NoError(t, err)
	assert.Equal(t, "O(V² or V log V)", info.Time)

	_, err = catalog.Lookup(catalog.Tree, "quick")
	assert.True(t, errors.Is(err, catalog.ErrNotFound))
}

func TestAllReturnsCopy(t *testing.T) {
	all := catalog.All()
	all[0].Name = "mutated"
	assert.Equal(t, "Bubble Sort", catalog.All()[0].Name)
}
