package tree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/tree"
)

func TestSampleShape(t *testing.T) {
	root := tree.Sample()
	assert.Equal(t, 4, tree.Depth(root))
	assert.Equal(t, 0, tree.Depth(nil))

	nodes := tree.Nodes(root)
	require.Len(t, nodes, 10)
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	assert.Equal(t, []string{"1", "2", "4", "8", "9", "5", "3", "6", "7", "10"}, ids)

	edges := tree.Edges(root)
	require.Len(t, edges, 9)
	assert.Equal(t, tree.Link{From: "1", To: "2"}, edges[0].Link)
	assert.Equal(t, 50, edges[0].FromValue)
	assert.Equal(t, 30, edges[0].ToValue)
	assert.Equal(t, tree.Link{From: "7", To: "10"}, edges[8].Link)
}

func TestClone_IsDeep(t *testing.T) {
	root := tree.Sample()
	cp := tree.Clone(root)
	cp.Left.Left.Value = -1
	assert.Equal(t, 20, root.Left.Left.Value)
	assert.Nil(t, tree.Clone(nil))
}

func TestLayout(t *testing.T) {
	pos, err := tree.Layout(tree.Sample(), 800, 500)
	require.NoError(t, err)
	require.Len(t, pos, 10)

	assert.Equal(t, tree.Point{X: 400, Y: 40}, pos["1"])
	assert.Equal(t, tree.Point{X: 150, Y: 140}, pos["2"])
	assert.Equal(t, tree.Point{X: 650, Y: 140}, pos["3"])
	assert.Equal(t, tree.Point{X: 56.25, Y: 240}, pos["4"])
	assert.Equal(t, tree.Point{X: 243.75, Y: 240}, pos["5"])

	// children sit below their parent
	for _, e := range tree.Edges(tree.Sample()) {
		p, c := pos[e.From], pos[e.To]
		assert.Greater(t, c.Y, p.Y)
	}
}

func TestLayout_Options(t *testing.T) {
	pos, err := tree.Layout(tree.Sample(), 800, 400, tree.WithLevels(4), tree.WithTopMargin(0))
	require.NoError(t, err)
	assert.Equal(t, tree.Point{X: 400, Y: 0}, pos["1"])
	assert.InDelta(t, 300, pos["10"].Y, 1e-9)

	_, err = tree.Layout(nil, 100, 100, tree.WithLevels(0))
	assert.True(t, errors.Is(err, tree.ErrBadLayoutOption))
	_, err = tree.Layout(nil, 100, 100, tree.WithTopMargin(-1))
	assert.True(t, errors.Is(err, tree.ErrBadLayoutOption))

	empty, err := tree.Layout(nil, 100, 100)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
