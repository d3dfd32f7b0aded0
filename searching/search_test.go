package searching_test

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/searching"
	"github.com/katalvlaran/algostep/stepper"
)

func TestNew_UnknownAlgorithm(t *testing.T) {
	_, err := searching.New("jump", nil, 1)
	require.True(t, errors.Is(err, searching.ErrUnknownAlgorithm))
}

func TestLinear_StopsAtFirstMatch(t *testing.T) {
	snaps := stepper.Collect(searching.Linear([]int{4, 7, 7, 1}, 7))
	// inspect 0, inspect 1, found 1
	require.Len(t, snaps, 3)

	assert.Equal(t, 0, snaps[0].Current)
	assert.Empty(t, snaps[0].Checked)
	assert.Equal(t, []int{0}, snaps[1].Checked, "checked excludes the index under inspection")

	last := snaps[2]
	assert.True(t, last.Found)
	assert.Equal(t, 1, last.Current)
	assert.Equal(t, []int{0, 1}, last.Checked)
	assert.False(t, last.Bounded)
}

func TestLinear_NotFound(t *testing.T) {
	snaps := stepper.Collect(searching.Linear([]int{1, 2, 3}, 9))
	require.Len(t, snaps, 4)
	last := snaps[3]
	assert.False(t, last.Found)
	assert.Equal(t, searching.NoIndex, last.Current)
	assert.Equal(t, []int{0, 1, 2}, last.Checked)
}

func TestBinary_SearchesSortedCopy(t *testing.T) {
	input := []int{9, 2, 7, 4, 1}
	snaps := stepper.Collect(searching.Binary(input, 7))
	assert.Equal(t, []int{9, 2, 7, 4, 1}, input, "caller input untouched")

	for _, s := range snaps {
		assert.Equal(t, []int{1, 2, 4, 7, 9}, s.Array)
		assert.True(t, s.Bounded)
	}
	// probe mid=2 (4), then lo=3 hi=4 mid=3 (7) -> found
	require.Len(t, snaps, 3)
	assert.Equal(t, 2, snaps[0].Current)
	assert.Equal(t, 0, snaps[0].Lo)
	assert.Equal(t, 4, snaps[0].Hi)
	assert.Equal(t, 3, snaps[1].Current)
	assert.Equal(t, 3, snaps[1].Lo)
	assert.Equal(t, []int{2}, snaps[1].Checked)
	assert.True(t, snaps[2].Found)
	assert.Equal(t, 3, snaps[2].Current)
	assert.Equal(t, []int{2, 3}, snaps[2].Checked)
}

func TestBinary_MissEndsWithEmptyWindow(t *testing.T) {
	snaps := stepper.Collect(searching.Binary([]int{10, 20, 30}, 25))
	last := snaps[len(snaps)-1]
	assert.False(t, last.Found)
	assert.Equal(t, searching.NoIndex, last.Current)
	assert.Greater(t, last.Lo, last.Hi)
}

func TestEmptyArray(t *testing.T) {
	for _, algo := range searching.Algorithms {
		s, err := searching.New(algo, nil, 3)
		require.NoError(t, err)
		snaps := stepper.Collect(s)
		require.Len(t, snaps, 1, algo)
		assert.Equal(t, searching.NoIndex, snaps[0].Current)
	}
}

// TestProperties cross-checks both searches against direct scans.
func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for iter := 0; iter < 200; iter++ {
		values := make([]int, rng.Intn(21))
		for i := range values {
			values[i] = rng.Intn(20) + 1
		}
		target := rng.Intn(22)

		// linear: found at i iff i is the first index holding target
		lin, _ := stepper.Last(searching.Linear(values, target))
		first := slices.Index(values, target)
		if first >= 0 {
			require.True(t, lin.Found)
			require.Equal(t, first, lin.Current)
		} else {
			require.False(t, lin.Found)
			require.Equal(t, searching.NoIndex, lin.Current)
		}

		// binary: window never grows, hit satisfies sorted[index] == target
		snaps := stepper.Collect(searching.Binary(values, target))
		width := len(values)
		for _, s := range snaps[:len(snaps)-1] {
			w := s.Hi - s.Lo + 1
			require.LessOrEqual(t, w, width)
			width = w
		}
		last := snaps[len(snaps)-1]
		sorted := slices.Clone(values)
		slices.Sort(sorted)
		if last.Found {
			require.Equal(t, target, sorted[last.Current])
		} else {
			require.NotContains(t, sorted, target)
		}
	}
}
