package dp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/dp"
	"github.com/katalvlaran/algostep/stepper"
)

func TestDTW_Scenario(t *testing.T) {
	snaps := stepper.Collect(dp.DTW([]int{1, 2, 3}, []int{1, 2, 2, 3}))
	require.Len(t, snaps, 1+3*4+1)

	first := snaps[0]
	assert.Equal(t, 0, first.Table[0][0])
	assert.Equal(t, dp.Infinity, first.Table[0][1])
	assert.Equal(t, dp.Infinity, first.Table[1][0])
	assert.Nil(t, first.Current)

	// D[1][2]: |1-2| + min(∞, 0, ∞)
	assert.Equal(t, "cost |1 - 2| = 1, min(up ∞, left 0, diagonal ∞) = 0, D[1][2] = 1", snaps[2].Message)
	assert.Len(t, snaps[2].Reads, 3)

	last := snaps[len(snaps)-1]
	require.NotNil(t, last.Result)
	assert.Equal(t, 0, *last.Result)
	assert.Equal(t, &dp.Cell{Row: 3, Col: 4}, last.Current)
	assert.Equal(t, []dp.Cell{{1, 1}, {2, 2}, {2, 3}, {3, 4}}, last.Path)
	assert.Equal(t, "DTW distance: 0, warping path: (1,1) → (2,2) → (2,3) → (3,4)", last.Message)
}

func TestDTW_Window(t *testing.T) {
	snaps := stepper.Collect(dp.DTW([]int{1, 2, 3, 4}, []int{1, 2, 3, 4}, dp.WithWindow(1)))
	banned := 0
	for _, s := range snaps {
		if s.Current != nil && s.Result == nil && len(s.Reads) == 0 {
			banned++
		}
	}
	assert.Equal(t, 6, banned, "cells with |i-j| > 1 in a 4×4 table")

	last := snaps[len(snaps)-1]
	require.NotNil(t, last.Result)
	assert.Equal(t, 0, *last.Result)
	assert.Equal(t, dp.Infinity, last.Table[1][3])

	unreachable, _ := stepper.Last(dp.DTW([]int{1}, []int{1, 1, 1}, dp.WithWindow(1)))
	assert.Nil(t, unreachable.Result)
	assert.Equal(t, "No warping path within window ±1", unreachable.Message)
}

func TestDTW_SlopePenalty(t *testing.T) {
	free, _ := stepper.Last(dp.DTW([]int{1, 1, 1}, []int{1}))
	require.NotNil(t, free.Result)
	assert.Equal(t, 0, *free.Result)

	charged, _ := stepper.Last(dp.DTW([]int{1, 1, 1}, []int{1}, dp.WithSlopePenalty(2)))
	require.NotNil(t, charged.Result)
	assert.Equal(t, 4, *charged.Result, "two vertical steps at 2 each")
	assert.Equal(t, []dp.Cell{{1, 1}, {2, 1}, {3, 1}}, charged.Path)
}

func TestDTW_CellsSettleOnce(t *testing.T) {
	inputs := [][2][]int{
		{{1, 2, 3}, {1, 2, 2, 3}},
		{{4, 0, 7, 7, 2}, {3, 9, 1}},
	}
	for _, in := range inputs {
		snaps := stepper.Collect(dp.DTW(in[0], in[1], dp.WithWindow(2)))
		stored := map[dp.Cell]int{{Row: 0, Col: 0}: 0}
		for i := range snaps[0].Table {
			for j := range snaps[0].Table[i] {
				if i == 0 || j == 0 {
					stored[dp.Cell{Row: i, Col: j}] = snaps[0].Table[i][j]
				}
			}
		}
		for k, s := range snaps {
			if k > 0 && s.Result == nil && s.Current != nil {
				c := *s.Current
				stored[c] = s.Table[c.Row][c.Col]
			}
			for i, row := range s.Table {
				for j, v := range row {
					if want, ok := stored[dp.Cell{Row: i, Col: j}]; ok {
						require.Equal(t, want, v, "%v: cell (%d, %d) changed at step %d", in, i, j, k)
					} else {
						require.Equal(t, dp.Infinity, v, "%v: unfilled cell (%d, %d) at step %d", in, i, j, k)
					}
				}
			}
		}
	}
}

func TestDTW_Empty(t *testing.T) {
	snaps := stepper.Collect(dp.DTW(nil, []int{1}))
	require.Len(t, snaps, 1)
	assert.Nil(t, snaps[0].Result)
}

// dtwRef is the textbook full-matrix recurrence without a band.
func dtwRef(a, b []int) int {
	inf := dp.Infinity
	d := make([][]int, len(a)+1)
	for i := range d {
		d[i] = make([]int, len(b)+1)
		for j := range d[i] {
			d[i][j] = inf
		}
	}
	d[0][0] = 0
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			best := min(d[i-1][j], d[i][j-1], d[i-1][j-1])
			cost := a[i-1] - b[j-1]
			if cost < 0 {
				cost = -cost
			}
			d[i][j] = best + cost
		}
	}

	return d[len(a)][len(b)]
}

func TestDTW_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 50; trial++ {
		a := make([]int, 1+rng.Intn(6))
		b := make([]int, 1+rng.Intn(6))
		for i := range a {
			a[i] = rng.Intn(10)
		}
		for i := range b {
			b[i] = rng.Intn(10)
		}
		last, _ := stepper.Last(dp.DTW(a, b))
		require.NotNil(t, last.Result)
		require.Equal(t, dtwRef(a, b), *last.Result, "a=%v b=%v", a, b)

		// the path is monotone and starts and ends at the corners
		require.Equal(t, dp.Cell{Row: 1, Col: 1}, last.Path[0])
		require.Equal(t, dp.Cell{Row: len(a), Col: len(b)}, last.Path[len(last.Path)-1])
		for k := 1; k < len(last.Path); k++ {
			di := last.Path[k].Row - last.Path[k-1].Row
			dj := last.Path[k].Col - last.Path[k-1].Col
			require.True(t, di >= 0 && dj >= 0 && di+dj >= 1 && di <= 1 && dj <= 1)
		}
	}
}

func TestDTW_Dispatch(t *testing.T) {
	s, err := dp.New(dp.DTWTable, dp.Params{SeqA: []int{1, 5}, SeqB: []int{1, 5}})
	require.NoError(t, err)
	last, _ := stepper.Last(s)
	require.NotNil(t, last.Result)
	assert.Equal(t, 0, *last.Result)
}
