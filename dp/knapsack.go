package dp

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/algostep/stepper"
)

type knapsackRun struct {
	weights, values []int
	capacity        int
	t               grid

	i, w    int  // next cell
	decided bool // inspect snapshot for (i, w) was emitted
	started bool
	done    bool
}

// Knapsack returns a stepper filling the 0/1 knapsack table bottom-up.
//
// Row i covers the first i items and column w a capacity of w. Every cell
// gets an inspect snapshot. When item i fits, an include-versus-exclude
// snapshot showing both candidates precedes storing the larger; otherwise
// the value above is carried forward and then reported. The terminal snapshot
// points at the bottom-right cell, which holds the optimum.
//
// weights and values must have equal length; inputs are copied.
func Knapsack(weights, values []int, capacity int) stepper.Stepper[TableSnapshot] {
	return &knapsackRun{
		weights:  slices.Clone(weights),
		values:   slices.Clone(values),
		capacity: capacity,
		t:        newGrid(len(weights)+1, capacity+1),
		i:        1,
	}
}

func (r *knapsackRun) Advance() (TableSnapshot, bool) {
	if r.done {
		return TableSnapshot{}, false
	}
	n := len(r.weights)
	if !r.started {
		r.started = true
		return r.t.snapshot(nil, fmt.Sprintf("Knapsack: %d items, capacity %d, table initialized to zeros", n, r.capacity)), true
	}

	if r.i > n {
		r.done = true
		best := r.t[n][r.capacity]
		snap := r.t.snapshot(&Cell{Row: n, Col: r.capacity}, fmt.Sprintf("Maximum value achievable: %d", best))
		snap.Result = intPtr(best)

		return snap, true
	}

	i, w := r.i, r.w
	wt, val := r.weights[i-1], r.values[i-1]
	cur := &Cell{Row: i, Col: w}

	if !r.decided {
		r.decided = true
		return r.t.snapshot(cur, fmt.Sprintf("Checking item %d (weight %d, value %d) with capacity %d", i, wt, val, w)), true
	}
	r.decided = false
	if r.w++; r.w > r.capacity {
		r.w = 0
		r.i++
	}

	if wt <= w {
		include := val + r.t[i-1][w-wt]
		exclude := r.t[i-1][w]
		snap := r.t.snapshot(cur,
			fmt.Sprintf("Include: %d + dp[%d][%d] = %d, exclude: %d", val, i-1, w-wt, include, exclude),
			Cell{Row: i - 1, Col: w}, Cell{Row: i - 1, Col: w - wt})
		r.t[i][w] = max(include, exclude)

		return snap, true
	}

	r.t[i][w] = r.t[i-1][w]

	return r.t.snapshot(cur,
		fmt.Sprintf("Item %d too heavy (%d > %d), carrying forward %d", i, wt, w, r.t[i][w]),
		Cell{Row: i - 1, Col: w}), true
}
