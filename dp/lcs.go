package dp

import (
	"fmt"

	"github.com/katalvlaran/algostep/stepper"
)

type lcsRun struct {
	a, b []rune
	t    grid

	i, j    int
	decided bool
	started bool
	done    bool
}

// LCS returns a stepper filling the longest-common-subsequence table of a
// and b, then reconstructing one subsequence.
//
// Each cell emits a comparing snapshot, then a match or no-match snapshot
// after the cell is stored. The backtrack from the bottom-right cell takes
// the diagonal on a character match, otherwise steps toward the larger of
// up and left, preferring up on a tie.
func LCS(a, b string) stepper.Stepper[TableSnapshot] {
	ra, rb := []rune(a), []rune(b)

	return &lcsRun{a: ra, b: rb, t: newGrid(len(ra)+1, len(rb)+1), i: 1, j: 1}
}

func (r *lcsRun) Advance() (TableSnapshot, bool) {
	if r.done {
		return TableSnapshot{}, false
	}
	m, n := len(r.a), len(r.b)
	if !r.started {
		r.started = true
		if n == 0 {
			r.i = m + 1
		}
		return r.t.snapshot(nil, fmt.Sprintf("LCS of %q and %q, table initialized", string(r.a), string(r.b))), true
	}

	if r.i > m {
		return r.finish(), true
	}

	i, j := r.i, r.j
	ca, cb := r.a[i-1], r.b[j-1]
	cur := &Cell{Row: i, Col: j}

	if !r.decided {
		r.decided = true
		return r.t.snapshot(cur, fmt.Sprintf("Comparing '%c' with '%c'", ca, cb)), true
	}
	r.decided = false
	if r.j++; r.j > n {
		r.j = 1
		r.i++
	}

	if ca == cb {
		r.t[i][j] = r.t[i-1][j-1] + 1
		return r.t.snapshot(cur,
			fmt.Sprintf("Match: '%c' = '%c', length %d + 1 = %d", ca, cb, r.t[i-1][j-1], r.t[i][j]),
			Cell{Row: i - 1, Col: j - 1}), true
	}

	up, left := r.t[i-1][j], r.t[i][j-1]
	r.t[i][j] = max(up, left)

	return r.t.snapshot(cur,
		fmt.Sprintf("No match, max(%d, %d) = %d", up, left, r.t[i][j]),
		Cell{Row: i - 1, Col: j}, Cell{Row: i, Col: j - 1}), true
}

func (r *lcsRun) finish() TableSnapshot {
	r.done = true
	m, n := len(r.a), len(r.b)

	out := make([]rune, 0, r.t[m][n])
	for i, j := m, n; i > 0 && j > 0; {
		switch {
		case r.a[i-1] == r.b[j-1]:
			out = append(out, r.a[i-1])
			i--
			j--
		case r.t[i-1][j] >= r.t[i][j-1]:
			i--
		default:
			j--
		}
	}
	for l, h := 0, len(out)-1; l < h; l, h = l+1, h-1 {
		out[l], out[h] = out[h], out[l]
	}

	length := r.t[m][n]
	snap := r.t.snapshot(&Cell{Row: m, Col: n}, fmt.Sprintf("LCS length: %d, LCS: %q", length, string(out)))
	snap.Result = intPtr(length)
	snap.Subsequence = string(out)

	return snap
}
