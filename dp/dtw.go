package dp

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/katalvlaran/algostep/stepper"
)

// Infinity marks a DTW cell no warping path reaches.
const Infinity = math.MaxInt

// DTWOptions configures dynamic time warping.
type DTWOptions struct {
	// Window is the Sakoe–Chiba band: cells with |i-j| > Window stay at
	// Infinity. 0 or less means no band.
	Window int

	// SlopePenalty is added to every insertion or deletion step. Negative
	// values count as 0.
	SlopePenalty int
}

// DefaultDTWOptions returns an unbanded, unpenalized configuration.
func DefaultDTWOptions() DTWOptions { return DTWOptions{} }

// DTWOption mutates DTWOptions.
type DTWOption func(o *DTWOptions)

// WithWindow sets the Sakoe–Chiba band width.
func WithWindow(w int) DTWOption { return func(o *DTWOptions) { o.Window = w } }

// WithSlopePenalty sets the insertion and deletion penalty.
func WithSlopePenalty(p int) DTWOption {
	return func(o *DTWOptions) { o.SlopePenalty = max(p, 0) }
}

type dtwRun struct {
	a, b []int
	opts DTWOptions
	t    grid

	i, j    int
	started bool
	done    bool
}

// DTW returns a stepper filling the dynamic time warping table of a and b.
//
// D[0][0] is 0 and the rest of row 0 and column 0 is Infinity. Cell (i, j)
// holds |a[i-1] - b[j-1]| plus the cheapest of its upper, left and diagonal
// neighbors, the first two charged SlopePenalty. Every cell emits one
// snapshot after it is stored. The terminal snapshot carries the distance
// and the warping path from (1, 1) to (n, m); on backtrack ties the diagonal
// wins, then up, then left.
func DTW(a, b []int, opts ...DTWOption) stepper.Stepper[TableSnapshot] {
	o := DefaultDTWOptions()
	for _, opt := range opts {
		opt(&o)
	}
	t := newGrid(len(a)+1, len(b)+1)
	for i := range t {
		for j := range t[i] {
			if i > 0 || j > 0 {
				t[i][j] = Infinity
			}
		}
	}

	return &dtwRun{a: slices.Clone(a), b: slices.Clone(b), opts: o, t: t, i: 1, j: 1}
}

func (r *dtwRun) Advance() (TableSnapshot, bool) {
	if r.done {
		return TableSnapshot{}, false
	}
	n, m := len(r.a), len(r.b)
	if !r.started {
		r.started = true
		if n == 0 || m == 0 {
			r.done = true
			return r.t.snapshot(nil, "DTW needs two non-empty sequences"), true
		}
		return r.t.snapshot(nil, fmt.Sprintf("DTW of %v and %v, D[0][0] = 0, borders ∞", r.a, r.b)), true
	}

	if r.i > n {
		return r.finish(), true
	}

	i, j := r.i, r.j
	if r.j++; r.j > m {
		r.j = 1
		r.i++
	}
	cur := &Cell{Row: i, Col: j}

	if w := r.opts.Window; w > 0 && abs(i-j) > w {
		return r.t.snapshot(cur, fmt.Sprintf("Cell (%d, %d) outside window ±%d, left at ∞", i, j, w)), true
	}

	cost := abs(r.a[i-1] - r.b[j-1])
	up := saturate(r.t[i-1][j], r.opts.SlopePenalty)
	left := saturate(r.t[i][j-1], r.opts.SlopePenalty)
	diag := r.t[i-1][j-1]
	best := min(up, left, diag)
	r.t[i][j] = saturate(best, cost)

	return r.t.snapshot(cur,
		fmt.Sprintf("cost |%d - %d| = %d, min(up %s, left %s, diagonal %s) = %s, D[%d][%d] = %s",
			r.a[i-1], r.b[j-1], cost, cell(up), cell(left), cell(diag), cell(best), i, j, cell(r.t[i][j])),
		Cell{Row: i - 1, Col: j}, Cell{Row: i, Col: j - 1}, Cell{Row: i - 1, Col: j - 1}), true
}

func (r *dtwRun) finish() TableSnapshot {
	r.done = true
	n, m := len(r.a), len(r.b)
	end := &Cell{Row: n, Col: m}
	dist := r.t[n][m]
	if dist == Infinity {
		return r.t.snapshot(end, fmt.Sprintf("No warping path within window ±%d", r.opts.Window))
	}

	path := []Cell{{Row: n, Col: m}}
	for i, j := n, m; i > 1 || j > 1; {
		diag := r.t[i-1][j-1]
		up := saturate(r.t[i-1][j], r.opts.SlopePenalty)
		left := saturate(r.t[i][j-1], r.opts.SlopePenalty)
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
		path = append(path, Cell{Row: i, Col: j})
	}
	slices.Reverse(path)

	steps := make([]string, len(path))
	for k, c := range path {
		steps[k] = fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	snap := r.t.snapshot(end, fmt.Sprintf("DTW distance: %d, warping path: %s", dist, strings.Join(steps, " → ")))
	snap.Result = intPtr(dist)
	snap.Path = path

	return snap
}

// saturate adds d to v, keeping Infinity absorbing.
func saturate(v, d int) int {
	if v == Infinity {
		return Infinity
	}

	return v + d
}

func cell(v int) string {
	if v == Infinity {
		return "∞"
	}

	return fmt.Sprint(v)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
