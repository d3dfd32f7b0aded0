package dp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algostep/stepper"
)

// Sentinel errors for dispatch.
var (
	// ErrUnknownAlgorithm is returned by New for an unrecognized algorithm id.
	ErrUnknownAlgorithm = errors.New("dp: unknown algorithm")

	// ErrNotTabular is returned by New for Fibonacci, whose snapshots are
	// not tables. Use the Fibonacci constructor instead.
	ErrNotTabular = errors.New("dp: algorithm does not produce a table")
)

// Algorithm identifies a dynamic-programming problem.
type Algorithm string

// Supported algorithm ids.
const (
	FibonacciMemo Algorithm = "fibonacci"
	KnapsackTable Algorithm = "knapsack"
	LCSTable      Algorithm = "lcs"
	DTWTable      Algorithm = "dtw"
)

// Algorithms lists every supported id.
var Algorithms = []Algorithm{FibonacciMemo, KnapsackTable, LCSTable, DTWTable}

// Cell addresses one table entry.
type Cell struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// TableSnapshot is the state of a tabulation at one instrumentation point.
//
// Knapsack and LCS tables start at zero and a cell never decreases from one
// snapshot to the next. DTW is a minimization: unfilled cells hold Infinity
// and drop exactly once, when they are stored, after which they never change.
type TableSnapshot struct {
	// Table is a full copy of the DP table.
	Table [][]int `json:"table" yaml:"table"`

	// Current is the cell being filled, or the answer cell at the end.
	Current *Cell `json:"current,omitempty" yaml:"current,omitempty"`

	// Reads lists the cells the current decision depends on.
	Reads []Cell `json:"reads" yaml:"reads"`

	Message string `json:"message" yaml:"message"`

	// Result is set only on the terminal snapshot.
	Result *int `json:"result,omitempty" yaml:"result,omitempty"`

	// Subsequence is the reconstructed LCS on the terminal LCS snapshot.
	Subsequence string `json:"subsequence,omitempty" yaml:"subsequence,omitempty"`

	// Path is the DTW warping path on the terminal DTW snapshot.
	Path []Cell `json:"path,omitempty" yaml:"path,omitempty"`
}

// FibSnapshot is the state of memoized Fibonacci at one call boundary.
type FibSnapshot struct {
	// Memo holds every value computed so far.
	Memo map[int]int `json:"memo" yaml:"memo"`

	// Current is the argument of the call being reported.
	Current int `json:"current" yaml:"current"`

	// Pending lists the subproblems a "computing" step is about to solve.
	Pending []int `json:"pending" yaml:"pending"`

	// CallStack lists active call arguments, outermost first.
	CallStack []int `json:"call_stack" yaml:"call_stack"`

	Message string `json:"message" yaml:"message"`

	// Result is set only on the terminal snapshot.
	Result *int `json:"result,omitempty" yaml:"result,omitempty"`
}

// Params carries the inputs of the tabular problems.
type Params struct {
	Weights  []int
	Values   []int
	Capacity int

	A, B string

	SeqA, SeqB   []int
	Window       int
	SlopePenalty int
}

// New returns a table stepper for knapsack, LCS or DTW.
func New(algo Algorithm, p Params) (stepper.Stepper[TableSnapshot], error) {
	switch algo {
	case KnapsackTable:
		return Knapsack(p.Weights, p.Values, p.Capacity), nil
	case LCSTable:
		return LCS(p.A, p.B), nil
	case DTWTable:
		return DTW(p.SeqA, p.SeqB, WithWindow(p.Window), WithSlopePenalty(p.SlopePenalty)), nil
	case FibonacciMemo:
		return nil, fmt.Errorf("%w: %q", ErrNotTabular, algo)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}

// grid is a DP table with snapshot helpers.
type grid [][]int

func newGrid(rows, cols int) grid {
	g := make(grid, rows)
	for i := range g {
		g[i] = make([]int, cols)
	}

	return g
}

func (g grid) snapshot(cur *Cell, msg string, reads ...Cell) TableSnapshot {
	table := make([][]int, len(g))
	for i, row := range g {
		table[i] = append([]int{}, row...)
	}

	return TableSnapshot{
		Table:   table,
		Current: cur,
		Reads:   append([]Cell{}, reads...),
		Message: msg,
	}
}

func intPtr(v int) *int { return &v }
