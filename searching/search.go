package searching

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/algostep/stepper"
)

// NoIndex means no index is under inspection.
const NoIndex = -1

// ErrUnknownAlgorithm is returned by New for an unrecognized algorithm id.
var ErrUnknownAlgorithm = errors.New("searching: unknown algorithm")

// Algorithm identifies a search strategy.
type Algorithm string

// Supported algorithm ids.
const (
	LinearSearch Algorithm = "linear"
	BinarySearch Algorithm = "binary"
)

// Algorithms lists every supported id.
var Algorithms = []Algorithm{LinearSearch, BinarySearch}

// Snapshot is the state of a search at one probe.
type Snapshot struct {
	// Array is the array being searched (sorted for binary search).
	Array []int `json:"array" yaml:"array"`

	// Current is the index under inspection, NoIndex on a terminal miss.
	Current int `json:"current" yaml:"current"`

	// Lo and Hi bound the active window. Meaningful only when Bounded.
	Lo      int  `json:"lo" yaml:"lo"`
	Hi      int  `json:"hi" yaml:"hi"`
	Bounded bool `json:"bounded" yaml:"bounded"`

	// Checked lists indices whose equality test has completed.
	Checked []int `json:"checked" yaml:"checked"`

	// Found is true only on the terminal hit snapshot.
	Found bool `json:"found" yaml:"found"`
}

// New returns a stepper searching values for target with algo.
func New(algo Algorithm, values []int, target int) (stepper.Stepper[Snapshot], error) {
	switch algo {
	case LinearSearch:
		return Linear(values, target), nil
	case BinarySearch:
		return Binary(values, target), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}

// probe is the state shared by both searches.
type probe struct {
	array   []int
	target  int
	checked []int
	testing bool // the inspect snapshot for current was emitted
	done    bool
}

func (p *probe) snapshot(current int, found bool) Snapshot {
	return Snapshot{
		Array:   slices.Clone(p.array),
		Current: current,
		Checked: append([]int{}, p.checked...),
		Found:   found,
	}
}

type linearRun struct {
	probe
	i int
}

// Linear returns a stepper scanning a copy of values left to right.
func Linear(values []int, target int) stepper.Stepper[Snapshot] {
	return &linearRun{probe: probe{array: slices.Clone(values), target: target}}
}

func (r *linearRun) Advance() (Snapshot, bool) {
	if r.done {
		return Snapshot{}, false
	}

	if r.testing {
		r.testing = false
		r.checked = append(r.checked, r.i)
		if r.array[r.i] == r.target {
			r.done = true
			return r.snapshot(r.i, true), true
		}
		r.i++
	}

	if r.i < len(r.array) {
		r.testing = true
		return r.snapshot(r.i, false), true
	}

	r.done = true
	return r.snapshot(NoIndex, false), true
}

type binaryRun struct {
	probe
	lo, hi, mid int
}

// Binary returns a stepper that sorts a private copy of values ascending and
// binary-searches it.
func Binary(values []int, target int) stepper.Stepper[Snapshot] {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	return &binaryRun{
		probe: probe{array: sorted, target: target},
		lo:    0,
		hi:    len(sorted) - 1,
	}
}

func (r *binaryRun) Advance() (Snapshot, bool) {
	if r.done {
		return Snapshot{}, false
	}

	if r.testing {
		r.testing = false
		r.checked = append(r.checked, r.mid)
		v := r.array[r.mid]
		switch {
		case v == r.target:
			r.done = true
			return r.window(r.mid, true), true
		case v < r.target:
			r.lo = r.mid + 1
		default:
			r.hi = r.mid - 1
		}
	}

	if r.lo <= r.hi {
		r.mid = (r.lo + r.hi) / 2
		r.testing = true
		return r.window(r.mid, false), true
	}

	r.done = true
	return r.window(NoIndex, false), true
}

func (r *binaryRun) window(current int, found bool) Snapshot {
	snap := r.snapshot(current, found)
	snap.Lo, snap.Hi, snap.Bounded = r.lo, r.hi, true

	return snap
}
