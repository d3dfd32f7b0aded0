// Package trace records stepper runs and replays them.
//
// A Recording is the full snapshot sequence of one run, tagged with a
// TypeID such as "run_01h455vb4pex5vsknk084sn02q". A Cursor scrubs a run in
// both directions without buffering it: stepping back rebuilds a fresh
// stepper and replays it to the previous position, relying on steppers being
// deterministic. Cache keeps recent recordings so replaying the same input
// does not rerun the algorithm.
package trace

import (
	"github.com/katalvlaran/algostep/stepper"
	"go.jetify.com/typeid"
)

// RunIDPrefix prefixes every recording ID.
const RunIDPrefix = "run"

// NewRunID returns a new TypeID for a recording.
func NewRunID() string {
	id, err := typeid.WithPrefix(RunIDPrefix)
	if err != nil {
		panic(err)
	}

	return id.String()
}

// Factory builds a fresh stepper over the same input each time it is called.
type Factory[S any] func() stepper.Stepper[S]

// Recording is the complete snapshot sequence of one run.
type Recording[S any] struct {
	ID        string `json:"id" yaml:"id"`
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Snapshots []S    `json:"snapshots" yaml:"snapshots"`
}

// Record drains s into a new Recording.
func Record[S any](algorithm string, s stepper.Stepper[S]) *Recording[S] {
	return &Recording[S]{
		ID:        NewRunID(),
		Algorithm: algorithm,
		Snapshots: stepper.Collect(s),
	}
}

// Len reports the number of snapshots.
func (r *Recording[S]) Len() int { return len(r.Snapshots) }

// Final returns the terminal snapshot, if any.
func (r *Recording[S]) Final() (S, bool) {
	if len(r.Snapshots) == 0 {
		var zero S
		return zero, false
	}

	return r.Snapshots[len(r.Snapshots)-1], true
}
