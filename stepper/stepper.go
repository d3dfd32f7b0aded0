package stepper

import "iter"

// Stepper produces the snapshots of a single algorithm run, one per call.
//
// Advance returns the next snapshot and true, or the zero snapshot and false
// once the run has emitted its terminal snapshot. After the first false every
// further call keeps returning false.
type Stepper[S any] interface {
	Advance() (S, bool)
}

// Func adapts an ordinary function to the Stepper interface.
type Func[S any] func() (S, bool)

// Advance calls f.
func (f Func[S]) Advance() (S, bool) { return f() }

// Collect drains s and returns every remaining snapshot in emission order.
// Complexity: O(k) for k remaining snapshots.
func Collect[S any](s Stepper[S]) []S {
	var out []S
	for {
		snap, ok := s.Advance()
		if !ok {
			return out
		}
		out = append(out, snap)
	}
}

// All returns a single-use iterator over the remaining snapshots of s.
// Breaking out of the loop leaves s paused at the next snapshot.
func All[S any](s Stepper[S]) iter.Seq[S] {
	return func(yield func(S) bool) {
		for {
			snap, ok := s.Advance()
			if !ok || !yield(snap) {
				return
			}
		}
	}
}

// Last drains s and returns its terminal snapshot.
// ok is false when s had nothing left to emit.
func Last[S any](s Stepper[S]) (last S, ok bool) {
	for {
		snap, more := s.Advance()
		if !more {
			return last, ok
		}
		last, ok = snap, true
	}
}

// Count drains s and reports how many snapshots it emitted.
func Count[S any](s Stepper[S]) int {
	n := 0
	for _, ok := s.Advance(); ok; _, ok = s.Advance() {
		n++
	}

	return n
}
