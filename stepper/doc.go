// Package stepper defines the pull-based protocol shared by every
// algorithm family in algostep.
//
// What
//
//   - A Stepper is bound to exactly one algorithm run. Each call to Advance
//     performs one indivisible unit of work (one comparison, one swap, one
//     node visit, one table cell) and returns an immutable Snapshot of the
//     algorithm's state at that instant.
//   - Once Advance reports false the run is over; the sequence is finite and
//     cannot be rewound. Replaying means constructing a fresh Stepper over the
//     same input, which is always safe because steppers never touch
//     caller-owned data.
//
// Suspension
//
//	Recursive algorithms (quick sort, merge sort, tree traversals, memoized
//	Fibonacci) pause mid-recursion. They keep every pending call as a frame
//	on an explicit work stack (see Frames) holding the call's locals and a
//	phase tag; Advance runs the top frame until the next emission point.
//
// Concurrency
//
//	Nothing runs until Advance is called: no goroutines, no timers, no locks.
//	A Stepper is not safe for concurrent use and is meant to be driven by a
//	single controller. Two steppers never share mutable state.
//
// Determinism
//
//	Given identical input, two runs produce identical snapshot sequences.
//
// Usage
//
//	s := sorting.Bubble([]int{5, 3, 8, 1, 9})
//	for snap := range stepper.All(s) {
//	    fmt.Println(snap.Array)
//	}
package stepper
