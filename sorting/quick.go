package sorting

import "github.com/katalvlaran/algostep/stepper"

// quickPhase is the program counter of one pending quickSort(low, high) call.
type quickPhase int

const (
	quickEnter quickPhase = iota // range not yet examined
	quickScan                    // comparing i against the pivot at high
	quickSwap                    // i must be swapped into the store slot
	quickPlace                   // pivot goes to its final slot
)

// quickFrame holds the locals of one recursive call.
type quickFrame struct {
	low, high int
	i, store  int
	phase     quickPhase
}

type quickRun struct {
	board
	frames stepper.Frames[quickFrame]
}

// Quick returns a quick sort stepper over a copy of values, using Lomuto
// partitioning with the last element of each range as the pivot.
func Quick(values []int) stepper.Stepper[Snapshot] {
	r := &quickRun{board: newBoard(values)}
	r.frames.Push(quickFrame{low: 0, high: len(values) - 1})

	return r
}

func (r *quickRun) Advance() (Snapshot, bool) {
	if r.done {
		return Snapshot{}, false
	}

	for !r.frames.Empty() {
		f := r.frames.Top()
		switch f.phase {
		case quickEnter:
			if f.low < f.high {
				f.phase = quickScan
				f.i, f.store = f.low, f.low
				return r.snapshot(nil, nil, f.high), true
			}
			if f.low == f.high {
				r.mark(f.low) // single-element range is trivially placed
			}
			r.frames.Pop()

		case quickScan:
			if f.i >= f.high {
				f.phase = quickPlace
				continue
			}
			snap := r.snapshot([]int{f.i, f.high}, nil, f.high)
			switch {
			case r.array[f.i] >= r.array[f.high]:
				f.i++
			case f.i != f.store:
				f.phase = quickSwap
			default:
				f.store++
				f.i++
			}
			return snap, true

		case quickSwap:
			snap := r.snapshot(nil, []int{f.i, f.store}, f.high)
			r.swap(f.i, f.store)
			f.store++
			f.i++
			f.phase = quickScan
			return snap, true

		case quickPlace:
			snap := r.snapshot(nil, []int{f.store, f.high}, f.high)
			r.swap(f.store, f.high)
			r.mark(f.store)

			// Replace this call by its two sub-calls; left runs first.
			done := r.frames.Pop()
			r.frames.Push(quickFrame{low: done.store + 1, high: done.high})
			r.frames.Push(quickFrame{low: done.low, high: done.store - 1})
			return snap, true
		}
	}

	return r.finish()
}
