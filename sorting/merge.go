package sorting

import (
	"slices"

	"github.com/katalvlaran/algostep/stepper"
)

type mergePhase int

const (
	mergeSplit mergePhase = iota // children not yet scheduled
	mergeJoin                    // both halves sorted; start merging
	mergeStep                    // one comparison per step
)

// mergeFrame holds the locals of one mergeSort(start, end) call.
type mergeFrame struct {
	start, end, mid int
	left, right     []int // copies of the two sorted halves
	i, j, k         int
	phase           mergePhase
}

type mergeRun struct {
	board
	frames stepper.Frames[mergeFrame]
}

// Merge returns a top-down merge sort stepper over a copy of values.
// On equal keys the left element is taken first, so the sort is stable.
func Merge(values []int) stepper.Stepper[Snapshot] {
	r := &mergeRun{board: newBoard(values)}
	r.frames.Push(mergeFrame{start: 0, end: len(values) - 1})

	return r
}

func (r *mergeRun) Advance() (Snapshot, bool) {
	if r.done {
		return Snapshot{}, false
	}

	for !r.frames.Empty() {
		f := r.frames.Top()
		switch f.phase {
		case mergeSplit:
			if f.start >= f.end {
				r.frames.Pop()
				continue
			}
			f.mid = (f.start + f.end) / 2
			f.phase = mergeJoin
			start, mid, end := f.start, f.mid, f.end
			// f is invalid after Push.
			r.frames.Push(mergeFrame{start: mid + 1, end: end})
			r.frames.Push(mergeFrame{start: start, end: mid})

		case mergeJoin:
			f.left = slices.Clone(r.array[f.start : f.mid+1])
			f.right = slices.Clone(r.array[f.mid+1 : f.end+1])
			f.i, f.j, f.k = 0, 0, f.start
			f.phase = mergeStep

		case mergeStep:
			if f.i < len(f.left) && f.j < len(f.right) {
				snap := r.compare(f.start+f.i, f.mid+1+f.j)
				if f.left[f.i] <= f.right[f.j] {
					r.array[f.k] = f.left[f.i]
					f.i++
				} else {
					r.array[f.k] = f.right[f.j]
					f.j++
				}
				f.k++
				return snap, true
			}

			// One half is exhausted: copy the rest without comparisons.
			f.k += copy(r.array[f.k:], f.left[f.i:])
			copy(r.array[f.k:], f.right[f.j:])
			r.frames.Pop()
			return r.snapshot(nil, nil, NoIndex), true
		}
	}

	return r.finish()
}
