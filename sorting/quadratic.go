package sorting

import "github.com/katalvlaran/algostep/stepper"

// bubbleRun walks pass i over the unsorted prefix, comparing j and j+1.
type bubbleRun struct {
	board
	i, j     int
	swapNext bool // the last comparison found an inversion at j
}

// Bubble returns a bubble sort stepper over a copy of values.
// Each pass bubbles the largest remaining value into the sorted suffix.
func Bubble(values []int) stepper.Stepper[Snapshot] {
	return &bubbleRun{board: newBoard(values)}
}

func (r *bubbleRun) Advance() (Snapshot, bool) {
	if r.done {
		return Snapshot{}, false
	}
	n := len(r.array)

	if r.swapNext {
		snap := r.swapping(r.j, r.j+1)
		r.swap(r.j, r.j+1)
		r.swapNext = false
		r.j++
		return snap, true
	}

	for r.i < n-1 {
		if r.j < n-r.i-1 {
			snap := r.compare(r.j, r.j+1)
			if r.array[r.j] > r.array[r.j+1] {
				r.swapNext = true
			} else {
				r.j++
			}
			return snap, true
		}
		// pass complete: one more index settled at the end
		r.mark(n - 1 - r.i)
		r.i++
		r.j = 0
	}

	return r.finish()
}

// selectionRun scans [i+1, n) for the minimum, tracked in min.
type selectionRun struct {
	board
	i, j, min int
}

// Selection returns a selection sort stepper over a copy of values.
// Each pass selects the minimum of the unsorted suffix and swaps it into i.
func Selection(values []int) stepper.Stepper[Snapshot] {
	return &selectionRun{board: newBoard(values), j: 1}
}

func (r *selectionRun) Advance() (Snapshot, bool) {
	if r.done {
		return Snapshot{}, false
	}
	n := len(r.array)

	for r.i < n-1 {
		if r.j < n {
			snap := r.compare(r.min, r.j)
			if r.array[r.j] < r.array[r.min] {
				r.min = r.j
			}
			r.j++
			return snap, true
		}

		// Scan complete: place the minimum at i and move on.
		i, m := r.i, r.min
		r.i++
		r.j = r.i + 1
		r.min = r.i
		if m != i {
			snap := r.swapping(i, m)
			r.swap(i, m)
			r.mark(i)
			return snap, true
		}
		r.mark(i)
	}

	return r.finish()
}

// insertionRun sinks element i leftwards; j is its current position.
type insertionRun struct {
	board
	i, j     int
	swapNext bool
}

// Insertion returns an insertion sort stepper over a copy of values.
// Index 0 starts out sorted; each pass extends the sorted prefix by one.
func Insertion(values []int) stepper.Stepper[Snapshot] {
	r := &insertionRun{board: newBoard(values), i: 1, j: 1}
	r.mark(0)

	return r
}

func (r *insertionRun) Advance() (Snapshot, bool) {
	if r.done {
		return Snapshot{}, false
	}
	n := len(r.array)

	if r.swapNext {
		snap := r.swapping(r.j-1, r.j)
		r.swap(r.j-1, r.j)
		r.swapNext = false
		r.j--
		return snap, true
	}

	for r.i < n {
		if r.j > 0 {
			snap := r.compare(r.j-1, r.j)
			if r.array[r.j-1] > r.array[r.j] {
				r.swapNext = true
			} else {
				r.settle()
			}
			return snap, true
		}
		r.settle()
	}

	return r.finish()
}

// settle closes pass i: the prefix [0, i] is now ordered.
func (r *insertionRun) settle() {
	r.mark(r.i)
	r.i++
	r.j = r.i
}
