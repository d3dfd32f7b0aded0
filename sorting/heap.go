package sorting

import "github.com/katalvlaran/algostep/stepper"

type heapPhase int

const (
	heapBuild   heapPhase = iota // heapify roots n/2-1 .. 0
	heapExtract                  // move the max behind the heap
	heapFinal
)

// siftStep is the position inside one heapify(size, root) call.
type siftStep int

const (
	siftIdle  siftStep = iota // no heapify in progress
	siftLeft                  // compare largest with the left child
	siftRight                 // compare largest with the right child
	siftSwap                  // swap root with largest, descend
)

// sift holds the locals of the active heapify call. heapify recurses only in
// tail position, so descending replaces the frame instead of stacking it.
type sift struct {
	size, root, largest int
	step                siftStep
}

type heapRun struct {
	board
	phase heapPhase
	next  int // next build root, or next extraction slot
	sift  sift
}

// Heap returns a heap sort stepper over a copy of values.
// A max-heap is built in place, then the maximum is repeatedly swapped
// behind the shrinking heap.
func Heap(values []int) stepper.Stepper[Snapshot] {
	return &heapRun{board: newBoard(values), next: len(values)/2 - 1}
}

func (r *heapRun) Advance() (Snapshot, bool) {
	if r.done {
		return Snapshot{}, false
	}
	n := len(r.array)

	for {
		if r.sift.step != siftIdle {
			if snap, ok := r.siftAdvance(); ok {
				return snap, true
			}
			continue
		}

		switch r.phase {
		case heapBuild:
			if r.next < 0 {
				r.phase = heapExtract
				r.next = n - 1
				continue
			}
			r.heapify(n, r.next)
			r.next--

		case heapExtract:
			if r.next <= 0 {
				r.phase = heapFinal
				continue
			}
			i := r.next
			snap := r.swapping(0, i)
			r.swap(0, i)
			r.mark(i)
			r.next--
			r.heapify(i, 0)
			return snap, true

		default:
			return r.finish()
		}
	}
}

// heapify starts a sift-down of root within the first size elements.
func (r *heapRun) heapify(size, root int) {
	r.sift = sift{size: size, root: root, largest: root, step: siftLeft}
}

// siftAdvance runs the active heapify until it emits a snapshot.
// It reports false when the call finished without emitting.
func (r *heapRun) siftAdvance() (Snapshot, bool) {
	s := &r.sift
	for {
		switch s.step {
		case siftLeft:
			s.step = siftRight
			if left := 2*s.root + 1; left < s.size {
				snap := r.compare(s.largest, left)
				if r.array[left] > r.array[s.largest] {
					s.largest = left
				}
				return snap, true
			}

		case siftRight:
			s.step = siftSwap
			if right := 2*s.root + 2; right < s.size {
				snap := r.compare(s.largest, right)
				if r.array[right] > r.array[s.largest] {
					s.largest = right
				}
				return snap, true
			}

		case siftSwap:
			if s.largest == s.root {
				s.step = siftIdle
				return Snapshot{}, false
			}
			snap := r.swapping(s.root, s.largest)
			r.swap(s.root, s.largest)
			r.heapify(s.size, s.largest)
			return snap, true

		default:
			return Snapshot{}, false
		}
	}
}
