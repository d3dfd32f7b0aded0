package sorting

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/algostep/stepper"
)

// NoIndex marks an absent index (no pivot).
const NoIndex = -1

// ErrUnknownAlgorithm is returned by New for an unrecognized algorithm id.
var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

// Algorithm identifies one of the instrumented sorts.
type Algorithm string

// Supported algorithm ids.
const (
	BubbleSort    Algorithm = "bubble"
	SelectionSort Algorithm = "selection"
	InsertionSort Algorithm = "insertion"
	QuickSort     Algorithm = "quick"
	MergeSort     Algorithm = "merge"
	HeapSort      Algorithm = "heap"
)

// Algorithms lists every supported id in presentation order.
var Algorithms = []Algorithm{BubbleSort, SelectionSort, InsertionSort, QuickSort, MergeSort, HeapSort}

// Snapshot is the state of a sort at one instrumentation point.
// All slices are owned by the snapshot.
type Snapshot struct {
	// Array is the array as currently ordered.
	Array []int `json:"array" yaml:"array"`

	// Comparing holds the index pair under comparison, or is empty.
	Comparing []int `json:"comparing" yaml:"comparing"`

	// Swapping holds the index pair about to be swapped, or is empty.
	Swapping []int `json:"swapping" yaml:"swapping"`

	// Sorted lists, ascending, the indices already in final position.
	Sorted []int `json:"sorted" yaml:"sorted"`

	// Pivot is the pivot index during quick sort partitioning, else NoIndex.
	Pivot int `json:"pivot" yaml:"pivot"`
}

// New returns a stepper running algo over a private copy of values.
func New(algo Algorithm, values []int) (stepper.Stepper[Snapshot], error) {
	switch algo {
	case BubbleSort:
		return Bubble(values), nil
	case SelectionSort:
		return Selection(values), nil
	case InsertionSort:
		return Insertion(values), nil
	case QuickSort:
		return Quick(values), nil
	case MergeSort:
		return Merge(values), nil
	case HeapSort:
		return Heap(values), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}

// board is the mutable state every sort shares: the private working array
// and the marks of indices known to be in final position.
type board struct {
	array  []int
	sorted []bool
	done   bool
}

func newBoard(values []int) board {
	return board{
		array:  slices.Clone(values),
		sorted: make([]bool, len(values)),
	}
}

// mark records i as being in its final position.
func (b *board) mark(i int) {
	if i >= 0 && i < len(b.sorted) {
		b.sorted[i] = true
	}
}

func (b *board) markAll() {
	for i := range b.sorted {
		b.sorted[i] = true
	}
}

func (b *board) swap(i, j int) {
	b.array[i], b.array[j] = b.array[j], b.array[i]
}

// snapshot copies the current state. pivot is NoIndex when not partitioning.
func (b *board) snapshot(comparing, swapping []int, pivot int) Snapshot {
	sorted := make([]int, 0, len(b.sorted))
	for i, ok := range b.sorted {
		if ok {
			sorted = append(sorted, i)
		}
	}
	if comparing == nil {
		comparing = []int{}
	}
	if swapping == nil {
		swapping = []int{}
	}

	return Snapshot{
		Array:     slices.Clone(b.array),
		Comparing: comparing,
		Swapping:  swapping,
		Sorted:    sorted,
		Pivot:     pivot,
	}
}

func (b *board) compare(i, j int) Snapshot { return b.snapshot([]int{i, j}, nil, NoIndex) }

func (b *board) swapping(i, j int) Snapshot { return b.snapshot(nil, []int{i, j}, NoIndex) }

// finish marks every index sorted and returns the terminal snapshot.
func (b *board) finish() (Snapshot, bool) {
	b.markAll()
	b.done = true

	return b.snapshot(nil, nil, NoIndex), true
}
