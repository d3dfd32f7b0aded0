// Package sorting instruments six classic array sorts so that every
// comparison and every swap emits an immutable Snapshot.
//
// What
//
//   - Bubble, Selection, Insertion: nested-index state machines advanced one
//     comparison or one swap at a time. The sorted index set grows by exactly
//     one index per outer iteration.
//   - Quick (Lomuto, last element as pivot), Merge (top-down), Heap (max-heap):
//     recursive algorithms run on an explicit frame stack so they pause at
//     every emission point while preserving the depth-first order of a naive
//     recursive implementation.
//   - Every run ends with a terminal snapshot whose Sorted set covers all
//     indices.
//
// Emission rules
//
//   - A compare snapshot is emitted before each comparison.
//   - A swap snapshot is emitted before each swap, so its Array still shows
//     the pre-swap values.
//   - Quick sort emits a pivot-selection snapshot before partitioning and a
//     placement snapshot before moving the pivot into place; left sub-ranges
//     are processed before right ones.
//   - Merge sort emits one snapshot per merge comparison and one
//     "range merged" snapshot per merged range.
//
// Ties
//
//	Comparisons are strict, so equal elements never swap. Insertion and merge
//	sort are stable; the others are not.
//
// Complexity (n = len(values))
//
//   - Bubble, Selection, Insertion: O(n²) snapshots.
//   - Quick: O(n log n) average, O(n²) worst case.
//   - Merge, Heap: O(n log n).
//   - Every snapshot copies the array: O(n) per step.
//
// Usage
//
//	s, err := sorting.New(sorting.QuickSort, []int{5, 3, 8, 1, 9})
//	if err != nil {
//	    // only ErrUnknownAlgorithm
//	}
//	final, _ := stepper.Last(s)
//	fmt.Println(final.Array) // [1 3 5 8 9]
package sorting
