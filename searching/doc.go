// Package searching instruments linear and binary search so that every
// probe emits an immutable Snapshot.
//
// Linear search scans indices 0..n-1 in order. It emits an "inspecting"
// snapshot before each equality test and stops at the first match with a
// "found" snapshot; otherwise it ends with a not-found snapshot whose Current
// is NoIndex.
//
// Binary search first sorts a private ascending copy of its input and searches
// that copy. Every snapshot therefore carries the sorted array, which is the
// array a display should show once binary search is selected. Each midpoint
// probe emits a snapshot with the active [Lo, Hi] window; a miss ends with
// Current == NoIndex and the final, empty window (Lo > Hi).
package searching
