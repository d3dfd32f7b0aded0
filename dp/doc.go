// Package dp instruments four dynamic-programming problems.
//
//   - Fibonacci: top-down recursion with memoization, suspended on an explicit
//     call stack so each call boundary can be observed. Snapshots expose the
//     memo and the active call stack.
//   - Knapsack: bottom-up 0/1 knapsack over an (items+1)×(capacity+1) table.
//   - LCS: bottom-up longest common subsequence over a (len(a)+1)×(len(b)+1)
//     table followed by a backtrack that reconstructs one subsequence.
//   - DTW: dynamic time warping of two integer series, with an optional
//     Sakoe–Chiba window and slope penalty, followed by a backtrack that
//     recovers the warping path. Unreachable cells hold Infinity.
//
// Table snapshots hold a full copy of the table, so a consumer may keep them
// for scrubbing without observing later writes.
package dp
