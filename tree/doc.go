// Package tree provides a binary tree model, a shape-only display layout and
// four instrumented traversals.
//
// Inorder, preorder and postorder run on an explicit call stack so they can
// pause between any two snapshots, including deep inside the recursion.
// Before descending into a child they emit a snapshot highlighting the edge
// being followed; the visit snapshot comes where the order dictates.
//
// Level order uses a FIFO queue: one snapshot per dequeued node, then one per
// enqueued child carrying that child's edge.
//
// Every traversal copies its input tree on construction, starts with a
// snapshot on the root and ends with a snapshot whose Current is "".
package tree
