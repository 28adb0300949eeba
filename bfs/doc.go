// Package bfs implements breadth-first search over a grid.Grid snapshot,
// returning the unweighted shortest route from start to end.
//
// What
//
//   - FIFO level-order exploration: cells are marked visited when enqueued
//     and expanded in enqueue order.
//   - The goal test happens on dequeue, not on discovery. This mirrors the
//     reference behavior so traces stay reproducible across implementations;
//     the end cell therefore appears as the final entry of Order.
//   - Returns a Result with visit Order, per-cell Depth (distance in edges),
//     Parent links, and a Path() accessor.
//   - Per-cell weights are ignored even when the grid enables them: BFS
//     optimizes edge count, nothing else.
//
// Why
//
//   - Guarantees the shortest path by edge count in O(N) on a uniform grid.
//   - Depth[end] is the reported cost at the solve layer.
//
// Determinism
//
//	Neighbors are enqueued in the grid's fixed up/down/left/right order, so
//	the visit sequence and the discovered path are fully reproducible.
//
// Complexity (N = side², the cell count)
//
//   - Time:   O(N)
//   - Memory: O(N)
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - grid.ErrStartUnset / grid.ErrEndUnset propagated from validation.
//   - context errors when the run is cancelled.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
