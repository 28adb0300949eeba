// Package dfs implements depth-first search over a grid.Grid snapshot.
//
// What
//
//   - Explore from the start cell, descending into the first passable,
//     unvisited neighbor under the grid's fixed enumeration order
//     (up, down, left, right) and backtracking on dead ends.
//   - Succeeds the instant the end cell is discovered as a neighbor;
//     reports Found=false once the reachable component is exhausted.
//   - Returns a Result with visit Order, Parent links, Visited flags,
//     and a Path() accessor for the discovered route.
//   - Supports an OnVisit hook (one call per visited cell, in order) and
//     cancellation via context.Context.
//
// Why
//
//   - DFS guarantees *a* route whenever one exists, not the shortest one,
//     which makes it the contrast case against BFS/Dijkstra/A* in the
//     comparison workflow.
//   - No cost is tracked: DFS reports no cost at the solve layer.
//
// Determinism
//
//	The traversal uses an explicit stack of (cell, next-neighbor) frames that
//	reproduces the recursive formulation exactly: under the grid's fixed
//	neighbor order, the discovered path and the visit sequence are identical
//	across runs on the same snapshot, without tying recursion depth to the
//	goroutine stack.
//
// Complexity (N = side², the cell count)
//
//   - Time:   O(N)  (each cell visited at most once)
//   - Memory: O(N)  (frame stack, Visited set, Parent map)
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - grid.ErrStartUnset / grid.ErrEndUnset propagated from validation.
//   - context errors when the run is cancelled.
//   - Wrapped user-supplied hook errors from OnVisit.
package dfs
