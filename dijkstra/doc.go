// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// grid.Grid snapshot with non-negative per-cell weights.
//
// What
//
//   - Maintains a distance map (start = 0, everything else +∞) and a settled
//     set; repeatedly settles the unsettled cell with minimum distance and
//     relaxes its passable neighbors with a strict-improvement rule.
//   - Edge cost comes from grid.EdgeWeight: the destination cell's weight
//     when the grid enables weights, 1 otherwise.
//   - Terminates successfully the moment the end cell is settled; reports
//     Found=false when no unsettled cell with finite distance remains.
//   - Returns a Result with settle Order, Dist map, Parent links, and a
//     Path() accessor. Dist[end] is the reported cost at the solve layer.
//
// Why
//
//   - Optimal under arbitrary positive integer weights, where BFS only
//     optimizes edge count. With weights disabled it reports the same cost
//     as BFS, though the tie-breaking (min-distance selection rather than
//     FIFO) may settle cells in a different order.
//
// Determinism
//
//	Extract-min uses a binary heap ("lazy decrease-key": duplicates pushed,
//	stale entries skipped against the settled set). Equal distances are
//	tie-broken by row-major cell index, so the settle order (and with it the
//	trace and the chosen path among cost-equal alternatives) is pinned.
//
// Complexity (N = side², the cell count; edges are O(N) on a grid)
//
//   - Time:   O(N log N)
//   - Memory: O(N)
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - grid.ErrStartUnset / grid.ErrEndUnset propagated from validation.
//   - context errors when the run is cancelled.
//   - Wrapped user-supplied hook errors from OnVisit.
package dijkstra
