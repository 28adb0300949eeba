// Package astar implements A* search over a grid.Grid snapshot, guided by
// the Manhattan-distance heuristic.
//
// What
//
//   - Generalizes Dijkstra with a heuristic: every open cell carries
//     gScore (cheapest known cost from start) and fScore = gScore + h,
//     where h is the Manhattan distance |Δrow| + |Δcol| to the end.
//   - At each step the open cell with minimum fScore is settled and its
//     passable neighbors relaxed exactly as in Dijkstra, comparing gScores.
//   - Terminates successfully when the end cell is popped; reports
//     Found=false when the open set empties first.
//   - Returns a Result with settle Order, GScore map, Parent links, and a
//     Path() accessor. GScore[end] is the reported cost at the solve layer.
//
// Why
//
//   - Manhattan distance is admissible and consistent for 4-directional
//     movement with integer weights ≥ 1, so A* returns the same optimal cost
//     as Dijkstra while typically settling fewer cells, since the heuristic
//     steers the frontier toward the goal.
//
// Determinism
//
//	The open set is a binary heap ordered by fScore, tie-broken by larger
//	gScore (cells deeper along a route are preferred, standard goal-directed
//	bias), then by row-major index. The settle order is therefore pinned.
//
// Complexity (N = side², the cell count)
//
//   - Time:   O(N log N) worst case, usually far fewer settles than Dijkstra
//   - Memory: O(N)
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - grid.ErrStartUnset / grid.ErrEndUnset propagated from validation.
//   - context errors when the run is cancelled.
//   - Wrapped user-supplied hook errors from OnVisit.
package astar
