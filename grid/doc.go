// Package grid provides a production-grade square-grid model for pathfinding,
// with walls, optional per-cell traversal weights, and fixed-order adjacency.
//
// What
//
//   - Grid: a size×size matrix of cells, size in [MinSize, MaxSize].
//   - Each cell is passable or a wall, and carries a weight ≥ 1 used as the
//     cost of entering it when weights are enabled.
//   - Exactly one start and one end coordinate, neither of which may be a wall.
//   - Neighbors(c) enumerates up to 4 axis-aligned neighbors clipped to the
//     grid bounds in the fixed order up, down, left, right. Diagonal moves are
//     never produced.
//   - Snapshot() yields an independent deep copy; solvers operate on snapshots
//     and never observe later mutations.
//   - ReconstructPath walks a predecessor map from the end coordinate back to
//     the start and returns the route in start→end order.
//
// Why
//
//   - The neighbor enumeration order is load-bearing: depth-first search
//     discovers different (equally valid) paths under different orders, so the
//     order is part of the model's contract, not an implementation detail.
//   - Freezing the grid per run keeps every solver deterministic and allows
//     the interactive layer to mutate the working grid between runs only.
//
// Determinism
//
//	Two runs over the same snapshot observe identical cells, identical
//	neighbor order, and identical edge weights, so every solver in this
//	module produces identical traces on identical snapshots.
//
// Errors
//
//   - ErrBadSize       if size is outside [MinSize, MaxSize].
//   - ErrOutOfBounds   if a coordinate lies outside the grid.
//   - ErrBadWeight     if a weight < 1 is assigned.
//   - ErrCellIsWall    if start/end is placed on a wall, or a wall on start/end.
//   - ErrSameStartEnd  if start and end would coincide.
//   - ErrStartUnset    if a solver is invoked before a start is designated.
//   - ErrEndUnset      if a solver is invoked before an end is designated.
package grid
