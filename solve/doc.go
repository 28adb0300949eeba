// Package solve is the engine façade: it dispatches one of the four search
// strategies (dfs, bfs, dijkstra, astar) over a grid snapshot and reports a
// uniform Result plus an incremental event stream for rendering layers.
//
// What
//
//   - Solve(g, algo, opts...) runs a single search and returns a Result with
//     the found flag, the ordered start→end path, the cost (absent for DFS),
//     the explored-cell count, and the elapsed wall time.
//   - WithOnEvent registers a callback receiving one KindVisited event per
//     cell expansion — the renderer's suspension point — followed, on
//     success, by one KindPath event per cell of the reconstructed route.
//   - Runner serializes solves over an interactively mutated grid: a second
//     Run while one is active fails fast with ErrRunInFlight (never queued),
//     Cancel stops the active run after its current step, and every grid
//     mutator is rejected mid-run so state arrays can never be resized under
//     a live search. Each run is tagged with a UUID.
//
// Why
//
//   - The four solver packages share a contract but not a result shape; the
//     comparison workflow (same snapshot, several algorithms, one table)
//     needs a single currency, which Result provides.
//
// Errors
//
//   - ErrGridNil, ErrUnknownAlgorithm, ErrRunInFlight.
//   - grid.ErrStartUnset / grid.ErrEndUnset propagated from validation,
//     always before any run state is created.
//   - context errors when a run is cancelled; the caller receives no Result.
package solve
