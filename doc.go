// Package gridpath is an interactive pathfinding engine over square grids,
// built for visualizers: every search reports the exact order in which it
// explored cells, so a rendering layer can replay the run step by step.
//
// 🚀 What is gridpath?
//
//	A deterministic, hook-driven engine that brings together:
//		• Grid model: walls, per-cell weights, guarded start/end designation
//		• Traversals: DFS (serpentine walk), BFS (level order)
//		• Shortest paths: Dijkstra, A* with a Manhattan heuristic
//		• Uniform results: exploration order, reconstructed path, cost, timing
//		• Interactive protocol: single-flight runs, edits rejected mid-run
//
// ✨ Why choose gridpath?
//
//   - Deterministic – fixed neighbor order (up, down, left, right) and
//     row-major tie-breaks make every run replayable
//   - Hook-driven – OnVisit fires per explored cell, so streaming a trace
//     costs nothing when no hook is set
//   - Cancellable – every search honors context cancellation mid-run
//
// Under the hood, everything is organized per algorithm:
//
//	grid/     — the board: cells, walls, weights, endpoints, snapshots
//	dfs/      — depth-first search (any path, no cost)
//	bfs/      — breadth-first search (fewest steps)
//	dijkstra/ — cheapest path under weights
//	astar/    — cheapest path, goal-directed
//	solve/    — uniform dispatch, event stream, single-flight Runner
//
// Quick ASCII example:
//
//	S . . # .
//	. # . # .
//	. # . . .
//	. # # # .
//	. . . . E
//
//	S and E mark the endpoints; # cells are walls.
//
// cmd/server exposes the engine over HTTP and WebSocket for browser
// visualizers; see configs/gridpath.yaml for the server knobs.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
