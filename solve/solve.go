package solve

import (
	"time"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// Solve runs the selected algorithm over the grid snapshot g and returns the
// uniform Result. Configuration problems (nil grid, unknown algorithm, unset
// endpoints) are reported before any search state is allocated. An
// unreachable end yields Found=false, not an error. On cancellation or a hook
// failure no Result is returned.
func Solve(g *grid.Grid, algo Algorithm, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !algo.Valid() {
		return nil, ErrUnknownAlgorithm
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	visited := func(c grid.Coord) error {
		o.OnEvent(Event{Coord: c, Kind: KindVisited})

		return nil
	}

	res := &Result{Algorithm: algo}
	started := time.Now()

	switch algo {
	case DFS:
		r, err := dfs.DFS(g, dfs.WithContext(o.Ctx), dfs.WithOnVisit(visited))
		if err != nil {
			return nil, err
		}
		res.Found = r.Found
		res.Path = r.Path()
		res.Explored = len(r.Order)

	case BFS:
		r, err := bfs.BFS(g, bfs.WithContext(o.Ctx), bfs.WithOnVisit(visited))
		if err != nil {
			return nil, err
		}
		res.Found = r.Found
		res.Path = r.Path()
		res.Explored = len(r.Order)
		res.Cost, res.HasCost = r.Cost(), r.Found

	case Dijkstra:
		r, err := dijkstra.Dijkstra(g, dijkstra.WithContext(o.Ctx), dijkstra.WithOnVisit(visited))
		if err != nil {
			return nil, err
		}
		res.Found = r.Found
		res.Path = r.Path()
		res.Explored = len(r.Order)
		res.Cost, res.HasCost = r.Cost(), r.Found

	case AStar:
		r, err := astar.AStar(g, astar.WithContext(o.Ctx), astar.WithOnVisit(visited))
		if err != nil {
			return nil, err
		}
		res.Found = r.Found
		res.Path = r.Path()
		res.Explored = len(r.Order)
		res.Cost, res.HasCost = r.Cost(), r.Found
	}

	res.Elapsed = time.Since(started)

	// replay the discovered route for the renderer, start → end
	for _, c := range res.Path {
		o.OnEvent(Event{Coord: c, Kind: KindPath})
	}

	return res, nil
}
