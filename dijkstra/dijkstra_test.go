package dijkstra_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

func buildGrid(t *testing.T, size int, opts ...grid.Option) *grid.Grid {
	t.Helper()
	g, err := grid.New(size, opts...)
	require.NoError(t, err)
	require.NoError(t, g.SetStart(grid.Coord{Row: 0, Col: 0}))
	require.NoError(t, g.SetEnd(grid.Coord{Row: size - 1, Col: size - 1}))

	return g
}

func TestDijkstra_Errors(t *testing.T) {
	if _, err := dijkstra.Dijkstra(nil); !errors.Is(err, dijkstra.ErrGridNil) {
		t.Errorf("nil grid: want ErrGridNil, got %v", err)
	}
	g, err := grid.New(5)
	require.NoError(t, err)
	if _, err = dijkstra.Dijkstra(g); !errors.Is(err, grid.ErrStartUnset) {
		t.Errorf("unset start: want grid.ErrStartUnset, got %v", err)
	}
}

// TestDijkstra_UnweightedMatchesBFS checks cost parity with BFS when every
// edge costs 1, over several wall layouts.
func TestDijkstra_UnweightedMatchesBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		g := buildGrid(t, 9)
		g.Scatter(0.25, rng)

		dres, err := dijkstra.Dijkstra(g)
		require.NoError(t, err)
		bres, err := bfs.BFS(g)
		require.NoError(t, err)

		require.Equal(t, bres.Found, dres.Found, "layout %d: reachability must agree", i)
		if dres.Found {
			assert.Equal(t, bres.Cost(), dres.Cost(), "layout %d: unweighted costs must agree", i)
		}
	}
}

// TestDijkstra_WeightedDetour verifies the cheap long route beats the
// expensive direct one.
func TestDijkstra_WeightedDetour(t *testing.T) {
	g, err := grid.New(5, grid.WithWeights())
	require.NoError(t, err)
	require.NoError(t, g.SetStart(grid.Coord{Row: 0, Col: 0}))
	require.NoError(t, g.SetEnd(grid.Coord{Row: 0, Col: 4}))
	for c := 1; c < 4; c++ {
		require.NoError(t, g.SetWeight(grid.Coord{Row: 0, Col: c}, 9))
	}

	res, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)
	require.True(t, res.Found)
	// direct: 9+9+9+1 = 28; detour through row 1: six unit steps = 6
	assert.Equal(t, 6, res.Cost())
	path := res.Path()
	require.Len(t, path, 7)
	assert.Equal(t, grid.Coord{Row: 1, Col: 0}, path[1], "path dips into the cheap row")
}

// TestDijkstra_Optimality compares against brute-force enumeration of all
// simple paths on randomly weighted grids.
func TestDijkstra_Optimality(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 5; i++ {
		g := buildGrid(t, 5, grid.WithWeights())
		for r := 0; r < 5; r++ {
			for c := 0; c < 5; c++ {
				require.NoError(t, g.SetWeight(grid.Coord{Row: r, Col: c}, 1+rng.Intn(9)))
			}
		}

		res, err := dijkstra.Dijkstra(g)
		require.NoError(t, err)
		require.True(t, res.Found)

		best := bruteForceCost(g)
		assert.Equal(t, best, res.Cost(), "grid %d: Dijkstra must match exhaustive minimum", i)
		assert.Equal(t, res.Cost(), grid.PathCost(g, res.Path()), "reported cost matches its own path")
	}
}

// bruteForceCost enumerates every simple path from start to end and returns
// the minimal summed edge weight. Exponential; fine at 5×5.
func bruteForceCost(g *grid.Grid) int {
	start, _ := g.Start()
	end, _ := g.End()
	const inf = 1 << 30
	best := inf
	visited := map[grid.Coord]bool{start: true}

	var walk func(c grid.Coord, cost int)
	walk = func(c grid.Coord, cost int) {
		if cost >= best {
			return
		}
		if c == end {
			best = cost
			return
		}
		for _, n := range g.Neighbors(c) {
			if visited[n] || !g.IsPassable(n) {
				continue
			}
			visited[n] = true
			walk(n, cost+g.EdgeWeight(c, n))
			visited[n] = false
		}
	}
	walk(start, 0)

	return best
}

// TestDijkstra_Deterministic asserts two runs over the same snapshot settle
// cells in the same order (row-major tie-break pins equal distances).
func TestDijkstra_Deterministic(t *testing.T) {
	g := buildGrid(t, 10)
	g.Scatter(0.2, rand.New(rand.NewSource(3)))

	r1, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)
	r2, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)

	assert.Equal(t, r1.Order, r2.Order)
	assert.Equal(t, r1.Path(), r2.Path())
	assert.Equal(t, r1.Cost(), r2.Cost())
}

// TestDijkstra_EnclosedEnd verifies exhaustion semantics for an unreachable end.
func TestDijkstra_EnclosedEnd(t *testing.T) {
	g := buildGrid(t, 5)
	require.NoError(t, g.SetEnd(grid.Coord{Row: 2, Col: 2}))
	for _, c := range []grid.Coord{
		{Row: 1, Col: 2}, {Row: 3, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 3},
	} {
		require.NoError(t, g.SetWall(c, true))
	}

	res, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path())
	assert.Len(t, res.Order, 20, "entire reachable component settled")
}

func TestDijkstra_HookAbort(t *testing.T) {
	g := buildGrid(t, 5)
	boom := errors.New("boom")
	_, err := dijkstra.Dijkstra(g, dijkstra.WithOnVisit(func(c grid.Coord) error {
		if c == (grid.Coord{Row: 1, Col: 1}) {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

func TestDijkstra_Cancellation(t *testing.T) {
	g := buildGrid(t, 30)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dijkstra.Dijkstra(g, dijkstra.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
