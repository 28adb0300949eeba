package grid_test

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

// TestNew_SizeBounds verifies the [MinSize, MaxSize] construction contract.
func TestNew_SizeBounds(t *testing.T) {
	for _, size := range []int{grid.MinSize - 1, 0, -3, grid.MaxSize + 1} {
		if _, err := grid.New(size); !errors.Is(err, grid.ErrBadSize) {
			t.Errorf("New(%d): want ErrBadSize, got %v", size, err)
		}
	}
	for _, size := range []int{grid.MinSize, 12, grid.MaxSize} {
		g, err := grid.New(size)
		require.NoError(t, err, "New(%d)", size)
		assert.Equal(t, size, g.Size())
	}
}

// TestNeighbors_FixedOrder pins the load-bearing enumeration order:
// up, down, left, right, clipped to bounds.
func TestNeighbors_FixedOrder(t *testing.T) {
	g, err := grid.New(5)
	require.NoError(t, err)

	// interior cell: all four, in order
	got := g.Neighbors(grid.Coord{Row: 2, Col: 2})
	want := []grid.Coord{{Row: 1, Col: 2}, {Row: 3, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 3}}
	assert.Equal(t, want, got)

	// top-left corner: up and left clipped
	got = g.Neighbors(grid.Coord{Row: 0, Col: 0})
	want = []grid.Coord{{Row: 1, Col: 0}, {Row: 0, Col: 1}}
	assert.Equal(t, want, got)

	// bottom-right corner: down and right clipped
	got = g.Neighbors(grid.Coord{Row: 4, Col: 4})
	want = []grid.Coord{{Row: 3, Col: 4}, {Row: 4, Col: 3}}
	assert.Equal(t, want, got)
}

// TestStartEnd_Invariants covers the one-start/one-end/no-wall invariant.
func TestStartEnd_Invariants(t *testing.T) {
	g, err := grid.New(5)
	require.NoError(t, err)

	// solvers must refuse a grid without endpoints
	assert.ErrorIs(t, g.Validate(), grid.ErrStartUnset)
	require.NoError(t, g.SetStart(grid.Coord{Row: 0, Col: 0}))
	assert.ErrorIs(t, g.Validate(), grid.ErrEndUnset)

	// start and end may not coincide
	assert.ErrorIs(t, g.SetEnd(grid.Coord{Row: 0, Col: 0}), grid.ErrSameStartEnd)
	require.NoError(t, g.SetEnd(grid.Coord{Row: 4, Col: 4}))
	assert.NoError(t, g.Validate())

	// neither endpoint may be walled, nor placed on a wall
	assert.ErrorIs(t, g.SetWall(grid.Coord{Row: 0, Col: 0}, true), grid.ErrCellIsWall)
	assert.ErrorIs(t, g.SetWall(grid.Coord{Row: 4, Col: 4}, true), grid.ErrCellIsWall)
	require.NoError(t, g.SetWall(grid.Coord{Row: 2, Col: 2}, true))
	assert.ErrorIs(t, g.SetStart(grid.Coord{Row: 2, Col: 2}), grid.ErrCellIsWall)
	assert.ErrorIs(t, g.SetEnd(grid.Coord{Row: 2, Col: 2}), grid.ErrCellIsWall)

	// out-of-bounds placements
	assert.ErrorIs(t, g.SetStart(grid.Coord{Row: -1, Col: 0}), grid.ErrOutOfBounds)
	assert.ErrorIs(t, g.SetWall(grid.Coord{Row: 5, Col: 5}, true), grid.ErrOutOfBounds)
}

// TestEdgeWeight verifies the weights-disabled uniform cost and the
// weights-enabled destination-cell cost.
func TestEdgeWeight(t *testing.T) {
	a := grid.Coord{Row: 0, Col: 0}
	b := grid.Coord{Row: 0, Col: 1}

	plain, err := grid.New(5)
	require.NoError(t, err)
	require.NoError(t, plain.SetWeight(b, 7))
	assert.Equal(t, 1, plain.EdgeWeight(a, b), "weights disabled: uniform cost 1")

	weighted, err := grid.New(5, grid.WithWeights())
	require.NoError(t, err)
	require.NoError(t, weighted.SetWeight(b, 7))
	assert.Equal(t, 7, weighted.EdgeWeight(a, b), "weights enabled: destination weight")
	assert.Equal(t, 1, weighted.EdgeWeight(b, a), "unassigned cells keep DefaultWeight")

	assert.ErrorIs(t, weighted.SetWeight(b, 0), grid.ErrBadWeight)
}

// TestSnapshot_Isolation ensures mutations after Snapshot never leak into it.
func TestSnapshot_Isolation(t *testing.T) {
	g, err := grid.New(6)
	require.NoError(t, err)
	require.NoError(t, g.SetStart(grid.Coord{Row: 0, Col: 0}))
	require.NoError(t, g.SetEnd(grid.Coord{Row: 5, Col: 5}))
	require.NoError(t, g.SetWall(grid.Coord{Row: 3, Col: 3}, true))

	snap := g.Snapshot()
	require.NoError(t, g.SetWall(grid.Coord{Row: 1, Col: 1}, true))
	g.ClearWalls()

	assert.True(t, snap.IsWall(grid.Coord{Row: 3, Col: 3}), "snapshot keeps its walls")
	assert.False(t, snap.IsWall(grid.Coord{Row: 1, Col: 1}), "snapshot misses later walls")
	assert.False(t, g.IsWall(grid.Coord{Row: 3, Col: 3}), "ClearWalls applied to original")
}

// TestReconstructPath walks a hand-built predecessor chain.
func TestReconstructPath(t *testing.T) {
	a := grid.Coord{Row: 0, Col: 0}
	b := grid.Coord{Row: 1, Col: 0}
	c := grid.Coord{Row: 1, Col: 1}
	parent := map[grid.Coord]grid.Coord{b: a, c: b}

	got := grid.ReconstructPath(parent, c)
	if want := []grid.Coord{a, b, c}; !reflect.DeepEqual(got, want) {
		t.Errorf("ReconstructPath = %v; want %v", got, want)
	}

	// start has no predecessor: path of one
	got = grid.ReconstructPath(parent, a)
	if want := []grid.Coord{a}; !reflect.DeepEqual(got, want) {
		t.Errorf("ReconstructPath(start) = %v; want %v", got, want)
	}
}

// TestScatter_DeterministicAndSafe checks endpoint protection and seeding.
func TestScatter_DeterministicAndSafe(t *testing.T) {
	build := func(seed int64) *grid.Grid {
		g, err := grid.New(10)
		require.NoError(t, err)
		require.NoError(t, g.SetStart(grid.Coord{Row: 0, Col: 0}))
		require.NoError(t, g.SetEnd(grid.Coord{Row: 9, Col: 9}))
		g.Scatter(0.4, rand.New(rand.NewSource(seed)))
		return g
	}

	g1, g2 := build(42), build(42)
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			co := grid.Coord{Row: r, Col: c}
			assert.Equal(t, g1.IsWall(co), g2.IsWall(co), "same seed, same layout at %v", co)
		}
	}
	assert.False(t, g1.IsWall(grid.Coord{Row: 0, Col: 0}), "start never walled")
	assert.False(t, g1.IsWall(grid.Coord{Row: 9, Col: 9}), "end never walled")
}
