package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ExampleGrid_Neighbors demonstrates the fixed adjacency order
// (up, down, left, right) and boundary clipping.
func ExampleGrid_Neighbors() {
	g, _ := grid.New(5)

	fmt.Println(g.Neighbors(grid.Coord{Row: 2, Col: 2}))
	fmt.Println(g.Neighbors(grid.Coord{Row: 0, Col: 0}))
	// Output:
	// [(1,2) (3,2) (2,1) (2,3)]
	// [(1,0) (0,1)]
}

// ExampleReconstructPath rebuilds a route from a predecessor map.
func ExampleReconstructPath() {
	start := grid.Coord{Row: 0, Col: 0}
	mid := grid.Coord{Row: 0, Col: 1}
	end := grid.Coord{Row: 1, Col: 1}
	parent := map[grid.Coord]grid.Coord{mid: start, end: mid}

	fmt.Println(grid.ReconstructPath(parent, end))
	// Output:
	// [(0,0) (0,1) (1,1)]
}
