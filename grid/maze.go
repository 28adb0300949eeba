package grid

import "math/rand"

// Scatter walls a random subset of cells: each cell independently becomes a
// wall with probability density (clamped to [0, 1]), except the start and end
// cells, which are never walled. Existing walls are kept.
//
// The caller supplies the random source, so a seeded *rand.Rand makes the
// layout fully reproducible. Complexity: O(size²).
func (g *Grid) Scatter(density float64, rng *rand.Rand) {
	if density <= 0 {
		return
	}
	if density > 1 {
		density = 1
	}
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			co := Coord{Row: r, Col: c}
			if (g.hasStart && g.start == co) || (g.hasEnd && g.end == co) {
				continue
			}
			if rng.Float64() < density {
				g.cells[r][c].wall = true
			}
		}
	}
}
