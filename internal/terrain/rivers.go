package terrain

import (
	"math/rand"

	"github.com/talgya/hexgrid/corner"
	"github.com/talgya/hexgrid/edge"
	"github.com/talgya/hexgrid/grid"
)

// maxRiverSteps caps the length of a single river.
const maxRiverSteps = 50

// placeRivers traces rivers from high vertices downhill along cell sides.
func placeRivers(w *World, bounds edge.Bounds, seed int64, maxRivers int) *edge.Table[int] {
	rivers := edge.NewTable[int](bounds)
	rng := rand.New(rand.NewSource(seed + 100))

	// High vertices away from the sea are river sources.
	var sources []corner.Position
	for c, h := range w.Heights.All() {
		if h > 0.65 && !w.touchesWater(c) {
			sources = append(sources, c)
		}
	}

	// Only a handful of rivers; not every highland needs one.
	numRivers := min(max(len(sources)/8, 2), maxRivers)

	rng.Shuffle(len(sources), func(i, j int) {
		sources[i], sources[j] = sources[j], sources[i]
	})
	if len(sources) > numRivers {
		sources = sources[:numRivers]
	}

	for i, start := range sources {
		steps := traceRiver(w, rivers, start, i+1)
		grid.Logger().Debug("river traced", "id", i+1, "source", start, "sides", steps)
	}
	return rivers
}

// traceRiver follows the steepest descent from a source vertex, marking each
// side it runs along, until it reaches water or finds no lower neighbor.
func traceRiver(w *World, rivers *edge.Table[int], start corner.Position, id int) int {
	current := start
	visited := map[corner.Position]bool{start: true}
	steps := 0

	for steps < maxRiverSteps {
		if w.touchesWater(current) {
			break
		}
		here, _ := w.Heights.Get(current)

		var best corner.Position
		found := false
		bestHeight := here
		for _, n := range current.Neighbors() {
			if visited[n] {
				continue
			}
			h, ok := w.Heights.Get(n)
			if ok && h < bestHeight {
				best, bestHeight, found = n, h, true
			}
		}
		if !found {
			break // No downhill path; a lake would form here.
		}

		side, ok := edge.Between(current, best)
		if !ok {
			break
		}
		if _, taken := rivers.Get(side); taken {
			break // Joined an earlier river.
		}
		if err := rivers.Set(side, id); err != nil {
			break
		}
		visited[best] = true
		current = best
		steps++
	}
	return steps
}

// touchesWater reports whether c borders ocean or the edge of the board.
func (w *World) touchesWater(c corner.Position) bool {
	for _, h := range c.Touching() {
		tile, ok := w.Tiles.Get(h)
		if !ok || tile.IsWater() {
			return true
		}
	}
	return false
}

// RiverCount returns the number of distinct rivers on the board.
func (w *World) RiverCount() int {
	ids := make(map[int]bool)
	for _, id := range w.Rivers.All() {
		ids[id] = true
	}
	return len(ids)
}
