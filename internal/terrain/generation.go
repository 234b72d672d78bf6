package terrain

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/dustin/go-humanize"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/hexgrid/corner"
	"github.com/talgya/hexgrid/edge"
	"github.com/talgya/hexgrid/grid"
	"github.com/talgya/hexgrid/hex"
)

// GenConfig holds board generation parameters.
type GenConfig struct {
	Layout      hex.Layout // Board shape
	Seed        int64      // Random seed (0 = random)
	SeaLevel    float64    // Elevation threshold for ocean (0.0–1.0)
	MountainLvl float64    // Elevation threshold for mountains (0.0–1.0)
	MaxRivers   int        // Upper bound on traced rivers
	HarborGaps  []int      // Gaps between harbors along the outline, see corner.PlaceAlong
}

// DefaultGenConfig returns a mid-sized island.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Layout:      hex.Layout{Shortest: 10, Longest: 19},
		Seed:        0,
		SeaLevel:    0.25,
		MountainLvl: 0.72,
		MaxRivers:   10,
		HarborGaps:  []int{0, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3},
	}
}

// SmallTestConfig returns the 19-cell board for rapid iteration.
func SmallTestConfig() GenConfig {
	return GenConfig{
		Layout:      hex.BaseLayout(),
		Seed:        42,
		SeaLevel:    0.30,
		MountainLvl: 0.75,
		MaxRivers:   2,
		HarborGaps:  []int{0, 3, 3, 3, 3, 3},
	}
}

// World is a generated board.
type World struct {
	Layout  hex.Layout
	Seed    int64
	Tiles   *hex.Table[Tile]
	Heights *corner.Table[float64]
	Rivers  *edge.Table[int] // River number, from 1
	Harbors []corner.Pair
}

// Generate creates a board with terrain, vertex heights, rivers and harbors.
func Generate(cfg GenConfig) (*World, error) {
	if err := cfg.Layout.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	elevation := newLayer(seed, 4, 0.08)
	rainfall := newLayer(seed+1, 3, 0.06)
	warmth := newLayer(seed+2, 3, 0.05)

	board := cfg.Layout.Bounds()
	w := &World{
		Layout: cfg.Layout,
		Seed:   seed,
		Tiles:  hex.NewTable[Tile](board),
	}

	cx, cy := boardCenter(cfg.Layout)
	radius := float64(cfg.Layout.Longest) / 2

	for p := range cfg.Layout.Spiral().All() {
		x, y := p.Center()

		elev := elevation.at(x, y)
		rain := rainfall.at(x, y)
		temp := warmth.at(x, y)

		// Continental shaping: push elevation down toward the rim.
		dist := math.Hypot(x-cx, y-cy) / radius
		falloff := 1.0 - math.Pow(dist, 3.5)
		if falloff < 0 {
			falloff = 0
		}
		elev *= falloff

		// Colder at altitude and toward the top and bottom rows.
		temp = temp*0.6 + (1.0-math.Abs(y-cy)/radius)*0.3 + (1.0-elev)*0.1

		tile := Tile{
			Terrain:     deriveTerrain(elev, rain, temp, cfg),
			Elevation:   elev,
			Rainfall:    rain,
			Temperature: temp,
		}
		if err := w.Tiles.Set(p, tile); err != nil {
			return nil, fmt.Errorf("generate: place tile: %w", err)
		}
	}

	markCoastalTiles(w.Tiles)
	w.Heights = sampleHeights(w.Tiles, corner.NewBounds(board))
	w.Rivers = placeRivers(w, edge.NewBounds(board), seed, cfg.MaxRivers)

	if len(cfg.HarborGaps) > 0 {
		ring := corner.NewRing(hex.Origin, cfg.Layout.Shortest, cfg.Layout.Longest)
		harbors, err := corner.PlaceAlong(ring, cfg.HarborGaps)
		if err != nil {
			return nil, fmt.Errorf("generate: harbors: %w", err)
		}
		w.Harbors = harbors
	}

	grid.Logger().Info("world generated",
		"seed", seed,
		"tiles", w.Tiles.Len(),
		"rivers", w.RiverCount(),
		"harbors", len(w.Harbors),
	)
	return w, nil
}

// boardCenter averages the cell centers of a layout.
func boardCenter(l hex.Layout) (float64, float64) {
	var sx, sy float64
	n := 0
	for p := range l.Spiral().All() {
		x, y := p.Center()
		sx += x
		sy += y
		n++
	}
	return sx / float64(n), sy / float64(n)
}

// deriveTerrain picks a cell's terrain. Land height is measured from the
// sea line (0) to the mountain line (1), so the lowland and upland bands
// move with the config.
func deriveTerrain(elev, rain, temp float64, cfg GenConfig) Terrain {
	switch {
	case elev < cfg.SeaLevel:
		return TerrainOcean
	case elev > cfg.MountainLvl:
		return TerrainMountain
	}
	land := (elev - cfg.SeaLevel) / (cfg.MountainLvl - cfg.SeaLevel)
	switch {
	case temp < 0.25:
		return TerrainTundra
	case rain < 0.25 && temp > 0.5:
		return TerrainDesert
	case rain > 0.7 && land < 0.4:
		return TerrainSwamp
	case rain > 0.45 && land >= 0.4:
		return TerrainForest
	default:
		return TerrainPlains
	}
}

// markCoastalTiles turns low plains and forest next to ocean into coast.
func markCoastalTiles(tiles *hex.Table[Tile]) {
	var toMark []hex.Position
	for p, tile := range tiles.All() {
		if tile.IsWater() {
			continue
		}
		for _, n := range p.Neighbors() {
			if nt, ok := tiles.Get(n); ok && nt.IsWater() {
				toMark = append(toMark, p)
				break
			}
		}
	}

	for _, p := range toMark {
		tile := tiles.Ref(p)
		if (tile.Terrain == TerrainPlains || tile.Terrain == TerrainForest) && tile.Elevation < 0.5 {
			tile.Terrain = TerrainCoast
		}
	}
}

// sampleHeights gives every vertex of a board cell the mean elevation of
// the board cells meeting there.
func sampleHeights(tiles *hex.Table[Tile], bounds corner.Bounds) *corner.Table[float64] {
	heights := corner.NewTable[float64](bounds)
	for c := range bounds.All() {
		sum, n := 0.0, 0
		for _, h := range c.Touching() {
			if tile, ok := tiles.Get(h); ok {
				sum += tile.Elevation
				n++
			}
		}
		if n == 0 {
			continue
		}
		if err := heights.Set(c, sum/float64(n)); err != nil {
			panic(fmt.Sprintf("terrain: vertex %v from its own bounds rejected: %v", c, err))
		}
	}
	return heights
}

// TerrainCounts returns a summary of terrain type distribution.
func TerrainCounts(w *World) map[Terrain]int {
	counts := make(map[Terrain]int)
	for _, tile := range w.Tiles.All() {
		counts[tile.Terrain]++
	}
	return counts
}

// layer is one fractal noise field sampled at cell centers.
type layer struct {
	noise   opensimplex.Noise
	octaves int
	scale   float64 // Frequency of the first octave per cell width
}

func newLayer(seed int64, octaves int, scale float64) layer {
	return layer{noise: opensimplex.NewNormalized(seed), octaves: octaves, scale: scale}
}

// at sums the octaves at (x, y), each at twice the frequency and half the
// weight of the one before, and rescales the total to [0, 1].
func (l layer) at(x, y float64) float64 {
	var total, weights float64
	weight, freq := 1.0, l.scale
	for range l.octaves {
		total += weight * l.noise.Eval2(x*freq, y*freq)
		weights += weight
		weight /= 2
		freq *= 2
	}
	return total / weights
}

func (w *World) String() string {
	return fmt.Sprintf("World(%dx%d, %s tiles, %d rivers over %s sides, %d harbors)",
		w.Layout.Shortest, w.Layout.Longest,
		humanize.Comma(int64(w.Tiles.Len())), w.RiverCount(),
		humanize.Comma(int64(w.Rivers.Len())), len(w.Harbors))
}
