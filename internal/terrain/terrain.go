// Package terrain generates sample boards on top of the hex, corner and
// edge tables: noise-driven terrain per cell, heights per vertex, rivers
// along sides and harbors around the coast.
package terrain

import "fmt"

// Terrain types for board cells.
type Terrain uint8

const (
	TerrainPlains   Terrain = iota // Fertile lowland
	TerrainForest                  // Wet uplands
	TerrainMountain                // Above the mountain line
	TerrainCoast                   // Low land next to ocean
	TerrainDesert                  // Hot and dry
	TerrainSwamp                   // Wet lowland
	TerrainTundra                  // Cold
	TerrainOcean                   // Below sea level
)

// Tile is what the board stores per cell.
type Tile struct {
	Terrain     Terrain `json:"terrain"`
	Elevation   float64 `json:"elevation"`   // 0.0 (sea floor) to 1.0 (peak)
	Rainfall    float64 `json:"rainfall"`    // 0.0 (arid) to 1.0 (tropical)
	Temperature float64 `json:"temperature"` // 0.0 (frozen) to 1.0 (hot)
}

// IsWater reports whether the tile is ocean.
func (t Tile) IsWater() bool { return t.Terrain == TerrainOcean }

var terrainNames = [...]string{
	TerrainPlains:   "Plains",
	TerrainForest:   "Forest",
	TerrainMountain: "Mountain",
	TerrainCoast:    "Coast",
	TerrainDesert:   "Desert",
	TerrainSwamp:    "Swamp",
	TerrainTundra:   "Tundra",
	TerrainOcean:    "Ocean",
}

func (t Terrain) String() string {
	if int(t) < len(terrainNames) {
		return terrainNames[t]
	}
	return fmt.Sprintf("terrain(%d)", uint8(t))
}
