// Package world defines the generated dungeon layout model: partitions,
// rooms, corridors, the tile grid, and the Level aggregate that downstream
// systems read but never mutate.
package world

// TileType classifies a single cell of the rasterized floor grid.
type TileType uint8

const (
	// TileEmpty is unreachable void outside rooms and corridors.
	TileEmpty TileType = iota
	// TileFloor is walkable room or corridor interior.
	TileFloor
	// TileWall borders floor tiles. Wall is advisory: rasterization never
	// overwrites a Floor cell with Wall.
	TileWall
)

// IsWalkable returns true if the tile can be walked on.
func (t TileType) IsWalkable() bool {
	return t == TileFloor
}

// Rune returns the tile's display character.
func (t TileType) Rune() rune {
	switch t {
	case TileFloor:
		return '.'
	case TileWall:
		return '#'
	default:
		return ' '
	}
}

// String returns a human-readable tile name.
func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	default:
		return "unknown"
	}
}
