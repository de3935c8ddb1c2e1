package world

import "github.com/samdwyer/dungeonforge/internal/geom"

// Corridor is an ordered, duplicate-free tile path linking the boundaries of
// two rooms. A and B index into Level.Rooms. The path starts one tile outside
// room A and ends one tile short of room B's boundary entry tile, so no path
// tile lies inside either room.
type Corridor struct {
	A, B int
	Path []geom.Point
}

// Weight is the corridor's edge weight for connectivity reduction: the
// number of tiles in its path.
func (c Corridor) Weight() int {
	return len(c.Path)
}
