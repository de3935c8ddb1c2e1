package world

import (
	"math/rand"

	"github.com/samdwyer/dungeonforge/internal/geom"
)

// Level is the aggregate root for one generated floor: the partition tree,
// the room list, the final corridor set, and the rasterized tile grid. It is
// built once per floor request and replaces any previous floor wholesale;
// consumers read it but never mutate it.
type Level struct {
	Bounds    geom.Rect
	Root      *Partition
	Rooms     []Room
	Corridors []Corridor
	Grid      TileGrid

	// Entrance and Exit index into Rooms. On a single-room floor both refer
	// to the same room.
	Entrance int
	Exit     int
}

// EntranceRoom returns the room marked as the floor entrance.
func (l *Level) EntranceRoom() Room {
	return l.Rooms[l.Entrance]
}

// ExitRoom returns the room marked as the floor exit.
func (l *Level) ExitRoom() Room {
	return l.Rooms[l.Exit]
}

// EntrancePosition returns the tile where external player-spawn logic should
// anchor: the center of the entrance room.
func (l *Level) EntrancePosition() geom.Point {
	return l.EntranceRoom().Center()
}

// TileAt returns the tile at the given position, TileEmpty when out of bounds.
func (l *Level) TileAt(x, y int) TileType {
	return l.Grid.At(x, y)
}

// IsWalkable returns true if the given position can be walked on.
func (l *Level) IsWalkable(x, y int) bool {
	return l.Grid.At(x, y).IsWalkable()
}

// RoomIndexAt returns the index of the room containing the position, or -1
// if the position is not inside any room.
func (l *Level) RoomIndexAt(x, y int) int {
	p := geom.Point{X: x, Y: y}
	for i, room := range l.Rooms {
		if room.Contains(p) {
			return i
		}
	}
	return -1
}

// RandomFloorPointInRoom returns a random walkable tile within the given
// room, for use by spawn placement. Falls back to the room center after 100
// failed attempts; returns false for an invalid room index.
func (l *Level) RandomFloorPointInRoom(roomIndex int, rng *rand.Rand) (geom.Point, bool) {
	if roomIndex < 0 || roomIndex >= len(l.Rooms) {
		return geom.Point{}, false
	}
	room := l.Rooms[roomIndex]

	for i := 0; i < 100; i++ {
		p := geom.Point{
			X: room.Bounds.X + rng.Intn(room.Bounds.Width),
			Y: room.Bounds.Y + rng.Intn(room.Bounds.Height),
		}
		if l.IsWalkable(p.X, p.Y) {
			return p, true
		}
	}
	return room.Center(), true
}
