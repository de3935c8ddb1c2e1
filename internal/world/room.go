package world

import (
	"github.com/google/uuid"

	"github.com/samdwyer/dungeonforge/internal/geom"
)

// RoomType labels a room's gameplay role. Rooms are created Unassigned and
// labeled exactly once by type assignment, after the corridor set is final.
type RoomType uint8

const (
	RoomUnassigned RoomType = iota
	RoomEntrance
	RoomExit
	RoomBoss
	RoomCombat
	RoomShop
	RoomTreasure
)

// String returns a human-readable room type name.
func (t RoomType) String() string {
	switch t {
	case RoomUnassigned:
		return "unassigned"
	case RoomEntrance:
		return "entrance"
	case RoomExit:
		return "exit"
	case RoomBoss:
		return "boss"
	case RoomCombat:
		return "combat"
	case RoomShop:
		return "shop"
	case RoomTreasure:
		return "treasure"
	default:
		return "unknown"
	}
}

// Room is a rectangular playable area carved inside a leaf partition.
// Bounds never change after creation.
type Room struct {
	ID     uuid.UUID
	Bounds geom.Rect
	Type   RoomType
}

// Center returns the room's center tile.
func (r Room) Center() geom.Point {
	return r.Bounds.Center()
}

// Contains returns true if the given tile is inside the room.
func (r Room) Contains(p geom.Point) bool {
	return r.Bounds.Contains(p)
}
