package gen

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/samdwyer/dungeonforge/internal/geom"
	"github.com/samdwyer/dungeonforge/internal/world"
)

// CarveRooms places at most one room inside each leaf partition's padded
// interior, visiting leaves in depth-first, left-biased order. Leaves whose
// padded interior is below the minimum room size stay roomless; that is
// expected for small leaves, not an error.
func CarveRooms(root *world.Partition, cfg Config, rng *rand.Rand) []world.Room {
	var rooms []world.Room
	for _, leaf := range root.Leaves() {
		room, ok := carveRoom(leaf.Bounds, cfg, rng)
		if !ok {
			continue
		}
		leaf.RoomIndex = len(rooms)
		rooms = append(rooms, room)
	}
	return rooms
}

// carveRoom picks a random room size within the partition's padded interior,
// then a random offset keeping the room plus minimum padding inside the
// partition. Room identity is drawn from the seeded rng so identical seeds
// reproduce identical IDs.
func carveRoom(p geom.Rect, cfg Config, rng *rand.Rand) (world.Room, bool) {
	availW := p.Width - 2*cfg.MinPadding
	availH := p.Height - 2*cfg.MinPadding
	if availW < cfg.MinRoomSize || availH < cfg.MinRoomSize {
		return world.Room{}, false
	}

	// MaxPadding caps how far the room may shrink from the partition edge.
	minW := clampLow(p.Width-2*cfg.MaxPadding, cfg.MinRoomSize, availW)
	minH := clampLow(p.Height-2*cfg.MaxPadding, cfg.MinRoomSize, availH)

	w := minW + rng.Intn(availW-minW+1)
	h := minH + rng.Intn(availH-minH+1)
	x := p.X + cfg.MinPadding + rng.Intn(p.Width-w-2*cfg.MinPadding+1)
	y := p.Y + cfg.MinPadding + rng.Intn(p.Height-h-2*cfg.MinPadding+1)

	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		// rand.Rand.Read never fails.
		return world.Room{}, false
	}

	return world.Room{
		ID:     id,
		Bounds: geom.Rect{X: x, Y: y, Width: w, Height: h},
		Type:   world.RoomUnassigned,
	}, true
}

// clampLow returns v clamped into [lo, hi], favoring lo for v below it.
func clampLow(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
