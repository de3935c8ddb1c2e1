package gen

import (
	"math/rand"
	"testing"

	"github.com/samdwyer/dungeonforge/internal/geom"
	"github.com/samdwyer/dungeonforge/internal/world"
)

func TestCarveRoomsContainment(t *testing.T) {
	cfg := DefaultConfig()

	for seed := int64(1); seed <= 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		root := BuildPartitionTree(geom.Rect{Width: cfg.Width, Height: cfg.Height}, cfg, rng)
		rooms := CarveRooms(root, cfg, rng)

		if len(rooms) == 0 {
			t.Fatalf("seed %d: no rooms carved", seed)
		}

		for _, leaf := range root.Leaves() {
			if leaf.RoomIndex == world.NoRoom {
				continue
			}
			room := rooms[leaf.RoomIndex]
			interior := leaf.Bounds.Inset(cfg.MinPadding)
			b := room.Bounds
			if b.X < interior.X || b.Y < interior.Y ||
				b.Right() > interior.Right() || b.Bottom() > interior.Bottom() {
				t.Errorf("seed %d: room %+v escapes padded interior %+v of leaf %+v",
					seed, b, interior, leaf.Bounds)
			}
			if b.Width < cfg.MinRoomSize || b.Height < cfg.MinRoomSize {
				t.Errorf("seed %d: room %+v below minimum size %d", seed, b, cfg.MinRoomSize)
			}
		}
	}
}

func TestCarveRoomsSkipsSmallLeaves(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinRoomSize = 9
	cfg.MinPadding = 1
	cfg.MaxPadding = 1

	// A 10x10 leaf has an 8x8 padded interior, below the 9-tile minimum.
	leaf := world.NewPartition(geom.Rect{Width: 10, Height: 10}, 0)
	rooms := CarveRooms(leaf, cfg, rand.New(rand.NewSource(1)))

	if len(rooms) != 0 {
		t.Errorf("expected roomless leaf, got %d rooms", len(rooms))
	}
	if leaf.RoomIndex != world.NoRoom {
		t.Errorf("roomless leaf should keep NoRoom index, got %d", leaf.RoomIndex)
	}
}

func TestCarveRoomsDistinctIDs(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(5))
	root := BuildPartitionTree(geom.Rect{Width: cfg.Width, Height: cfg.Height}, cfg, rng)
	rooms := CarveRooms(root, cfg, rng)

	seen := make(map[string]bool, len(rooms))
	for _, room := range rooms {
		id := room.ID.String()
		if seen[id] {
			t.Errorf("duplicate room ID %s", id)
		}
		seen[id] = true
		if room.Type != world.RoomUnassigned {
			t.Errorf("freshly carved room should be unassigned, got %s", room.Type)
		}
	}
}

func TestCarveRoomsReproducible(t *testing.T) {
	cfg := DefaultConfig()

	carve := func(seed int64) []world.Room {
		rng := rand.New(rand.NewSource(seed))
		root := BuildPartitionTree(geom.Rect{Width: cfg.Width, Height: cfg.Height}, cfg, rng)
		return CarveRooms(root, cfg, rng)
	}

	a, b := carve(99), carve(99)
	if len(a) != len(b) {
		t.Fatalf("room count differs: %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Bounds != b[i].Bounds {
			t.Errorf("room %d differs across identical seeds", i)
		}
	}
}
