package gen

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/samdwyer/dungeonforge/internal/geom"
	"github.com/samdwyer/dungeonforge/internal/world"
)

func chainRooms(n int) ([]world.Room, []world.Corridor) {
	rooms := make([]world.Room, n)
	for i := range rooms {
		rooms[i] = world.Room{Bounds: geom.Rect{X: i * 10, Width: 5, Height: 5}}
	}
	corridors := make([]world.Corridor, 0, n-1)
	for i := 0; i < n-1; i++ {
		corridors = append(corridors, candidate(i, i+1, 3))
	}
	return rooms, corridors
}

func TestAssignRoomTypesEntranceAndExit(t *testing.T) {
	rooms, corridors := chainRooms(5)
	cfg := DefaultConfig()

	entrance, exit, err := AssignRoomTypes(rooms, corridors, cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entrance != 0 {
		t.Errorf("entrance = %d, want first room", entrance)
	}
	if exit != 4 {
		t.Errorf("exit = %d, want the room farthest from the entrance", exit)
	}

	entrances, exits := 0, 0
	for i, room := range rooms {
		switch room.Type {
		case world.RoomEntrance:
			entrances++
		case world.RoomExit:
			exits++
		case world.RoomUnassigned:
			t.Errorf("room %d left unassigned", i)
		}
	}
	if entrances != 1 || exits != 1 {
		t.Errorf("got %d entrances and %d exits, want exactly one of each", entrances, exits)
	}
}

func TestAssignRoomTypesBossGuardsExit(t *testing.T) {
	rooms, corridors := chainRooms(5)
	cfg := DefaultConfig()
	cfg.FloorLevel = 3
	cfg.BossChance = 1.0

	_, exit, err := AssignRoomTypes(rooms, corridors, cfg, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// On the chain, room 3 is the only unassigned neighbor of the exit.
	if rooms[3].Type != world.RoomBoss {
		t.Errorf("room next to exit %d is %s, want boss", exit, rooms[3].Type)
	}
}

func TestAssignRoomTypesNoBossOnFirstFloor(t *testing.T) {
	rooms, corridors := chainRooms(5)
	cfg := DefaultConfig()
	cfg.FloorLevel = 1
	cfg.BossChance = 1.0

	if _, _, err := AssignRoomTypes(rooms, corridors, cfg, rand.New(rand.NewSource(2))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, room := range rooms {
		if room.Type == world.RoomBoss {
			t.Errorf("room %d is a boss room on floor 1", i)
		}
	}
}

func TestAssignRoomTypesSpecialRoomCaps(t *testing.T) {
	rooms, corridors := chainRooms(12)
	cfg := DefaultConfig()
	cfg.ShopChance = 1.0
	cfg.TreasureChance = 1.0
	cfg.MaxShops = 1
	cfg.MaxTreasures = 2

	if _, _, err := AssignRoomTypes(rooms, corridors, cfg, rand.New(rand.NewSource(3))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	shops, treasures := 0, 0
	for _, room := range rooms {
		switch room.Type {
		case world.RoomShop:
			shops++
		case world.RoomTreasure:
			treasures++
		}
	}
	if shops > cfg.MaxShops {
		t.Errorf("%d shops exceed cap %d", shops, cfg.MaxShops)
	}
	if treasures > cfg.MaxTreasures {
		t.Errorf("%d treasures exceed cap %d", treasures, cfg.MaxTreasures)
	}
}

// Degenerate single-room floor: entrance and exit both resolve to that room
// and no combat assignment spills over.
func TestAssignRoomTypesSingleRoom(t *testing.T) {
	rooms := []world.Room{{Bounds: geom.Rect{Width: 5, Height: 5}}}

	entrance, exit, err := AssignRoomTypes(rooms, nil, DefaultConfig(), rand.New(rand.NewSource(4)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entrance != 0 || exit != 0 {
		t.Errorf("entrance %d and exit %d should both resolve to the only room", entrance, exit)
	}
	if rooms[0].Type != world.RoomEntrance {
		t.Errorf("single room labeled %s, want entrance", rooms[0].Type)
	}
}

func TestAssignRoomTypesUnreachable(t *testing.T) {
	rooms, _ := chainRooms(3)

	_, _, err := AssignRoomTypes(rooms, nil, DefaultConfig(), rand.New(rand.NewSource(5)))
	if !errors.Is(err, ErrTypeAssignment) {
		t.Errorf("expected ErrTypeAssignment without corridors, got %v", err)
	}
}

func TestAssignRoomTypesDeterministicExitTieBreak(t *testing.T) {
	// Star graph: rooms 1..3 all at distance 1. The lowest index wins.
	corridors := []world.Corridor{
		candidate(0, 1, 3),
		candidate(0, 2, 3),
		candidate(0, 3, 3),
	}

	for seed := int64(1); seed <= 5; seed++ {
		local, _ := chainRooms(4)
		_, exit, err := AssignRoomTypes(local, corridors, DefaultConfig(), rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exit != 1 {
			t.Errorf("seed %d: exit = %d, want lowest-index tie-break 1", seed, exit)
		}
	}
}
