package gen

import (
	"testing"

	"github.com/samdwyer/dungeonforge/internal/geom"
	"github.com/samdwyer/dungeonforge/internal/world"
)

// buildTree assembles a two-level tree by hand: root splits into left and
// right, left splits again. Room indices are assigned to selected leaves.
func buildTree(leafRooms map[int]int) *world.Partition {
	root := world.NewPartition(geom.Rect{Width: 40, Height: 20}, 0)
	root.Left = world.NewPartition(geom.Rect{Width: 20, Height: 20}, 1)
	root.Right = world.NewPartition(geom.Rect{X: 20, Width: 20, Height: 20}, 1)
	root.Left.Left = world.NewPartition(geom.Rect{Width: 20, Height: 10}, 2)
	root.Left.Right = world.NewPartition(geom.Rect{Y: 10, Width: 20, Height: 10}, 2)

	// Leaves in depth-first, left-biased order.
	for i, leaf := range root.Leaves() {
		if idx, ok := leafRooms[i]; ok {
			leaf.RoomIndex = idx
		}
	}
	return root
}

func TestResolveNeighborsSiblings(t *testing.T) {
	// All three leaves hold rooms: root pairs the first room of each side,
	// the internal left node pairs its two children.
	root := buildTree(map[int]int{0: 0, 1: 1, 2: 2})

	pairs := ResolveNeighbors(root, 3, AdjacencySiblings)
	want := []RoomPair{{A: 0, B: 2}, {A: 0, B: 1}}
	if len(pairs) != len(want) {
		t.Fatalf("got %d pairs, want %d: %v", len(pairs), len(want), pairs)
	}
	for i, p := range want {
		if pairs[i] != p {
			t.Errorf("pair %d = %+v, want %+v", i, pairs[i], p)
		}
	}
}

func TestResolveNeighborsSkipsRoomlessSide(t *testing.T) {
	// The right subtree holds no room: the root contributes no pair, only
	// the internal left node does.
	root := buildTree(map[int]int{0: 0, 1: 1})

	pairs := ResolveNeighbors(root, 2, AdjacencySiblings)
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1: %v", len(pairs), pairs)
	}
	if pairs[0] != (RoomPair{A: 0, B: 1}) {
		t.Errorf("pair = %+v, want {0 1}", pairs[0])
	}
}

func TestResolveNeighborsAllPairs(t *testing.T) {
	pairs := ResolveNeighbors(nil, 4, AdjacencyAllPairs)
	if len(pairs) != 6 {
		t.Fatalf("got %d pairs, want 6", len(pairs))
	}
	seen := make(map[RoomPair]bool)
	for _, p := range pairs {
		if p.A >= p.B {
			t.Errorf("pair %+v not ordered", p)
		}
		if seen[p] {
			t.Errorf("duplicate pair %+v", p)
		}
		seen[p] = true
	}
}
