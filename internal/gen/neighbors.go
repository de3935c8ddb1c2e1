package gen

import "github.com/samdwyer/dungeonforge/internal/world"

// RoomPair is a candidate adjacency between two rooms, by index.
type RoomPair struct {
	A, B int
}

// ResolveNeighbors produces the candidate room pairs for corridor routing.
//
// The sibling strategy yields one pair per internal partition node: the first
// roomful leaf of the left subtree paired with the first roomful leaf of the
// right subtree. Internal nodes with a roomless side contribute nothing.
// The all-pairs strategy pairs every room with every other room.
func ResolveNeighbors(root *world.Partition, roomCount int, strategy AdjacencyStrategy) []RoomPair {
	if strategy == AdjacencyAllPairs {
		return allPairs(roomCount)
	}
	return siblingPairs(root)
}

func siblingPairs(root *world.Partition) []RoomPair {
	var pairs []RoomPair
	root.Walk(func(n *world.Partition) {
		if n.IsLeaf() {
			return
		}
		a := firstRoomIndex(n.Left)
		b := firstRoomIndex(n.Right)
		if a == world.NoRoom || b == world.NoRoom {
			return
		}
		pairs = append(pairs, RoomPair{A: a, B: b})
	})
	return pairs
}

// firstRoomIndex finds the first leaf owning a room in the subtree,
// depth-first and left-biased, or world.NoRoom if the subtree has none.
func firstRoomIndex(node *world.Partition) int {
	if node == nil {
		return world.NoRoom
	}
	if node.IsLeaf() {
		return node.RoomIndex
	}
	if idx := firstRoomIndex(node.Left); idx != world.NoRoom {
		return idx
	}
	return firstRoomIndex(node.Right)
}

func allPairs(roomCount int) []RoomPair {
	var pairs []RoomPair
	for a := 0; a < roomCount; a++ {
		for b := a + 1; b < roomCount; b++ {
			pairs = append(pairs, RoomPair{A: a, B: b})
		}
	}
	return pairs
}
