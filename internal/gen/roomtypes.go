package gen

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeonforge/internal/world"
)

// AssignRoomTypes labels every room exactly once. It must only run after the
// corridor set is final: the exit is the room with the greatest graph
// distance from the entrance over the final corridors.
//
// The entrance is the first-created room. Exit ties break to the lowest room
// index. A boss room is placed adjacent to the exit from floor 2 onward,
// shops and treasures are distributed with capped probabilities, and every
// remaining room defaults to combat. Returns the entrance and exit indices.
func AssignRoomTypes(rooms []world.Room, corridors []world.Corridor, cfg Config, rng *rand.Rand) (entrance, exit int, err error) {
	if len(rooms) == 0 {
		return 0, 0, ErrNoRooms
	}

	entrance = 0
	rooms[entrance].Type = world.RoomEntrance

	// Degenerate single-room floor: entrance and exit are the same room and
	// no further assignment happens.
	if len(rooms) == 1 {
		return entrance, entrance, nil
	}

	adj := adjacencyLists(len(rooms), corridors)
	dist := graphDistances(adj, entrance)

	exit = entrance
	best := 0
	for i, d := range dist {
		if d > best {
			best = d
			exit = i
		}
	}
	if exit == entrance {
		return 0, 0, fmt.Errorf("%w: no room reachable from entrance", ErrTypeAssignment)
	}
	rooms[exit].Type = world.RoomExit

	// Boss gates progression next to the exit.
	if cfg.FloorLevel > 1 && rng.Float64() < cfg.BossChance {
		for _, n := range adj[exit] {
			if rooms[n].Type == world.RoomUnassigned {
				rooms[n].Type = world.RoomBoss
				break
			}
		}
	}

	shops, treasures := 0, 0
	for i := range rooms {
		if rooms[i].Type != world.RoomUnassigned {
			continue
		}
		roll := rng.Float64()
		switch {
		case shops < cfg.MaxShops && roll < cfg.ShopChance:
			rooms[i].Type = world.RoomShop
			shops++
		case treasures < cfg.MaxTreasures && roll < cfg.ShopChance+cfg.TreasureChance:
			rooms[i].Type = world.RoomTreasure
			treasures++
		default:
			rooms[i].Type = world.RoomCombat
		}
	}

	return entrance, exit, nil
}

// adjacencyLists builds sorted neighbor lists from the corridor set, so
// traversal order is deterministic.
func adjacencyLists(roomCount int, corridors []world.Corridor) [][]int {
	adj := make([][]int, roomCount)
	for _, c := range corridors {
		if c.A < 0 || c.A >= roomCount || c.B < 0 || c.B >= roomCount {
			continue
		}
		adj[c.A] = append(adj[c.A], c.B)
		adj[c.B] = append(adj[c.B], c.A)
	}
	for i := range adj {
		sort.Ints(adj[i])
	}
	return adj
}

// graphDistances runs a breadth-first search from the start room, returning
// the corridor-graph distance to every room. Unreachable rooms stay at 0.
func graphDistances(adj [][]int, start int) []int {
	dist := make([]int, len(adj))
	visited := mapset.New[int]()
	visited.Put(start)

	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range adj[cur] {
			if visited.Has(n) {
				continue
			}
			visited.Put(n)
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return dist
}
