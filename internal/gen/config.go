// Package gen implements the dungeon layout generation pipeline: recursive
// spatial partitioning, room carving, corridor routing, spanning-tree
// reduction, room-type assignment, and tile rasterization. The pipeline is a
// pure function of (Config, *rand.Rand): identical inputs produce identical
// output. The rng must be owned exclusively by one generation call at a time.
package gen

import "fmt"

// AdjacencyStrategy selects how candidate room pairs are produced.
type AdjacencyStrategy uint8

const (
	// AdjacencySiblings produces one candidate pair per internal partition
	// node, the natural adjacency implied by the BSP split itself. Candidate
	// count stays linear in the room count and the final layout is
	// tree-shaped.
	AdjacencySiblings AdjacencyStrategy = iota
	// AdjacencyAllPairs produces a candidate for every room pair. More
	// interconnected layouts at O(n^2) routing cost.
	AdjacencyAllPairs
)

// Config holds every parameter of floor generation. The caller provides it;
// the core validates but never loads or clamps it.
type Config struct {
	// Floor bounds in tiles.
	Width  int
	Height int

	// Partitioning.
	MinPartitionSize int     // stop splitting when either dimension is at or below this
	MaxPartitionSize int     // "small enough" band for the probabilistic early stop
	MaxDepth         int     // maximum recursion depth of the partition tree
	StopChance       float64 // chance to stop early once both dimensions fit the band
	RandomAxisChance float64 // chance to pick the split axis randomly instead of the longer one

	// Room carving.
	MinRoomSize int
	MinPadding  int // tiles between a room and its partition edge, at least
	MaxPadding  int // cap on how far a room may shrink from its partition edge

	// Corridor candidates.
	Adjacency AdjacencyStrategy

	// Room-type assignment.
	FloorLevel     int     // current floor number, 1-based; bosses appear from floor 2
	BossChance     float64 // chance to place a boss room adjacent to the exit
	ShopChance     float64 // per-room shop chance
	TreasureChance float64 // per-room treasure chance
	MaxShops       int
	MaxTreasures   int
}

// DefaultConfig returns generation parameters for a standard floor.
func DefaultConfig() Config {
	return Config{
		Width:            80,
		Height:           48,
		MinPartitionSize: 10,
		MaxPartitionSize: 24,
		MaxDepth:         5,
		StopChance:       0.15,
		RandomAxisChance: 0.1,
		MinRoomSize:      5,
		MinPadding:       1,
		MaxPadding:       3,
		Adjacency:        AdjacencySiblings,
		FloorLevel:       1,
		BossChance:       0.8,
		ShopChance:       0.15,
		TreasureChance:   0.15,
		MaxShops:         1,
		MaxTreasures:     2,
	}
}

// Validate rejects invalid configurations before generation starts.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: floor bounds must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.MinPartitionSize <= 0:
		return fmt.Errorf("%w: minimum partition size must be positive, got %d", ErrInvalidConfig, c.MinPartitionSize)
	case c.MaxPartitionSize < c.MinPartitionSize:
		return fmt.Errorf("%w: maximum partition size %d is below minimum %d", ErrInvalidConfig, c.MaxPartitionSize, c.MinPartitionSize)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: negative max depth %d", ErrInvalidConfig, c.MaxDepth)
	case c.MinRoomSize < 3:
		// Corridor entry tiles must sit on an interior row or column, which
		// needs at least one non-corner tile per wall.
		return fmt.Errorf("%w: minimum room size must be at least 3, got %d", ErrInvalidConfig, c.MinRoomSize)
	case c.MinPadding < 1:
		return fmt.Errorf("%w: minimum padding must be at least 1, got %d", ErrInvalidConfig, c.MinPadding)
	case c.MaxPadding < c.MinPadding:
		return fmt.Errorf("%w: maximum padding %d is below minimum %d", ErrInvalidConfig, c.MaxPadding, c.MinPadding)
	case c.FloorLevel < 1:
		return fmt.Errorf("%w: floor level must be at least 1, got %d", ErrInvalidConfig, c.FloorLevel)
	case c.MaxShops < 0 || c.MaxTreasures < 0:
		return fmt.Errorf("%w: negative special room caps", ErrInvalidConfig)
	}
	for _, chance := range []struct {
		name  string
		value float64
	}{
		{"stop chance", c.StopChance},
		{"random axis chance", c.RandomAxisChance},
		{"boss chance", c.BossChance},
		{"shop chance", c.ShopChance},
		{"treasure chance", c.TreasureChance},
	} {
		if chance.value < 0 || chance.value > 1 {
			return fmt.Errorf("%w: %s %v outside [0, 1]", ErrInvalidConfig, chance.name, chance.value)
		}
	}
	return nil
}
