package gen

import (
	"math/rand"

	"github.com/samdwyer/dungeonforge/internal/geom"
	"github.com/samdwyer/dungeonforge/internal/world"
)

// BuildPartitionTree recursively splits the floor bounds into a binary tree
// of sub-rectangles. For every internal node the two children are disjoint
// and their union equals the parent exactly: no gaps, no overlap.
func BuildPartitionTree(bounds geom.Rect, cfg Config, rng *rand.Rand) *world.Partition {
	root := world.NewPartition(bounds, 0)
	splitPartition(root, cfg, rng)
	return root
}

// splitPartition decides whether to split a node and recurses on the halves.
func splitPartition(node *world.Partition, cfg Config, rng *rand.Rand) {
	b := node.Bounds

	if b.Width <= cfg.MinPartitionSize || b.Height <= cfg.MinPartitionSize {
		return
	}
	if node.Depth >= cfg.MaxDepth {
		return
	}
	// Probabilistic early stop once the node is already small enough. This
	// caps tree size without forcing maximum depth everywhere.
	if b.Width <= cfg.MaxPartitionSize && b.Height <= cfg.MaxPartitionSize &&
		rng.Float64() < cfg.StopChance {
		return
	}

	// Prefer splitting the longer axis; on a tie, or with a small random
	// chance, pick randomly. This prevents pathologically elongated strips.
	vertical := b.Width > b.Height
	if b.Width == b.Height || rng.Float64() < cfg.RandomAxisChance {
		vertical = rng.Intn(2) == 0
	}

	length := axisLength(b, vertical)
	if length < 2*cfg.MinPartitionSize {
		// Chosen axis cannot produce two valid halves; try the other one.
		vertical = !vertical
		length = axisLength(b, vertical)
		if length < 2*cfg.MinPartitionSize {
			return
		}
	}

	offset := splitOffset(length, cfg.MinPartitionSize, rng)

	var left, right geom.Rect
	if vertical {
		left = geom.Rect{X: b.X, Y: b.Y, Width: offset, Height: b.Height}
		right = geom.Rect{X: b.X + offset, Y: b.Y, Width: b.Width - offset, Height: b.Height}
	} else {
		left = geom.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: offset}
		right = geom.Rect{X: b.X, Y: b.Y + offset, Width: b.Width, Height: b.Height - offset}
	}

	node.Left = world.NewPartition(left, node.Depth+1)
	node.Right = world.NewPartition(right, node.Depth+1)

	splitPartition(node.Left, cfg, rng)
	splitPartition(node.Right, cfg, rng)
}

func axisLength(b geom.Rect, vertical bool) int {
	if vertical {
		return b.Width
	}
	return b.Height
}

// splitOffset picks a split point within 40%-60% of the axis length, clamped
// so both halves stay at or above the minimum size. An empty clamped range
// falls back to an exact half split.
func splitOffset(length, minSize int, rng *rand.Rand) int {
	lo := length * 2 / 5
	hi := length * 3 / 5
	if lo < minSize {
		lo = minSize
	}
	if hi > length-minSize {
		hi = length - minSize
	}
	if lo > hi {
		return length / 2
	}
	return lo + rng.Intn(hi-lo+1)
}
