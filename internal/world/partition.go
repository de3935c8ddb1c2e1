package world

import "github.com/samdwyer/dungeonforge/internal/geom"

// Partition is a node of the BSP tree. Bounds are immutable once created and
// each node owns its children exclusively; the tree is acyclic by
// construction and carries no parent pointers.
type Partition struct {
	Bounds geom.Rect
	Depth  int

	// Left and Right are both nil (leaf) or both non-nil (internal node).
	Left  *Partition
	Right *Partition

	// RoomIndex refers into Level.Rooms, or NoRoom for leaves too small to
	// hold a room and for all internal nodes.
	RoomIndex int
}

// NoRoom marks a partition that owns no room.
const NoRoom = -1

// NewPartition creates a roomless partition node.
func NewPartition(bounds geom.Rect, depth int) *Partition {
	return &Partition{Bounds: bounds, Depth: depth, RoomIndex: NoRoom}
}

// IsLeaf returns true if this node has no children.
func (p *Partition) IsLeaf() bool {
	return p.Left == nil && p.Right == nil
}

// Leaves returns all leaf partitions in depth-first, left-biased order.
func (p *Partition) Leaves() []*Partition {
	var leaves []*Partition
	p.Walk(func(n *Partition) {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
	})
	return leaves
}

// Walk visits every node in depth-first, left-biased, pre-order.
func (p *Partition) Walk(visit func(*Partition)) {
	if p == nil {
		return
	}
	visit(p)
	p.Left.Walk(visit)
	p.Right.Walk(visit)
}
