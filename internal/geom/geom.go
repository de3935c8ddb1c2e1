// Package geom provides the integer geometry primitives used by dungeon
// generation: points and axis-aligned rectangles on the tile grid.
package geom

// Point is a single tile coordinate.
type Point struct {
	X, Y int
}

// Add returns the point offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the manhattan distance between two points.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Sign returns -1, 0, or +1 depending on the sign of v.
func Sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// Rect is an axis-aligned rectangle. X, Y is the top-left corner; the
// rectangle covers tiles [X, X+Width) x [Y, Y+Height).
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the first column past the rectangle's right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the first row past the rectangle's bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Center returns the center tile of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains returns true if the given point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Inset returns the rectangle shrunk by n tiles on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X:      r.X + n,
		Y:      r.Y + n,
		Width:  r.Width - 2*n,
		Height: r.Height - 2*n,
	}
}

// Area returns the number of tiles covered by the rectangle.
func (r Rect) Area() int {
	return r.Width * r.Height
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
