package gen

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeonforge/internal/geom"
	"github.com/samdwyer/dungeonforge/internal/world"
)

// RouteCorridor computes the tile path connecting the boundaries of rooms a
// and b. Rooms that share interior rows or columns get a straight corridor
// along the shared band. Rooms whose spans overlap by a sliver too narrow to
// hold a straight corridor get an L-path whose turn is shifted clear of the
// overlap. Fully diagonal pairs get an L-shaped path turning at a single
// corner, routed horizontal-first or vertical-first per the flag.
//
// The path starts one tile outside room a's boundary entry tile and stops
// one tile short of room b's entry tile, so no path tile lands on a tile of
// either room. Every stepping loop is bounded by the manhattan distance to
// its target by construction; the total path length never exceeds
// manhattan(start, entryB) + 1.
func RouteCorridor(a, b world.Room, aIdx, bIdx int, horizontalFirst bool) (world.Corridor, bool) {
	if a.Bounds.Area() == 0 || b.Bounds.Area() == 0 {
		return world.Corridor{}, false
	}

	ac, bc := a.Center(), b.Center()

	// Disjoint rooms overlap on at most one axis. A shared interior band on
	// that axis admits a straight corridor between the two facing walls.
	if row, ok := sharedInteriorBand(a.Bounds.Y, a.Bounds.Bottom(), b.Bounds.Y, b.Bounds.Bottom(), bc.Y); ok {
		return straightCorridor(a, b, aIdx, bIdx, row, true), true
	}
	if col, ok := sharedInteriorBand(a.Bounds.X, a.Bounds.Right(), b.Bounds.X, b.Bounds.Right(), bc.X); ok {
		return straightCorridor(a, b, aIdx, bIdx, col, false), true
	}

	// Spans overlapping by one or two tiles have no interior band, and an L
	// turning inside the sliver would land on a room tile. Shift the turn
	// clear of the overlap instead.
	if spansOverlap(a.Bounds.X, a.Bounds.Right(), b.Bounds.X, b.Bounds.Right()) {
		return narrowOverlapCorridor(a, b, aIdx, bIdx), true
	}
	if spansOverlap(a.Bounds.Y, a.Bounds.Bottom(), b.Bounds.Y, b.Bounds.Bottom()) {
		c := narrowOverlapCorridor(transposeRoom(a), transposeRoom(b), aIdx, bIdx)
		for i, p := range c.Path {
			c.Path[i] = geom.Point{X: p.Y, Y: p.X}
		}
		return c, true
	}

	// Fully diagonal pair: the spans are disjoint on both axes, so an
	// L-path through the corner below never crosses either room.
	firstHorizontal := horizontalFirst
	if ac.X == bc.X {
		firstHorizontal = false
	} else if ac.Y == bc.Y {
		firstHorizontal = true
	}

	entryA := boundaryEntry(a.Bounds, bc, firstHorizontal)
	entryB := boundaryEntry(b.Bounds, ac, !firstHorizontal)
	start := stepOutward(entryA, a.Bounds, bc, firstHorizontal)

	var corner geom.Point
	if firstHorizontal {
		corner = geom.Point{X: entryB.X, Y: start.Y}
	} else {
		corner = geom.Point{X: start.X, Y: entryB.Y}
	}

	return buildPath(aIdx, bIdx, start, corner, entryB), true
}

// narrowOverlapCorridor connects rooms whose column spans overlap without a
// shared interior band; the rooms sit fully above and below each other. The
// vertical run is placed on a column interior to one room and clear of the
// other, turning once at the second room's wall. When neither room has such
// a column the corridor runs straight through the sliver; the path still
// stops short of both rooms.
func narrowOverlapCorridor(a, b world.Room, aIdx, bIdx int) world.Corridor {
	ab, bb := a.Bounds, b.Bounds
	down := bb.Y >= ab.Bottom()

	// Column interior to a and clear of b: drop beside b, then turn into
	// its facing side wall.
	if x, ok := clearColumn(ab, bb); ok {
		entryA := geom.Point{X: x, Y: facingWall(ab.Y, ab.Bottom(), down)}
		start := entryA.Add(0, outward(down))
		entryB := geom.Point{
			X: facingWall(bb.X, bb.Right(), x >= bb.Right()),
			Y: clampInterior(entryA.Y, bb.Y, bb.Bottom()),
		}
		corner := geom.Point{X: x, Y: entryB.Y}
		return buildPath(aIdx, bIdx, start, corner, entryB)
	}

	// Column interior to b and clear of a: leave a sideways, then turn
	// toward b's facing wall.
	if x, ok := clearColumn(bb, ab); ok {
		entryA := geom.Point{
			X: facingWall(ab.X, ab.Right(), x >= ab.Right()),
			Y: clampInterior(bb.Y, ab.Y, ab.Bottom()),
		}
		start := entryA.Add(outward(x >= ab.Right()), 0)
		entryB := geom.Point{X: x, Y: facingWall(bb.Y, bb.Bottom(), !down)}
		corner := geom.Point{X: x, Y: entryA.Y}
		return buildPath(aIdx, bIdx, start, corner, entryB)
	}

	// Each room's interior band lies inside the other room's span, which
	// only happens for rooms three or four tiles wide. Run straight through
	// the sliver between the facing walls.
	lo, hi := max(ab.X, bb.X), min(ab.Right(), bb.Right())-1
	col := b.Center().X
	if col < lo {
		col = lo
	}
	if col > hi {
		col = hi
	}
	return straightCorridor(a, b, aIdx, bIdx, col, false)
}

// straightCorridor routes along a single shared row (horizontal) or column
// (vertical), from one tile outside room a up to one tile short of room b's
// facing wall.
func straightCorridor(a, b world.Room, aIdx, bIdx int, band int, horizontal bool) world.Corridor {
	ac, bc := a.Center(), b.Center()

	var entryA, entryB geom.Point
	if horizontal {
		entryA = geom.Point{X: facingWall(a.Bounds.X, a.Bounds.Right(), bc.X >= ac.X), Y: band}
		entryB = geom.Point{X: facingWall(b.Bounds.X, b.Bounds.Right(), ac.X >= bc.X), Y: band}
	} else {
		entryA = geom.Point{X: band, Y: facingWall(a.Bounds.Y, a.Bounds.Bottom(), bc.Y >= ac.Y)}
		entryB = geom.Point{X: band, Y: facingWall(b.Bounds.Y, b.Bounds.Bottom(), ac.Y >= bc.Y)}
	}
	start := stepOutward(entryA, a.Bounds, bc, horizontal)

	return buildPath(aIdx, bIdx, start, start, entryB)
}

// buildPath emits the two axis-aligned segments start->corner->entryB,
// stopping one tile short of entryB. A corner equal to start degenerates to
// a single straight segment.
func buildPath(aIdx, bIdx int, start, corner, entryB geom.Point) world.Corridor {
	path := newPathBuilder(geom.Manhattan(start, entryB) + 1)
	path.emit(start)
	walkSegment(start, corner, false, path.emit)
	walkSegment(corner, entryB, true, path.emit)
	return world.Corridor{A: aIdx, B: bIdx, Path: path.tiles}
}

// sharedInteriorBand intersects the interior bands of two wall-to-wall
// ranges [lo, hi) and returns the band value nearest preferred, excluding
// every corner tile. ok is false when the rooms share no interior band.
func sharedInteriorBand(lo1, hi1, lo2, hi2, preferred int) (int, bool) {
	lo := max(lo1, lo2) + 1
	hi := min(hi1, hi2) - 2
	if lo > hi {
		return 0, false
	}
	if preferred < lo {
		return lo, true
	}
	if preferred > hi {
		return hi, true
	}
	return preferred, true
}

// spansOverlap reports whether the ranges [lo1, hi1) and [lo2, hi2) share
// any tile.
func spansOverlap(lo1, hi1, lo2, hi2 int) bool {
	return max(lo1, lo2) < min(hi1, hi2)
}

// clearColumn returns a column interior to r and outside other's span,
// favoring the side nearest other.
func clearColumn(r, other geom.Rect) (int, bool) {
	lo, hi := r.X+1, r.Right()-2
	if left := min(hi, other.X-1); lo <= left {
		return left, true
	}
	if right := max(lo, other.Right()); right <= hi {
		return right, true
	}
	return 0, false
}

func transposeRoom(r world.Room) world.Room {
	return world.Room{Bounds: geom.Rect{
		X:      r.Bounds.Y,
		Y:      r.Bounds.X,
		Width:  r.Bounds.Height,
		Height: r.Bounds.Width,
	}}
}

func outward(positive bool) int {
	if positive {
		return 1
	}
	return -1
}

// boundaryEntry returns the perimeter tile of room nearest the given target
// along the relevant axis. horizontal selects the east or west wall by the
// sign of the center-to-center delta; otherwise the north or south wall.
// The cross coordinate is clamped to the wall's interior band.
func boundaryEntry(room geom.Rect, toward geom.Point, horizontal bool) geom.Point {
	c := room.Center()
	if horizontal {
		x := facingWall(room.X, room.Right(), toward.X >= c.X)
		return geom.Point{X: x, Y: clampInterior(toward.Y, room.Y, room.Bottom())}
	}
	y := facingWall(room.Y, room.Bottom(), toward.Y >= c.Y)
	return geom.Point{X: clampInterior(toward.X, room.X, room.Right()), Y: y}
}

// facingWall picks the near or far wall coordinate of a range [lo, hi).
func facingWall(lo, hi int, far bool) int {
	if far {
		return hi - 1
	}
	return lo
}

// clampInterior clamps v into the interior band of [lo, hi), excluding the
// first and last tile of the wall.
func clampInterior(v, lo, hi int) int {
	if v < lo+1 {
		return lo + 1
	}
	if v > hi-2 {
		return hi - 2
	}
	return v
}

// stepOutward moves one tile from the entry tile away from the room, in the
// direction of the first segment.
func stepOutward(entry geom.Point, room geom.Rect, toward geom.Point, horizontal bool) geom.Point {
	if horizontal {
		dir := geom.Sign(toward.X - room.Center().X)
		if dir == 0 {
			dir = 1
		}
		return entry.Add(dir, 0)
	}
	dir := geom.Sign(toward.Y - room.Center().Y)
	if dir == 0 {
		dir = 1
	}
	return entry.Add(0, dir)
}

// pathBuilder accumulates an ordered, duplicate-free tile list.
type pathBuilder struct {
	seen  mapset.Set[geom.Point]
	tiles []geom.Point
}

func newPathBuilder(capacity int) *pathBuilder {
	return &pathBuilder{
		seen:  mapset.New[geom.Point](),
		tiles: make([]geom.Point, 0, capacity),
	}
}

func (p *pathBuilder) emit(t geom.Point) {
	if p.seen.Has(t) {
		return
	}
	p.seen.Put(t)
	p.tiles = append(p.tiles, t)
}

// walkSegment emits the tiles of an axis-aligned segment from one tile past
// from up to and including to. With stopShort set, it instead stops once the
// next tile would be to, leaving the target itself unvisited.
//
// Termination is evaluated on distance-to-target, never on
// equality-after-increment: the step direction is the sign of the remaining
// delta, so the distance shrinks by one each iteration and the loop is
// bounded by the segment's manhattan length.
func walkSegment(from, to geom.Point, stopShort bool, emit func(geom.Point)) {
	step := geom.Point{X: geom.Sign(to.X - from.X), Y: geom.Sign(to.Y - from.Y)}
	cur := from
	for remaining := geom.Manhattan(from, to); remaining > 0; remaining-- {
		if stopShort && geom.Manhattan(cur, to) <= 1 {
			return
		}
		cur = cur.Add(step.X, step.Y)
		emit(cur)
	}
}
