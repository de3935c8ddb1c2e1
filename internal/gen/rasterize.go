package gen

import (
	"github.com/samdwyer/dungeonforge/internal/geom"
	"github.com/samdwyer/dungeonforge/internal/world"
)

// eightNeighbors is the 8-connected neighborhood used to thicken corridor
// walls.
var eightNeighbors = [8]geom.Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// Rasterize stamps rooms and corridors into a tile grid sized to the floor
// bounds. All Floor stamping happens before any Wall thickening so a wall
// pass can never block a room/corridor junction; Wall only ever writes cells
// that are still Empty. Rasterizing the same model twice yields identical
// grids.
func Rasterize(bounds geom.Rect, rooms []world.Room, corridors []world.Corridor) world.TileGrid {
	grid := world.NewTileGrid(bounds.Width, bounds.Height)

	for _, room := range rooms {
		fillRect(grid, bounds, room.Bounds, world.TileFloor)
	}
	for _, c := range corridors {
		for _, p := range c.Path {
			grid.Set(p.X-bounds.X, p.Y-bounds.Y, world.TileFloor)
		}
	}

	for _, room := range rooms {
		wallBorder(grid, bounds, room.Bounds)
	}
	for _, c := range corridors {
		for _, p := range c.Path {
			for _, d := range eightNeighbors {
				wallIfEmpty(grid, p.X+d.X-bounds.X, p.Y+d.Y-bounds.Y)
			}
		}
	}

	return grid
}

func fillRect(grid world.TileGrid, bounds, r geom.Rect, t world.TileType) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			grid.Set(x-bounds.X, y-bounds.Y, t)
		}
	}
}

// wallBorder marks the one-cell ring around a room Wall wherever still Empty.
func wallBorder(grid world.TileGrid, bounds, r geom.Rect) {
	ring := geom.Rect{X: r.X - 1, Y: r.Y - 1, Width: r.Width + 2, Height: r.Height + 2}
	for y := ring.Y; y < ring.Bottom(); y++ {
		for x := ring.X; x < ring.Right(); x++ {
			if r.Contains(geom.Point{X: x, Y: y}) {
				continue
			}
			wallIfEmpty(grid, x-bounds.X, y-bounds.Y)
		}
	}
}

func wallIfEmpty(grid world.TileGrid, x, y int) {
	if grid.InBounds(x, y) && grid.At(x, y) == world.TileEmpty {
		grid.Set(x, y, world.TileWall)
	}
}
