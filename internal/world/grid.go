package world

// TileGrid is the rasterized floor layout. Cells is indexed [y][x] and every
// cell defaults to TileEmpty.
type TileGrid struct {
	Width  int
	Height int
	Cells  [][]TileType
}

// NewTileGrid allocates a grid of the given dimensions, all cells Empty.
func NewTileGrid(width, height int) TileGrid {
	cells := make([][]TileType, height)
	for y := range cells {
		cells[y] = make([]TileType, width)
	}
	return TileGrid{Width: width, Height: height, Cells: cells}
}

// At returns the tile at (x, y), or TileEmpty when out of bounds.
func (g TileGrid) At(x, y int) TileType {
	if !g.InBounds(x, y) {
		return TileEmpty
	}
	return g.Cells[y][x]
}

// Set writes the tile at (x, y). Out-of-bounds writes are ignored.
func (g TileGrid) Set(x, y int, t TileType) {
	if !g.InBounds(x, y) {
		return
	}
	g.Cells[y][x] = t
}

// InBounds returns true if (x, y) is a valid grid coordinate.
func (g TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Equal returns true if both grids have identical dimensions and cells.
func (g TileGrid) Equal(other TileGrid) bool {
	if g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if g.Cells[y][x] != other.Cells[y][x] {
				return false
			}
		}
	}
	return true
}
