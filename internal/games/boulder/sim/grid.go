package sim

// Grid represents the board as a rectangular grid of tiles.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int    // Width of the grid
	H     int    // Height of the grid
	Cells []Tile // Flat array of tiles, length W*H
}

// NewGrid creates a grid with every cell set to Air.
func NewGrid(w, h int) *Grid {
	// Air is the zero Tile, so a fresh slice is already all air.
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]Tile, w*h),
	}
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Get returns the tile at the given coordinate.
// Out-of-bounds reads report an Unbreakable tile, so the edge of the grid
// behaves like a wall for movement and like a floor for gravity.
func (g *Grid) Get(c Coord) Tile {
	if !g.InBounds(c) {
		return Unbreakable()
	}
	return g.Cells[g.index(c)]
}

// Set replaces the tile at the given coordinate.
// Out-of-bounds writes are ignored.
func (g *Grid) Set(c Coord, t Tile) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = t
	}
}

// Clear replaces the tile at the given coordinate with Air.
func (g *Grid) Clear(c Coord) {
	g.Set(c, Air())
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		Cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, t := range g.Cells {
		if t != other.Cells[i] {
			return false
		}
	}
	return true
}

// Count returns the number of tiles of the given kind.
func (g *Grid) Count(k Kind) int {
	count := 0
	for _, t := range g.Cells {
		if t.Kind == k {
			count++
		}
	}
	return count
}

// Find returns the coordinates of all tiles of the given kind, row by row.
func (g *Grid) Find(k Kind) []Coord {
	coords := make([]Coord, 0)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Cells[y*g.W+x].Kind == k {
				coords = append(coords, C(x, y))
			}
		}
	}
	return coords
}

// RemoveLocks replaces every lock matched by the key with Air.
// Returns the number of locks removed.
func (g *Grid) RemoveLocks(k KeyConfig) int {
	removed := 0
	for i, t := range g.Cells {
		if k.Removes(t) {
			g.Cells[i] = Air()
			removed++
		}
	}
	return removed
}
