package rollcube

import "fmt"

// Coord is a tile position. X is the column axis (the cube's x offset,
// screen up/down); Z is the row axis (the cube's z offset, screen left/right).
type Coord struct {
	X int
	Z int
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Z)
}

// Span is an inclusive integer range.
type Span struct {
	Min, Max int
}

// Contains reports whether v lies within the span.
func (s Span) Contains(v int) bool {
	return v >= s.Min && v <= s.Max
}

// RowRange returns the z range covered by a grid of the given size.
// Even sizes cover [-size/2, size/2); odd sizes are symmetric.
func RowRange(size int) Span {
	half := size / 2
	if size%2 == 0 {
		return Span{Min: -half, Max: half - 1}
	}
	return Span{Min: -half, Max: half}
}

// ColRange returns the x range covered by a grid of the given size.
// Even sizes cover [-size/2+1, size/2]; odd sizes are symmetric.
func ColRange(size int) Span {
	half := size / 2
	if size%2 == 0 {
		return Span{Min: -half + 1, Max: half}
	}
	return Span{Min: -half, Max: half}
}

// Grid maps every tile coordinate to its visit count.
// A tile is cleared when its visit count is zero; counts cycle 0..colours.
type Grid struct {
	size    int
	colours int
	tiles   map[Coord]int
}

// Populate builds a size×size grid, drawing each tile's visit count
// uniformly from [0, colours]. Rows are filled outermost, columns inner,
// so a seeded source always yields the same board.
func Populate(size, colours int, src Source) *Grid {
	g := &Grid{
		size:    size,
		colours: colours,
		tiles:   make(map[Coord]int, size*size),
	}
	rows, cols := RowRange(size), ColRange(size)
	for z := rows.Min; z <= rows.Max; z++ {
		for x := cols.Min; x <= cols.Max; x++ {
			g.tiles[Coord{X: x, Z: z}] = src.UniformInt(0, colours)
		}
	}
	return g
}

// NewUniformGrid builds a grid with every tile set to visits.
// Useful for fixed boards and tests.
func NewUniformGrid(size, colours, visits int) *Grid {
	g := &Grid{
		size:    size,
		colours: colours,
		tiles:   make(map[Coord]int, size*size),
	}
	for _, c := range g.Coords() {
		g.tiles[c] = visits
	}
	return g
}

// Size returns the grid's side length.
func (g *Grid) Size() int {
	return g.size
}

// Colours returns the number of "on" states a tile cycles through.
func (g *Grid) Colours() int {
	return g.colours
}

// Len returns the number of tiles.
func (g *Grid) Len() int {
	return len(g.tiles)
}

// Has reports whether a tile exists at c.
func (g *Grid) Has(c Coord) bool {
	_, ok := g.tiles[c]
	return ok
}

// VisitCount returns the visit count at c, or 0 if there is no tile.
func (g *Grid) VisitCount(c Coord) int {
	return g.tiles[c]
}

// ToggleAt advances the tile at (x, z) one step through its cycle,
// wrapping colours back to 0. It returns the new count and whether a
// tile existed; a missing tile is left alone.
func (g *Grid) ToggleAt(x, z int) (int, bool) {
	c := Coord{X: x, Z: z}
	v, ok := g.tiles[c]
	if !ok {
		return 0, false
	}
	v++
	if v > g.colours {
		v = 0
	}
	g.tiles[c] = v
	return v, true
}

// Remaining counts tiles that are not cleared.
func (g *Grid) Remaining() int {
	n := 0
	for _, v := range g.tiles {
		if v != 0 {
			n++
		}
	}
	return n
}

// Coords returns all tile coordinates, rows outermost.
func (g *Grid) Coords() []Coord {
	rows, cols := RowRange(g.size), ColRange(g.size)
	coords := make([]Coord, 0, g.size*g.size)
	for z := rows.Min; z <= rows.Max; z++ {
		for x := cols.Min; x <= cols.Max; x++ {
			coords = append(coords, Coord{X: x, Z: z})
		}
	}
	return coords
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make(map[Coord]int, len(g.tiles))
	for c, v := range g.tiles {
		tiles[c] = v
	}
	return &Grid{size: g.size, colours: g.colours, tiles: tiles}
}

// Tiles returns a copy of the coordinate to visit-count mapping.
func (g *Grid) Tiles() map[Coord]int {
	return g.Clone().tiles
}
