package world

// Position is an x,y coordinate pair. Copied by value everywhere.
type Position struct {
	X, Y int
}

// InvalidPosition marks a coordinate that points at nothing, such as the
// stairs location of a freshly cleared map.
var InvalidPosition = Position{X: -1, Y: -1}

// Map is a fixed-size grid of tiles. Dimensions never change after
// construction and every cell always holds a valid tile.
type Map struct {
	width, height int
	tiles         [][]Tile
	stairsDown    Position
	entry         Position
	rooms         []Room
}

// NewMap creates a map of the given dimensions filled with walls.
func NewMap(width, height int) *Map {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileFor(TileWall)
		}
	}

	return &Map{
		width:      width,
		height:     height,
		tiles:      tiles,
		stairsDown: InvalidPosition,
		entry:      InvalidPosition,
	}
}

// Width returns the horizontal cell count.
func (m *Map) Width() int { return m.width }

// Height returns the vertical cell count.
func (m *Map) Height() int { return m.height }

// IsValidPosition reports whether the coordinates fall inside the grid.
func (m *Map) IsValidPosition(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// IsWalkable reports whether the tile at the coordinates can be stepped on.
// Out-of-bounds coordinates are never walkable.
func (m *Map) IsWalkable(x, y int) bool {
	if !m.IsValidPosition(x, y) {
		return false
	}
	return m.tiles[y][x].Walkable
}

// TileAt returns the tile at the coordinates. Out-of-bounds coordinates
// return a wall.
func (m *Map) TileAt(x, y int) Tile {
	if !m.IsValidPosition(x, y) {
		return TileFor(TileWall)
	}
	return m.tiles[y][x]
}

// SetTile writes the canonical tile for the given type at the coordinates.
// Out-of-bounds writes are ignored.
func (m *Map) SetTile(x, y int, t TileType) {
	if !m.IsValidPosition(x, y) {
		return
	}
	m.tiles[y][x] = TileFor(t)
}

// Clear resets every cell to wall and invalidates the stairs location.
func (m *Map) Clear() {
	for y := range m.tiles {
		for x := range m.tiles[y] {
			m.tiles[y][x] = TileFor(TileWall)
		}
	}
	m.stairsDown = InvalidPosition
}

// StairsDown returns the location of the descending staircase, or
// InvalidPosition if the map has none.
func (m *Map) StairsDown() Position { return m.stairsDown }

// Entry returns the suggested starting cell chosen by the generator that
// produced this map.
func (m *Map) Entry() Position { return m.entry }

// Rooms returns the rooms carved by the generator, if it tracked any.
func (m *Map) Rooms() []Room { return m.rooms }
