// Package world provides map storage and dungeon generation.
package world

// TileType identifies the kind of terrain occupying a map cell.
type TileType int

const (
	TileFloor TileType = iota
	TileWall
	TileDoor
	TileStairsUp
	TileStairsDown
	TileTrap
)

// Tile is a single map cell. The symbol and walkable flag are always the
// canonical pair for the tile's type; they are written together via Map.SetTile.
type Tile struct {
	Type     TileType
	Symbol   rune
	Walkable bool
}

// TileFor returns the canonical tile for the given type. Unknown types
// resolve to a wall.
func TileFor(t TileType) Tile {
	switch t {
	case TileFloor:
		return Tile{Type: TileFloor, Symbol: '.', Walkable: true}
	case TileDoor:
		return Tile{Type: TileDoor, Symbol: '+', Walkable: true}
	case TileStairsUp:
		return Tile{Type: TileStairsUp, Symbol: '<', Walkable: true}
	case TileStairsDown:
		return Tile{Type: TileStairsDown, Symbol: '>', Walkable: true}
	case TileTrap:
		return Tile{Type: TileTrap, Symbol: '^', Walkable: true}
	default:
		return Tile{Type: TileWall, Symbol: '#', Walkable: false}
	}
}
