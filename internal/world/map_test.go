package world

import "testing"

func TestSetTileCanonicalPairs(t *testing.T) {
	tests := []struct {
		tileType TileType
		symbol   rune
		walkable bool
	}{
		{TileFloor, '.', true},
		{TileWall, '#', false},
		{TileDoor, '+', true},
		{TileStairsUp, '<', true},
		{TileStairsDown, '>', true},
		{TileTrap, '^', true},
	}

	m := NewMap(10, 10)
	for _, tt := range tests {
		m.SetTile(4, 4, tt.tileType)
		got := m.TileAt(4, 4)
		if got.Type != tt.tileType {
			t.Errorf("TileAt after SetTile(%v): type = %v, want %v", tt.tileType, got.Type, tt.tileType)
		}
		if got.Symbol != tt.symbol {
			t.Errorf("TileAt after SetTile(%v): symbol = %q, want %q", tt.tileType, got.Symbol, tt.symbol)
		}
		if got.Walkable != tt.walkable {
			t.Errorf("TileAt after SetTile(%v): walkable = %v, want %v", tt.tileType, got.Walkable, tt.walkable)
		}
	}
}

func TestNewMapStartsAsWalls(t *testing.T) {
	m := NewMap(8, 6)
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			tile := m.TileAt(x, y)
			if tile.Type != TileWall || tile.Walkable {
				t.Fatalf("cell (%d,%d) = %+v, want wall", x, y, tile)
			}
		}
	}
	if m.StairsDown() != InvalidPosition {
		t.Errorf("new map stairs = %v, want InvalidPosition", m.StairsDown())
	}
}

func TestOutOfBoundsQueries(t *testing.T) {
	m := NewMap(10, 10)
	m.SetTile(5, 5, TileFloor)

	outside := []Position{
		{-1, 0}, {0, -1}, {10, 0}, {0, 10}, {-5, -5}, {100, 100},
	}

	for _, p := range outside {
		if m.IsValidPosition(p.X, p.Y) {
			t.Errorf("IsValidPosition(%d,%d) = true, want false", p.X, p.Y)
		}
		if m.IsWalkable(p.X, p.Y) {
			t.Errorf("IsWalkable(%d,%d) = true, want false", p.X, p.Y)
		}
		if got := m.TileAt(p.X, p.Y); got.Type != TileWall {
			t.Errorf("TileAt(%d,%d) = %v, want wall", p.X, p.Y, got.Type)
		}
	}
}

func TestSetTileOutOfBoundsIsNoOp(t *testing.T) {
	m := NewMap(4, 4)
	m.SetTile(-1, 0, TileFloor)
	m.SetTile(0, -1, TileFloor)
	m.SetTile(4, 0, TileFloor)
	m.SetTile(0, 4, TileFloor)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if m.TileAt(x, y).Type != TileWall {
				t.Errorf("cell (%d,%d) changed by out-of-bounds SetTile", x, y)
			}
		}
	}
}

func TestClearResetsEverything(t *testing.T) {
	m := NewMap(6, 6)
	m.SetTile(2, 2, TileFloor)
	m.SetTile(3, 3, TileStairsDown)
	m.stairsDown = Position{X: 3, Y: 3}

	m.Clear()

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if m.TileAt(x, y).Type != TileWall {
				t.Errorf("cell (%d,%d) not wall after Clear", x, y)
			}
		}
	}
	if m.StairsDown() != InvalidPosition {
		t.Errorf("stairs after Clear = %v, want InvalidPosition", m.StairsDown())
	}
}

func TestRoomGeometry(t *testing.T) {
	r := Room{X: 4, Y: 4, Width: 6, Height: 4}

	cx, cy := r.Center()
	if cx != 7 || cy != 6 {
		t.Errorf("Center() = (%d,%d), want (7,6)", cx, cy)
	}

	if !r.Contains(4, 4) || !r.Contains(9, 7) {
		t.Error("Contains should include corners inside the room")
	}
	if r.Contains(10, 4) || r.Contains(4, 8) {
		t.Error("Contains should exclude cells past the far edges")
	}

	if !r.Intersects(Room{X: 8, Y: 6, Width: 4, Height: 4}) {
		t.Error("overlapping rooms should intersect")
	}
	if r.Intersects(Room{X: 20, Y: 20, Width: 3, Height: 3}) {
		t.Error("distant rooms should not intersect")
	}
}
