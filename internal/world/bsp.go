package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/retrodungeon/internal/telemetry"
)

const (
	minRoomSize = 8  // Minimum room dimension
	maxRoomSize = 15 // Maximum room dimension
	minLeafSize = 10 // Minimum BSP leaf size before stopping split
)

// BSPGenerator carves multiple rooms via binary space partitioning and
// connects them with L-shaped corridors. Drop-in replacement for
// RoomGenerator when a richer layout is wanted.
type BSPGenerator struct {
	rng *rand.Rand
}

// NewBSPGenerator creates a generator drawing from rng. A nil rng is
// replaced with a time-seeded source.
func NewBSPGenerator(rng *rand.Rand) *BSPGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &BSPGenerator{rng: rng}
}

// bspNode represents a node in the BSP tree.
type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
	room          *Room
}

// isLeaf returns true if this node has no children.
func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// Generate builds the BSP layout. The entry point is the first room's
// center; the descending staircase lands in the last room carved.
func (g *BSPGenerator) Generate(ctx context.Context, width, height int) *Map {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	m := NewMap(width, height)

	root := &bspNode{
		x:      1,
		y:      1,
		width:  width - 2,
		height: height - 2,
	}

	g.splitNode(root)
	g.createRooms(m, root)
	g.connectRooms(m, root)
	g.placeStairsAndEntry(m)

	span.SetAttributes(
		attribute.String("dungeon.generator", "bsp"),
		attribute.Int("dungeon.width", width),
		attribute.Int("dungeon.height", height),
		attribute.Int("dungeon.room_count", len(m.rooms)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return m
}

// splitNode recursively splits a BSP node.
func (g *BSPGenerator) splitNode(node *bspNode) {
	// Stop if too small to split
	if node.width < minLeafSize*2 && node.height < minLeafSize*2 {
		return
	}

	// Determine split direction
	var splitHorizontally bool
	if node.width > node.height && node.width >= minLeafSize*2 {
		splitHorizontally = false // Split vertically (left/right)
	} else if node.height >= minLeafSize*2 {
		splitHorizontally = true // Split horizontally (top/bottom)
	} else if node.width >= minLeafSize*2 {
		splitHorizontally = false
	} else {
		return // Can't split
	}

	var splitPos int
	if splitHorizontally {
		lo := minLeafSize
		hi := node.height - minLeafSize
		if hi <= lo {
			return
		}
		splitPos = lo + g.rng.Intn(hi-lo+1)
	} else {
		lo := minLeafSize
		hi := node.width - minLeafSize
		if hi <= lo {
			return
		}
		splitPos = lo + g.rng.Intn(hi-lo+1)
	}

	if splitHorizontally {
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPos}
		node.right = &bspNode{x: node.x, y: node.y + splitPos, width: node.width, height: node.height - splitPos}
	} else {
		node.left = &bspNode{x: node.x, y: node.y, width: splitPos, height: node.height}
		node.right = &bspNode{x: node.x + splitPos, y: node.y, width: node.width - splitPos, height: node.height}
	}

	g.splitNode(node.left)
	g.splitNode(node.right)
}

// createRooms creates rooms in leaf nodes of the BSP tree.
func (g *BSPGenerator) createRooms(m *Map, node *bspNode) {
	if node == nil {
		return
	}

	if node.isLeaf() {
		roomWidth := minRoomSize + g.rng.Intn(min(maxRoomSize-minRoomSize+1, node.width-minRoomSize+1))
		roomHeight := minRoomSize + g.rng.Intn(min(maxRoomSize-minRoomSize+1, node.height-minRoomSize+1))

		if roomWidth > node.width-2 {
			roomWidth = node.width - 2
		}
		if roomHeight > node.height-2 {
			roomHeight = node.height - 2
		}
		if roomWidth < minRoomSize || roomHeight < minRoomSize {
			return // Skip if too small
		}

		roomX := node.x + 1 + g.rng.Intn(node.width-roomWidth-1)
		roomY := node.y + 1 + g.rng.Intn(node.height-roomHeight-1)

		room := Room{X: roomX, Y: roomY, Width: roomWidth, Height: roomHeight}
		node.room = &room
		m.rooms = append(m.rooms, room)

		g.carveRoom(m, room)
	} else {
		g.createRooms(m, node.left)
		g.createRooms(m, node.right)
	}
}

// carveRoom sets all tiles within the room to floor.
func (g *BSPGenerator) carveRoom(m *Map, room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			if x > 0 && x < m.width-1 && y > 0 && y < m.height-1 {
				m.SetTile(x, y, TileFloor)
			}
		}
	}
}

// connectRooms connects rooms with corridors.
func (g *BSPGenerator) connectRooms(m *Map, node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}

	g.connectRooms(m, node.left)
	g.connectRooms(m, node.right)

	leftRoom := g.getRoom(node.left)
	rightRoom := g.getRoom(node.right)

	if leftRoom != nil && rightRoom != nil {
		g.carveCorridor(m, *leftRoom, *rightRoom)
	}
}

// getRoom returns a room from a subtree (any room will do).
func (g *BSPGenerator) getRoom(node *bspNode) *Room {
	if node == nil {
		return nil
	}

	if node.room != nil {
		return node.room
	}

	if room := g.getRoom(node.left); room != nil {
		return room
	}
	return g.getRoom(node.right)
}

// carveCorridor creates a corridor between two rooms.
func (g *BSPGenerator) carveCorridor(m *Map, room1, room2 Room) {
	x1, y1 := room1.Center()
	x2, y2 := room2.Center()

	if g.rng.Intn(2) == 0 {
		g.carveHorizontalTunnel(m, x1, x2, y1)
		g.carveVerticalTunnel(m, y1, y2, x2)
	} else {
		g.carveVerticalTunnel(m, y1, y2, x1)
		g.carveHorizontalTunnel(m, x1, x2, y2)
	}
}

func (g *BSPGenerator) carveHorizontalTunnel(m *Map, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if x > 0 && x < m.width-1 && y > 0 && y < m.height-1 {
			m.SetTile(x, y, TileFloor)
		}
	}
}

func (g *BSPGenerator) carveVerticalTunnel(m *Map, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if x > 0 && x < m.width-1 && y > 0 && y < m.height-1 {
			m.SetTile(x, y, TileFloor)
		}
	}
}

// placeStairsAndEntry picks the staircase cell and the party entry point.
// Entry goes in the first room, stairs in the last, so a descent crosses
// the level.
func (g *BSPGenerator) placeStairsAndEntry(m *Map) {
	if len(m.rooms) == 0 {
		// Degenerate map; leave stairs invalid and enter at the center.
		m.entry = Position{X: m.width / 2, Y: m.height / 2}
		return
	}

	first := m.rooms[0]
	ex, ey := first.Center()
	m.entry = Position{X: ex, Y: ey}

	last := m.rooms[len(m.rooms)-1]
	stairs := Position{
		X: last.X + g.rng.Intn(last.Width),
		Y: last.Y + g.rng.Intn(last.Height),
	}
	m.SetTile(stairs.X, stairs.Y, TileStairsDown)
	m.stairsDown = stairs
}
