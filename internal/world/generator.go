package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/retrodungeon/internal/telemetry"
)

const (
	// Default map dimensions
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Generator produces a map for the requested dimensions. Implementations
// draw from a caller-supplied random source; callers reuse the same source
// for enemy and item placement, so a fixed seed reproduces an entire run.
type Generator interface {
	Generate(ctx context.Context, width, height int) *Map
}

// RoomGenerator carves a single rectangular room spanning the middle half
// of each dimension, with one descending staircase at a uniformly random
// cell inside it.
type RoomGenerator struct {
	rng *rand.Rand
}

// NewRoomGenerator creates a generator drawing from rng. A nil rng is
// replaced with a time-seeded source.
func NewRoomGenerator(rng *rand.Rand) *RoomGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RoomGenerator{rng: rng}
}

// Generate builds the single-room layout. The map's entry point is the
// cell one step inside the room's top-left corner.
func (g *RoomGenerator) Generate(ctx context.Context, width, height int) *Map {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	m := NewMap(width, height)

	roomX := width / 4
	roomY := height / 4
	roomW := width / 2
	roomH := height / 2

	for y := roomY; y < roomY+roomH && y < height-1; y++ {
		for x := roomX; x < roomX+roomW && x < width-1; x++ {
			m.SetTile(x, y, TileFloor)
		}
	}

	stairs := Position{
		X: roomX + g.rng.Intn(roomW),
		Y: roomY + g.rng.Intn(roomH),
	}
	m.SetTile(stairs.X, stairs.Y, TileStairsDown)
	m.stairsDown = stairs

	m.entry = Position{X: width/4 + 1, Y: height/4 + 1}
	m.rooms = []Room{{X: roomX, Y: roomY, Width: roomW, Height: roomH}}

	span.SetAttributes(
		attribute.String("dungeon.generator", "room"),
		attribute.Int("dungeon.width", width),
		attribute.Int("dungeon.height", height),
		attribute.Int("dungeon.stairs_x", stairs.X),
		attribute.Int("dungeon.stairs_y", stairs.Y),
	)

	return m
}
