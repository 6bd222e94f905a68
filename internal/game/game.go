package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/retrodungeon/internal/entity"
	"github.com/samdwyer/retrodungeon/internal/gamedata"
	"github.com/samdwyer/retrodungeon/internal/telemetry"
	"github.com/samdwyer/retrodungeon/internal/ui"
	"github.com/samdwyer/retrodungeon/internal/world"
)

const (
	baseEnemyCount = 5
	baseItemCount  = 3
	maxMessages    = 5
)

// floorItem is an item lying on the dungeon floor.
type floorItem struct {
	Item entity.ItemID
	Pos  world.Position
}

// Game holds the entire session state and drives the turn loop. One Game
// is one session; nothing is process-global, so tests run many in parallel.
type Game struct {
	cfg      Config
	renderer ui.Renderer

	rng       *rand.Rand
	generator world.Generator
	enemyReg  *gamedata.EnemyRegistry
	itemReg   *gamedata.ItemRegistry

	state      State
	player     *entity.Player
	dungeon    *world.Map
	enemies    []*entity.Enemy
	items      *entity.ItemArena
	floorItems []floorItem
	messages   []string

	nextEntityID entity.ID
	running      bool
}

// New creates a game instance. A nil renderer is allowed; Render becomes
// a no-op, which is how tests drive the loop headless.
func New(cfg Config, renderer ui.Renderer) (*Game, error) {
	enemyReg, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load bestiary: %w", err)
	}
	itemReg, err := gamedata.LoadItemRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var generator world.Generator
	switch cfg.Generator {
	case "", "room":
		generator = world.NewRoomGenerator(rng)
	case "bsp":
		generator = world.NewBSPGenerator(rng)
	default:
		return nil, fmt.Errorf("unknown generator %q", cfg.Generator)
	}

	return &Game{
		cfg:          cfg,
		renderer:     renderer,
		rng:          rng,
		generator:    generator,
		enemyReg:     enemyReg,
		itemReg:      itemReg,
		state:        StateMainMenu,
		items:        entity.NewItemArena(),
		nextEntityID: 1,
		running:      true,
	}, nil
}

// State returns the current game state.
func (g *Game) State() State { return g.state }

// Player returns the active player, or nil outside a game.
func (g *Game) Player() *entity.Player { return g.player }

// Messages returns the current message log, newest last.
func (g *Game) Messages() []string { return g.messages }

// Run executes the main loop: render, read one command, dispatch, tick.
// It returns after a quit command or when the input source dries up.
func (g *Game) Run(ctx context.Context, input ui.InputSource) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.session")
	span.SetAttributes(
		attribute.Int64("game.seed", g.cfg.Seed),
		attribute.String("game.generator", g.cfg.Generator),
	)

	g.NewGame(ctx, g.cfg.PlayerName)

	for g.running {
		g.Render()

		cmd := input.Next()
		switch cmd.Action {
		case ui.ActionQuit:
			g.running = false
		case ui.ActionMove:
			if g.state == StatePlaying {
				g.HandleMovement(ctx, cmd.Dir)
			}
		case ui.ActionSave:
			if g.state == StatePlaying {
				if err := g.SaveGame(g.cfg.SaveFile); err != nil {
					g.addMessage("Save failed: " + err.Error())
				} else {
					g.addMessage("Game saved.")
				}
			}
		case ui.ActionLoad:
			// Nothing leaves GameOver, not even a load.
			if g.state != StateGameOver {
				if err := g.LoadGame(ctx, g.cfg.SaveFile); err != nil {
					g.addMessage("Load failed: " + err.Error())
				} else {
					g.addMessage("Game loaded.")
				}
			}
		}

		g.Update()
	}

	span.SetAttributes(attribute.String("game.final_state", g.state.String()))
	span.End()

	g.Shutdown()
	return nil
}

// NewGame starts a fresh session for the named player.
func (g *Game) NewGame(ctx context.Context, playerName string) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.new_game")
	defer span.End()

	g.player = entity.NewPlayer(g.nextID(), playerName, world.Position{X: 5, Y: 5})
	g.dungeon = g.generator.Generate(ctx, g.cfg.Width, g.cfg.Height)
	g.player.Pos = g.dungeon.Entry()

	g.spawnEnemies(baseEnemyCount)
	g.spawnItems(baseItemCount)

	g.state = StatePlaying
	g.messages = nil
	g.addMessage("Welcome to the dungeon, " + playerName + "!")

	span.SetAttributes(
		attribute.String("player.name", playerName),
		attribute.Int("player.start_x", g.player.Pos.X),
		attribute.Int("player.start_y", g.player.Pos.Y),
		attribute.Int("enemy.count", len(g.enemies)),
	)
}

// HandleMovement applies one movement turn: the step itself, then combat
// if an enemy occupies the destination, then a level transition if it is
// the staircase. Movement is never blocked; walls are observed, not
// enforced.
func (g *Game) HandleMovement(ctx context.Context, dir entity.Direction) {
	if g.player == nil || g.dungeon == nil {
		return
	}

	g.player.Move(dir)
	x, y := g.player.Pos.X, g.player.Pos.Y

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.turn")
	defer span.End()
	span.SetAttributes(
		attribute.String("move.dir", dir.String()),
		attribute.Bool("move.into_wall", g.dungeon.TileAt(x, y).Type == world.TileWall),
	)

	if enemy := g.enemyAt(g.player.Pos); enemy != nil {
		g.HandleCombat(ctx, enemy)
	}

	if g.dungeon.TileAt(x, y).Type == world.TileStairsDown {
		g.NextLevel(ctx)
	}
}

// NextLevel descends one dungeon level: fresh map, fresh enemies scaled
// by depth, more items. The floor-item list carries over.
func (g *Game) NextLevel(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.next_level")
	defer span.End()

	g.player.DungeonLevel++
	g.dungeon = g.generator.Generate(ctx, g.cfg.Width, g.cfg.Height)
	g.player.Pos = g.dungeon.Entry()

	g.enemies = nil
	g.spawnEnemies(baseEnemyCount + g.player.DungeonLevel)
	g.spawnItems(baseItemCount)

	g.addMessage(fmt.Sprintf("You descend to dungeon level %d", g.player.DungeonLevel))

	span.SetAttributes(
		attribute.Int("dungeon.level", g.player.DungeonLevel),
		attribute.Int("enemy.count", len(g.enemies)),
	)
}

// Update runs one world tick. Its single job is reaping: the first dead
// enemy found in iteration order is removed, at most one per tick.
func (g *Game) Update() {
	for i, e := range g.enemies {
		if !e.IsAlive() {
			g.enemies = append(g.enemies[:i], g.enemies[i+1:]...)
			break
		}
	}
}

// Render paints the current frame. Skipped entirely without a renderer or
// before the first map exists.
func (g *Game) Render() {
	if g.renderer == nil || g.dungeon == nil {
		return
	}

	frame := ui.Frame{
		Map:      g.dungeon,
		Messages: g.messages,
	}

	if g.player != nil {
		frame.Sprites = append(frame.Sprites, ui.Sprite{
			Pos:   g.player.Pos,
			Glyph: '@',
			Color: tcell.ColorYellow,
			Bold:  true,
		})
		frame.Status = fmt.Sprintf("Health: %d/%d  Level: %d  Gold: %d  Dungeon: %d",
			g.player.HP, g.player.MaxHP, g.player.Level, g.player.Gold, g.player.DungeonLevel)
	}

	for _, e := range g.enemies {
		if e.IsAlive() {
			frame.Sprites = append(frame.Sprites, ui.Sprite{
				Pos:   e.Pos,
				Glyph: e.Symbol,
				Color: e.Color(),
			})
		}
	}

	g.renderer.Render(frame)
}

// Shutdown releases the session state.
func (g *Game) Shutdown() {
	g.player = nil
	g.dungeon = nil
	g.enemies = nil
	g.floorItems = nil
	g.messages = nil
}

// addMessage appends to the message log, evicting the oldest entry when
// the log exceeds maxMessages.
func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[1:]
	}
}

// enemyAt returns the first alive enemy at the position, or nil.
func (g *Game) enemyAt(pos world.Position) *entity.Enemy {
	for _, e := range g.enemies {
		if e.Pos == pos && e.IsAlive() {
			return e
		}
	}
	return nil
}

// nextID allocates the next entity id.
func (g *Game) nextID() entity.ID {
	id := g.nextEntityID
	g.nextEntityID++
	return id
}

// spawnEnemies places count random enemies at random interior cells,
// drawing positions and types from the generator's random source so a
// seed reproduces the whole level.
func (g *Game) spawnEnemies(count int) {
	for i := 0; i < count; i++ {
		pos := world.Position{
			X: 1 + g.rng.Intn(g.cfg.Width-2),
			Y: 1 + g.rng.Intn(g.cfg.Height-2),
		}
		def := g.enemyReg.SpawnRandom(g.rng)
		g.enemies = append(g.enemies, entity.NewEnemy(g.nextID(), def, pos))
	}
}

// spawnItems drops count health potions on the floor at random interior
// cells.
func (g *Game) spawnItems(count int) {
	def := g.itemReg.GetByID("health_potion")
	if def == nil {
		return
	}
	for i := 0; i < count; i++ {
		pos := world.Position{
			X: 1 + g.rng.Intn(g.cfg.Width-2),
			Y: 1 + g.rng.Intn(g.cfg.Height-2),
		}
		id := g.items.Add(entity.NewItemFromDef(def))
		g.floorItems = append(g.floorItems, floorItem{Item: id, Pos: pos})
	}
}
