package game

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/retrodungeon/internal/entity"
	"github.com/samdwyer/retrodungeon/internal/telemetry"
	"github.com/samdwyer/retrodungeon/internal/world"
)

// Save file layout, three lines of whitespace-delimited text:
//
//	line 1: player name (must not contain a newline)
//	line 2: health maxHealth attackPower defense
//	line 3: level experience gold dungeonLevel
//
// No header, no version, no checksum. Dungeon topology, inventory and
// floor items are not persisted; load regenerates a fresh level.

// SaveGame writes the player record to path, truncating any existing file.
func (g *Game) SaveGame(path string) error {
	if g.player == nil {
		return fmt.Errorf("no active player to save")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open save file: %w", err)
	}

	_, err = fmt.Fprintf(f, "%s\n%d %d %d %d\n%d %d %d %d\n",
		g.player.Name,
		g.player.HP, g.player.MaxHP, g.player.Attack, g.player.Defense,
		g.player.Level, g.player.Experience, g.player.Gold, g.player.DungeonLevel)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to write save file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close save file: %w", err)
	}
	return nil
}

// LoadGame reads a player record from path and enters Playing with a
// freshly generated level. The loaded player keeps the saved stats but
// gets a new entity id; position resets to the fixed start cell.
func (g *Game) LoadGame(ctx context.Context, path string) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.load")
	defer span.End()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open save file: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	name, err := r.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read player name: %w", err)
	}
	name = strings.TrimRight(name, "\r\n")

	var hp, maxHP, atk, def, lvl, exp, gold, dlvl int
	if _, err := fmt.Fscan(r, &hp, &maxHP, &atk, &def, &lvl, &exp, &gold, &dlvl); err != nil {
		return fmt.Errorf("malformed save file: %w", err)
	}

	player := entity.NewPlayer(g.nextID(), name, world.Position{X: 5, Y: 5})
	player.HP = hp
	player.MaxHP = maxHP
	player.Attack = atk
	player.Defense = def
	player.Level = lvl
	player.Experience = exp
	player.Gold = gold
	player.DungeonLevel = dlvl
	g.player = player

	g.dungeon = g.generator.Generate(ctx, g.cfg.Width, g.cfg.Height)
	g.spawnEnemies(baseEnemyCount)

	g.state = StatePlaying

	span.SetAttributes(
		attribute.String("player.name", name),
		attribute.Int("dungeon.level", dlvl),
	)
	return nil
}
