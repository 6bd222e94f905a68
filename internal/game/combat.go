package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/retrodungeon/internal/entity"
	"github.com/samdwyer/retrodungeon/internal/telemetry"
)

// HandleCombat runs one melee exchange. The player strikes for raw attack
// power; enemy defense is not subtracted. A surviving enemy counters for
// max(1, attack - player defense), so an exchange always costs the player
// at least one hit point. A kill pays the enemy's rewards; the corpse
// stays in the world until the next Update tick reaps it.
func (g *Game) HandleCombat(ctx context.Context, enemy *entity.Enemy) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.exchange")
	defer span.End()

	damage := g.player.Attack
	enemy.TakeDamage(damage)
	g.addMessage(fmt.Sprintf("You hit %s for %d damage!", enemy.Name, damage))

	span.SetAttributes(
		attribute.String("enemy.type", enemy.Type.String()),
		attribute.Int("player.damage_dealt", damage),
	)

	if enemy.IsAlive() {
		enemyDmg := enemy.Attack - g.player.Defense
		if enemyDmg < 1 {
			enemyDmg = 1
		}
		g.player.TakeDamage(enemyDmg)
		g.addMessage(fmt.Sprintf("%s hits you for %d damage!", enemy.Name, enemyDmg))
		span.SetAttributes(attribute.Int("enemy.damage_dealt", enemyDmg))

		if !g.player.IsAlive() {
			g.state = StateGameOver
			g.addMessage("You have been slain!")
			span.SetAttributes(attribute.Bool("player.died", true))
		}
	} else {
		g.player.Experience += enemy.ExpReward
		g.player.Gold += enemy.GoldReward
		g.addMessage(fmt.Sprintf("You defeated %s! +%d XP", enemy.Name, enemy.ExpReward))
		span.SetAttributes(attribute.Bool("enemy.died", true))
	}
}
