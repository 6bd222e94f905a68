package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/retrodungeon/internal/gamedata"
	"github.com/samdwyer/retrodungeon/internal/world"
)

// EnemyType enumerates the seven bestiary variants.
type EnemyType int

const (
	EnemyGoblin EnemyType = iota
	EnemyOrc
	EnemySkeleton
	EnemyZombie
	EnemyDragon
	EnemyRat
	EnemySpider
)

// String returns the enemy type name.
func (t EnemyType) String() string {
	switch t {
	case EnemyGoblin:
		return "Goblin"
	case EnemyOrc:
		return "Orc"
	case EnemySkeleton:
		return "Skeleton"
	case EnemyZombie:
		return "Zombie"
	case EnemyDragon:
		return "Dragon"
	case EnemyRat:
		return "Rat"
	case EnemySpider:
		return "Spider"
	default:
		return "Unknown"
	}
}

// DefID returns the bestiary identifier for data lookup.
func (t EnemyType) DefID() string {
	switch t {
	case EnemyGoblin:
		return "goblin"
	case EnemyOrc:
		return "orc"
	case EnemySkeleton:
		return "skeleton"
	case EnemyZombie:
		return "zombie"
	case EnemyDragon:
		return "dragon"
	case EnemyRat:
		return "rat"
	case EnemySpider:
		return "spider"
	default:
		return "unknown"
	}
}

// TypeFromDefID maps a bestiary identifier back to its enum tag.
func TypeFromDefID(id string) EnemyType {
	switch id {
	case "goblin":
		return EnemyGoblin
	case "orc":
		return EnemyOrc
	case "skeleton":
		return EnemySkeleton
	case "zombie":
		return EnemyZombie
	case "dragon":
		return EnemyDragon
	case "rat":
		return EnemyRat
	case "spider":
		return EnemySpider
	default:
		return EnemyType(-1)
	}
}

// Enemy is a hostile creature. Stats come straight from its definition;
// the dragon's def carries hp 0, so it spawns dead under IsAlive.
type Enemy struct {
	ID         ID
	Type       EnemyType
	Name       string
	Symbol     rune
	Pos        world.Position
	HP         int
	MaxHP      int
	Attack     int
	Defense    int
	ExpReward  int
	GoldReward int

	def *gamedata.EnemyDef
}

// NewEnemy creates an enemy from a bestiary definition at the given position.
func NewEnemy(id ID, def *gamedata.EnemyDef, pos world.Position) *Enemy {
	return &Enemy{
		ID:         id,
		Type:       TypeFromDefID(def.ID),
		Name:       def.Name,
		Symbol:     def.GlyphRune(),
		Pos:        pos,
		HP:         def.HP,
		MaxHP:      def.MaxHP,
		Attack:     def.Attack,
		Defense:    def.Defense,
		ExpReward:  def.ExpReward,
		GoldReward: def.GoldReward,
		def:        def,
	}
}

// IsAlive returns true while the enemy has HP remaining.
func (e *Enemy) IsAlive() bool { return e.HP > 0 }

// TakeDamage subtracts the given amount from HP. Non-positive amounts are
// ignored. The field itself may go negative; aliveness only looks at > 0.
func (e *Enemy) TakeDamage(amount int) {
	if amount > 0 {
		e.HP -= amount
	}
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	if e.def != nil {
		return e.def.TCellColor()
	}
	return tcell.ColorWhite
}
