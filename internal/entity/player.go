package entity

import (
	"github.com/samdwyer/retrodungeon/internal/world"
)

// ID uniquely identifies an entity within one game session. IDs are
// allocated from a monotonic counter and never reused.
type ID uint64

// inventoryBound is the length checked before an insert. The check is
// `len <= inventoryBound`, which admits a 21st item.
const inventoryBound = 20

// Player is the hero. Exactly one exists while a game is active.
type Player struct {
	ID           ID
	Name         string
	Pos          world.Position
	HP           int
	MaxHP        int
	Attack       int
	Defense      int
	Level        int
	Experience   int
	Gold         int
	DungeonLevel int
	Inventory    []ItemID
}

// NewPlayer creates a level-1 player at the given position.
func NewPlayer(id ID, name string, pos world.Position) *Player {
	return &Player{
		ID:           id,
		Name:         name,
		Pos:          pos,
		HP:           100,
		MaxHP:        100,
		Attack:       5,
		Defense:      2,
		Level:        1,
		Experience:   0,
		Gold:         0,
		DungeonLevel: 1,
	}
}

// IsAlive returns true while the player has HP remaining.
func (p *Player) IsAlive() bool { return p.HP > 0 }

// TakeDamage subtracts the given amount from HP. Non-positive amounts are
// ignored. The field itself may go negative; aliveness only looks at > 0.
func (p *Player) TakeDamage(amount int) {
	if amount > 0 {
		p.HP -= amount
	}
}

// Heal raises HP by the given amount, clamped at MaxHP.
func (p *Player) Heal(amount int) {
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// AddItem appends an item reference to the inventory. Returns false when
// the inventory is full.
func (p *Player) AddItem(id ItemID) bool {
	if len(p.Inventory) <= inventoryBound {
		p.Inventory = append(p.Inventory, id)
		return true
	}
	return false
}

// Move applies one step in the given direction. Movement legality is the
// caller's responsibility; Move always reports success.
func (p *Player) Move(dir Direction) bool {
	dx, dy := dir.Delta()
	p.Pos.X += dx
	p.Pos.Y += dy
	return true
}
