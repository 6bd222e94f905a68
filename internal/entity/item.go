package entity

import (
	"github.com/samdwyer/retrodungeon/internal/gamedata"
)

// ItemKind tags how an item's Power field is interpreted.
type ItemKind int

const (
	ItemPotion ItemKind = iota // Power is a heal amount
	ItemWeapon                 // Power is bonus damage
	ItemArmor                  // Power is bonus defense
	ItemTreasure
)

// String returns the item kind name.
func (k ItemKind) String() string {
	switch k {
	case ItemPotion:
		return "potion"
	case ItemWeapon:
		return "weapon"
	case ItemArmor:
		return "armor"
	case ItemTreasure:
		return "treasure"
	default:
		return "unknown"
	}
}

// KindFromDefType maps an item definition's type string to its kind tag.
// Unknown strings default to treasure, which has no active effect.
func KindFromDefType(t string) ItemKind {
	switch t {
	case "potion":
		return ItemPotion
	case "weapon":
		return ItemWeapon
	case "armor":
		return ItemArmor
	default:
		return ItemTreasure
	}
}

// ItemID indexes an item inside its arena.
type ItemID int

// Item is an immutable item record. Records never change after creation;
// inventory and floor lists share them by ItemID.
type Item struct {
	Name   string
	Kind   ItemKind
	Symbol rune
	Power  int
	Value  int
}

// NewItemFromDef builds an item record from a definition.
func NewItemFromDef(def *gamedata.ItemDef) Item {
	return Item{
		Name:   def.Name,
		Kind:   KindFromDefType(def.Type),
		Symbol: def.GlyphRune(),
		Power:  def.Power,
		Value:  def.Value,
	}
}

// ItemArena owns every item record created during a session. Holding
// indices instead of pointers removes any ambiguity about who may mutate
// a shared item: nobody can, records are only ever added.
type ItemArena struct {
	items []Item
}

// NewItemArena creates an empty arena.
func NewItemArena() *ItemArena {
	return &ItemArena{}
}

// Add stores a record and returns its id.
func (a *ItemArena) Add(it Item) ItemID {
	a.items = append(a.items, it)
	return ItemID(len(a.items) - 1)
}

// Get returns the record for an id. The second result is false for ids
// the arena never issued.
func (a *ItemArena) Get(id ItemID) (Item, bool) {
	if id < 0 || int(id) >= len(a.items) {
		return Item{}, false
	}
	return a.items[id], true
}

// Len returns the number of records in the arena.
func (a *ItemArena) Len() int {
	return len(a.items)
}
