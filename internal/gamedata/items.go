package gamedata

// ItemDef defines an item type loaded from JSON. Power is interpreted by
// the type tag: heal amount for potions, damage for weapons, protection
// for armor. Value is the gold worth for any type.
type ItemDef struct {
	ID    string `json:"id"`    // Unique identifier (e.g., "health_potion")
	Name  string `json:"name"`  // Display name (e.g., "Health Potion")
	Type  string `json:"type"`  // One of "potion", "weapon", "armor", "treasure"
	Glyph string `json:"glyph"` // Single character for rendering (e.g., "!")
	Power int    `json:"power"` // Type-dependent magnitude
	Value int    `json:"value"` // Gold value
}

// GlyphRune returns the glyph as a rune for rendering.
func (i *ItemDef) GlyphRune() rune {
	if len(i.Glyph) == 0 {
		return '?'
	}
	return rune(i.Glyph[0])
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}
