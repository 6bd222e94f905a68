package gamedata

import "github.com/gdamore/tcell/v2"

// EnemyDef defines an enemy type loaded from JSON.
//
// HP and MaxHP are distinct fields: the bestiary ships the dragon with
// hp 0 and maxHp 200, so it spawns already dead.
type EnemyDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "goblin")
	Name        string `json:"name"`        // Display name (e.g., "Goblin")
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "g")
	Color       string `json:"color"`       // Hex color code (e.g., "#00FF00")
	HP          int    `json:"hp"`          // Hit points at spawn
	MaxHP       int    `json:"maxHp"`       // Hit point ceiling
	Attack      int    `json:"attack"`      // Base attack power
	Defense     int    `json:"defense"`     // Base defense value
	ExpReward   int    `json:"expReward"`   // Experience granted on kill
	GoldReward  int    `json:"goldReward"`  // Gold granted on kill
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return rune(e.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
