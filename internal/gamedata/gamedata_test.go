package gamedata

import (
	"math/rand"
	"testing"
)

func TestLoadEnemies(t *testing.T) {
	enemies, err := LoadEnemies()
	if err != nil {
		t.Fatalf("Failed to load enemies: %v", err)
	}

	if len(enemies) != 7 {
		t.Errorf("Expected 7 enemies, got %d", len(enemies))
	}

	expectedIDs := map[string]bool{
		"goblin": false, "orc": false, "skeleton": false, "zombie": false,
		"dragon": false, "rat": false, "spider": false,
	}
	for _, e := range enemies {
		if _, ok := expectedIDs[e.ID]; ok {
			expectedIDs[e.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected enemy %q not found", id)
		}
	}
}

func TestEnemyStatTable(t *testing.T) {
	registry := MustLoadEnemyRegistry()

	tests := []struct {
		id                  string
		glyph               rune
		hp, maxHP, atk, def int
	}{
		{"goblin", 'g', 20, 20, 5, 2},
		{"orc", 'o', 40, 40, 10, 5},
		{"skeleton", 's', 25, 25, 8, 3},
		{"zombie", 'z', 35, 35, 6, 8},
		{"dragon", 'D', 0, 200, 30, 20}, // spawns at hp 0
		{"rat", 'r', 5, 5, 2, 0},
		{"spider", 'x', 15, 15, 6, 1},
	}

	for _, tt := range tests {
		def := registry.GetByID(tt.id)
		if def == nil {
			t.Errorf("%s missing from registry", tt.id)
			continue
		}
		if def.GlyphRune() != tt.glyph {
			t.Errorf("%s glyph = %q, want %q", tt.id, def.GlyphRune(), tt.glyph)
		}
		if def.HP != tt.hp || def.MaxHP != tt.maxHP {
			t.Errorf("%s HP = %d/%d, want %d/%d", tt.id, def.HP, def.MaxHP, tt.hp, tt.maxHP)
		}
		if def.Attack != tt.atk || def.Defense != tt.def {
			t.Errorf("%s atk/def = %d/%d, want %d/%d", tt.id, def.Attack, def.Defense, tt.atk, tt.def)
		}
		if def.ExpReward != 10 || def.GoldReward != 5 {
			t.Errorf("%s rewards = %d/%d, want 10/5", tt.id, def.ExpReward, def.GoldReward)
		}
	}
}

func TestEnemyRegistrySpawnDeterminism(t *testing.T) {
	registry := MustLoadEnemyRegistry()

	if registry.Count() != 7 {
		t.Errorf("Expected 7 enemy types, got %d", registry.Count())
	}

	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 20; i++ {
		id1 := registry.SpawnRandom(rng1).ID
		id2 := registry.SpawnRandom(rng2).ID
		if id1 != id2 {
			t.Errorf("Spawn %d mismatch: %s != %s", i, id1, id2)
		}
	}
}

func TestItemRegistry(t *testing.T) {
	registry, err := LoadItemRegistry()
	if err != nil {
		t.Fatalf("Failed to load item registry: %v", err)
	}

	potion := registry.GetByID("health_potion")
	if potion == nil {
		t.Fatal("health_potion not found by ID")
	}
	if potion.Name != "Health Potion" {
		t.Errorf("Expected name 'Health Potion', got %q", potion.Name)
	}
	if potion.Type != "potion" || potion.GlyphRune() != '!' {
		t.Errorf("potion type/glyph = %q/%q, want potion/!", potion.Type, potion.GlyphRune())
	}
	if potion.Power != 20 || potion.Value != 25 {
		t.Errorf("potion power/value = %d/%d, want 20/25", potion.Power, potion.Value)
	}

	if registry.GetByID("vorpal_blade") != nil {
		t.Error("unknown item id should return nil")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#FFFFFF", true},
		{"", false},
		{"#FFF", false},
		{"#GGGGGG", false},
		{"#FF00000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) unexpected error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) expected error, got none", tt.input)
		}
	}
}
