package game

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds game configuration options. Precedence, lowest to highest:
// defaults, YAML config file, environment, command-line flags.
type Config struct {
	// Seed for random number generation. A seed of 0 means a time-derived
	// seed, so runs are only reproducible with an explicit seed.
	Seed int64 `yaml:"seed"`

	// Map dimensions.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// SaveFile is the path used by save and load.
	SaveFile string `yaml:"saveFile"`

	// PlayerName is the hero's name for a new game.
	PlayerName string `yaml:"playerName"`

	// Generator selects the map generator: "room" or "bsp".
	Generator string `yaml:"generator"`

	// PlainRender selects the raw ANSI renderer instead of tcell.
	PlainRender bool `yaml:"plainRender"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Seed:       0,
		Width:      80,
		Height:     24,
		SaveFile:   "retrodungeon.sav",
		PlayerName: "Adventurer",
		Generator:  "room",
	}
}

// LoadConfigFile overlays settings from a YAML file onto cfg.
func LoadConfigFile(path string, cfg *Config) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays RETRODUNGEON_* environment variables onto cfg.
// Unset variables leave the existing value alone.
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv("RETRODUNGEON_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid RETRODUNGEON_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("RETRODUNGEON_SAVE_FILE"); v != "" {
		cfg.SaveFile = v
	}
	if v := os.Getenv("RETRODUNGEON_PLAYER_NAME"); v != "" {
		cfg.PlayerName = v
	}
	if v := os.Getenv("RETRODUNGEON_GENERATOR"); v != "" {
		cfg.Generator = v
	}
	return nil
}
