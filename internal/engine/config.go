package engine

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Goluxas/roguelike-tutorial/pkg/dungeon"
	"gopkg.in/yaml.v3"
)

// SpawnRule - how many creatures of one template every level gets.
type SpawnRule struct {
	Template string `yaml:"template"`
	PerLevel int    `yaml:"perLevel"`
	// MinLevel is the first (0-based) level the rule applies to.
	MinLevel int `yaml:"minLevel"`
}

// Config holds the engine start-up parameters.
type Config struct {
	// Seed - master seed. Terrain, spawns and every random roll of the
	// session derive from it.
	Seed int64 `yaml:"seed"`

	PlayerName string `yaml:"playerName"`

	Dungeon dungeon.Params `yaml:"dungeon"`
	Spawns  []SpawnRule    `yaml:"spawns"`

	// Templates adds creature templates or replaces built-in ones.
	Templates []dungeon.EntityTemplate `yaml:"templates"`

	// MaxTurnsPerRun stops a scheduler run that never reaches the player.
	MaxTurnsPerRun int `yaml:"maxTurnsPerRun"`
}

// NewConfig creates the default config (random seed).
func NewConfig() Config {
	return Config{
		Seed:       time.Now().UnixNano(),
		PlayerName: "player",
		Dungeon:    dungeon.DefaultParams(),
		Spawns: []SpawnRule{
			{Template: dungeon.Fungus.Name, PerLevel: 5},
			{Template: dungeon.Bat.Name, PerLevel: 5},
			{Template: dungeon.Newt.Name, PerLevel: 5},
		},
		MaxTurnsPerRun: 10000,
	}
}

// LoadConfig reads a YAML file over the defaults. Keys absent from the file
// keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the numbers the generator and spawner rely on.
func (c Config) Validate() error {
	d := c.Dungeon
	switch {
	case d.Width < 6 || d.Height < 6:
		return fmt.Errorf("dungeon must be at least 6x6, got %dx%d", d.Width, d.Height)
	case d.Depth < 1:
		return errors.New("dungeon needs at least one level")
	case d.MaxRooms < 1:
		return errors.New("maxRooms must be positive")
	case d.MinRoom < 3 || d.MaxRoom < d.MinRoom:
		return fmt.Errorf("room size range [%d, %d] is invalid", d.MinRoom, d.MaxRoom)
	case c.MaxTurnsPerRun < 0:
		return errors.New("maxTurnsPerRun cannot be negative")
	}
	for _, s := range c.Spawns {
		if s.Template == "" || s.PerLevel < 0 || s.MinLevel < 0 {
			return fmt.Errorf("invalid spawn rule %+v", s)
		}
	}
	return nil
}
