package config

import (
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the YAML view of every configuration section. Keys absent from a
// tuning file keep their current values; map entries (enemy and item types)
// are replaced whole.
type Tuning struct {
	Game    Config        `yaml:"game"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Combat  CombatConfig  `yaml:"combat"`
	Spell   SpellConfig   `yaml:"spell"`
	Item    ItemConfig    `yaml:"item"`
	Camera  CameraConfig  `yaml:"camera"`
	Level   LevelConfig   `yaml:"level"`
}

// Current returns a copy of the active configuration.
func Current() Tuning {
	t := Tuning{
		Game:    *C,
		Physics: Physics,
		Player:  Player,
		Enemy:   Enemy,
		Combat:  Combat,
		Spell:   Spell,
		Item:    Item,
		Camera:  Camera,
		Level:   Level,
	}
	t.Enemy.Types = maps.Clone(Enemy.Types)
	t.Enemy.Aliases = maps.Clone(Enemy.Aliases)
	t.Item.Types = maps.Clone(Item.Types)
	return t
}

// Apply makes t the active configuration.
func Apply(t Tuning) {
	game := t.Game
	C = &game
	Physics = t.Physics
	Player = t.Player
	Enemy = t.Enemy
	Combat = t.Combat
	Spell = t.Spell
	Item = t.Item
	Camera = t.Camera
	Level = t.Level
}

// Reset restores the built-in defaults.
func Reset() {
	setDefaults()
}

// Load reads a YAML tuning file and overlays it on the active configuration.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := LoadBytes(data); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// LoadBytes overlays YAML tuning data on the active configuration. Nothing
// changes when the data fails to parse.
func LoadBytes(data []byte) error {
	t := Current()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return err
	}
	Apply(t)
	return nil
}

// Dump renders the active configuration as YAML.
func Dump() ([]byte, error) {
	return yaml.Marshal(Current())
}
