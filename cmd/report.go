package cmd

import (
	"fmt"
	"os"

	"github.com/automoto/chain/scenes"
	"gopkg.in/yaml.v3"
)

// report is the state written by --dump.
type report struct {
	State      string `yaml:"state"`
	Level      string `yaml:"level"`
	LevelIndex int    `yaml:"level_index"`
	Ticks      int    `yaml:"ticks"`
	LevelTick  int    `yaml:"level_tick"`
	Falls      int    `yaml:"falls"`
	Camera     [2]int `yaml:"camera,flow"`

	Player      scenes.PlayerView       `yaml:"player"`
	Enemies     []scenes.EnemyView      `yaml:"enemies"`
	Projectiles []scenes.ProjectileView `yaml:"projectiles"`
	Effects     []scenes.EffectView     `yaml:"effects"`
	Items       []scenes.ItemView       `yaml:"items"`
}

func newReport(game *scenes.Game, ticks int) report {
	scene := game.Scene()
	camX, camY := scene.CameraOffset()
	return report{
		State:       game.State().String(),
		Level:       scene.Name(),
		LevelIndex:  game.LevelIndex(),
		Ticks:       ticks,
		LevelTick:   scene.Tick(),
		Falls:       game.Falls(),
		Camera:      [2]int{camX, camY},
		Player:      scene.Player(),
		Enemies:     scene.Enemies(),
		Projectiles: scene.Projectiles(),
		Effects:     scene.Effects(),
		Items:       scene.Items(),
	}
}

func writeReport(path string, r report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	logger.Info("report written", "path", path)
	return nil
}
