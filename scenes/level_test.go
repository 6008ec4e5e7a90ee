package scenes

import (
	"testing"

	"github.com/automoto/chain/components"
	cfg "github.com/automoto/chain/config"
	"github.com/automoto/chain/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatLevel is a 640x240 strip with ground at y=200 and an exit at the far end.
func flatLevel() leveldata.Spec {
	spec := leveldata.Spec{
		Name:        "flat",
		Width:       640,
		Height:      240,
		PlayerStart: leveldata.Point{X: 32, Y: 100},
		Exit:        &leveldata.Rect{X: 576, Y: 136, W: 32, H: 64},
	}
	for x := 0.0; x < 640; x += 32 {
		spec.Tiles = append(spec.Tiles, leveldata.TileRect{X: x, Y: 200, W: 32, H: 32, Walkable: true})
	}
	return spec
}

func startedScene(t *testing.T, spec leveldata.Spec) *LevelScene {
	t.Helper()
	cfg.Reset()
	scene, err := NewLevelScene(spec)
	require.NoError(t, err)
	scene.Start()
	return scene
}

func tick(t *testing.T, s *LevelScene, n int, held ...cfg.ActionID) {
	t.Helper()
	flags := cfg.Actions{}.With(held...)
	for range n {
		require.NoError(t, s.Update(flags))
	}
}

func TestNewLevelSceneErrors(t *testing.T) {
	empty := flatLevel()
	empty.Tiles = nil
	_, err := NewLevelScene(empty)
	assert.ErrorIs(t, err, ErrEmptyLevel)

	unknown := flatLevel()
	unknown.Enemies = []leveldata.Placement{{Type: "dragon", X: 100, Y: 100}}
	_, err = NewLevelScene(unknown)
	assert.ErrorIs(t, err, ErrUnknownArchetype)
}

func TestUpdateBeforeStart(t *testing.T) {
	scene, err := NewLevelScene(flatLevel())
	require.NoError(t, err)
	assert.ErrorIs(t, scene.Update(cfg.Actions{}), ErrNotStarted)

	scene.Start()
	scene.Start()
	assert.NoError(t, scene.Update(cfg.Actions{}))
	assert.Equal(t, 1, scene.Tick())
}

func TestPlayerLandsAndWalks(t *testing.T) {
	scene := startedScene(t, flatLevel())

	tick(t, scene, 60)
	p := scene.Player()
	assert.True(t, p.OnGround)
	assert.Equal(t, 200.0, p.Bounds.Bottom())
	assert.Equal(t, "idle", p.State)

	tick(t, scene, 10, cfg.ActionMoveRight)
	p = scene.Player()
	assert.Equal(t, 72.0, p.Bounds.X)
	assert.Equal(t, "running", p.State)
	assert.True(t, p.OnGround)
}

func TestPlayerJump(t *testing.T) {
	scene := startedScene(t, flatLevel())
	tick(t, scene, 60)

	tick(t, scene, 1, cfg.ActionJump)
	p := scene.Player()
	assert.InDelta(t, -11.5, p.VY, 1e-9, "gravity applies on the jump frame")
	assert.Equal(t, "jump", p.State)

	tick(t, scene, 60)
	p = scene.Player()
	assert.True(t, p.OnGround)
	assert.Equal(t, 200.0, p.Bounds.Bottom())
}

func TestReachingExitCompletesLevel(t *testing.T) {
	spec := flatLevel()
	spec.Exit = &leveldata.Rect{X: 96, Y: 136, W: 32, H: 64}
	scene := startedScene(t, spec)

	for i := 0; i < 120 && !scene.Completed(); i++ {
		tick(t, scene, 1, cfg.ActionMoveRight)
	}
	require.True(t, scene.Completed())

	x := scene.Player().Bounds.X
	tick(t, scene, 10, cfg.ActionMoveRight)
	assert.Equal(t, x, scene.Player().Bounds.X, "a finished level no longer advances")
}

func TestSkipLevel(t *testing.T) {
	scene := startedScene(t, flatLevel())
	tick(t, scene, 1, cfg.ActionSkipLevel)
	assert.True(t, scene.Completed())
}

func TestFell(t *testing.T) {
	spec := flatLevel()
	spec.PlayerStart = leveldata.Point{X: 32, Y: 0}
	spec.Tiles = []leveldata.TileRect{{X: 600, Y: 200, W: 32, H: 32}}
	scene := startedScene(t, spec)

	tick(t, scene, 10)
	assert.False(t, scene.Fell())
	tick(t, scene, 60)
	assert.True(t, scene.Fell())

	scene.RespawnPlayer()
	assert.False(t, scene.Fell())
	assert.Equal(t, 0.0, scene.Player().Bounds.Y)
}

func TestLevelSceneSnapshots(t *testing.T) {
	spec := leveldata.Demo()
	scene := startedScene(t, spec)
	tick(t, scene, 1)

	assert.Len(t, scene.Enemies(), 3)
	assert.Len(t, scene.Items(), 3)
	assert.Empty(t, scene.Projectiles())
	assert.Equal(t, 3, scene.LiveEnemies())

	require.True(t, scene.CastSpell(components.SpellFireball))
	tick(t, scene, 1)
	shots := scene.Projectiles()
	require.Len(t, shots, 1)
	assert.False(t, shots[0].Hostile)
	assert.Equal(t, 2, scene.Player().Magic)
}

func TestBossLevelClearedByDefeatingBoss(t *testing.T) {
	spec := flatLevel()
	spec.Boss = true
	spec.Exit = nil
	spec.PlayerStart = leveldata.Point{X: 110, Y: 168}
	spec.Enemies = []leveldata.Placement{{Type: "cannon", X: 100, Y: 152}}
	scene := startedScene(t, spec)

	tick(t, scene, 1, cfg.ActionToggleInvincible)
	require.True(t, scene.Player().InvincibleMode)
	enemies := scene.Enemies()
	require.Len(t, enemies, 1)
	assert.Equal(t, "intro", enemies[0].StateName)

	tick(t, scene, cfg.Enemy.Boss.IntroDuration-2)
	assert.False(t, scene.Completed(), "the descending boss cannot be touched")
	assert.Equal(t, 1, scene.LiveEnemies())

	for i := 0; i < 10 && !scene.Completed(); i++ {
		tick(t, scene, 1)
	}
	assert.True(t, scene.Completed())
	assert.Empty(t, scene.Enemies())
	assert.Equal(t, 500, scene.Player().Score)
}

func TestPlayerStatsCarryOver(t *testing.T) {
	scene := startedScene(t, flatLevel())
	scene.ApplyPlayerStats(PlayerStats{Health: 9, MaxHealth: 6, Magic: 1, MaxMagic: 5, Score: 42})

	stats := scene.PlayerStats()
	assert.Equal(t, PlayerStats{Health: 6, MaxHealth: 6, Magic: 1, MaxMagic: 5, Score: 42}, stats)
}
