package scenes

import (
	"bytes"
	"testing"

	cfg "github.com/automoto/chain/config"
	"github.com/automoto/chain/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exitAtStart is a level the player finishes on its first tick.
func exitAtStart(name string) leveldata.Spec {
	spec := flatLevel()
	spec.Name = name
	spec.Exit = &leveldata.Rect{X: 32, Y: 100, W: 32, H: 32}
	return spec
}

func TestNewGameNoLevels(t *testing.T) {
	_, err := NewGame(nil)
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestGameProgression(t *testing.T) {
	cfg.Reset()
	game, err := NewGame([]leveldata.Spec{exitAtStart("one"), exitAtStart("two")})
	require.NoError(t, err)
	assert.Equal(t, GamePlaying, game.State())

	game.Scene().ApplyPlayerStats(PlayerStats{Health: 3, MaxHealth: 5, Magic: 2, MaxMagic: 4, Score: 42})

	require.NoError(t, game.Update(cfg.Actions{}))
	assert.Equal(t, GameLevelComplete, game.State())
	assert.Equal(t, 0, game.LevelIndex())

	require.NoError(t, game.Update(cfg.Actions{}))
	assert.Equal(t, 1, game.LevelIndex())
	assert.Equal(t, "two", game.Scene().Name())
	assert.Equal(t, GameWon, game.State())
	assert.True(t, game.Done())
	assert.Equal(t, PlayerStats{Health: 3, MaxHealth: 5, Magic: 2, MaxMagic: 4, Score: 42}, game.Scene().PlayerStats())

	tickBefore := game.Scene().Tick()
	require.NoError(t, game.Update(cfg.Actions{}))
	assert.Equal(t, tickBefore, game.Scene().Tick(), "a finished game ignores updates")
}

func TestGameBossLevelWins(t *testing.T) {
	cfg.Reset()
	boss := exitAtStart("boss")
	boss.Exit = nil
	boss.Boss = true
	boss.Enemies = []leveldata.Placement{{Type: "cannon", X: 500, Y: 152}}
	game, err := NewGame([]leveldata.Spec{boss, exitAtStart("after")})
	require.NoError(t, err)

	require.NoError(t, game.Update(cfg.Actions{}))
	assert.Equal(t, GamePlaying, game.State(), "a boss level needs its enemies gone")

	require.NoError(t, game.Update(cfg.Actions{}.With(cfg.ActionSkipLevel)))
	assert.Equal(t, GameWon, game.State())
	assert.Equal(t, 0, game.LevelIndex())
}

func TestGameFallPenalty(t *testing.T) {
	cfg.Reset()
	spec := flatLevel()
	spec.PlayerStart = leveldata.Point{X: 32, Y: 0}
	spec.Tiles = []leveldata.TileRect{{X: 600, Y: 200, W: 32, H: 32}}

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	game, err := NewGame([]leveldata.Spec{spec}, WithLogger(logger))
	require.NoError(t, err)

	for range 100 {
		require.NoError(t, game.Update(cfg.Actions{}))
		if game.Falls() > 0 {
			break
		}
	}
	require.Equal(t, 1, game.Falls())
	p := game.Scene().Player()
	assert.Equal(t, 3, p.Health)
	assert.Equal(t, cfg.Player.InvulnFrames, p.Invulnerable)
	assert.Equal(t, 0.0, p.Bounds.Y, "respawned at the last safe spot")
	assert.Equal(t, GamePlaying, game.State())
	assert.Contains(t, buf.String(), "fall penalty")

	for i := 0; i < 1000 && !game.Done(); i++ {
		require.NoError(t, game.Update(cfg.Actions{}))
	}
	assert.Equal(t, GameOver, game.State())
	assert.Equal(t, cfg.Player.Health, game.Falls())
	assert.Equal(t, 0, game.Scene().Player().Health)
	assert.Contains(t, buf.String(), "player death")
}

func TestGameStateString(t *testing.T) {
	assert.Equal(t, "playing", GamePlaying.String())
	assert.Equal(t, "level_complete", GameLevelComplete.String())
	assert.Equal(t, "game_over", GameOver.String())
	assert.Equal(t, "won", GameWon.String())
}
