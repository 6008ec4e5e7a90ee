package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/chain/config"
	"github.com/automoto/chain/scenes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadSpecsDefaults(t *testing.T) {
	specs, err := loadSpecs(nil)
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.False(t, specs[0].Boss)
	assert.True(t, specs[1].Boss)
}

func TestLoadSpecsFromFile(t *testing.T) {
	specs, err := loadSpecs([]string{filepath.Join("..", "shared", "leveldata", "testdata", "meadow.tmx")})
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, "Test Meadow", specs[0].Name)

	_, err = loadSpecs([]string{"missing.tmx"})
	assert.Error(t, err)
}

func TestSessionHeadlessDump(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	specs, err := loadSpecs(nil)
	require.NoError(t, err)
	game, err := scenes.NewGame(specs)
	require.NoError(t, err)
	script, err := ParseScript("right:30,jump+right:1,right:29")
	require.NoError(t, err)

	s := &session{game: game, script: script, limit: 120}
	require.NoError(t, runHeadless(s))
	assert.Equal(t, 120, s.ticks)
	assert.Equal(t, scenes.GamePlaying, game.State())

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, writeReport(path, newReport(game, s.ticks)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, "playing", out["state"])
	assert.Equal(t, "Demo Meadow", out["level"])
	assert.Equal(t, 120, out["ticks"])
	assert.Contains(t, out, "player")
}

func TestSessionStopsWhenGameEnds(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	specs, err := loadSpecs(nil)
	require.NoError(t, err)
	game, err := scenes.NewGame(specs)
	require.NoError(t, err)
	script, err := ParseScript("skip:1,wait:1")
	require.NoError(t, err)

	s := &session{game: game, script: script}
	require.NoError(t, runHeadless(s))
	assert.Equal(t, scenes.GameWon, game.State())
	assert.Equal(t, 1, game.LevelIndex())
}

func TestHeadlessCapsLoopingScript(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	config.C.TickRate = 1

	specs, err := loadSpecs(nil)
	require.NoError(t, err)
	game, err := scenes.NewGame(specs)
	require.NoError(t, err)
	script, err := ParseScript("wait:1")
	require.NoError(t, err)

	s := &session{game: game, script: script}
	require.NoError(t, runHeadless(s))
	assert.Equal(t, 60, s.ticks, "a looping script without --ticks stops at one minute")
}
