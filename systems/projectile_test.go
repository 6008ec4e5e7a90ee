package systems

import (
	"testing"

	"github.com/automoto/chain/components"
	cfg "github.com/automoto/chain/config"
	"github.com/automoto/chain/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestUpdateProjectilesLifetime(t *testing.T) {
	w := newTestWorld(t, 2000, 480)
	ball := factory.CreateFireball(w, 100, 100, true)

	runTicks(w, cfg.Spell.FireballLifetime-1, UpdateProjectiles)
	assert.False(t, ball.HasComponent(components.Death))
	assert.InDelta(t, 100+8*float64(cfg.Spell.FireballLifetime-1), components.Object.Get(ball).Rect().CenterX(), 1e-9)

	UpdateProjectiles(w)
	assert.True(t, ball.HasComponent(components.Death))
	assert.False(t, components.Death.Get(ball).Killed)

	UpdateDeaths(w)
	assert.False(t, ball.Valid())
}

func TestUpdateProjectilesLeavesLevel(t *testing.T) {
	w := newTestWorld(t, 320, 240)
	ball := factory.CreateFireball(w, 300, 100, true)

	runTicks(w, 20, UpdateProjectiles)
	assert.True(t, ball.HasComponent(components.Death), "discarded once 100px past the edge")
}

func TestUpdateProjectilesGrowsStrike(t *testing.T) {
	w := newTestWorld(t, 640, 480)
	strike := factory.CreateStrike(w, 200, 300)
	effect := components.Effect.Get(strike)
	obj := components.Object.Get(strike)

	UpdateProjectiles(w)
	assert.Equal(t, 25.0, effect.Height)
	assert.Equal(t, 275.0, obj.Y)
	assert.Equal(t, 25.0, obj.H)
	assert.Equal(t, 180.0, obj.X)

	runTicks(w, 11, UpdateProjectiles)
	assert.Equal(t, cfg.Spell.StrikeMaxHeight, effect.Height)
	assert.False(t, effect.Striking)
	assert.Equal(t, 0.0, obj.Y)

	UpdateProjectiles(w)
	assert.Equal(t, cfg.Spell.StrikeMaxHeight, effect.Height, "stops at full height")

	runTicks(w, cfg.Spell.StrikeLifetime-13, UpdateProjectiles)
	assert.True(t, strike.HasComponent(components.Death))
}
