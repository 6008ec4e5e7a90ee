package systems

import (
	"testing"

	"github.com/automoto/chain/components"
	cfg "github.com/automoto/chain/config"
	"github.com/automoto/chain/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestUpdatePlayerMovement(t *testing.T) {
	w := newTestWorld(t, 640, 480)
	player := factory.CreatePlayer(w, 100, 100)
	physics := components.Physics.Get(player)

	SetInput(w, cfg.Actions{}.With(cfg.ActionMoveLeft))
	UpdatePlayer(w)
	assert.Equal(t, -4.0, physics.SpeedX)
	assert.False(t, components.Player.Get(player).FacingRight())

	SetInput(w, cfg.Actions{})
	UpdatePlayer(w)
	assert.Equal(t, 0.0, physics.SpeedX, "no momentum")

	components.Spellbook.Get(player).Swift.Activate(10)
	SetInput(w, cfg.Actions{}.With(cfg.ActionMoveRight))
	UpdatePlayer(w)
	assert.Equal(t, 6.0, physics.SpeedX)
	assert.True(t, components.Player.Get(player).FacingRight())
}

func TestUpdatePlayerJump(t *testing.T) {
	w := newTestWorld(t, 640, 480)
	player := factory.CreatePlayer(w, 100, 100)
	physics := components.Physics.Get(player)

	SetInput(w, cfg.Actions{}.With(cfg.ActionJump))
	UpdatePlayer(w)
	assert.Equal(t, 0.0, physics.SpeedY, "cannot jump in the air")

	physics.OnGround = true
	SetInput(w, cfg.Actions{})
	UpdatePlayer(w)
	SetInput(w, cfg.Actions{}.With(cfg.ActionJump))
	UpdatePlayer(w)
	assert.Equal(t, -12.0, physics.SpeedY)
	assert.False(t, physics.OnGround)
	assert.Equal(t, cfg.Jump, components.State.Get(player).CurrentState)
}

func TestUpdatePlayerAttack(t *testing.T) {
	w := newTestWorld(t, 640, 480)
	player := factory.CreatePlayer(w, 100, 100)
	melee := components.MeleeAttack.Get(player)
	components.Physics.Get(player).OnGround = true

	SetInput(w, cfg.Actions{}.With(cfg.ActionAttack, cfg.ActionMoveUp))
	UpdatePlayer(w)
	assert.True(t, melee.IsAttacking)
	assert.Equal(t, components.AttackUp, melee.Variant)
	assert.Equal(t, cfg.Attack, components.State.Get(player).CurrentState)

	for range cfg.Player.AttackDuration - 1 {
		SetInput(w, cfg.Actions{})
		UpdatePlayer(w)
	}
	assert.False(t, melee.IsAttacking)

	SetInput(w, cfg.Actions{}.With(cfg.ActionAttack))
	UpdatePlayer(w)
	assert.False(t, melee.IsAttacking, "still cooling down")

	for range cfg.Player.AttackCooldown {
		SetInput(w, cfg.Actions{})
		UpdatePlayer(w)
	}
	SetInput(w, cfg.Actions{}.With(cfg.ActionAttack))
	UpdatePlayer(w)
	assert.True(t, melee.IsAttacking)
	assert.Equal(t, components.AttackForward, melee.Variant)
}

func TestDownAttackOnlyInAir(t *testing.T) {
	w := newTestWorld(t, 640, 480)
	player := factory.CreatePlayer(w, 100, 100)
	melee := components.MeleeAttack.Get(player)
	physics := components.Physics.Get(player)

	physics.OnGround = true
	startAttack(melee, physics, false, true)
	assert.Equal(t, components.AttackForward, melee.Variant)

	physics.OnGround = false
	startAttack(melee, physics, false, true)
	assert.Equal(t, components.AttackDown, melee.Variant)
}

func TestUpdatePlayerCheats(t *testing.T) {
	w := newTestWorld(t, 640, 480)
	player := factory.CreatePlayer(w, 100, 100)

	SetInput(w, cfg.Actions{}.With(cfg.ActionToggleInvincible))
	UpdatePlayer(w)
	assert.True(t, components.Player.Get(player).InvincibleMode)
	assert.False(t, IsLevelComplete(w))

	SetInput(w, cfg.Actions{}.With(cfg.ActionSkipLevel))
	UpdatePlayer(w)
	assert.True(t, components.Player.Get(player).InvincibleMode)
	assert.True(t, IsLevelComplete(w))
	assert.True(t, GetOrCreateLevelComplete(w).Forced)
}

func TestUpdatePlayerOverworld(t *testing.T) {
	w := newTestWorld(t, 640, 480)
	player := factory.CreatePlayer(w, 100, 100)
	SetPlayerMode(player, components.ModeOverworld)
	physics := components.Physics.Get(player)

	SetInput(w, cfg.Actions{}.With(cfg.ActionMoveUp, cfg.ActionMoveLeft))
	UpdatePlayer(w)
	assert.Equal(t, -3.0, physics.SpeedX)
	assert.Equal(t, -3.0, physics.SpeedY)
	assert.Equal(t, cfg.Walk, components.State.Get(player).CurrentState)

	SetInput(w, cfg.Actions{}.With(cfg.ActionJump))
	UpdatePlayer(w)
	assert.Equal(t, 0.0, physics.SpeedY, "no jumping in the overworld")
	assert.Equal(t, cfg.Idle, components.State.Get(player).CurrentState)
}
