package systems

import (
	"github.com/automoto/chain/components"
	cfg "github.com/automoto/chain/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ecs, input, playerEntry)
	})
}

func updateSinglePlayer(ecs *ecs.ECS, input *components.InputData, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	book := components.Spellbook.Get(playerEntry)

	if GetAction(input, cfg.ActionToggleInvincible).JustPressed {
		player.InvincibleMode = !player.InvincibleMode
	}
	if GetAction(input, cfg.ActionSkipLevel).JustPressed {
		ForceLevelComplete(ecs)
	}
	handleSpellSelection(input, book)

	if player.Mode == components.ModeOverworld {
		handleOverworldInput(input, player, components.Physics.Get(playerEntry))
	} else {
		handleLevelInput(ecs, input, playerEntry)
	}

	updatePlayerTimers(playerEntry)
	updatePlayerState(player, components.Physics.Get(playerEntry), components.MeleeAttack.Get(playerEntry), components.State.Get(playerEntry))
}

func handleSpellSelection(input *components.InputData, book *components.SpellbookData) {
	for slot, action := range cfg.SpellActions {
		if GetAction(input, action).JustPressed {
			book.Select(components.SpellID(slot))
		}
	}
	if GetAction(input, cfg.ActionNextSpell).JustPressed {
		book.Next()
	}
	if GetAction(input, cfg.ActionPrevSpell).JustPressed {
		book.Prev()
	}
}

func handleLevelInput(ecs *ecs.ECS, input *components.InputData, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	melee := components.MeleeAttack.Get(playerEntry)
	book := components.Spellbook.Get(playerEntry)

	// Horizontal movement is direct: no acceleration, no friction
	speed := cfg.Player.Speed * book.SpeedMultiplier()
	physics.SpeedX = 0
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		physics.SpeedX = -speed
		player.Direction.X = -1
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		physics.SpeedX = speed
		player.Direction.X = 1
	}

	if GetAction(input, cfg.ActionJump).JustPressed && physics.OnGround {
		physics.SpeedY = -cfg.Player.JumpSpeed * book.JumpMultiplier()
		physics.OnGround = false
	}

	if GetAction(input, cfg.ActionAttack).JustPressed && melee.Cooldown <= 0 {
		startAttack(melee, physics, GetAction(input, cfg.ActionMoveUp).Pressed, GetAction(input, cfg.ActionMoveDown).Pressed)
	}

	if GetAction(input, cfg.ActionCast).JustPressed {
		CastSpell(ecs, playerEntry, book.Selected)
	}
}

// startAttack begins a swing. Holding up slashes upward; holding down in the
// air stabs downward.
func startAttack(melee *components.MeleeAttackData, physics *components.PhysicsData, up, down bool) {
	melee.IsAttacking = true
	melee.FramesLeft = cfg.Player.AttackDuration
	melee.Cooldown = cfg.Player.AttackCooldown
	melee.Variant = components.AttackForward
	switch {
	case up:
		melee.Variant = components.AttackUp
	case down && !physics.OnGround:
		melee.Variant = components.AttackDown
	}
	clear(melee.HitEntities)
}

func handleOverworldInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	speed := cfg.Player.OverworldSpeed
	physics.SpeedX = 0
	physics.SpeedY = 0
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		physics.SpeedX = -speed
		player.Direction = components.Vector{X: -1}
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		physics.SpeedX = speed
		player.Direction = components.Vector{X: 1}
	}
	if GetAction(input, cfg.ActionMoveUp).Pressed {
		physics.SpeedY = -speed
		player.Direction = components.Vector{X: player.Direction.X, Y: -1}
	}
	if GetAction(input, cfg.ActionMoveDown).Pressed {
		physics.SpeedY = speed
		player.Direction = components.Vector{X: player.Direction.X, Y: 1}
	}
}

func updatePlayerTimers(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	melee := components.MeleeAttack.Get(playerEntry)

	if melee.Cooldown > 0 {
		melee.Cooldown--
	}
	if player.InvulnFrames > 0 {
		player.InvulnFrames--
	}
	if melee.IsAttacking {
		melee.FramesLeft--
		if melee.FramesLeft <= 0 {
			melee.IsAttacking = false
			melee.Variant = components.AttackForward
		}
	}
}

func updatePlayerState(player *components.PlayerData, physics *components.PhysicsData, melee *components.MeleeAttackData, state *components.StateData) {
	state.StateTimer++

	var next cfg.StateID
	switch {
	case player.Mode == components.ModeOverworld:
		next = cfg.Idle
		if physics.SpeedX != 0 || physics.SpeedY != 0 {
			next = cfg.Walk
		}
	case melee.IsAttacking:
		next = cfg.Attack
	case !physics.OnGround && physics.SpeedY < 0:
		next = cfg.Jump
	case !physics.OnGround:
		next = cfg.Fall
	case physics.SpeedX != 0:
		next = cfg.Running
	default:
		next = cfg.Idle
	}
	state.Transition(next)
}

// SetPlayerMode switches between side-scrolling and overworld movement.
// Velocity is cleared on every switch.
func SetPlayerMode(playerEntry *donburi.Entry, mode components.PlayerMode) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	player.Mode = mode
	physics.SpeedX = 0
	physics.SpeedY = 0
}
