package factory

import (
	"github.com/automoto/chain/archetypes"
	"github.com/automoto/chain/components"
	cfg "github.com/automoto/chain/config"
	"github.com/automoto/chain/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	newObject(ecs, player, x, y, float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight), tags.ResolvPlayer)
	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: 1, Y: 1},
		Mode:      components.ModeLevel,
		LastSafeX: x,
		LastSafeY: y,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Magic.SetValue(player, components.MagicData{
		Current: cfg.Player.Magic,
		Max:     cfg.Player.Magic,
	})
	components.MeleeAttack.SetValue(player, components.MeleeAttackData{
		HitEntities: make(map[donburi.Entity]bool),
	})
	components.Spellbook.SetValue(player, components.SpellbookData{Selected: components.SpellShield})

	return player
}
