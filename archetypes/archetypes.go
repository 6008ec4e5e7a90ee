package archetypes

import (
	"github.com/automoto/chain/components"
	cfg "github.com/automoto/chain/config"
	"github.com/automoto/chain/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Tile = newArchetype(
		tags.Tile,
		components.Tile,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Magic,
		components.Physics,
		components.State,
		components.MeleeAttack,
		components.Spellbook,
		components.Animation,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Physics,
		components.State,
		components.Animation,
		components.Flash,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Physics,
		components.AutoDestroy,
		components.Animation,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Effect,
		components.Object,
		components.AutoDestroy,
		components.Animation,
	)
	Item = newArchetype(
		tags.Item,
		components.Item,
		components.Object,
		components.Animation,
	)
	FinishLine = newArchetype(
		tags.FinishLine,
		components.FinishLine,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
		components.LevelComplete,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus cs.
func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
