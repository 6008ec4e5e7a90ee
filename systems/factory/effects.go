package factory

import (
	"github.com/automoto/chain/archetypes"
	"github.com/automoto/chain/components"
	cfg "github.com/automoto/chain/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateThunder spawns a radial burst centered on (cx, cy).
func CreateThunder(ecs *ecs.ECS, cx, cy float64) *donburi.Entry {
	e := archetypes.Effect.Spawn(ecs)

	size := cfg.Spell.ThunderSize
	newObject(ecs, e, cx-size/2, cy-size/2, size, size)
	components.Effect.SetValue(e, components.EffectData{
		Kind:        components.EffectBurst,
		Damage:      cfg.Spell.ThunderDamage,
		HitEntities: make(map[donburi.Entity]bool),
		CenterX:     cx,
		CenterY:     cy,
		Radius:      cfg.Spell.ThunderRadius,
	})
	components.AutoDestroy.SetValue(e, components.AutoDestroyData{FramesRemaining: cfg.Spell.ThunderLifetime})

	return e
}

// CreateStrike spawns a bolt at x that grows upward from targetY.
func CreateStrike(ecs *ecs.ECS, x, targetY float64) *donburi.Entry {
	e := archetypes.Effect.Spawn(ecs)

	width := cfg.Spell.StrikeWidth
	newObject(ecs, e, x-width/2, targetY, width, 0)
	components.Effect.SetValue(e, components.EffectData{
		Kind:        components.EffectStrike,
		Damage:      cfg.Spell.StrikeDamage,
		HitEntities: make(map[donburi.Entity]bool),
		X:           x,
		TargetY:     targetY,
		Width:       width,
		Striking:    true,
	})
	components.AutoDestroy.SetValue(e, components.AutoDestroyData{FramesRemaining: cfg.Spell.StrikeLifetime})

	return e
}
