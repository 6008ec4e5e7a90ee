package systems

import (
	"github.com/automoto/chain/components"
	cfg "github.com/automoto/chain/config"
	"github.com/automoto/chain/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// projectileMargin is how far past the level edge a shot may travel before it
// is discarded.
const projectileMargin = 100

// UpdateProjectiles moves shots, grows strikes and expires both.
func UpdateProjectiles(ecs *ecs.ECS) {
	var expired []*donburi.Entry

	// Cache level dimensions outside the loop
	var levelWidth, levelHeight float64
	if level, ok := components.Level.First(ecs.World); ok {
		levelData := components.Level.Get(level)
		levelWidth, levelHeight = levelData.Width, levelData.Height
	}

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		// Straight line movement, no gravity
		obj.MoveTo(obj.X+physics.SpeedX, obj.Y+physics.SpeedY)

		if levelWidth > 0 {
			if obj.X < -projectileMargin || obj.X > levelWidth+projectileMargin ||
				obj.Y < -projectileMargin || obj.Y > levelHeight+projectileMargin {
				expired = append(expired, e)
				return
			}
		}

		if tickLifetime(e) {
			expired = append(expired, e)
		}
	})

	tags.Effect.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		effect := components.Effect.Get(e)
		if effect.Kind == components.EffectStrike {
			growStrike(effect, components.Object.Get(e))
		}
		if tickLifetime(e) {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		markDead(e, false)
	}
}

// growStrike extends the bolt upward from its target point until it reaches
// full height.
func growStrike(effect *components.EffectData, obj *components.ObjectData) {
	if effect.Striking {
		effect.Height = min(cfg.Spell.StrikeMaxHeight, effect.Height+cfg.Spell.StrikeGrowRate)
		if effect.Height >= cfg.Spell.StrikeMaxHeight {
			effect.Striking = false
		}
	}
	obj.H = effect.Height
	obj.MoveTo(effect.X-effect.Width/2, effect.TargetY-effect.Height)
}

// tickLifetime counts down the entity's lifetime and reports whether it ran out.
func tickLifetime(e *donburi.Entry) bool {
	life := components.AutoDestroy.Get(e)
	life.FramesRemaining--
	return life.FramesRemaining <= 0
}
