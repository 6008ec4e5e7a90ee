package systems

import (
	"github.com/automoto/chain/components"
	"github.com/automoto/chain/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances presentation counters: the player's hurt flash and
// every animation frame. Enemy flashes count down with their AI.
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateAnimations(ecs)
}

func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(tags.Enemy) {
			return
		}
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

func updateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		components.Animation.Get(e).Frame++
	})
}

// TriggerDamageFlash starts the hurt flash on an entity.
func TriggerDamageFlash(e *donburi.Entry, frames int) {
	if !e.HasComponent(components.Flash) {
		return
	}
	components.Flash.Get(e).Duration = frames
}
