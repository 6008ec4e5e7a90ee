package systems

import (
	"github.com/automoto/chain/components"
	cfg "github.com/automoto/chain/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity for every body that falls.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) || inBossIntro(e) {
			return
		}
		if e.HasComponent(components.Player) && components.Player.Get(e).Mode == components.ModeOverworld {
			return
		}

		physics := components.Physics.Get(e)
		if physics.NoGravity {
			return
		}

		physics.SpeedY += physics.Gravity
		if physics.SpeedY > physics.MaxFallSpeed {
			physics.SpeedY = physics.MaxFallSpeed
		}
	})
}

// inBossIntro reports whether e is a boss still playing its descent.
func inBossIntro(e *donburi.Entry) bool {
	if !e.HasComponent(components.Boss) {
		return false
	}
	return components.State.Get(e).CurrentState == cfg.StateIntro
}
