package systems

import (
	"github.com/automoto/chain/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths removes everything marked dead this frame. It runs last so
// every other system sees a stable world.
func UpdateDeaths(ecs *ecs.ECS) {
	var dead []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Player) {
			return
		}
		dead = append(dead, e)
	})

	for _, e := range dead {
		removeEntity(ecs, e)
	}
}
