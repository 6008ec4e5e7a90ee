package systems

import (
	"github.com/automoto/chain/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// markDead flags e for removal at the end of the frame. Marking twice keeps
// the first cause.
func markDead(e *donburi.Entry, killed bool) {
	if !e.Valid() || e.HasComponent(components.Death) {
		return
	}
	donburi.Add(e, components.Death, &components.DeathData{Killed: killed})
}

// isLive reports whether e still takes part in the frame.
func isLive(e *donburi.Entry) bool {
	return e != nil && e.Valid() && !e.HasComponent(components.Death)
}

// removeEntity deletes e from the world and its object from the space.
func removeEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
