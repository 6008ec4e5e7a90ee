package systems

import (
	"github.com/automoto/chain/components"
	cfg "github.com/automoto/chain/config"
	"github.com/automoto/chain/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// SetInput records the held action flags for the coming frame.
// Must be called BEFORE the frame's systems run.
func SetInput(ecs *ecs.ECS, flags cfg.Actions) {
	getOrCreateInput(ecs).Push(flags)
}

// GetAction returns the temporal state of an action for this frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return input.Action(id)
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(ecs.World); ok {
		return components.Input.Get(entry)
	}
	return components.Input.Get(factory.CreateInput(ecs))
}
