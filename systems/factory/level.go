package factory

import (
	"github.com/automoto/chain/archetypes"
	"github.com/automoto/chain/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, data components.LevelData) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, data)
	components.LevelComplete.SetValue(level, components.LevelCompleteData{})
	return level
}
