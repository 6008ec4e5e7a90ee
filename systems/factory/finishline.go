package factory

import (
	"github.com/automoto/chain/archetypes"
	"github.com/automoto/chain/components"
	"github.com/automoto/chain/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFinishLine marks the exit region of the level.
func CreateFinishLine(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	finishLine := archetypes.FinishLine.Spawn(ecs)
	newObject(ecs, finishLine, x, y, w, h, tags.ResolvFinishLine)
	components.FinishLine.SetValue(finishLine, components.FinishLineData{})
	return finishLine
}
