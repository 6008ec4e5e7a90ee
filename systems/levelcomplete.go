package systems

import (
	"github.com/automoto/chain/components"
	"github.com/automoto/chain/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevelComplete decides whether the level is finished: boss levels
// when every enemy is gone, other levels when the player reaches the exit.
func UpdateLevelComplete(e *ecs.ECS) {
	levelComplete := GetOrCreateLevelComplete(e)
	if levelComplete.IsComplete {
		return
	}

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}

	if components.Level.Get(levelEntry).Boss {
		if CountLiveEnemies(e) == 0 {
			levelComplete.IsComplete = true
		}
		return
	}
	updateFinishLine(e, levelComplete)
}

// CountLiveEnemies returns the number of enemies not killed this frame.
func CountLiveEnemies(e *ecs.ECS) int {
	count := 0
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if isLive(entry) {
			count++
		}
	})
	return count
}

// ForceLevelComplete finishes the level regardless of its goal.
func ForceLevelComplete(e *ecs.ECS) {
	levelComplete := GetOrCreateLevelComplete(e)
	levelComplete.IsComplete = true
	levelComplete.Forced = true
}

// GetOrCreateLevelComplete returns the singleton LevelComplete component, creating if needed
func GetOrCreateLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	if _, ok := components.LevelComplete.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.LevelComplete))
		components.LevelComplete.SetValue(ent, components.LevelCompleteData{
			IsComplete: false,
		})
	}

	ent, _ := components.LevelComplete.First(e.World)
	return components.LevelComplete.Get(ent)
}

// IsLevelComplete checks if the level is complete
func IsLevelComplete(e *ecs.ECS) bool {
	levelComplete := GetOrCreateLevelComplete(e)
	return levelComplete.IsComplete
}

// WithLevelCompleteCheck wraps a system to skip execution when level is complete
func WithLevelCompleteCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsLevelComplete(e) {
			return
		}
		system(e)
	}
}
