package systems

import (
	"github.com/automoto/chain/components"
	"github.com/automoto/chain/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// updateFinishLine completes the level once the player reaches an exit.
func updateFinishLine(ecs *ecs.ECS, levelComplete *components.LevelCompleteData) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	playerObj := components.Object.Get(playerEntry)
	body := playerObj.Rect()

	// Check collision with finish line
	check := playerObj.Check(0, 0, tags.ResolvFinishLine)
	if check == nil {
		return
	}

	for _, finishLineObj := range check.ObjectsByTags(tags.ResolvFinishLine) {
		// Get the finish line entity from the resolv object
		finishLineEntry, ok := finishLineObj.Data.(*donburi.Entry)
		if !ok || finishLineEntry == nil || !finishLineEntry.Valid() {
			continue
		}
		if !body.Intersects(objectRect(finishLineObj)) {
			continue
		}

		components.FinishLine.Get(finishLineEntry).Activated = true
		levelComplete.IsComplete = true
		return
	}
}
