package systems

import (
	"github.com/automoto/chain/components"
	"github.com/automoto/chain/config"
	"github.com/automoto/chain/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the view toward the player and keeps it inside the
// level.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	body := components.Object.Get(playerEntry).Rect()

	// Get level dimensions for camera bounds
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)

	// Target puts the player in the middle of the screen
	targetX := body.CenterX() - screenWidth/2
	targetY := body.CenterY() - screenHeight/2

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothingX
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothingY

	// A level smaller than the screen pins the camera at 0
	camera.Position.X = max(0, min(camera.Position.X, levelData.Width-screenWidth))
	camera.Position.Y = max(0, min(camera.Position.Y, levelData.Height-screenHeight))
}

// CameraOffset returns the camera position truncated to whole pixels.
func CameraOffset(e *ecs.ECS) (int, int) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return int(camera.Position.X), int(camera.Position.Y)
}
