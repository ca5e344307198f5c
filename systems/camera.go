package systems

import (
	"math"

	"github.com/yohamta/donburi/ecs"

	"github.com/sablegate/grotto/components"
	"github.com/sablegate/grotto/config"
	"github.com/sablegate/grotto/tags"
)

// UpdateCamera follows the player with smoothing and a facing-direction
// look-ahead, constrained so the level always fills the screen. Levels no
// bigger than the viewport pin the camera to the level center.
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
	body := components.Body.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	// Only update look-ahead when the player is moving; freeze it when idle.
	if math.Abs(body.Vel.X) > config.Camera.LookAheadSpeedThreshold {
		targetLookAhead := player.Direction.X * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX := body.Pos.X + body.Width/2 + camera.LookAheadX
	targetY := body.Pos.Y + body.Height/2

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := levelData.CurrentLevel.Width
	levelHeight := levelData.CurrentLevel.Height

	minCameraX := screenWidth / 2
	maxCameraX := levelWidth - screenWidth/2
	minCameraY := screenHeight / 2
	maxCameraY := levelHeight - screenHeight/2
	if maxCameraX < minCameraX {
		minCameraX = levelWidth / 2
		maxCameraX = minCameraX
	}
	if maxCameraY < minCameraY {
		minCameraY = levelHeight / 2
		maxCameraY = minCameraY
	}

	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}
