package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sablegate/grotto/components"
	"github.com/sablegate/grotto/gamemath"
	"github.com/sablegate/grotto/tags"
)

// UpdateHazards costs the player a life on hazard contact and puts them back
// at the level spawn. The game-over check on zero lives belongs to the scene.
func UpdateHazards(e *ecs.ECS) {
	if transitionInProgress(e) {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	if playerObj.Check(0, 0, tags.SensorHazard) == nil {
		return
	}

	lives := components.Lives.Get(playerEntry)
	lives.Lives--

	respawnPlayer(playerEntry)
}

// respawnPlayer moves the player back to the level spawn at rest.
func respawnPlayer(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)

	body.Pos = gamemath.Vec{X: player.SpawnX, Y: player.SpawnY}
	body.Vel = gamemath.Vec{}

	// Move the sensor immediately so the hazard check does not re-trigger on
	// the stale position next frame.
	if playerEntry.HasComponent(components.Object) {
		obj := components.Object.Get(playerEntry)
		obj.X = body.Pos.X
		obj.Y = body.Pos.Y
		obj.Update()
	}
}
