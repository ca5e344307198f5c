package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sablegate/grotto/components"
	"github.com/sablegate/grotto/tags"
)

// UpdateDoors starts a level transition when the player touches a door
// sensor.
func UpdateDoors(e *ecs.ECS) {
	if transitionInProgress(e) {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	check := playerObj.Check(0, 0, tags.SensorDoor)
	if check == nil {
		return
	}
	doorObjs := check.ObjectsByTags(tags.SensorDoor)
	if len(doorObjs) == 0 {
		return
	}

	doorEntry, ok := doorObjs[0].Data.(*donburi.Entry)
	if !ok || doorEntry == nil {
		return
	}
	door := components.Door.Get(doorEntry)
	StartDoorTransition(e, door.Target)
}
