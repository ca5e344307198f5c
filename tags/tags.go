package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
	Door   = donburi.NewTag().SetName("Door")
	Hazard = donburi.NewTag().SetName("Hazard")
)

// Resolv tags for the trigger sensor layer. Solid collision is resolved by
// the physics package; resolv only answers "is the player touching this
// marker" questions.
const (
	SensorPlayer = "player"
	SensorDoor   = "door"
	SensorHazard = "hazard"
)
