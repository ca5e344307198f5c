package components

import (
	"github.com/yohamta/donburi"

	"github.com/sablegate/grotto/gamemath"
)

type PlayerData struct {
	Direction gamemath.Vec // Facing, X is -1 or 1
	SpawnX    float64      // Current level's spawn position
	SpawnY    float64
}

var Player = donburi.NewComponentType[PlayerData]()
