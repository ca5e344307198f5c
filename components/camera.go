package components

import (
	"github.com/yohamta/donburi"

	"github.com/sablegate/grotto/gamemath"
)

type CameraData struct {
	Position   gamemath.Vec
	LookAheadX float64 // Current smoothed X offset for look-ahead
}

var Camera = donburi.NewComponentType[CameraData]()
