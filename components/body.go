package components

import (
	"github.com/yohamta/donburi"

	"github.com/sablegate/grotto/physics"
)

// BodyData wraps the kinematic body the physics step mutates each frame.
type BodyData struct {
	physics.Body
}

var Body = donburi.NewComponentType[BodyData]()
