package components

import (
	"github.com/yohamta/donburi"

	"github.com/sablegate/grotto/config"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
}

var State = donburi.NewComponentType[StateData]()
