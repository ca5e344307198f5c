package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData holds a resolv sensor object. Sensors mirror the physics body
// and marker blocks so door/hazard contact is a tag check, never a collision
// resolution.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
