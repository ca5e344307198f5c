package components

import "github.com/yohamta/donburi"

// DoorData marks a door entity. Target is the destination level index;
// leveldata.NextLevel means "advance in sequence".
type DoorData struct {
	Target int
}

var Door = donburi.NewComponentType[DoorData]()
