package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sablegate/grotto/archetypes"
	"github.com/sablegate/grotto/components"
)

// CreateSpace builds the resolv space used by the trigger sensors. The space
// must exist before any sensor-carrying entity is created.
func CreateSpace(e *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(e)
	components.Space.Set(space, resolv.NewSpace(width, height, cellWidth, cellHeight))
	return space
}
