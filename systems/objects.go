package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sablegate/grotto/components"
)

// UpdateObjects mirrors physics body positions into the resolv sensor layer
// so trigger checks see this frame's resolved positions.
func UpdateObjects(e *ecs.ECS) {
	components.Body.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Object) {
			return
		}
		body := components.Body.Get(entry)
		obj := components.Object.Get(entry)
		obj.X = body.Pos.X
		obj.Y = body.Pos.Y
		obj.Update()
	})
}
