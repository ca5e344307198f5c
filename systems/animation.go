package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sablegate/grotto/components"
)

// UpdateAnimations selects the sprite animation for the current state and
// advances its frame timer.
func UpdateAnimations(e *ecs.ECS) {
	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry)
		if entry.HasComponent(components.State) {
			state := components.State.Get(entry)
			anim.SetAnimation(state.CurrentState)
		}
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}
