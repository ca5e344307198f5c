package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sablegate/grotto/components"
	"github.com/sablegate/grotto/physics"
)

// UpdatePhysics advances every kinematic body one frame against the current
// level's block set. The step order (X integrate/resolve, gravity, Y
// integrate/resolve, bounds clamp) lives in the physics package.
func UpdatePhysics(e *ecs.ECS) {
	if transitionInProgress(e) {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	components.Body.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		physics.Step(&body.Body, levelData.CurrentLevel.Blocks, levelData.Env)
	})
}
