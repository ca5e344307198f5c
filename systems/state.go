package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sablegate/grotto/components"
	cfg "github.com/sablegate/grotto/config"
)

// UpdateStates derives the animation state from the body's velocity after
// physics has run. Airborne is velocity-based like the grounded check:
// Vel.Y < 0 is a jump, > 0 a fall, and a grounded body picks between idle
// and running on horizontal speed.
func UpdateStates(e *ecs.ECS) {
	components.State.Each(e.World, func(entry *donburi.Entry) {
		state := components.State.Get(entry)
		body := components.Body.Get(entry)

		state.PreviousState = state.CurrentState
		state.CurrentState = deriveState(body)
	})
}

func deriveState(body *components.BodyData) cfg.StateID {
	if body.Vel.Y < 0 {
		return cfg.Jump
	}
	if body.Vel.Y > 0 {
		return cfg.Fall
	}
	if math.Abs(body.Vel.X) >= 0.1 {
		return cfg.Running
	}
	return cfg.Idle
}
