package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sablegate/grotto/archetypes"
	"github.com/sablegate/grotto/components"
)

func CreateTransition(e *ecs.ECS) *donburi.Entry {
	transition := archetypes.Transition.Spawn(e)
	components.Transition.Set(transition, &components.TransitionData{
		Phase: components.TransitionIdle,
	})
	return transition
}
