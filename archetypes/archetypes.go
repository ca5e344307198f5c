package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sablegate/grotto/components"
	cfg "github.com/sablegate/grotto/config"
	"github.com/sablegate/grotto/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Object,
		components.State,
		components.Animation,
		components.Lives,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Block,
	)
	Door = newArchetype(
		tags.Door,
		components.Door,
		components.Block,
		components.Object,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Block,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Space = newArchetype(
		components.Space,
	)
	Transition = newArchetype(
		components.Transition,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
