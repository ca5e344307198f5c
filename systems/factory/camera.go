package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sablegate/grotto/archetypes"
	"github.com/sablegate/grotto/components"
)

func CreateCamera(e *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(e)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}
