package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sablegate/grotto/archetypes"
	"github.com/sablegate/grotto/components"
	"github.com/sablegate/grotto/physics"
	"github.com/sablegate/grotto/tags"
)

// CreateWall spawns a solid block entity. Walls carry no sensor: solid
// collision is resolved against the level's block slice, and the entity
// exists for rendering and debug only.
func CreateWall(e *ecs.ECS, blk *physics.Block) *donburi.Entry {
	wall := archetypes.Wall.Spawn(e)
	components.Block.SetValue(wall, components.BlockData{Block: *blk})
	return wall
}

// CreateDoor spawns a door with a trigger sensor. Touching the sensor starts
// the level transition toward the door's target.
func CreateDoor(e *ecs.ECS, blk *physics.Block) *donburi.Entry {
	door := archetypes.Door.Spawn(e)
	components.Block.SetValue(door, components.BlockData{Block: *blk})
	components.Door.SetValue(door, components.DoorData{Target: blk.Target})

	obj := resolv.NewObject(blk.Pos.X, blk.Pos.Y, blk.Width, blk.Height, tags.SensorDoor)
	obj.Data = door
	components.Object.SetValue(door, components.ObjectData{Object: obj})
	addToSpace(e, obj)

	return door
}

// CreateHazard spawns a hazard with a trigger sensor. Contact costs a life.
func CreateHazard(e *ecs.ECS, blk *physics.Block) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(e)
	components.Block.SetValue(hazard, components.BlockData{Block: *blk})

	obj := resolv.NewObject(blk.Pos.X, blk.Pos.Y, blk.Width, blk.Height, tags.SensorHazard)
	obj.Data = hazard
	components.Object.SetValue(hazard, components.ObjectData{Object: obj})
	addToSpace(e, obj)

	return hazard
}

func addToSpace(e *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
