package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sablegate/grotto/archetypes"
	"github.com/sablegate/grotto/assets"
	"github.com/sablegate/grotto/components"
	cfg "github.com/sablegate/grotto/config"
	"github.com/sablegate/grotto/leveldata"
	"github.com/sablegate/grotto/physics"
)

// CreateLevel loads the level sequence and spawns the level entity pointing
// at the first level. Block entities are created separately, after the
// sensor space exists.
func CreateLevel(e *ecs.ECS) *donburi.Entry {
	return CreateLevelAtIndex(e, 0)
}

func CreateLevelAtIndex(e *ecs.ECS, index int) *donburi.Entry {
	level := archetypes.Level.Spawn(e)

	levels := assets.MustLoadLevels()
	if len(levels) == 0 {
		panic("no levels loaded")
	}
	if index < 0 || index >= len(levels) {
		index = 0
	}

	current := &levels[index]
	components.Level.Set(level, &components.LevelData{
		Levels:       levels,
		LevelIndex:   index,
		CurrentLevel: current,
		Env: physics.Env{
			Gravity: cfg.Physics.Gravity,
			Width:   current.Width,
			Height:  current.Height,
		},
	})

	return level
}

// CreateLevelBlocks spawns wall, door and hazard entities for every block in
// the level. Spawn markers get no entity; the spawn position is read off the
// level data directly.
func CreateLevelBlocks(e *ecs.ECS, level *leveldata.Level) {
	for i := range level.Blocks {
		blk := &level.Blocks[i]
		switch blk.Kind {
		case physics.Solid:
			CreateWall(e, blk)
		case physics.Door:
			CreateDoor(e, blk)
		case physics.Hazard:
			CreateHazard(e, blk)
		}
	}
}
