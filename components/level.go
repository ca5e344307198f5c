package components

import (
	"github.com/yohamta/donburi"

	"github.com/sablegate/grotto/leveldata"
	"github.com/sablegate/grotto/physics"
)

type LevelData struct {
	Levels       []leveldata.Level
	LevelIndex   int
	CurrentLevel *leveldata.Level
	Env          physics.Env // Gravity + current level's world bounds
}

var Level = donburi.NewComponentType[LevelData]()
