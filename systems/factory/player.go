package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sablegate/grotto/archetypes"
	"github.com/sablegate/grotto/components"
	cfg "github.com/sablegate/grotto/config"
	"github.com/sablegate/grotto/gamemath"
	"github.com/sablegate/grotto/physics"
	"github.com/sablegate/grotto/tags"
)

// CreatePlayer spawns the player at the given position. The position is
// normally overwritten right after by the spawn placement, so callers may
// pass zeros.
func CreatePlayer(e *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(e)

	components.Body.SetValue(player, components.BodyData{
		Body: physics.Body{
			Pos:    gamemath.Vec{X: x, Y: y},
			Width:  cfg.Player.CollisionWidth,
			Height: cfg.Player.CollisionHeight,
		},
	})
	components.Player.SetValue(player, components.PlayerData{
		Direction: gamemath.Vec{X: 1, Y: 0},
		SpawnX:    x,
		SpawnY:    y,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Lives.SetValue(player, components.LivesData{
		Lives:    cfg.Player.StartingLives,
		MaxLives: cfg.Player.StartingLives,
	})

	obj := resolv.NewObject(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight, tags.SensorPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(e, obj)

	animData := GenerateAnimations(cfg.Player.FrameWidth, cfg.Player.FrameHeight)
	components.Animation.Set(player, animData)

	return player
}
