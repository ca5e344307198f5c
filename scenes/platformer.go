package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sablegate/grotto/components"
	cfg "github.com/sablegate/grotto/config"
	"github.com/sablegate/grotto/systems"
	"github.com/sablegate/grotto/systems/factory"
	"github.com/sablegate/grotto/tags"
)

// PlatformerScene runs the game itself.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewPlatformerScene(sc SceneChanger) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	input := systems.GetInput(ps.ecs)
	if systems.GetAction(input, cfg.ActionPause).JustPressed {
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger))
		return
	}

	if ps.checkGameOver() {
		ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger))
	}
}

func (ps *PlatformerScene) checkGameOver() bool {
	if ps.ecs == nil {
		return false
	}
	playerEntry, ok := tags.Player.First(ps.ecs.World)
	if !ok {
		return false
	}
	return components.Lives.Get(playerEntry).Lives <= 0
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent white flashes from the OS window background.
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Update order matters: input feeds the player controller, the physics
	// step runs before sensor sync, and sensors feed the trigger systems.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateDoors)
	e.AddSystem(systems.UpdateHazards)
	e.AddSystem(systems.UpdateStates)
	e.AddSystem(systems.UpdateAnimations)
	e.AddSystem(systems.UpdateTransition)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawAnimated)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawTransition)

	ps.ecs = e

	level := factory.CreateLevel(e)
	levelData := components.Level.Get(level)

	// Size the sensor space to the largest level so it survives door swaps.
	maxW, maxH := 0.0, 0.0
	for i := range levelData.Levels {
		if levelData.Levels[i].Width > maxW {
			maxW = levelData.Levels[i].Width
		}
		if levelData.Levels[i].Height > maxH {
			maxH = levelData.Levels[i].Height
		}
	}
	factory.CreateSpace(e, int(maxW), int(maxH), 16, 16)

	factory.CreateCamera(e)
	factory.CreateTransition(e)
	factory.CreateLevelBlocks(e, levelData.CurrentLevel)

	factory.CreatePlayer(e, 0, 0)
	systems.PlacePlayerAtSpawn(e, levelData.CurrentLevel)

	// Snap the camera onto the player so the first frame is framed right.
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		if playerEntry, ok := tags.Player.First(e.World); ok {
			body := components.Body.Get(playerEntry)
			camera.Position.X = body.Pos.X + body.Width/2
			camera.Position.Y = body.Pos.Y + body.Height/2
		}
	}
}
