package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sablegate/grotto/ui"
)

// GameOverScene is shown when the player runs out of lives.
type GameOverScene struct {
	ui           *ui.GameOverUI
	sceneChanger SceneChanger
	once         sync.Once
}

func NewGameOverScene(sc SceneChanger) *GameOverScene {
	return &GameOverScene{sceneChanger: sc}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ui.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent white flashes from the OS window background.
	screen.Fill(color.Black)

	if gs.ui == nil {
		return
	}
	gs.ui.UI.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ui = ui.NewGameOverUI(
		func() {
			gs.sceneChanger.ChangeScene(NewPlatformerScene(gs.sceneChanger))
		},
		func() {
			gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger))
		},
	)
}
