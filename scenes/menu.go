package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sablegate/grotto/ui"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title menu.
type MenuScene struct {
	ui           *ui.MenuUI
	sceneChanger SceneChanger
	once         sync.Once
}

func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ui.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent white flashes from the OS window background.
	screen.Fill(color.Black)

	if ms.ui == nil {
		return
	}
	ms.ui.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ui = ui.NewMenuUI(
		func() {
			ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger))
		},
		func() {
			os.Exit(0)
		},
	)
}
