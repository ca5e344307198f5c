package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// GameOverUI is shown when the player runs out of lives.
type GameOverUI struct {
	UI *ebitenui.UI

	OnRetry func()
	OnMenu  func()

	titleFace  text.Face
	normalFace text.Face
}

func NewGameOverUI(onRetry, onMenu func()) *GameOverUI {
	gui := &GameOverUI{
		OnRetry: onRetry,
		OnMenu:  onMenu,
	}
	gui.titleFace, gui.normalFace = loadFaces()
	gui.buildUI()
	return gui
}

func (gui *GameOverUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{12, 8, 10, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("GAME OVER", &gui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{220, 80, 90, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(menuButton("Retry", &gui.normalFace, func() {
		if gui.OnRetry != nil {
			gui.OnRetry()
		}
	}))
	contentContainer.AddChild(menuButton("Menu", &gui.normalFace, func() {
		if gui.OnMenu != nil {
			gui.OnMenu()
		}
	}))

	rootContainer.AddChild(contentContainer)

	gui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (gui *GameOverUI) Update() {
	gui.UI.Update()
}
