package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces predate text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/sablegate/grotto/components"
	"github.com/sablegate/grotto/fonts"
)

const (
	hudMargin   = 10
	heartSize   = 14
	heartSpacer = 5
)

// DrawHUD renders the lives counter, the level name, and the FPS estimate in
// the screen corners.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	lives := components.Lives.Get(playerEntry)

	for i := 0; i < lives.Lives; i++ {
		x := float32(hudMargin + i*(heartSize+heartSpacer))
		vector.FillRect(screen, x, hudMargin, heartSize, heartSize,
			color.RGBA{200, 60, 70, 255}, false)
	}

	if levelEntry, ok := components.Level.First(e.World); ok {
		levelData := components.Level.Get(levelEntry)
		if levelData.CurrentLevel != nil {
			text.Draw(screen, levelData.CurrentLevel.Name, fonts.Normal.Get(),
				hudMargin, hudMargin+heartSize+22, color.White)
		}
	}

	// Frame delta feeds this estimate only; physics never sees it.
	fps := fmt.Sprintf("%.0f fps", ebiten.ActualFPS())
	text.Draw(screen, fps, fonts.Small.Get(),
		screen.Bounds().Dx()-60, hudMargin+12, color.White)
}
