package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sablegate/grotto/components"
	"github.com/sablegate/grotto/physics"
	"github.com/sablegate/grotto/tags"
)

// DrawDebug outlines the physics bodies, solid blocks and sensor objects in
// world space. Toggled with the debug action.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y

	// Solid blocks come from the level data, not from the sensor space.
	if levelEntry, ok := components.Level.First(e.World); ok {
		levelData := components.Level.Get(levelEntry)
		if levelData.CurrentLevel != nil {
			for _, blk := range levelData.CurrentLevel.Blocks {
				if blk.Kind != physics.Solid {
					continue
				}
				drawOutline(screen, blk.Pos.X+camX, blk.Pos.Y+camY, blk.Width, blk.Height,
					color.RGBA{120, 120, 120, 255})
			}
		}
	}

	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255}
			switch {
			case obj.HasTags(tags.SensorPlayer):
				c = color.RGBA{64, 96, 255, 255}
			case obj.HasTags(tags.SensorDoor):
				c = color.RGBA{255, 200, 0, 255}
			case obj.HasTags(tags.SensorHazard):
				c = color.RGBA{255, 0, 0, 255}
			}
			drawOutline(screen, obj.X+camX, obj.Y+camY, obj.W, obj.H, c)
		}
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		drawOutline(screen, body.Pos.X+camX, body.Pos.Y+camY, body.Width, body.Height,
			color.RGBA{0, 255, 0, 255})
	})
}

func drawOutline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	fx, fy, fw, fh := float32(x), float32(y), float32(w), float32(h)
	vector.FillRect(screen, fx, fy, fw, 1, c, false)
	vector.FillRect(screen, fx, fy+fh-1, fw, 1, c, false)
	vector.FillRect(screen, fx, fy, 1, fh, c, false)
	vector.FillRect(screen, fx+fw-1, fy, 1, fh, c, false)
}
