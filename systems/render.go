package systems

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sablegate/grotto/components"
	cfg "github.com/sablegate/grotto/config"
)

var drawOp = &ebiten.DrawImageOptions{}

// DrawAnimated renders entities with an Animation component at their body's
// resolved position, flipped to face the travel direction. The sprite frame
// is centered on the collision box and bottom-aligned, so the feet sit where
// the physics says they do.
func DrawAnimated(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y

	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		animData := components.Animation.Get(entry)
		if animData.CurrentAnimation == nil {
			return
		}

		// Viewport culling with padding so sprites do not pop at the edges.
		const padding = 64.0
		x := body.Pos.X + camX
		y := body.Pos.Y + camY
		if x+body.Width < -padding || x > float64(width)+padding ||
			y+body.Height < -padding || y > float64(height)+padding {
			return
		}

		img := frameImage(animData)
		if img == nil {
			return
		}

		flip := false
		if entry.HasComponent(components.Player) {
			flip = components.Player.Get(entry).Direction.X < 0
		}

		frameW := float64(animData.FrameWidth)
		frameH := float64(animData.FrameHeight)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		if flip {
			drawOp.GeoM.Scale(-1, 1)
			drawOp.GeoM.Translate(frameW, 0)
		}
		drawOp.GeoM.Translate(
			x-(frameW-body.Width)/2,
			y-(frameH-body.Height),
		)
		screen.DrawImage(img, drawOp)
	})
}

// frameImage returns the current animation frame, slicing and caching the
// subimage on first use.
func frameImage(animData *components.AnimationData) *ebiten.Image {
	frame := animData.CurrentAnimation.Frame()

	if frames, ok := animData.CachedFrames[animData.CurrentSheet]; ok {
		if img := frames[frame]; img != nil {
			return img
		}
	}

	sheet := animData.SpriteSheets[animData.CurrentSheet]
	if sheet == nil {
		return nil
	}
	sx := frame * animData.FrameWidth
	srcRect := image.Rect(sx, 0, sx+animData.FrameWidth, animData.FrameHeight)
	img := sheet.SubImage(srcRect).(*ebiten.Image)

	if animData.CachedFrames == nil {
		animData.CachedFrames = make(map[cfg.StateID]map[int]*ebiten.Image)
	}
	if animData.CachedFrames[animData.CurrentSheet] == nil {
		animData.CachedFrames[animData.CurrentSheet] = make(map[int]*ebiten.Image)
	}
	animData.CachedFrames[animData.CurrentSheet][frame] = img
	return img
}
