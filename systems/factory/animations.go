package factory

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sablegate/grotto/assets"
	"github.com/sablegate/grotto/assets/animations"
	"github.com/sablegate/grotto/components"
	cfg "github.com/sablegate/grotto/config"
)

// Ticks between frame advances per state. Die is slower so the death pose
// reads before the respawn.
var animationDelays = map[cfg.StateID]float32{
	cfg.Idle:    10,
	cfg.Running: 6,
	cfg.Jump:    8,
	cfg.Fall:    8,
	cfg.Die:     12,
}

// GenerateAnimations builds the player animation component from the generated
// sprite sheets, pre-slicing every frame.
func GenerateAnimations(frameWidth, frameHeight int) *components.AnimationData {
	sheets := assets.PlayerSheets()

	animData := &components.AnimationData{
		SpriteSheets: make(map[cfg.StateID]*ebiten.Image),
		Animations:   make(map[cfg.StateID]*animations.Animation),
		CachedFrames: make(map[cfg.StateID]map[int]*ebiten.Image),
		FrameWidth:   frameWidth,
		FrameHeight:  frameHeight,
		CurrentSheet: cfg.Idle,
	}

	for state, sheet := range sheets {
		frameCount := assets.FrameCounts[state]
		animData.SpriteSheets[state] = sheet
		animData.Animations[state] = animations.NewAnimation(0, frameCount-1, 1, animationDelays[state])

		frames := make(map[int]*ebiten.Image)
		for i := 0; i < frameCount; i++ {
			sx := i * frameWidth
			srcRect := image.Rect(sx, 0, sx+frameWidth, frameHeight)
			frames[i] = sheet.SubImage(srcRect).(*ebiten.Image)
		}
		animData.CachedFrames[state] = frames
	}

	animData.CurrentAnimation = animData.Animations[cfg.Idle]
	return animData
}
