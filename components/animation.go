package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/sablegate/grotto/assets/animations"
	"github.com/sablegate/grotto/config"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	SpriteSheets     map[config.StateID]*ebiten.Image
	CachedFrames     map[config.StateID]map[int]*ebiten.Image // Pre-sliced subimages keyed by frame index
	CurrentSheet     config.StateID
	FrameWidth       int
	FrameHeight      int
	Animations       map[config.StateID]*animations.Animation
}

// SetAnimation switches to the animation for the given state, restarting it.
// Re-selecting the current state is a no-op so the frame timer keeps running.
func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state {
		return
	}
	anim, ok := a.Animations[state]
	if !ok {
		a.CurrentAnimation = nil
		a.CurrentSheet = state
		return
	}
	a.CurrentAnimation = anim
	a.CurrentSheet = state
	a.CurrentAnimation.Restart()
}

var Animation = donburi.NewComponentType[AnimationData]()
