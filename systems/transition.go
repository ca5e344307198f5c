package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/sablegate/grotto/components"
	cfg "github.com/sablegate/grotto/config"
	"github.com/sablegate/grotto/leveldata"
)

// Transitions are tick-driven like physics; the tween advances by one frame
// of the fixed 60 TPS timebase.
const transitionTickSeconds = 1.0 / 60.0

// StartDoorTransition begins the fade into the target level. A transition
// already in progress wins; re-entering the door does nothing.
func StartDoorTransition(e *ecs.ECS, target int) {
	trEntry, ok := components.Transition.First(e.World)
	if !ok {
		return
	}
	tr := components.Transition.Get(trEntry)
	if tr.Phase != components.TransitionIdle {
		return
	}

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)

	if target == leveldata.NextLevel {
		target = (levelData.LevelIndex + 1) % len(levelData.Levels)
	}
	if target < 0 || target >= len(levelData.Levels) {
		target = 0
	}

	tr.PendingLevel = target
	tr.Phase = components.TransitionFadeOut
	tr.Tween = gween.New(0, 1, cfg.Transition.FadeOutSeconds, ease.Linear)
}

// UpdateTransition advances the fade. When the screen is fully dark the
// pending level is swapped in, then the fade runs back out.
func UpdateTransition(e *ecs.ECS) {
	trEntry, ok := components.Transition.First(e.World)
	if !ok {
		return
	}
	tr := components.Transition.Get(trEntry)
	if tr.Phase == components.TransitionIdle || tr.Tween == nil {
		return
	}

	alpha, finished := tr.Tween.Update(transitionTickSeconds)
	tr.Alpha = alpha
	if !finished {
		return
	}

	switch tr.Phase {
	case components.TransitionFadeOut:
		swapLevel(e, tr.PendingLevel)
		tr.Phase = components.TransitionFadeIn
		tr.Tween = gween.New(1, 0, cfg.Transition.FadeInSeconds, ease.Linear)
	case components.TransitionFadeIn:
		tr.Phase = components.TransitionIdle
		tr.Tween = nil
		tr.Alpha = 0
	}
}

// DrawTransition renders the fade overlay above everything else.
func DrawTransition(e *ecs.ECS, screen *ebiten.Image) {
	trEntry, ok := components.Transition.First(e.World)
	if !ok {
		return
	}
	tr := components.Transition.Get(trEntry)
	if tr.Alpha <= 0 {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h),
		color.NRGBA{0, 0, 0, uint8(tr.Alpha * 255)}, false)
}

func transitionInProgress(e *ecs.ECS) bool {
	trEntry, ok := components.Transition.First(e.World)
	if !ok {
		return false
	}
	return components.Transition.Get(trEntry).Phase != components.TransitionIdle
}
