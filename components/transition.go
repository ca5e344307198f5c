package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TransitionPhase tracks the door fade state machine.
type TransitionPhase int

const (
	TransitionIdle TransitionPhase = iota
	TransitionFadeOut
	TransitionFadeIn
)

// TransitionData drives the fade overlay used when the player enters a door.
// During FadeOut the tween raises Alpha to 1; the pending level is then
// swapped in and FadeIn lowers it back to 0.
type TransitionData struct {
	Phase        TransitionPhase
	Tween        *gween.Tween
	Alpha        float32
	PendingLevel int
}

var Transition = donburi.NewComponentType[TransitionData]()
