package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/sablegate/grotto/components"
	cfg "github.com/sablegate/grotto/config"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the InputData singleton. Must run
// before UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}
}

// GetAction computes the temporal state of an action from the two buffered
// frames.
func GetAction(input *components.InputData, action cfg.ActionID) components.ActionState {
	return components.ActionState{
		Pressed:      input.Current[action],
		JustPressed:  input.Current[action] && !input.Previous[action],
		JustReleased: !input.Current[action] && input.Previous[action],
	}
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(e.World); ok {
		return components.Input.Get(entry)
	}
	entry := e.World.Entry(e.World.Create(components.Input))
	return components.Input.Get(entry)
}

// GetInput returns the input singleton, creating it if needed. Exposed for
// scenes that read menu/pause actions directly.
func GetInput(e *ecs.ECS) *components.InputData {
	return getOrCreateInput(e)
}
