package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sablegate/grotto/components"
	cfg "github.com/sablegate/grotto/config"
)

// UpdatePlayer translates buffered input into player velocity. Horizontal
// movement is a fixed speed while held and zero when released; there is no
// acceleration ramp in this prototype.
func UpdatePlayer(e *ecs.ECS) {
	if transitionInProgress(e) {
		return
	}
	input := getOrCreateInput(e)

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		body := components.Body.Get(entry)

		left := GetAction(input, cfg.ActionMoveLeft)
		right := GetAction(input, cfg.ActionMoveRight)
		jump := GetAction(input, cfg.ActionJump)

		applyMovement(player, body, left.Pressed, right.Pressed, jump.JustPressed)
	})
}

// applyMovement mutates velocity from directional commands. Jump is honored
// only when vertical velocity is exactly zero: groundedness is read from the
// velocity the last resolution pass left behind, not from a ground flag.
func applyMovement(player *components.PlayerData, body *components.BodyData, left, right, jumpPressed bool) {
	switch {
	case left && !right:
		body.Vel.X = -cfg.Player.SpeedFactor
		player.Direction.X = -1
	case right && !left:
		body.Vel.X = cfg.Player.SpeedFactor
		player.Direction.X = 1
	default:
		body.Vel.X = 0
	}

	if jumpPressed && body.Vel.Y == 0 {
		body.Vel.Y = -cfg.Player.JumpFactor
	}
}
