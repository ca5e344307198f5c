package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sablegate/grotto/components"
	cfg "github.com/sablegate/grotto/config"
	"github.com/sablegate/grotto/gamemath"
	"github.com/sablegate/grotto/physics"
)

func newTestBody(velX, velY float64) *components.BodyData {
	return &components.BodyData{
		Body: physics.Body{
			Vel:    gamemath.Vec{X: velX, Y: velY},
			Width:  cfg.Player.CollisionWidth,
			Height: cfg.Player.CollisionHeight,
		},
	}
}

func TestApplyMovementHorizontal(t *testing.T) {
	tests := []struct {
		name        string
		left, right bool
		wantVelX    float64
		wantFacing  float64
	}{
		{"left only", true, false, -cfg.Player.SpeedFactor, -1},
		{"right only", false, true, cfg.Player.SpeedFactor, 1},
		{"both held cancel", true, true, 0, 1},
		{"none held stops", false, false, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := &components.PlayerData{Direction: gamemath.Vec{X: 1}}
			body := newTestBody(3, 0)

			applyMovement(player, body, tt.left, tt.right, false)

			assert.Equal(t, tt.wantVelX, body.Vel.X)
			assert.Equal(t, tt.wantFacing, player.Direction.X)
		})
	}
}

func TestApplyMovementJumpRequiresRest(t *testing.T) {
	player := &components.PlayerData{Direction: gamemath.Vec{X: 1}}

	body := newTestBody(0, 0)
	applyMovement(player, body, false, false, true)
	assert.Equal(t, -cfg.Player.JumpFactor, body.Vel.Y, "grounded body should jump")

	// Falling body ignores the jump command. No double jumps off thin air.
	body = newTestBody(0, 4)
	applyMovement(player, body, false, false, true)
	assert.Equal(t, 4.0, body.Vel.Y)

	// Rising body ignores it too.
	body = newTestBody(0, -8)
	applyMovement(player, body, false, false, true)
	assert.Equal(t, -8.0, body.Vel.Y)
}

func TestDeriveState(t *testing.T) {
	tests := []struct {
		name       string
		velX, velY float64
		want       cfg.StateID
	}{
		{"rising is jump", 0, -5, cfg.Jump},
		{"falling wins over running", 5, 3, cfg.Fall},
		{"rising wins over running", 5, -3, cfg.Jump},
		{"grounded moving is running", 5, 0, cfg.Running},
		{"grounded still is idle", 0, 0, cfg.Idle},
		{"tiny drift stays idle", 0.05, 0, cfg.Idle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveState(newTestBody(tt.velX, tt.velY)))
		})
	}
}
