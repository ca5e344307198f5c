package physics

import (
	"testing"

	"github.com/sablegate/grotto/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestApplyGravityAccumulates(t *testing.T) {
	env := Env{Gravity: gamemath.Vec{X: 0, Y: 0.75}, Width: 800, Height: 600}
	body := Body{Pos: gamemath.Vec{X: 100, Y: 100}, Vel: gamemath.Vec{X: 3, Y: 1}, Width: 30, Height: 40}

	ApplyGravity(&body, env)
	assert.Equal(t, 1.75, body.Vel.Y)
	ApplyGravity(&body, env)
	assert.Equal(t, 2.5, body.Vel.Y)
	assert.Equal(t, 3.0, body.Vel.X, "gravity never touches horizontal speed")
}

func TestApplyGravityFloorClamp(t *testing.T) {
	env := Env{Gravity: gamemath.Vec{X: 0, Y: 1}, Width: 800, Height: 600}
	// Overshot below the floor by a fast fall.
	body := Body{Pos: gamemath.Vec{X: 100, Y: 590}, Vel: gamemath.Vec{X: 0, Y: 24}, Width: 30, Height: 40}

	ApplyGravity(&body, env)

	assert.Equal(t, 560.0, body.Pos.Y)
	assert.Equal(t, 0.0, body.Vel.Y)
}

func TestApplyGravityGroundedFixedPoint(t *testing.T) {
	env := Env{Gravity: gamemath.Vec{X: 0, Y: 1}, Width: 800, Height: 600}
	body := Body{Pos: gamemath.Vec{X: 100, Y: 560}, Width: 30, Height: 40}

	for i := 0; i < 100; i++ {
		ApplyGravity(&body, env)
		assert.Equal(t, 560.0, body.Pos.Y)
		assert.Equal(t, 0.0, body.Vel.Y)
	}
}
