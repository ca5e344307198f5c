package physics

import (
	"testing"

	"github.com/sablegate/grotto/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepFreeFallSettlesOnFloor(t *testing.T) {
	env := Env{Gravity: gamemath.Vec{X: 0, Y: 1}, Width: 800, Height: 600}
	body := Body{Pos: gamemath.Vec{X: 400, Y: 0}, Width: 30, Height: 40}

	settledAt := -1
	for frame := 0; frame < 120; frame++ {
		Step(&body, nil, env)
		if body.Pos.Y == env.Height-body.Height && body.Vel.Y == 0 {
			settledAt = frame
			break
		}
	}
	require.NotEqual(t, -1, settledAt, "body never reached the floor")

	// Stays put on every subsequent frame.
	for frame := 0; frame < 60; frame++ {
		Step(&body, nil, env)
		assert.Equal(t, env.Height-body.Height, body.Pos.Y)
		assert.Equal(t, 0.0, body.Vel.Y)
	}
}

func TestStepLeftBoundClampsOnCrossingFrame(t *testing.T) {
	env := Env{Gravity: gamemath.Vec{X: 0, Y: 1}, Width: 800, Height: 600}
	body := Body{
		Pos:    gamemath.Vec{X: 12, Y: 560},
		Vel:    gamemath.Vec{X: -5, Y: 0},
		Width:  30,
		Height: 40,
	}

	Step(&body, nil, env) // 12 -> 7
	Step(&body, nil, env) // 7 -> 2
	assert.Equal(t, 2.0, body.Pos.X)
	assert.Equal(t, -5.0, body.Vel.X)

	Step(&body, nil, env) // would cross to -3, clamps
	assert.Equal(t, 0.0, body.Pos.X)
	assert.Equal(t, 0.0, body.Vel.X)
}

func TestStepLandsOnPlatform(t *testing.T) {
	env := Env{Gravity: gamemath.Vec{X: 0, Y: 1}, Width: 800, Height: 600}
	platform := solidAt(380, 300, 64, 16)
	body := Body{Pos: gamemath.Vec{X: 396, Y: 100}, Width: 30, Height: 40}

	var landed bool
	for frame := 0; frame < 60; frame++ {
		Step(&body, []Block{platform}, env)
		if body.Vel.Y == 0 && body.Pos.Y == 300-40-SeparationEpsilon {
			landed = true
			break
		}
	}
	require.True(t, landed, "body fell through the platform")

	// Grounded-by-velocity: Vel.Y stays zero while standing on the platform.
	for frame := 0; frame < 30; frame++ {
		Step(&body, []Block{platform}, env)
		assert.Equal(t, 0.0, body.Vel.Y)
		assert.Equal(t, 300-40-SeparationEpsilon, body.Pos.Y)
	}
}

func TestStepDiagonalResolvesXBeforeY(t *testing.T) {
	// A body moving down-right toward an outside corner must be pushed out on
	// X first and then land on Y, not tunnel through the corner diagonally.
	env := Env{Gravity: gamemath.Vec{X: 0, Y: 0}, Width: 800, Height: 600}
	wall := solidAt(100, 0, 16, 200)
	body := Body{
		Pos:    gamemath.Vec{X: 60, Y: 50},
		Vel:    gamemath.Vec{X: 20, Y: 20},
		Width:  30,
		Height: 30,
	}

	Step(&body, []Block{wall}, env)

	// X integration lands the body inside the wall; X resolution snaps it
	// back before Y integration runs, so the Y move proceeds unobstructed.
	assert.Equal(t, 100-30-SeparationEpsilon, body.Pos.X)
	assert.Equal(t, 20.0, body.Vel.X)
	assert.Equal(t, 70.0, body.Pos.Y)
}
