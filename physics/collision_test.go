package physics

import (
	"testing"

	"github.com/sablegate/grotto/gamemath"
	"github.com/stretchr/testify/assert"
)

func solidAt(x, y, w, h float64) Block {
	return Block{Pos: gamemath.Vec{X: x, Y: y}, Width: w, Height: h, Kind: Solid}
}

func TestOverlapsInclusiveBounds(t *testing.T) {
	blk := solidAt(100, 100, 16, 16)
	tests := []struct {
		name string
		body Body
		want bool
	}{
		{"clear left", Body{Pos: gamemath.Vec{X: 50, Y: 100}, Width: 20, Height: 20}, false},
		{"touching left edge", Body{Pos: gamemath.Vec{X: 80, Y: 100}, Width: 20, Height: 20}, true},
		{"deep overlap", Body{Pos: gamemath.Vec{X: 105, Y: 105}, Width: 20, Height: 20}, true},
		{"touching bottom edge", Body{Pos: gamemath.Vec{X: 100, Y: 116}, Width: 16, Height: 16}, true},
		{"clear below", Body{Pos: gamemath.Vec{X: 100, Y: 140}, Width: 16, Height: 16}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.body.Overlaps(&blk))
		})
	}
}

func TestResolveAxisXMovingRight(t *testing.T) {
	// Body of width 50 pushed into a block face at x=100 must snap to 49.99.
	body := Body{
		Pos:    gamemath.Vec{X: 60, Y: 10},
		Vel:    gamemath.Vec{X: 8, Y: 0},
		Width:  50,
		Height: 50,
	}
	blocks := []Block{solidAt(100, 0, 16, 100)}

	ResolveAxisX(&body, blocks)

	assert.Equal(t, 100-50-SeparationEpsilon, body.Pos.X)
	assert.Equal(t, 8.0, body.Vel.X, "wall hits do not kill horizontal speed")
}

func TestResolveAxisXMovingLeft(t *testing.T) {
	body := Body{
		Pos:    gamemath.Vec{X: 110, Y: 10},
		Vel:    gamemath.Vec{X: -5, Y: 0},
		Width:  50,
		Height: 50,
	}
	blocks := []Block{solidAt(100, 0, 16, 100)}

	ResolveAxisX(&body, blocks)

	assert.Equal(t, 100+16+SeparationEpsilon, body.Pos.X)
	assert.Equal(t, -5.0, body.Vel.X)
}

func TestResolveAxisXNoOverlapLeavesBody(t *testing.T) {
	body := Body{Pos: gamemath.Vec{X: 10, Y: 10}, Vel: gamemath.Vec{X: 3}, Width: 20, Height: 20}
	blocks := []Block{solidAt(200, 200, 16, 16)}

	ResolveAxisX(&body, blocks)

	assert.Equal(t, gamemath.Vec{X: 10, Y: 10}, body.Pos)
}

func TestResolveAxisYFalling(t *testing.T) {
	body := Body{
		Pos:    gamemath.Vec{X: 10, Y: 170},
		Vel:    gamemath.Vec{X: 0, Y: 10},
		Width:  30,
		Height: 35,
	}
	blocks := []Block{solidAt(0, 200, 100, 16)}

	ResolveAxisY(&body, blocks)

	assert.Equal(t, 200-35-SeparationEpsilon, body.Pos.Y)
	assert.Equal(t, 0.0, body.Vel.Y)
}

func TestResolveAxisYRising(t *testing.T) {
	body := Body{
		Pos:    gamemath.Vec{X: 10, Y: 210},
		Vel:    gamemath.Vec{X: 0, Y: -12},
		Width:  30,
		Height: 35,
	}
	blocks := []Block{solidAt(0, 200, 100, 16)}

	ResolveAxisY(&body, blocks)

	assert.Equal(t, 200+16+SeparationEpsilon, body.Pos.Y)
	assert.Equal(t, 0.0, body.Vel.Y)
}

func TestResolveStopsAtFirstMatch(t *testing.T) {
	// Two overlapping candidates: only the one earliest in insertion order
	// resolves, even if the later one penetrates deeper.
	body := Body{
		Pos:    gamemath.Vec{X: 10, Y: 190},
		Vel:    gamemath.Vec{X: 0, Y: 10},
		Width:  30,
		Height: 30,
	}
	first := solidAt(0, 210, 100, 16)
	second := solidAt(0, 200, 100, 16)
	blocks := []Block{first, second}

	ResolveAxisY(&body, blocks)

	assert.Equal(t, 210-30-SeparationEpsilon, body.Pos.Y)
}

func TestResolveSkipsMarkerBlocks(t *testing.T) {
	body := Body{
		Pos:    gamemath.Vec{X: 10, Y: 190},
		Vel:    gamemath.Vec{X: 0, Y: 10},
		Width:  30,
		Height: 30,
	}
	door := Block{Pos: gamemath.Vec{X: 0, Y: 200}, Width: 100, Height: 16, Kind: Door}
	floor := solidAt(0, 216, 100, 16)
	blocks := []Block{door, floor}

	ResolveAxisY(&body, blocks)

	assert.Equal(t, 216-30-SeparationEpsilon, body.Pos.Y, "doors are markers, not geometry")
}

func TestClampToBounds(t *testing.T) {
	env := Env{Width: 800, Height: 600}

	left := Body{Pos: gamemath.Vec{X: -3, Y: 50}, Vel: gamemath.Vec{X: -5, Y: 2}, Width: 30, Height: 30}
	ClampToBounds(&left, env)
	assert.Equal(t, 0.0, left.Pos.X)
	assert.Equal(t, 0.0, left.Vel.X)
	assert.Equal(t, 2.0, left.Vel.Y)

	top := Body{Pos: gamemath.Vec{X: 50, Y: -1}, Vel: gamemath.Vec{X: 1, Y: -4}, Width: 30, Height: 30}
	ClampToBounds(&top, env)
	assert.Equal(t, 0.0, top.Pos.Y)
	assert.Equal(t, 0.0, top.Vel.Y)

	right := Body{Pos: gamemath.Vec{X: 790, Y: 50}, Vel: gamemath.Vec{X: 6, Y: 0}, Width: 30, Height: 30}
	ClampToBounds(&right, env)
	assert.Equal(t, 770.0, right.Pos.X)
	assert.Equal(t, 0.0, right.Vel.X)
}

func TestClampToBoundsIsIdempotent(t *testing.T) {
	env := Env{Width: 800, Height: 600}
	body := Body{Pos: gamemath.Vec{X: -10, Y: -10}, Vel: gamemath.Vec{X: -5, Y: -5}, Width: 30, Height: 30}
	ClampToBounds(&body, env)
	snapshot := body
	ClampToBounds(&body, env)
	assert.Equal(t, snapshot, body)
}
