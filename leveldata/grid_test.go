package leveldata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sablegate/grotto/gamemath"
	"github.com/sablegate/grotto/physics"
)

func TestDecodeGrid(t *testing.T) {
	grid := [][]int{
		{0, 0, 3},
		{2, 0, 1},
		{1, 1, 1},
	}

	level, err := DecodeGrid("test", grid, 32)
	require.NoError(t, err)

	assert.Equal(t, 96.0, level.Width)
	assert.Equal(t, 96.0, level.Height)
	assert.Equal(t, 32.0, level.TileSize)

	// Scan order: row-major, top to bottom, left to right.
	require.Len(t, level.Blocks, 6)
	assert.Equal(t, physics.Door, level.Blocks[0].Kind)
	assert.Equal(t, gamemath.Vec{X: 64, Y: 0}, level.Blocks[0].Pos)
	assert.Equal(t, NextLevel, level.Blocks[0].Target)
	assert.Equal(t, physics.Spawn, level.Blocks[1].Kind)
	assert.Equal(t, physics.Solid, level.Blocks[2].Kind)
	assert.Equal(t, gamemath.Vec{X: 64, Y: 32}, level.Blocks[2].Pos)
	assert.Equal(t, physics.Solid, level.Blocks[5].Kind)
	assert.Equal(t, gamemath.Vec{X: 64, Y: 64}, level.Blocks[5].Pos)
}

func TestDecodeGridSpawnValidation(t *testing.T) {
	_, err := DecodeGrid("none", [][]int{{1, 1}}, 32)
	assert.ErrorContains(t, err, "exactly one spawn")

	_, err = DecodeGrid("two", [][]int{{2, 2}}, 32)
	assert.ErrorContains(t, err, "exactly one spawn")
}

func TestDecodeGridRejectsRaggedRows(t *testing.T) {
	_, err := DecodeGrid("ragged", [][]int{{0, 2}, {0}}, 32)
	assert.ErrorContains(t, err, "row 1")
}

func TestDecodeGridRejectsUnknownCell(t *testing.T) {
	_, err := DecodeGrid("bad", [][]int{{2, 9}}, 32)
	assert.ErrorContains(t, err, "unknown cell value 9")
}

func TestDecodeGridRejectsEmpty(t *testing.T) {
	_, err := DecodeGrid("empty", nil, 32)
	assert.ErrorContains(t, err, "empty grid")
}

func TestSpawnPointAndBlocksOfKind(t *testing.T) {
	grid := [][]int{
		{2, 0, 4},
		{1, 1, 1},
	}
	level, err := DecodeGrid("test", grid, 16)
	require.NoError(t, err)

	spawn, ok := level.SpawnPoint()
	require.True(t, ok)
	assert.Equal(t, gamemath.Vec{X: 0, Y: 0}, spawn.Pos)

	assert.Len(t, level.BlocksOfKind(physics.Solid), 3)
	assert.Len(t, level.BlocksOfKind(physics.Hazard), 1)
	assert.Empty(t, level.BlocksOfKind(physics.Door))
}

func TestMustBuiltinLevelsAreValid(t *testing.T) {
	levels := MustBuiltin(32)
	require.Len(t, levels, 2)
	for _, level := range levels {
		_, ok := level.SpawnPoint()
		assert.True(t, ok, "level %s has no spawn", level.Name)
		assert.NotEmpty(t, level.BlocksOfKind(physics.Solid), "level %s has no geometry", level.Name)
		assert.NotEmpty(t, level.BlocksOfKind(physics.Door), "level %s has no exit", level.Name)
	}
}
