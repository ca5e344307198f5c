package leveldata

import (
	"fmt"

	"github.com/sablegate/grotto/gamemath"
	"github.com/sablegate/grotto/physics"
)

// Grid cell values understood by DecodeGrid.
const (
	CellEmpty  = 0
	CellSolid  = 1
	CellSpawn  = 2
	CellDoor   = 3
	CellHazard = 4
)

// DecodeGrid converts a 2-D integer grid into a Level. The grid is scanned
// row-major, top to bottom, left to right; blocks are appended in scan order,
// which fixes the collision first-match priority. Each cell becomes one
// tile-sized block. A level must contain exactly one spawn marker. Doors
// produced from grids always target the next level in sequence.
func DecodeGrid(name string, grid [][]int, tileSize float64) (*Level, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("level %q: empty grid", name)
	}

	cols := len(grid[0])
	level := &Level{
		Name:     name,
		Width:    float64(cols) * tileSize,
		Height:   float64(len(grid)) * tileSize,
		TileSize: tileSize,
	}

	spawns := 0
	for row, cells := range grid {
		if len(cells) != cols {
			return nil, fmt.Errorf("level %q: row %d has %d cells, want %d", name, row, len(cells), cols)
		}
		for col, cell := range cells {
			if cell == CellEmpty {
				continue
			}
			blk := physics.Block{
				Pos:    gamemath.Vec{X: float64(col) * tileSize, Y: float64(row) * tileSize},
				Width:  tileSize,
				Height: tileSize,
			}
			switch cell {
			case CellSolid:
				blk.Kind = physics.Solid
			case CellSpawn:
				blk.Kind = physics.Spawn
				spawns++
			case CellDoor:
				blk.Kind = physics.Door
				blk.Target = NextLevel
			case CellHazard:
				blk.Kind = physics.Hazard
			default:
				return nil, fmt.Errorf("level %q: unknown cell value %d at (%d,%d)", name, cell, col, row)
			}
			level.Blocks = append(level.Blocks, blk)
		}
	}

	if spawns != 1 {
		return nil, fmt.Errorf("level %q: want exactly one spawn marker, got %d", name, spawns)
	}
	return level, nil
}
