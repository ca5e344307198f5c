package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"

	"github.com/sablegate/grotto/gamemath"
	"github.com/sablegate/grotto/physics"
)

// TMX naming conventions: the tile layer holding solid geometry, and the
// object groups holding markers.
const (
	tmxSolidLayer  = "blocks"
	tmxSpawnGroup  = "Spawn"
	tmxDoorGroup   = "Doors"
	tmxHazardGroup = "Hazards"
)

// LoadTMX parses a Tiled TMX level. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS. Solid tiles come from the "blocks" tile layer in scan
// order; spawn, door and hazard markers come from object groups. Doors may
// carry an integer "target" property naming the destination level index;
// without one they target the next level.
func LoadTMX(fsys fs.FS, path string) (*Level, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	level := &Level{
		Name:     levelMap.Properties.GetString("name"),
		Width:    float64(levelMap.Width) * tileW,
		Height:   float64(levelMap.Height) * tileH,
		TileSize: tileW,
	}
	if level.Name == "" {
		level.Name = path
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != tmxSolidLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				level.Blocks = append(level.Blocks, physics.Block{
					Pos:    gamemath.Vec{X: float64(x) * tileW, Y: float64(y) * tileH},
					Width:  tileW,
					Height: tileH,
					Kind:   physics.Solid,
				})
			}
		}
		break
	}

	spawns := 0
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			blk := physics.Block{
				Pos:    gamemath.Vec{X: o.X, Y: o.Y},
				Width:  o.Width,
				Height: o.Height,
			}
			switch og.Name {
			case tmxSpawnGroup:
				blk.Kind = physics.Spawn
				spawns++
			case tmxDoorGroup:
				blk.Kind = physics.Door
				blk.Target = NextLevel
				if o.Properties.GetString("target") != "" {
					blk.Target = o.Properties.GetInt("target")
				}
			case tmxHazardGroup:
				blk.Kind = physics.Hazard
			default:
				continue
			}
			level.Blocks = append(level.Blocks, blk)
		}
	}

	if spawns != 1 {
		return nil, fmt.Errorf("load TMX %s: want exactly one spawn marker, got %d", path, spawns)
	}
	return level, nil
}
