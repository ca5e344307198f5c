// Package assets owns level loading and the placeholder art. The prototype
// ships no image files: sprite sheets and tiles are generated at startup, so
// the full animation/render pipeline runs without binary assets.
package assets

import (
	"embed"
	"image/color"
	"io/fs"
	"sort"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	cfg "github.com/sablegate/grotto/config"
	"github.com/sablegate/grotto/leveldata"
	"github.com/sablegate/grotto/physics"
)

//go:embed all:levels
var levelFS embed.FS

// MustLoadLevels returns the full level sequence: built-in grid tables first,
// then any embedded TMX levels in file-name order. Panics on authoring
// errors; there is no recovering from a broken level set at startup.
func MustLoadLevels() []leveldata.Level {
	levels := leveldata.MustBuiltin(cfg.C.TileSize)

	paths, err := fs.Glob(levelFS, "levels/*.tmx")
	if err != nil {
		panic(err)
	}
	sort.Strings(paths)
	for _, path := range paths {
		level, err := leveldata.LoadTMX(levelFS, path)
		if err != nil {
			panic(err)
		}
		levels = append(levels, *level)
	}
	return levels
}

// FrameCounts gives the number of sheet frames per animation state.
var FrameCounts = map[cfg.StateID]int{
	cfg.Idle:    4,
	cfg.Running: 6,
	cfg.Jump:    1,
	cfg.Fall:    1,
	cfg.Die:     4,
}

var (
	sheetOnce    sync.Once
	playerSheets map[cfg.StateID]*ebiten.Image

	tileOnce   sync.Once
	tileImages map[physics.BlockKind]*ebiten.Image
)

// PlayerSheets returns the generated player sprite sheets, one horizontal
// strip per animation state.
func PlayerSheets() map[cfg.StateID]*ebiten.Image {
	sheetOnce.Do(func() {
		playerSheets = map[cfg.StateID]*ebiten.Image{
			cfg.Idle:    buildSheet(FrameCounts[cfg.Idle], color.RGBA{92, 182, 96, 255}),
			cfg.Running: buildSheet(FrameCounts[cfg.Running], color.RGBA{72, 162, 140, 255}),
			cfg.Jump:    buildSheet(FrameCounts[cfg.Jump], color.RGBA{96, 140, 196, 255}),
			cfg.Fall:    buildSheet(FrameCounts[cfg.Fall], color.RGBA{88, 120, 176, 255}),
			cfg.Die:     buildSheet(FrameCounts[cfg.Die], color.RGBA{190, 84, 84, 255}),
		}
	})
	return playerSheets
}

// buildSheet draws a horizontal strip of frames, each a slightly different
// shade so the frame timer is visible in motion.
func buildSheet(frames int, base color.RGBA) *ebiten.Image {
	w, h := cfg.Player.FrameWidth, cfg.Player.FrameHeight
	sheet := ebiten.NewImage(w*frames, h)
	for i := 0; i < frames; i++ {
		shade := base
		bump := uint8(i * 12)
		shade.R = addClamped(shade.R, bump)
		shade.G = addClamped(shade.G, bump)
		shade.B = addClamped(shade.B, bump)
		vector.FillRect(sheet,
			float32(i*w)+3, 3,
			float32(w)-6, float32(h)-6,
			shade, false)
	}
	return sheet
}

// TileImage returns the generated tile for a block kind.
func TileImage(kind physics.BlockKind) *ebiten.Image {
	tileOnce.Do(func() {
		size := float32(cfg.C.TileSize)
		tileImages = map[physics.BlockKind]*ebiten.Image{
			physics.Solid:  buildTile(size, color.RGBA{108, 96, 84, 255}, color.RGBA{74, 64, 56, 255}),
			physics.Door:   buildTile(size, color.RGBA{168, 140, 64, 255}, color.RGBA{120, 96, 40, 255}),
			physics.Hazard: buildTile(size, color.RGBA{176, 58, 58, 255}, color.RGBA{120, 32, 32, 255}),
		}
	})
	return tileImages[kind]
}

func buildTile(size float32, border, fill color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(int(size), int(size))
	vector.FillRect(img, 0, 0, size, size, border, false)
	vector.FillRect(img, 2, 2, size-4, size-4, fill, false)
	return img
}

func addClamped(v, d uint8) uint8 {
	if int(v)+int(d) > 255 {
		return 255
	}
	return v + d
}
