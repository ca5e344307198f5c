package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/sablegate/grotto/assets"
	"github.com/sablegate/grotto/components"
	cfg "github.com/sablegate/grotto/config"
	"github.com/sablegate/grotto/gamemath"
	"github.com/sablegate/grotto/leveldata"
	"github.com/sablegate/grotto/physics"
	"github.com/sablegate/grotto/systems/factory"
	"github.com/sablegate/grotto/tags"
)

// swapLevel tears down the current level's entities and builds the target
// level in their place, moving the player to the new spawn. Runs mid-fade,
// so the player never sees the rebuild.
func swapLevel(e *ecs.ECS, index int) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if index < 0 || index >= len(levelData.Levels) {
		return
	}

	removeLevelEntities(e)

	levelData.LevelIndex = index
	levelData.CurrentLevel = &levelData.Levels[index]
	levelData.Env = physics.Env{
		Gravity: cfg.Physics.Gravity,
		Width:   levelData.CurrentLevel.Width,
		Height:  levelData.CurrentLevel.Height,
	}

	factory.CreateLevelBlocks(e, levelData.CurrentLevel)
	PlacePlayerAtSpawn(e, levelData.CurrentLevel)

	// Snap the camera so the new level does not pan in from the old position.
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		if playerEntry, ok := tags.Player.First(e.World); ok {
			body := components.Body.Get(playerEntry)
			camera.Position = gamemath.Vec{
				X: body.Pos.X + body.Width/2,
				Y: body.Pos.Y + body.Height/2,
			}
			camera.LookAheadX = 0
		}
	}
}

// removeLevelEntities deletes wall, door and hazard entities and unregisters
// their sensors from the resolv space.
func removeLevelEntities(e *ecs.ECS) {
	spaceEntry, hasSpace := components.Space.First(e.World)

	var doomed []*donburi.Entry
	collect := func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	}
	tags.Wall.Each(e.World, collect)
	tags.Door.Each(e.World, collect)
	tags.Hazard.Each(e.World, collect)
	for _, entry := range doomed {
		if hasSpace && entry.HasComponent(components.Object) {
			obj := components.Object.Get(entry)
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
		e.World.Remove(entry.Entity())
	}
}

// PlacePlayerAtSpawn positions the player on the level's spawn marker,
// bottom-aligned and horizontally centered on the tile, at rest.
func PlacePlayerAtSpawn(e *ecs.ECS, level *leveldata.Level) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	spawn, ok := level.SpawnPoint()
	if !ok {
		panic("level has no spawn marker")
	}

	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)

	player.SpawnX = spawn.Pos.X + (spawn.Width-body.Width)/2
	player.SpawnY = spawn.Pos.Y + spawn.Height - body.Height
	respawnPlayer(playerEntry)
}

// DrawLevel renders the block set with the camera transform. Spawn markers
// are invisible; doors and hazards draw with their own tiles.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y

	opts := &ebiten.DrawImageOptions{}
	for _, blk := range levelData.CurrentLevel.Blocks {
		if blk.Kind == physics.Spawn {
			continue
		}
		tile := assets.TileImage(blk.Kind)
		if tile == nil {
			continue
		}

		// Cull blocks outside the viewport.
		x := blk.Pos.X + camX
		y := blk.Pos.Y + camY
		if x+blk.Width < 0 || x > float64(width) || y+blk.Height < 0 || y > float64(height) {
			continue
		}

		opts.GeoM.Reset()
		tileW := float64(tile.Bounds().Dx())
		tileH := float64(tile.Bounds().Dy())
		opts.GeoM.Scale(blk.Width/tileW, blk.Height/tileH)
		opts.GeoM.Translate(x, y)
		screen.DrawImage(tile, opts)
	}
}
