// Package leveldata turns level descriptions into static block sets. It
// accepts two sources: in-code integer grid tables and external Tiled TMX
// files. It has no dependencies on ebitengine, donburi, or resolv, so
// gameplay code and tests share the same pure data.
package leveldata

import "github.com/sablegate/grotto/physics"

// NextLevel is the door target meaning "advance to the following level".
const NextLevel = -1

// Level is one loaded level: its pixel dimensions and the ordered block set.
// Block order is the order the source was scanned in; collision resolution
// walks the list first-match, so the order is part of the level's behavior.
type Level struct {
	Name     string
	Width    float64
	Height   float64
	TileSize float64
	Blocks   []physics.Block
}

// SpawnPoint returns the level's single spawn marker. Loaders validate that
// exactly one exists, so a false return means the Level was built by hand.
func (l *Level) SpawnPoint() (physics.Block, bool) {
	for _, b := range l.Blocks {
		if b.Kind == physics.Spawn {
			return b, true
		}
	}
	return physics.Block{}, false
}

// BlocksOfKind returns the blocks with the given kind, preserving order.
func (l *Level) BlocksOfKind(kind physics.BlockKind) []physics.Block {
	var out []physics.Block
	for _, b := range l.Blocks {
		if b.Kind == kind {
			out = append(out, b)
		}
	}
	return out
}
