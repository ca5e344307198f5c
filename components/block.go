package components

import (
	"github.com/yohamta/donburi"

	"github.com/sablegate/grotto/physics"
)

// BlockData holds a static level block. Wall entities exist for rendering and
// debug; collision resolution walks the level's block slice directly so the
// first-match order is the load order, not entity iteration order.
type BlockData struct {
	physics.Block
}

var Block = donburi.NewComponentType[BlockData]()
