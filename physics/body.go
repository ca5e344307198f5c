// Package physics implements frame-indexed kinematics and axis-separated AABB
// collision resolution against static level geometry. It is pure data and
// math: no dependencies on ebitengine, donburi, or resolv, so the whole
// package tests headless. Velocities are per-frame displacements, not
// per-second rates; behavior is deliberately frame-rate-dependent.
package physics

import "github.com/sablegate/grotto/gamemath"

// BlockKind tags a static block with its role in the level. Only Solid blocks
// participate in collision resolution; the rest are markers consumed by level
// setup and trigger sensors.
type BlockKind int

const (
	Solid BlockKind = iota
	Spawn
	Door
	Hazard
)

func (k BlockKind) String() string {
	switch k {
	case Solid:
		return "solid"
	case Spawn:
		return "spawn"
	case Door:
		return "door"
	case Hazard:
		return "hazard"
	}
	return "unknown"
}

// Block is an axis-aligned static rectangle of level geometry. Pos is the
// top-left corner. Blocks are built once when a level loads and never move.
type Block struct {
	Pos    gamemath.Vec
	Width  float64
	Height float64
	Kind   BlockKind

	// Target is the destination level index for Door blocks.
	Target int
}

// Body is a moving axis-aligned rectangle. Pos is the top-left corner, not
// the center. It is the only mutable entity in the simulation: integration,
// gravity and collision resolution all write through it.
type Body struct {
	Pos    gamemath.Vec
	Vel    gamemath.Vec
	Width  float64
	Height float64
}

// Env carries the per-level simulation context: world bounds and the gravity
// increment. It is passed explicitly wherever it is needed rather than read
// from shared state.
type Env struct {
	Gravity gamemath.Vec
	Width   float64
	Height  float64
}

// Overlaps reports whether the body's rectangle and the block's rectangle
// intersect. Bounds are inclusive: touching edges count as an overlap.
func (b *Body) Overlaps(blk *Block) bool {
	return b.Pos.X <= blk.Pos.X+blk.Width &&
		b.Pos.X+b.Width >= blk.Pos.X &&
		b.Pos.Y+b.Height >= blk.Pos.Y &&
		b.Pos.Y <= blk.Pos.Y+blk.Height
}
