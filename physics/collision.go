package physics

// SeparationEpsilon is the bias applied when snapping a body out of a block,
// keeping it from re-triggering the same overlap on the next frame through
// the inclusive bounds test.
const SeparationEpsilon = 0.01

// ResolveAxisX resolves horizontal overlap between the body and the first
// solid block it intersects, walking the list in insertion order. The body is
// snapped flush against the block face it was moving toward, with a small
// separating bias. Horizontal velocity is left unchanged: running into a wall
// does not kill horizontal speed.
//
// Only the first overlapping solid is resolved per call. A body wedged into
// several blocks at once may be left partially overlapping; validated levels
// never produce that state.
func ResolveAxisX(b *Body, blocks []Block) {
	for i := range blocks {
		blk := &blocks[i]
		if blk.Kind != Solid || !b.Overlaps(blk) {
			continue
		}
		if b.Vel.X < 0 {
			b.Pos.X = blk.Pos.X + blk.Width + SeparationEpsilon
		} else if b.Vel.X > 0 {
			b.Pos.X = blk.Pos.X - b.Width - SeparationEpsilon
		}
		return
	}
}

// ResolveAxisY resolves vertical overlap against the first intersecting solid
// block in insertion order. Moving up snaps the body under the block, moving
// down snaps it on top, and in either case vertical velocity is zeroed: a
// landing or a head bump always stops the fall or the jump.
func ResolveAxisY(b *Body, blocks []Block) {
	for i := range blocks {
		blk := &blocks[i]
		if blk.Kind != Solid || !b.Overlaps(blk) {
			continue
		}
		if b.Vel.Y < 0 {
			b.Pos.Y = blk.Pos.Y + blk.Height + SeparationEpsilon
		} else if b.Vel.Y > 0 {
			b.Pos.Y = blk.Pos.Y - b.Height - SeparationEpsilon
		}
		b.Vel.Y = 0
		return
	}
}
