package physics

// ApplyGravity accumulates the per-frame gravity increment into the body's
// velocity while the body is above the world floor. Once the body's bottom
// edge reaches or passes the floor, the vertical velocity is zeroed and the
// position is clamped exactly to the floor, so a large accumulated fall speed
// cannot carry the body below the world in a single frame. Horizontal
// velocity is never touched.
//
// The clamp is a stable fixed point: repeated calls on a grounded body leave
// Vel.Y == 0 and Pos.Y == worldHeight - Height.
func ApplyGravity(b *Body, env Env) {
	if b.Pos.Y+b.Height < env.Height {
		b.Vel = b.Vel.Add(env.Gravity)
		return
	}
	b.Vel.Y = 0
	b.Pos.Y = env.Height - b.Height
}
