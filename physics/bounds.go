package physics

// ClampToBounds keeps the body inside the left, right and top edges of the
// world rectangle, zeroing the velocity component that pushed it out. The
// bottom edge is intentionally not handled here; ApplyGravity owns the floor
// so the two never fight over it. The clamp is idempotent, so its ordering
// relative to vertical collision resolution cannot disturb a settled body.
func ClampToBounds(b *Body, env Env) {
	if b.Pos.X <= 0 {
		b.Pos.X = 0
		b.Vel.X = 0
	}
	if b.Pos.Y <= 0 {
		b.Pos.Y = 0
		b.Vel.Y = 0
	}
	if b.Pos.X+b.Width >= env.Width {
		b.Pos.X = env.Width - b.Width
		b.Vel.X = 0
	}
}
