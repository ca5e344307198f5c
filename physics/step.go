package physics

// Step advances the body by one frame in a fixed order:
//
//	1. integrate X
//	2. resolve X against solids
//	3. apply gravity / floor clamp
//	4. integrate Y
//	5. resolve Y against solids
//	6. clamp to world bounds
//
// The ordering is load-bearing. Resolving X before gravity and Y integration
// means a diagonal move is handled one axis at a time instead of as a single
// combined vector, which would let a fast body cut corners through geometry.
func Step(b *Body, blocks []Block, env Env) {
	b.Pos.X += b.Vel.X
	ResolveAxisX(b, blocks)

	ApplyGravity(b, env)

	b.Pos.Y += b.Vel.Y
	ResolveAxisY(b, blocks)

	ClampToBounds(b, env)
}
