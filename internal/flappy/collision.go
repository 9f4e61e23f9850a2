package flappy

// Collides reports whether the body is out of the world vertically or hits
// an obstacle it horizontally overlaps.
//
// The ceiling test is strict (Y - R < 0) while the ground test is inclusive
// (Y + R >= height), so a body clamped onto the floor always collides.
// Horizontal overlap is strict on both sides: a body only touching an
// obstacle's edge does not overlap it. Inside an overlapped obstacle the
// body's span must lie within [GapTop, GapBottom].
func Collides(b Body, obstacles []Obstacle, worldHeight float64) bool {
	if b.Top() < 0 || b.Bottom() >= worldHeight {
		return true
	}

	for _, o := range obstacles {
		if b.X+b.Radius > o.X && b.X-b.Radius < o.Right() {
			if b.Top() < o.GapTop || b.Bottom() > o.GapBottom {
				return true
			}
		}
	}
	return false
}
