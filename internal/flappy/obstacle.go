package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Obstacle is a vertical pipe pair with a passable gap between GapTop and
// GapBottom. The gap is fixed at creation.
type Obstacle struct {
	X         float64 // Left edge
	GapTop    float64
	GapBottom float64
	Width     float64
	Passed    bool // Whether the obstacle has crossed the player's x-coordinate

	speed float64
}

// NewObstacle creates an obstacle at x with a gap top drawn uniformly from
// the integer range allowed by the margins.
// cfg must have passed Validate; otherwise GapRange may return high < low.
func NewObstacle(x float64, cfg config.Config, m config.Margins, rng *rand.Rand) Obstacle {
	low, high := cfg.GapRange(m)
	gapTop := low
	if high > low {
		gapTop = low + rng.Intn(high-low+1)
	}
	return Obstacle{
		X:         x,
		GapTop:    float64(gapTop),
		GapBottom: float64(gapTop) + cfg.Obstacles.GapSize,
		Width:     cfg.Obstacles.Width,
		speed:     cfg.Obstacles.Speed,
	}
}

// Move shifts the obstacle left by one tick of travel.
func (o *Obstacle) Move() {
	o.X -= o.speed
}

// OffScreen reports whether the right edge has left the visible world.
func (o Obstacle) OffScreen() bool {
	return o.X < -o.Width
}

// Right returns the x-coordinate of the right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// GapCenter returns the vertical middle of the gap.
func (o Obstacle) GapCenter() float64 {
	return (o.GapTop + o.GapBottom) / 2
}
