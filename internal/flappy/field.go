package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Field owns the active obstacles in spawn order. It always holds exactly
// cfg.Obstacles.Count obstacles: every one that leaves the screen is replaced
// in the same tick.
type Field struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.Config
	passed    int // Obstacles that crossed the player so far
}

// NewField pre-populates the field with staggered obstacles starting at the
// right edge of the world. The first obstacles use the initial margins.
func NewField(cfg config.Config, rng *rand.Rand) *Field {
	f := &Field{
		obstacles: make([]Obstacle, 0, cfg.Obstacles.Count),
		rng:       rng,
		cfg:       cfg,
	}
	for i := 0; i < cfg.Obstacles.Count; i++ {
		x := cfg.World.Width + float64(i)*cfg.Obstacles.SpawnInterval
		f.obstacles = append(f.obstacles, NewObstacle(x, cfg, cfg.Obstacles.InitialMargins, rng))
	}
	return f
}

// Advance moves every obstacle one tick, scores the ones that passed playerX
// and recycles the ones that left the screen. It returns the score earned
// this tick.
func (f *Field) Advance(playerX float64) float64 {
	delta := 0.0
	per := f.cfg.Scoring.PerObstacle

	for i := range f.obstacles {
		o := &f.obstacles[i]
		o.Move()

		if o.X < playerX && !o.OffScreen() {
			if !o.Passed {
				o.Passed = true
				f.passed++
				if f.cfg.Scoring.Mode == config.ScoreEdge {
					delta += per
				}
			}
			if f.cfg.Scoring.Mode == config.ScoreLevel {
				delta += per
			}
		}
	}

	// Collect survivors first, then append replacements, so the slice is
	// never mutated while it is being scanned.
	retired := 0
	survivors := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.OffScreen() {
			retired++
			continue
		}
		survivors = append(survivors, o)
	}
	f.obstacles = survivors

	for ; retired > 0; retired-- {
		f.obstacles = append(f.obstacles, NewObstacle(f.nextSpawnX(), f.cfg, f.cfg.Obstacles.Margins, f.rng))
	}

	return delta
}

// nextSpawnX places a new obstacle one spawn interval beyond the rightmost
// one, never closer than the right edge of the world.
func (f *Field) nextSpawnX() float64 {
	x := f.cfg.World.Width
	if len(f.obstacles) > 0 {
		x = math.Max(x, f.Rightmost()+f.cfg.Obstacles.SpawnInterval)
	}
	return x
}

// Rightmost returns the largest obstacle x-coordinate, or -Inf for an empty field.
func (f *Field) Rightmost() float64 {
	r := math.Inf(-1)
	for _, o := range f.obstacles {
		r = math.Max(r, o.X)
	}
	return r
}

// Obstacles returns a copy of the active obstacles in spawn order.
func (f *Field) Obstacles() []Obstacle {
	out := make([]Obstacle, len(f.obstacles))
	copy(out, f.obstacles)
	return out
}

// Len returns the number of active obstacles.
func (f *Field) Len() int {
	return len(f.obstacles)
}

// Passed returns how many obstacles have crossed the player so far.
func (f *Field) Passed() int {
	return f.passed
}
