// Package flappy implements the simulation core of a Flappy Bird-style game:
// a body falling under gravity, scrolling gap obstacles, collision detection,
// scoring and the session state machine that ties them together.
//
// Everything here is deterministic given a config, a seed and the per-tick
// input frames. Rendering, input polling and pacing live outside the package
// and talk to it through Renderer, InputSource and Pacer.
package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// Body is the player-controlled object. X never changes; Y grows downward.
type Body struct {
	X      float64
	Y      float64
	VelY   float64
	Radius float64
	Alive  bool

	gravity     float64
	flapImpulse float64
	floor       float64 // Largest Y the body can reach (world height - radius)
}

// NewBody places a resting body at the vertical center of the world.
func NewBody(cfg config.Config) Body {
	return Body{
		X:           cfg.Player.X,
		Y:           cfg.World.Height / 2,
		Radius:      cfg.Player.Radius,
		Alive:       true,
		gravity:     cfg.Physics.Gravity,
		flapImpulse: cfg.Physics.FlapImpulse,
		floor:       cfg.World.Height - cfg.Player.Radius,
	}
}

// Flap overwrites the vertical velocity with the upward impulse.
// Repeated flaps do not stack.
func (b *Body) Flap() {
	b.VelY = -b.flapImpulse
}

// Update integrates one tick of gravity. Reaching the floor clamps Y and
// kills the body; a dead body no longer moves.
func (b *Body) Update() {
	if !b.Alive {
		return
	}
	b.VelY += b.gravity
	b.Y += b.VelY
	if b.Y > b.floor {
		b.Y = b.floor
		b.Alive = false
	}
}

// Top returns the y-coordinate of the body's upper edge.
func (b Body) Top() float64 {
	return b.Y - b.Radius
}

// Bottom returns the y-coordinate of the body's lower edge.
func (b Body) Bottom() float64 {
	return b.Y + b.Radius
}
