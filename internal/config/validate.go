package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure. A config that
// fails validation must not be used to start a session.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the world constants for consistency and returns every
// violation found, joined and wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0, "world.width must be positive, got %v", c.World.Width)
	check(c.World.Height > 0, "world.height must be positive, got %v", c.World.Height)
	check(c.World.TickRate > 0, "world.tick_rate must be positive, got %d", c.World.TickRate)

	check(c.Player.Radius > 0, "player.radius must be positive, got %v", c.Player.Radius)
	check(c.Player.X >= 0 && c.Player.X <= c.World.Width,
		"player.x must lie inside the world, got %v", c.Player.X)
	check(2*c.Player.Radius < c.World.Height,
		"player diameter %v does not fit world height %v", 2*c.Player.Radius, c.World.Height)

	check(c.Physics.Gravity >= 0, "physics.gravity must not be negative, got %v", c.Physics.Gravity)
	check(c.Physics.FlapImpulse > 0, "physics.flap_impulse must be positive, got %v", c.Physics.FlapImpulse)

	o := c.Obstacles
	check(o.Count > 0, "obstacles.count must be positive, got %d", o.Count)
	check(o.Width > 0, "obstacles.width must be positive, got %v", o.Width)
	check(o.GapSize > 0, "obstacles.gap_size must be positive, got %v", o.GapSize)
	check(o.Speed > 0, "obstacles.speed must be positive, got %v", o.Speed)
	check(o.SpawnInterval > 0, "obstacles.spawn_interval must be positive, got %v", o.SpawnInterval)
	errs = append(errs, c.checkMargins("obstacles.initial_margins", o.InitialMargins)...)
	errs = append(errs, c.checkMargins("obstacles.margins", o.Margins)...)

	switch c.Scoring.Mode {
	case ScoreEdge, ScoreLevel:
	default:
		errs = append(errs, fmt.Errorf("scoring.mode must be %q or %q, got %q", ScoreEdge, ScoreLevel, c.Scoring.Mode))
	}
	check(c.Scoring.PerObstacle > 0, "scoring.per_obstacle must be positive, got %v", c.Scoring.PerObstacle)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// checkMargins verifies that a gap can always be placed: low + gap + high <= height.
func (c Config) checkMargins(name string, m Margins) []error {
	var errs []error
	if m.Low < 0 || m.High < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative, got %d/%d", name, m.Low, m.High))
	}
	if float64(m.Low)+c.Obstacles.GapSize+float64(m.High) > c.World.Height {
		errs = append(errs, fmt.Errorf("%s: %d + gap %v + %d exceeds world height %v",
			name, m.Low, c.Obstacles.GapSize, m.High, c.World.Height))
	}
	return errs
}

// GapRange returns the inclusive integer range the gap top is drawn from.
func (c Config) GapRange(m Margins) (low, high int) {
	return m.Low, int(c.World.Height-c.Obstacles.GapSize) - m.High
}
