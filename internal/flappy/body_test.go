package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestBodyStartsAtCenter(t *testing.T) {
	cfg := config.Default()
	b := NewBody(cfg)

	if b.X != cfg.Player.X || b.Y != cfg.World.Height/2 {
		t.Errorf("body at (%v, %v), expected (%v, %v)", b.X, b.Y, cfg.Player.X, cfg.World.Height/2)
	}
	if b.VelY != 0 || !b.Alive {
		t.Errorf("new body should be alive and at rest, got vel=%v alive=%v", b.VelY, b.Alive)
	}
}

func TestBodyGravity(t *testing.T) {
	cfg := config.Default()
	b := NewBody(cfg)

	for i := 0; i < 20; i++ {
		prevY, prevVel := b.Y, b.VelY
		b.Update()
		if b.VelY != prevVel+cfg.Physics.Gravity {
			t.Fatalf("tick %d: velocity %v, expected %v", i, b.VelY, prevVel+cfg.Physics.Gravity)
		}
		if b.Y <= prevY {
			t.Fatalf("tick %d: Y should increase while falling, was %v now %v", i, prevY, b.Y)
		}
	}
}

func TestBodyFlapOverridesVelocity(t *testing.T) {
	cfg := config.Default()
	b := NewBody(cfg)
	want := -cfg.Physics.FlapImpulse

	for _, vel := range []float64{0, 7.5, -12, want} {
		b.VelY = vel
		b.Flap()
		if b.VelY != want {
			t.Errorf("Flap() from %v: velocity %v, expected %v", vel, b.VelY, want)
		}
	}

	// Mid-air repeated flaps never stack.
	b.Flap()
	b.Update()
	b.Flap()
	b.Flap()
	if b.VelY != want {
		t.Errorf("repeated flaps: velocity %v, expected %v", b.VelY, want)
	}
}

func TestBodyGroundClamp(t *testing.T) {
	cfg := config.Default()
	b := NewBody(cfg)
	floor := cfg.World.Height - cfg.Player.Radius

	b.Y = floor - 1
	b.VelY = 10
	b.Update()

	if b.Alive {
		t.Fatal("body should die when it passes the floor")
	}
	if b.Y != floor {
		t.Errorf("Y = %v, expected clamp to %v", b.Y, floor)
	}

	// Dead bodies stay put.
	b.Flap()
	b.Update()
	if b.Y != floor || b.Alive {
		t.Errorf("dead body moved or revived: Y=%v alive=%v", b.Y, b.Alive)
	}
}

func TestBodyRestingOnFloorStaysAlive(t *testing.T) {
	cfg := config.Default()
	cfg.Physics.Gravity = 0
	b := NewBody(cfg)
	b.Y = cfg.World.Height - cfg.Player.Radius

	b.Update()
	if !b.Alive {
		t.Error("only passing the floor kills the body, touching it does not")
	}
}
