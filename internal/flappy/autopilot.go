package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// DefaultAutopilotOffset is how far below a gap center the autopilot lets
// the body sink before it flaps.
const DefaultAutopilotOffset = 20.0

// Autopilot is an InputSource that steers a session through the gaps: it
// flaps whenever the body is more than Offset below the center of the
// nearest obstacle it has not yet cleared.
type Autopilot struct {
	session *Session
	Offset  float64
}

// NewAutopilot creates an autopilot bound to the given session.
func NewAutopilot(s *Session) *Autopilot {
	return &Autopilot{session: s, Offset: DefaultAutopilotOffset}
}

// Poll decides whether to flap this tick.
func (a *Autopilot) Poll() core.InputFrame {
	if a.session.State() == StateOver {
		return core.NewInputFrame()
	}
	body := a.session.Body()
	if body.Y > a.Target()+a.Offset {
		return core.NewInputFrame(core.ActionFlap)
	}
	return core.NewInputFrame()
}

// Target returns the y-coordinate the autopilot is steering toward: the gap
// center of the nearest obstacle whose right edge is still ahead of the
// body's left edge, or the world's vertical center if there is none.
func (a *Autopilot) Target() float64 {
	body := a.session.Body()
	var next *Obstacle
	obstacles := a.session.Obstacles()
	for i := range obstacles {
		o := &obstacles[i]
		if o.Right() <= body.X-body.Radius {
			continue
		}
		if next == nil || o.X < next.X {
			next = o
		}
	}
	if next == nil {
		return a.session.Config().World.Height / 2
	}
	return next.GapCenter()
}
