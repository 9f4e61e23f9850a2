package flappy

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// State is the session state machine: Running until the game ends, then
// Over for good.
type State int

const (
	StateRunning State = iota
	StateOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// EndReason records why a session ended.
type EndReason int

const (
	ReasonNone      EndReason = iota
	ReasonGround              // Body fell onto the floor
	ReasonCollision           // Body hit the ceiling or an obstacle
	ReasonQuit                // External quit signal
)

// String returns a human-readable name for the reason.
func (r EndReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonGround:
		return "ground"
	case ReasonCollision:
		return "collision"
	case ReasonQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ParseEndReason is the inverse of EndReason.String.
func ParseEndReason(s string) EndReason {
	for _, r := range []EndReason{ReasonGround, ReasonCollision, ReasonQuit} {
		if r.String() == s {
			return r
		}
	}
	return ReasonNone
}

// Report is emitted once, when a session transitions to Over.
type Report struct {
	Score  int     // Accumulated score truncated to an integer
	Raw    float64 // Accumulated score before truncation
	Passed int     // Obstacles that crossed the player
	Ticks  int     // Simulated ticks
	Reason EndReason
	Seed   int64
}

// StepResult is returned by Session.Step after each tick.
type StepResult struct {
	State  State
	Score  float64
	Ended  bool    // True only on the tick the session became Over
	Report *Report // Set together with Ended
}

// Session runs one game: it owns the body and the obstacle field, advances
// them once per tick and decides when the game is over.
type Session struct {
	cfg    config.Config
	seed   int64
	body   Body
	field  *Field
	score  float64
	state  State
	reason EndReason
	ticks  int
	report *Report
}

// NewSession validates cfg and starts a Running session. An invalid config is
// fatal: no session is created.
func NewSession(cfg config.Config, seed int64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: cannot start session: %w", err)
	}
	rng := rand.New(rand.NewSource(seed))
	return &Session{
		cfg:   cfg,
		seed:  seed,
		body:  NewBody(cfg),
		field: NewField(cfg, rng),
		state: StateRunning,
	}, nil
}

// Step advances the session by one tick.
//
// A Quit action ends the session immediately without simulating the tick.
// Otherwise every Flap action is applied, then gravity, obstacles and
// scoring, then the end conditions. Other actions are ignored. Once Over,
// Step changes nothing.
func (s *Session) Step(in core.InputFrame) StepResult {
	if s.state == StateOver {
		return s.result(false)
	}

	if in.Has(core.ActionQuit) {
		s.end(ReasonQuit)
		return s.result(true)
	}

	for _, a := range in.Actions {
		if a == core.ActionFlap {
			s.body.Flap()
		}
	}

	s.ticks++
	s.body.Update()
	s.score += s.field.Advance(s.body.X)

	switch {
	case !s.body.Alive:
		s.end(ReasonGround)
	case Collides(s.body, s.field.obstacles, s.cfg.World.Height):
		s.end(ReasonCollision)
	}

	return s.result(s.state == StateOver)
}

func (s *Session) end(reason EndReason) {
	s.state = StateOver
	s.reason = reason
	s.report = &Report{
		Score:  int(math.Floor(s.score)),
		Raw:    s.score,
		Passed: s.field.Passed(),
		Ticks:  s.ticks,
		Reason: reason,
		Seed:   s.seed,
	}
}

func (s *Session) result(ended bool) StepResult {
	r := StepResult{
		State: s.state,
		Score: s.score,
		Ended: ended,
	}
	if ended {
		report := *s.report
		r.Report = &report
	}
	return r
}

// Report returns the end-of-session report once the session is Over.
func (s *Session) Report() (Report, bool) {
	if s.report == nil {
		return Report{}, false
	}
	return *s.report, true
}

// Body returns a copy of the player body.
func (s *Session) Body() Body {
	return s.body
}

// Obstacles returns a copy of the active obstacles in spawn order.
func (s *Session) Obstacles() []Obstacle {
	return s.field.Obstacles()
}

// Score returns the accumulated score, including half units.
func (s *Session) Score() float64 {
	return s.score
}

// Passed returns how many obstacles have crossed the player.
func (s *Session) Passed() int {
	return s.field.Passed()
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Reason returns why the session ended, or ReasonNone while running.
func (s *Session) Reason() EndReason {
	return s.reason
}

// Ticks returns the number of simulated ticks.
func (s *Session) Ticks() int {
	return s.ticks
}

// Seed returns the RNG seed the session was created with.
func (s *Session) Seed() int64 {
	return s.seed
}

// Config returns the world configuration of the session.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Frame returns a read-only snapshot for rendering.
func (s *Session) Frame() Frame {
	return Frame{
		Body:      s.body,
		Obstacles: s.field.Obstacles(),
		World:     s.cfg.World,
		Score:     s.score,
		State:     s.state,
		Reason:    s.reason,
		Ticks:     s.ticks,
	}
}
