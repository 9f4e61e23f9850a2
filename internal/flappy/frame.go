package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Frame is everything a renderer needs to draw one tick.
type Frame struct {
	Body      Body
	Obstacles []Obstacle
	World     config.World
	Score     float64
	State     State
	Reason    EndReason
	Ticks     int
}

// DisplayScore returns the score as shown to the player.
func (f Frame) DisplayScore() int {
	return int(math.Floor(f.Score))
}

// Renderer draws frames. Drawing never affects the simulation.
type Renderer interface {
	Draw(f Frame)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(Frame)

// Draw calls fn(f).
func (fn RendererFunc) Draw(f Frame) {
	fn(f)
}

// NopRenderer discards every frame. Used by headless runs.
type NopRenderer struct{}

// Draw does nothing.
func (NopRenderer) Draw(Frame) {}

// Reporter receives the end-of-session report.
type Reporter interface {
	Report(r Report)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Report)

// Report calls fn(r).
func (fn ReporterFunc) Report(r Report) {
	fn(r)
}
