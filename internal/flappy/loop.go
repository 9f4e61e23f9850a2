package flappy

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// InputSource supplies the actions for the next tick.
type InputSource interface {
	Poll() core.InputFrame
}

// InputFunc adapts a function to the InputSource interface.
type InputFunc func() core.InputFrame

// Poll calls fn().
func (fn InputFunc) Poll() core.InputFrame {
	return fn()
}

// Pacer blocks between ticks to hold the loop at its tick rate.
type Pacer interface {
	Wait(ctx context.Context) error
}

// NoPacer never waits. Headless runs simulate as fast as possible.
type NoPacer struct{}

// Wait returns immediately.
func (NoPacer) Wait(context.Context) error { return nil }

// TickerPacer paces ticks with a time.Ticker.
type TickerPacer struct {
	ticker *time.Ticker
}

// NewTickerPacer creates a pacer firing tickRate times per second.
func NewTickerPacer(tickRate int) *TickerPacer {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TickerPacer{ticker: time.NewTicker(time.Second / time.Duration(tickRate))}
}

// Wait blocks until the next tick or until ctx is done.
func (p *TickerPacer) Wait(ctx context.Context) error {
	select {
	case <-p.ticker.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop releases the underlying ticker.
func (p *TickerPacer) Stop() {
	p.ticker.Stop()
}

// Loop drives a session tick by tick: poll input, step, draw, then either
// report the end of the game or wait for the next tick.
type Loop struct {
	Session  *Session
	Input    InputSource // nil means no input at all
	Renderer Renderer    // nil means NopRenderer
	Reporter Reporter    // Optional
	Pacer    Pacer       // nil means NoPacer
	Logger   *log.Logger // nil discards log output

	// MaxTicks quits the session after that many ticks; 0 means no limit.
	MaxTicks int
}

// Run plays the session to the end and returns its report.
//
// Cancelling ctx acts as an external quit signal: the current tick is drawn,
// and the next tick carries a Quit action.
func (l *Loop) Run(ctx context.Context) (Report, error) {
	logger := l.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	renderer := l.Renderer
	if renderer == nil {
		renderer = NopRenderer{}
	}
	pacer := l.Pacer
	if pacer == nil {
		pacer = NoPacer{}
	}

	s := l.Session
	if r, over := s.Report(); over {
		return r, nil
	}
	logger.Debug("session started",
		"seed", s.Seed(),
		"obstacles", len(s.Obstacles()),
		"tick_rate", s.Config().World.TickRate,
	)

	for {
		in := core.NewInputFrame()
		if l.Input != nil {
			in = l.Input.Poll()
		}
		if ctx.Err() != nil || (l.MaxTicks > 0 && s.Ticks() >= l.MaxTicks) {
			in.Add(core.ActionQuit)
		}

		result := s.Step(in)
		renderer.Draw(s.Frame())

		if result.Ended {
			report := *result.Report
			logger.Info("game over",
				"score", report.Score,
				"passed", report.Passed,
				"ticks", report.Ticks,
				"reason", report.Reason,
			)
			if l.Reporter != nil {
				l.Reporter.Report(report)
			}
			return report, nil
		}

		if err := pacer.Wait(ctx); err != nil && ctx.Err() == nil {
			return Report{}, err
		}
	}
}
