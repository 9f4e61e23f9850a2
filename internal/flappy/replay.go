package flappy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Recording is the input history of a run: the tick index of every flap in
// order (repeated indices are repeated flaps) and the tick a quit arrived
// on, or -1.
type Recording struct {
	Flaps    []int
	QuitTick int
}

// Recorder captures the input of a run so it can be replayed.
// Tick indices count Record calls, one per Session.Step.
type Recorder struct {
	src      InputSource
	tick     int
	flaps    []int
	quitTick int
}

// NewRecorder wraps src; src may be nil when frames are fed via Record.
func NewRecorder(src InputSource) *Recorder {
	return &Recorder{src: src, quitTick: -1}
}

// Poll reads the next frame from the wrapped source and records it.
func (r *Recorder) Poll() core.InputFrame {
	in := core.NewInputFrame()
	if r.src != nil {
		in = r.src.Poll()
	}
	r.Record(in)
	return in
}

// Record notes the flaps and quit of one tick's frame and advances the tick.
func (r *Recorder) Record(in core.InputFrame) {
	for i := in.Count(core.ActionFlap); i > 0; i-- {
		r.flaps = append(r.flaps, r.tick)
	}
	if in.Has(core.ActionQuit) && r.quitTick < 0 {
		r.quitTick = r.tick
	}
	r.tick++
}

// Recording returns a copy of what has been recorded so far.
func (r *Recorder) Recording() Recording {
	flaps := make([]int, len(r.flaps))
	copy(flaps, r.flaps)
	return Recording{Flaps: flaps, QuitTick: r.quitTick}
}

// ReplaySource re-emits a recording tick by tick.
type ReplaySource struct {
	rec  Recording
	next int
	tick int
}

// NewReplaySource creates an InputSource playing back rec.
func NewReplaySource(rec Recording) *ReplaySource {
	return &ReplaySource{rec: rec}
}

// Poll returns the recorded frame for the current tick.
func (p *ReplaySource) Poll() core.InputFrame {
	in := core.NewInputFrame()
	for p.next < len(p.rec.Flaps) && p.rec.Flaps[p.next] == p.tick {
		in.Add(core.ActionFlap)
		p.next++
	}
	if p.tick == p.rec.QuitTick {
		in.Add(core.ActionQuit)
	}
	p.tick++
	return in
}

// EncodeTicks renders tick indices as a comma-separated list.
func EncodeTicks(ticks []int) string {
	parts := make([]string, len(ticks))
	for i, t := range ticks {
		parts[i] = strconv.Itoa(t)
	}
	return strings.Join(parts, ",")
}

// DecodeTicks parses a list produced by EncodeTicks. Indices must be
// non-negative and non-decreasing.
func DecodeTicks(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ticks := make([]int, 0, len(parts))
	for _, p := range parts {
		t, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("flappy: bad tick %q: %w", p, err)
		}
		if t < 0 || (len(ticks) > 0 && t < ticks[len(ticks)-1]) {
			return nil, fmt.Errorf("flappy: tick %d out of order", t)
		}
		ticks = append(ticks, t)
	}
	return ticks, nil
}
