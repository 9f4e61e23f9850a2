package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Model is the Bubble Tea model for playing a flappy session.
// Input collected between ticks is applied on the next tick as one frame.
type Model struct {
	cfg      config.Config
	runtime  core.RuntimeConfig
	session  *flappy.Session
	recorder *flappy.Recorder
	renderer *ScreenRenderer
	store    *storage.Store // May be nil; runs are then not journaled
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	pending  core.InputFrame
	paused   bool
	saved    bool // Whether the current run has been journaled
	runID    int64
	quitting bool
}

// NewModel creates a model with a fresh session.
// A zero seed in rt is replaced by one derived from the clock.
func NewModel(cfg config.Config, rt core.RuntimeConfig, store *storage.Store, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.World.TickRate
	}

	m := Model{
		cfg:      cfg,
		runtime:  rt,
		renderer: NewScreenRenderer(core.NewScreen(rt.ScreenW, rt.ScreenH-1)),
		store:    store,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
	if err := m.newSession(rt.Seed); err != nil {
		return Model{}, err
	}
	return m, nil
}

// newSession replaces the current session. A zero seed picks a new one.
func (m *Model) newSession(seed int64) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s, err := flappy.NewSession(m.cfg, seed)
	if err != nil {
		return err
	}
	m.session = s
	m.recorder = flappy.NewRecorder(nil)
	m.pending = core.NewInputFrame()
	m.paused = false
	m.saved = false
	m.runID = 0
	m.logger.Debug("session started", "seed", seed)
	return nil
}

// Session returns the session being played.
func (m Model) Session() *flappy.Session {
	return m.session
}

// Paused reports whether the simulation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Last row is the help footer.
		m.renderer.Screen().Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.tick()
		return m, tickCmd(m.runtime.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	running := m.session.State() == flappy.StateRunning

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		if running {
			// Quit ends the session right away, so the run is journaled.
			m.pending.Add(core.ActionQuit)
			m.step()
		}
		m.quitting = true
		return m, tea.Quit

	case core.ActionFlap:
		if running && !m.paused {
			m.pending.Add(core.ActionFlap)
		}

	case core.ActionPause:
		if running {
			m.paused = !m.paused
		}

	case core.ActionRestart:
		if !running {
			if err := m.newSession(0); err != nil {
				m.logger.Error("cannot restart", "error", err)
			}
		}
	}

	return m, nil
}

// tick advances the session by one step unless paused or over.
func (m *Model) tick() {
	if m.paused || m.session.State() == flappy.StateOver {
		return
	}
	m.step()
}

// step applies the pending frame to the session.
func (m *Model) step() {
	in := m.pending.Clone()
	m.pending.Clear()

	m.recorder.Record(in)
	result := m.session.Step(in)
	if result.Ended {
		m.finish(*result.Report)
	}
}

// finish logs the report and journals the run once. Journal failures are
// logged and otherwise ignored.
func (m *Model) finish(r flappy.Report) {
	if m.saved {
		return
	}
	m.saved = true

	m.logger.Info("game over",
		"score", r.Score,
		"passed", r.Passed,
		"ticks", r.Ticks,
		"reason", r.Reason,
		"seed", r.Seed,
	)

	if m.store == nil {
		return
	}
	cfgYAML, err := m.cfg.Marshal()
	if err != nil {
		m.logger.Warn("cannot encode config for journal", "error", err)
		return
	}
	id, err := m.store.SaveRun(storage.Run{
		Report:    r,
		Recording: m.recorder.Recording(),
		Config:    cfgYAML,
	})
	if err != nil {
		m.logger.Warn("cannot journal run", "error", err)
		return
	}
	m.runID = id
	m.logger.Debug("run journaled", "id", id)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.session.Frame())
	dst := m.renderer.Screen()
	if m.paused {
		DrawMessage(dst, "PAUSED", "Press P to resume")
	}
	if m.runID > 0 {
		dst.DrawTextColored(2, dst.Height()-1, fmt.Sprintf(" saved as run #%d ", m.runID), core.ColorCyan)
	}

	return RenderScreen(dst) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(cfg config.Config, rt core.RuntimeConfig, store *storage.Store, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, store, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
