package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	m, err := NewModel(config.Default(), rt, store, nil)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", updated)
	}
	return next, cmd
}

func ticks(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m, _ = send(t, m, TickMsg(time.Now()))
	}
	return m
}

func TestNewModelRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.World.Height = 0
	if _, err := NewModel(cfg, core.DefaultConfig(), nil, nil); err == nil {
		t.Fatal("expected error for invalid config")
	}
}

func TestModelTicksAdvanceSession(t *testing.T) {
	m := newTestModel(t, nil)
	m = ticks(t, m, 10)
	if got := m.Session().Ticks(); got != 10 {
		t.Errorf("Ticks() = %d, expected 10", got)
	}
}

func TestModelFlapAppliesOnNextTick(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Session().Ticks() != 0 {
		t.Fatal("key press must not step the session")
	}
	m = ticks(t, m, 1)

	b := m.Session().Body()
	if b.VelY != -4.75 || b.Y != 295.25 {
		t.Errorf("after flap tick VelY=%v Y=%v, expected -4.75 and 295.25", b.VelY, b.Y)
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t, nil)
	m = ticks(t, m, 3)
	m, _ = send(t, m, runeKey('p'))
	if !m.Paused() {
		t.Fatal("expected paused")
	}
	m = ticks(t, m, 5)
	if got := m.Session().Ticks(); got != 3 {
		t.Errorf("paused session advanced to %d ticks", got)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("pause overlay missing from view")
	}

	m, _ = send(t, m, runeKey('p'))
	m = ticks(t, m, 2)
	if got := m.Session().Ticks(); got != 5 {
		t.Errorf("Ticks() = %d after resume, expected 5", got)
	}
}

func TestModelQuitJournalsRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m, _ = send(t, m, runeKey('w'))
	m = ticks(t, m, 5)
	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}

	s := m.Session()
	if s.State() != flappy.StateOver || s.Reason() != flappy.ReasonQuit {
		t.Fatalf("state=%v reason=%v, expected over/quit", s.State(), s.Reason())
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 journaled run, got %d", len(runs))
	}
	run := runs[0]
	if run.Report.Ticks != 5 || run.Report.Reason != flappy.ReasonQuit || run.Report.Seed != 7 {
		t.Errorf("unexpected report: %+v", run.Report)
	}
	if run.Recording.QuitTick != 5 || len(run.Recording.Flaps) != 1 || run.Recording.Flaps[0] != 0 {
		t.Errorf("unexpected recording: %+v", run.Recording)
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	m := newTestModel(t, nil)

	// Restart is ignored while running.
	m, _ = send(t, m, runeKey('r'))
	first := m.Session()

	for i := 0; i < 1000 && m.Session().State() == flappy.StateRunning; i++ {
		m = ticks(t, m, 1)
	}
	if m.Session() != first || first.State() != flappy.StateOver {
		t.Fatal("expected the first session to end without input")
	}
	if first.Reason() != flappy.ReasonGround {
		t.Errorf("reason = %v, expected ground", first.Reason())
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("game over overlay missing from view")
	}

	m, _ = send(t, m, runeKey('r'))
	if m.Session() == first {
		t.Fatal("restart did not create a new session")
	}
	if m.Session().State() != flappy.StateRunning || m.Session().Ticks() != 0 {
		t.Error("restarted session is not fresh")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m := newTestModel(t, nil)
	m = ticks(t, m, 4)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.Session().Ticks() != 4 {
		t.Error("resize must not reset the session")
	}
	lines := strings.Split(m.View(), "\n")
	// 39 screen rows plus at least one help row.
	if len(lines) < 40 {
		t.Errorf("view has %d lines, expected at least 40", len(lines))
	}
}
