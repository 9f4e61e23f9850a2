package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func TestRunsTable(t *testing.T) {
	runs := []storage.Run{
		{
			ID:        12,
			Report:    flappy.Report{Score: 14, Passed: 29, Ticks: 3000, Reason: flappy.ReasonQuit, Seed: 1},
			CreatedAt: time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:        11,
			Report:    flappy.Report{Score: 0, Ticks: 47, Reason: flappy.ReasonGround, Seed: 99},
			CreatedAt: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC),
		},
	}

	out := RunsTable(runs)
	for _, want := range []string{"RECENT RUNS", "#12", "#11", "3000", "quit", "ground", "Mar 05 10:30"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
