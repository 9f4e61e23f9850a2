package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

func testFrame() flappy.Frame {
	return flappy.Frame{
		Body: flappy.Body{X: 50, Y: 300, Radius: 25, Alive: true},
		Obstacles: []flappy.Obstacle{
			{X: 200, GapTop: 200, GapBottom: 400, Width: 50},
		},
		World: config.World{Width: 400, Height: 600, TickRate: 60},
		State: flappy.StateRunning,
	}
}

func TestScreenRendererLayout(t *testing.T) {
	// 80x24 screen: 23 play rows plus the ground row.
	// Obstacle spans columns 40..49, gap rows 7..14.
	screen := core.NewScreen(80, 24)
	NewScreenRenderer(screen).Draw(testFrame())

	tests := []struct {
		name  string
		x, y  int
		char  rune
		color core.Color
	}{
		{"top pipe", 45, 3, PipeChar, core.ColorGreen},
		{"top cap", 45, 6, PipeCap, core.ColorBrightGreen},
		{"gap", 45, 10, ' ', core.ColorDefault},
		{"bottom cap", 45, 15, PipeCap, core.ColorBrightGreen},
		{"bottom pipe", 45, 18, PipeChar, core.ColorGreen},
		{"pipe left of span", 39, 3, ' ', core.ColorDefault},
		{"pipe right of span", 50, 3, ' ', core.ColorDefault},
		{"body", 5, 11, BodyChar, core.ColorBrightYellow},
		{"body head", 14, 11, BodyHead, core.ColorBrightYellow},
		{"ground", 0, 23, GroundChar, core.ColorGray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := screen.GetCell(tt.x, tt.y)
			if got.Rune != tt.char || got.Color != tt.color {
				t.Errorf("cell (%d,%d) = %q/%d, expected %q/%d",
					tt.x, tt.y, got.Rune, got.Color, tt.char, tt.color)
			}
		})
	}

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing from first row: %q", screen.Row(0))
	}
}

func TestScreenRendererGameOver(t *testing.T) {
	screen := core.NewScreen(80, 24)
	f := testFrame()
	f.State = flappy.StateOver
	f.Reason = flappy.ReasonCollision
	f.Score = 3.5
	NewScreenRenderer(screen).Draw(f)

	out := screen.String()
	for _, want := range []string{"GAME OVER", "Score: 3 (collision)"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q:\n%s", want, out)
		}
	}
}

func TestScreenRendererOffscreenObstacle(t *testing.T) {
	screen := core.NewScreen(80, 24)
	f := testFrame()
	f.Obstacles = []flappy.Obstacle{{X: 400, GapTop: 200, GapBottom: 400, Width: 50}}
	NewScreenRenderer(screen).Draw(f)

	for y := 0; y < 23; y++ {
		if strings.ContainsRune(screen.Row(y), PipeChar) {
			t.Fatalf("obstacle beyond the right edge drawn on row %d", y)
		}
	}
}

func TestScreenRendererTinyScreen(t *testing.T) {
	screen := core.NewScreen(1, 1)
	NewScreenRenderer(screen).Draw(testFrame())
	if screen.Get(0, 0) != ' ' {
		t.Errorf("expected blank 1x1 screen, got %q", screen.Get(0, 0))
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(10, 2)
	screen.DrawTextColored(0, 0, "ab", core.ColorGreen)
	screen.DrawText(2, 0, "cd")
	screen.DrawText(0, 1, "xyz")

	out := RenderScreen(screen)
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("expected 1 newline, got %d", got)
	}
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q: %q", want, out)
		}
	}
}

func TestScreenRendererClampsBodyIntoField(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		row  int
	}{
		{"above the ceiling", -80, 0},
		{"below the floor", 900, 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := core.NewScreen(80, 24)
			f := testFrame()
			f.Obstacles = nil
			f.Body.Y = tt.y
			NewScreenRenderer(screen).Draw(f)

			if got := screen.Get(14, tt.row); got != BodyHead {
				t.Errorf("body head on row %d = %q, expected %q", tt.row, got, BodyHead)
			}
		})
	}
}

func TestDrawMessageCentersText(t *testing.T) {
	screen := core.NewScreen(40, 11)
	DrawMessage(screen, "PAUSED", "Press P to resume")

	// Box is 21 wide starting at column 9, rows 3..7.
	if got := screen.Get(9, 3); got != '┌' {
		t.Errorf("box corner = %q, expected '┌'", got)
	}
	title := screen.GetCell(17, 4)
	if title.Rune != 'P' || title.Color != core.ColorBrightYellow {
		t.Errorf("title cell = %q/%d, expected 'P' in bright yellow", title.Rune, title.Color)
	}
	if row := []rune(screen.Row(6)); !strings.HasPrefix(string(row[11:]), "Press P to resume") {
		t.Errorf("subtitle not centered: %q", screen.Row(6))
	}
}
