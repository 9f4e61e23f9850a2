package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Glyphs used by the screen renderer.
const (
	PipeChar   = '█'
	PipeCap    = '▓'
	BodyChar   = '●'
	BodyHead   = '>'
	GroundChar = '▀'
)

// ScreenRenderer draws frames onto a Screen, stretching the world over
// every row but the last, which holds the ground.
type ScreenRenderer struct {
	screen *core.Screen
}

// NewScreenRenderer creates a renderer drawing into screen.
func NewScreenRenderer(screen *core.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

// Screen returns the buffer the renderer draws into.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// Draw renders one frame. The previous content is discarded.
func (r *ScreenRenderer) Draw(f flappy.Frame) {
	dst := r.screen
	dst.Clear()
	if dst.Width() == 0 || dst.Height() < 2 {
		return
	}

	playH := dst.Height() - 1
	sc := core.Scale{
		WorldW: f.World.Width,
		WorldH: f.World.Height,
		CellsW: dst.Width(),
		CellsH: playH,
	}

	dst.DrawHLine(0, playH, dst.Width(), GroundChar, core.ColorGray)

	field := core.NewRect(0, 0, dst.Width(), playH)
	for _, o := range f.Obstacles {
		drawObstacle(dst, sc, o, field)
	}

	drawBody(dst, sc, f, playH)

	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", f.DisplayScore()), core.ColorWhite)

	if f.State == flappy.StateOver {
		DrawMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d (%s)  |  R restart  Q quit", f.DisplayScore(), f.Reason))
	}
}

func drawObstacle(dst *core.Screen, sc core.Scale, o flappy.Obstacle, field core.Rect) {
	x0 := sc.X(o.X)
	x1 := core.Max(sc.X(o.Right()), x0+1)
	if !core.NewRect(x0, 0, x1-x0, field.H).Intersects(field) {
		return
	}

	playH := field.H
	top := core.Min(sc.Y(o.GapTop), playH)
	bottom := core.Min(sc.Y(o.GapBottom), playH)

	// Top segment runs from the world top to the gap, bottom from the gap to the ground.
	dst.FillRect(core.NewRect(x0, 0, x1-x0, top), PipeChar, core.ColorGreen)
	dst.FillRect(core.NewRect(x0, bottom, x1-x0, playH-bottom), PipeChar, core.ColorGreen)

	if top > 0 {
		dst.DrawHLine(x0, top-1, x1-x0, PipeCap, core.ColorBrightGreen)
	}
	if bottom < playH {
		dst.DrawHLine(x0, bottom, x1-x0, PipeCap, core.ColorBrightGreen)
	}
}

func drawBody(dst *core.Screen, sc core.Scale, f flappy.Frame, playH int) {
	b := f.Body
	color := core.ColorBrightYellow
	if f.State == flappy.StateOver {
		color = core.ColorRed
	}

	y := core.Min(sc.Y(core.ClampF(b.Y, 0, f.World.Height)), playH-1)
	x0 := sc.X(b.X - b.Radius)
	x1 := core.Max(sc.X(b.X+b.Radius), x0+1)
	dst.DrawHLine(x0, y, x1-x0, BodyChar, color)
	dst.SetColored(x1-1, y, BodyHead, color)
}

// DrawMessage draws a framed two-line message in the center of the screen.
func DrawMessage(dst *core.Screen, title, subtitle string) {
	titleW := len([]rune(title))
	subW := len([]rune(subtitle))
	boxW := core.Min(core.Max(titleW, subW)+4, dst.Width())
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorWhite)
}
