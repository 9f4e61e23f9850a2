package flappy

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Texture colors.
var (
	PipeGreen  = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// PipeTexture paints an obstacle column: pipe above the gap, open gap rows
// [gapTop, gapTop+gapSize) and pipe again down to the bottom.
// It is a pure function; writing the image anywhere is the caller's job.
func PipeTexture(width, height, gapTop, gapSize int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	pipe := image.NewUniform(PipeGreen)
	draw.Draw(img, image.Rect(0, 0, width, gapTop), pipe, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, gapTop+gapSize, width, height), pipe, image.Point{}, draw.Src)
	return img
}

// RandomPipeTexture paints a world-sized obstacle texture with a gap drawn
// from the initial margins, and returns the gap top it used.
func RandomPipeTexture(cfg config.Config, rng *rand.Rand) (*image.RGBA, int) {
	o := NewObstacle(0, cfg, cfg.Obstacles.InitialMargins, rng)
	gapTop := int(o.GapTop)
	img := PipeTexture(int(cfg.Obstacles.Width), int(cfg.World.Height), gapTop, int(cfg.Obstacles.GapSize))
	return img, gapTop
}
