package main

import (
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

var (
	flagTextureOut    string
	flagTextureGapTop int
)

var textureCmd = &cobra.Command{
	Use:   "texture",
	Short: "Write an obstacle texture as PNG",
	Long: `Paint one obstacle column (pipe above and below a gap) at world size
and write it as a PNG. The gap position is random unless --gap-top is set.

Examples:
  flappy texture
  flappy texture -o pipe.png --seed 3
  flappy texture --gap-top 120`,
	Args: cobra.NoArgs,
	Run:  runTexture,
}

func init() {
	textureCmd.Flags().StringVarP(&flagTextureOut, "output", "o", "pipe.png", "Output PNG path")
	textureCmd.Flags().IntVar(&flagTextureGapTop, "gap-top", -1, "Gap top row (-1 = random within the initial margins)")
}

func runTexture(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	img, gapTop, err := pipeTexture(cfg, flagTextureGapTop, seed())
	if err != nil {
		fatalf("%v", err)
	}

	f, err := os.Create(flagTextureOut)
	if err != nil {
		fatalf("%v", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		fatalf("encoding %s: %v", flagTextureOut, err)
	}
	if err := f.Close(); err != nil {
		fatalf("%v", err)
	}

	b := img.Bounds()
	fmt.Printf("Wrote %s (%dx%d, gap rows %d-%d)\n",
		flagTextureOut, b.Dx(), b.Dy(), gapTop, gapTop+int(cfg.Obstacles.GapSize)-1)
}

// pipeTexture paints the texture for a gap at gapTop, or at a random
// position when gapTop is -1. The gap must fit inside the world.
func pipeTexture(cfg config.Config, gapTop int, rngSeed int64) (*image.RGBA, int, error) {
	if gapTop == -1 {
		img, top := flappy.RandomPipeTexture(cfg, rand.New(rand.NewSource(rngSeed)))
		return img, top, nil
	}

	maxTop := int(cfg.World.Height - cfg.Obstacles.GapSize)
	if gapTop < 0 || gapTop > maxTop {
		return nil, 0, fmt.Errorf("--gap-top %d out of range [0, %d]", gapTop, maxTop)
	}
	img := flappy.PipeTexture(int(cfg.Obstacles.Width), int(cfg.World.Height), gapTop, int(cfg.Obstacles.GapSize))
	return img, gapTop, nil
}
