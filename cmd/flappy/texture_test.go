package main

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestPipeTextureGapTopRange(t *testing.T) {
	cfg := config.Default() // 600 high, 200 gap: gap top in [0, 400]

	tests := []struct {
		name    string
		gapTop  int
		wantErr bool
	}{
		{"random", -1, false},
		{"top edge", 0, false},
		{"bottom edge", 400, false},
		{"gap below the world", 401, true},
		{"far below the world", 700, true},
		{"negative", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, gapTop, err := pipeTexture(cfg, tt.gapTop, 3)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for gap top %d", tt.gapTop)
				}
				return
			}
			if err != nil {
				t.Fatalf("pipeTexture() failed: %v", err)
			}
			if gapTop < 0 || gapTop > 400 {
				t.Errorf("gap top %d outside [0, 400]", gapTop)
			}
			if tt.gapTop >= 0 && gapTop != tt.gapTop {
				t.Errorf("gap top = %d, expected %d", gapTop, tt.gapTop)
			}
			if b := img.Bounds(); b.Dx() != 50 || b.Dy() != 600 {
				t.Errorf("texture is %dx%d, expected 50x600", b.Dx(), b.Dy())
			}
		})
	}
}
