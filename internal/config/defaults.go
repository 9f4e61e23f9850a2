package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in world configuration.
func Default() Config {
	return Config{
		World: World{
			Width:    400,
			Height:   600,
			TickRate: 60,
		},
		Player: Player{
			X:      50,
			Radius: 25,
		},
		Physics: Physics{
			Gravity:     0.25,
			FlapImpulse: 5,
		},
		Obstacles: Obstacles{
			Count:          2,
			Width:          50,
			GapSize:        200,
			Speed:          3,
			SpawnInterval:  300,
			InitialMargins: Margins{Low: 50, High: 50},
			Margins:        Margins{Low: 100, High: 100},
		},
		Scoring: Scoring{
			Mode:        ScoreEdge,
			PerObstacle: 0.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
