// Package config provides YAML-based world configuration for the flappy
// simulation: loading, embedded defaults and validation.
package config

// Config holds every world constant a session is created with.
// It is fixed for the lifetime of a session.
type Config struct {
	World     World     `yaml:"world"`
	Player    Player    `yaml:"player"`
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Scoring   Scoring   `yaml:"scoring"`
}

// World defines the size of the simulated area and its tick rate.
type World struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	TickRate int     `yaml:"tick_rate"`
}

// Player defines the fixed horizontal position and size of the body.
type Player struct {
	X      float64 `yaml:"x"`
	Radius float64 `yaml:"radius"`
}

// Physics defines per-tick motion constants.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`      // Added to vertical velocity every tick
	FlapImpulse float64 `yaml:"flap_impulse"` // Magnitude of the upward velocity set by a flap
}

// Obstacles defines the gap obstacles and how they are spawned.
type Obstacles struct {
	Count          int     `yaml:"count"`
	Width          float64 `yaml:"width"`
	GapSize        float64 `yaml:"gap_size"`
	Speed          float64 `yaml:"speed"`          // Leftward movement per tick
	SpawnInterval  float64 `yaml:"spawn_interval"` // Horizontal distance between consecutive obstacles
	InitialMargins Margins `yaml:"initial_margins"`
	Margins        Margins `yaml:"margins"`
}

// Margins bound the random gap position: the gap top is drawn from
// [Low, height - gap - High].
type Margins struct {
	Low  int `yaml:"low"`
	High int `yaml:"high"`
}

// ScoringMode selects when a passing obstacle adds to the score.
type ScoringMode string

const (
	// ScoreEdge scores each obstacle once, on the first tick it passes the player.
	ScoreEdge ScoringMode = "edge"
	// ScoreLevel scores on every tick an obstacle is past the player and still visible.
	ScoreLevel ScoringMode = "level"
)

// Scoring defines how points are awarded.
type Scoring struct {
	Mode        ScoringMode `yaml:"mode"`
	PerObstacle float64     `yaml:"per_obstacle"`
}
