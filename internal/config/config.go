// Package config provides YAML-based match configuration loading and
// difficulty presets for the simulation.
package config

// MatchConfig contains all tunable parameters for one match.
type MatchConfig struct {
	Field  FieldConfig  `yaml:"field"`
	Ball   BallConfig   `yaml:"ball"`
	Paddle PaddleConfig `yaml:"paddle"`
	Rules  RulesConfig  `yaml:"rules"`
}

// FieldConfig defines the play field dimensions.
// Dimensions are fixed for the lifetime of a match.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines ball physics parameters.
type BallConfig struct {
	Radius         float64 `yaml:"radius"`
	BaseSpeed      float64 `yaml:"base_speed"`       // Units per second at spawn
	MaxSpeed       float64 `yaml:"max_speed"`        // Hard speed cap after escalation
	LaunchAngleDeg float64 `yaml:"launch_angle_deg"` // Half-window around horizontal for the serve angle
}

// PaddleConfig defines paddle geometry and movement.
// Length runs along the paddle's movement axis, thickness across it.
type PaddleConfig struct {
	Length    float64 `yaml:"length"`
	Thickness float64 `yaml:"thickness"`
	Speed     float64 `yaml:"speed"` // Units per second at full axis deflection
	Inset     float64 `yaml:"inset"` // Distance between wall and paddle face
}

// RulesConfig defines the scoring and lives policy.
type RulesConfig struct {
	Lives            int           `yaml:"lives"`        // 0 in modes without lives
	CatchPoints      int           `yaml:"catch_points"` // Score increment per paddle catch
	SpeedGrowth      float64       `yaml:"speed_growth"` // Ball speed multiplier per catch
	MaxDeflectionDeg float64       `yaml:"max_deflection_deg"`
	Reserve          ReserveConfig `yaml:"reserve"`
}

// ReserveConfig defines the one-time continuation offered when lives run out.
type ReserveConfig struct {
	Enabled           bool    `yaml:"enabled"`
	BallSpeedFactor   float64 `yaml:"ball_speed_factor"`
	PaddleSpeedFactor float64 `yaml:"paddle_speed_factor"`
	SizeFactor        float64 `yaml:"size_factor"` // Applied to paddle length on activation
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown values map to the
// empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	default:
		return ""
	}
}

// ApplyPreset adjusts a config for the given difficulty preset.
func ApplyPreset(cfg *MatchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		if cfg.Rules.Lives > 0 {
			cfg.Rules.Lives = 5
		}
		cfg.Paddle.Length *= 1.2
		cfg.Ball.BaseSpeed *= 0.85
	case DifficultyHard:
		if cfg.Rules.Lives > 0 {
			cfg.Rules.Lives = 2
		}
		cfg.Paddle.Length *= 0.8
		cfg.Ball.BaseSpeed *= 1.25
		cfg.Ball.MaxSpeed *= 1.25
	}
}
