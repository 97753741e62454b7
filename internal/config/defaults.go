package config

import (
	_ "embed"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/survival.yaml
var defaultSurvivalYAML []byte

//go:embed defaults/fortress.yaml
var defaultFortressYAML []byte

// baseDefaults returns the parameters shared by all modes.
func baseDefaults() MatchConfig {
	return MatchConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Ball: BallConfig{
			Radius:         8,
			BaseSpeed:      300,
			MaxSpeed:       720,
			LaunchAngleDeg: 30,
		},
		Paddle: PaddleConfig{
			Length:    100,
			Thickness: 30,
			Speed:     400,
			Inset:     20,
		},
		Rules: RulesConfig{
			SpeedGrowth:      1.07,
			MaxDeflectionDeg: 60,
			Reserve: ReserveConfig{
				Enabled:           false,
				BallSpeedFactor:   1.0,
				PaddleSpeedFactor: 1.0,
				SizeFactor:        1.0,
			},
		},
	}
}

// DefaultClassicConfig returns the hardcoded classic-mode configuration,
// used if the embedded YAML somehow fails to parse.
func DefaultClassicConfig() MatchConfig {
	cfg := baseDefaults()
	cfg.Rules.Lives = 0
	cfg.Rules.CatchPoints = 1
	return cfg
}

// DefaultSurvivalConfig returns the hardcoded survival-mode configuration.
func DefaultSurvivalConfig() MatchConfig {
	cfg := baseDefaults()
	cfg.Rules.Lives = 3
	cfg.Rules.CatchPoints = 10
	return cfg
}

// DefaultFortressConfig returns the hardcoded fortress-mode configuration.
func DefaultFortressConfig() MatchConfig {
	cfg := baseDefaults()
	cfg.Rules.Lives = 3
	cfg.Rules.CatchPoints = 10
	cfg.Rules.Reserve = ReserveConfig{
		Enabled:           true,
		BallSpeedFactor:   1.6,
		PaddleSpeedFactor: 1.3,
		SizeFactor:        0.5,
	}
	return cfg
}
