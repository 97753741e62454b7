package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadClassic loads classic-mode configuration.
// Search order: customPath -> ~/.pong/configs/classic.yaml -> ./configs/classic.yaml -> embedded default
func LoadClassic(customPath string) (MatchConfig, error) {
	return load(customPath, "classic.yaml", defaultClassicYAML, DefaultClassicConfig)
}

// LoadSurvival loads survival-mode configuration.
// Search order: customPath -> ~/.pong/configs/survival.yaml -> ./configs/survival.yaml -> embedded default
func LoadSurvival(customPath string) (MatchConfig, error) {
	return load(customPath, "survival.yaml", defaultSurvivalYAML, DefaultSurvivalConfig)
}

// LoadFortress loads fortress-mode configuration.
// Search order: customPath -> ~/.pong/configs/fortress.yaml -> ./configs/fortress.yaml -> embedded default
func LoadFortress(customPath string) (MatchConfig, error) {
	return load(customPath, "fortress.yaml", defaultFortressYAML, DefaultFortressConfig)
}

// load implements the shared search order for all modes.
func load(customPath, filename string, embedded []byte, fallback func() MatchConfig) (MatchConfig, error) {
	var cfg MatchConfig

	// Custom path is authoritative: failures there are reported, not skipped
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", "configs", filename)
}
