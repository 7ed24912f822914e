package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the named configuration into a T.
// Search order: customPath -> ~/.arcade/configs/<name>.yaml ->
// ./configs/<name>.yaml -> embedded default -> fallback().
//
// Only a customPath failure is an error; the other locations are optional.
func Load[T any](name, customPath string, fallback func() T) (T, error) {
	var cfg T

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg = fallback()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	file := name + ".yaml"
	candidates := []string{filepath.Join("configs", file)}
	if userCfgPath := userConfigPath(file); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg = fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if data := GetDefaultYAML(name); data != nil {
		cfg = fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}
	return fallback(), nil // Fallback to hardcoded if embed fails
}

// LoadEngine loads engine configuration.
func LoadEngine(customPath string) (EngineConfig, error) {
	return Load("engine", customPath, DefaultEngineConfig)
}

// LoadFlappy loads Flappy configuration and applies a difficulty preset
// when one is given.
func LoadFlappy(customPath string, preset DifficultyPreset) (FlappyConfig, error) {
	cfg, err := Load("flappy", customPath, DefaultFlappyConfig)
	if err != nil {
		return cfg, err
	}
	if preset != "" {
		ApplyPreset(&cfg.Difficulty, preset)
	}
	return cfg, nil
}

// LoadSpace loads Space configuration.
func LoadSpace(customPath string) (SpaceConfig, error) {
	return Load("space", customPath, DefaultSpaceConfig)
}

// LoadTTFE loads 2048 configuration.
func LoadTTFE(customPath string) (TTFEConfig, error) {
	return Load("t2048", customPath, DefaultTTFEConfig)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
