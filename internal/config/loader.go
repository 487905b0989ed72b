package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads Snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
// Keys missing from a file keep their default values.
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseSnake(data)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSnake(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		if cfg, err := parseSnake(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSnake(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSnake decodes YAML over the defaults and validates the result.
func parseSnake(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}

// ApplySnakePreset overrides the tick interval for a difficulty preset.
// An empty preset leaves the config untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if ms := TickForPreset(preset); ms > 0 {
		cfg.TickIntervalMs = ms
	}
}

// Marshal encodes the config as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
