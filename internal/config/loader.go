package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMatch3 loads the match-3 configuration.
// Search order: customPath -> ~/.gemfall/configs/match3.yaml ->
// ./configs/match3.yaml -> embedded default.
func LoadMatch3(customPath string) (Match3Config, error) {
	var cfg Match3Config

	// A custom path must load cleanly or the caller hears about it.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("match3.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/match3.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMatch3YAML, &cfg); err != nil {
		return DefaultMatch3Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gemfall", "configs", filename)
}
