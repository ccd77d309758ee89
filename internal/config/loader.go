package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFarm loads the farm rules.
// Search order: customPath -> ~/.farm/configs/farm.yaml -> ./configs/farm.yaml -> embedded default
func LoadFarm(customPath string) (FarmConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FarmConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseFarm(data)
		if err != nil {
			return FarmConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Broken optional files fall through to the next candidate.
	if userCfgPath := userConfigPath("farm.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseFarm(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "farm.yaml")); err == nil {
		if cfg, err := parseFarm(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseFarm(defaultFarmYAML)
	if err != nil {
		return DefaultFarmConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseFarm decodes YAML on top of the defaults so partial files only
// override what they mention, then validates the result.
func parseFarm(data []byte) (FarmConfig, error) {
	cfg := DefaultFarmConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FarmConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return FarmConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".farm", "configs", filename)
}
