package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset parses a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(name))) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyFarmPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded rules untouched.
func ApplyFarmPreset(cfg *FarmConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Weather.RainChance = 0.45
		cfg.Weather.SunChance = 0.65
		cfg.Win.PlantCount = 4
	case DifficultyHard:
		cfg.Weather.RainChance = 0.2
		cfg.Weather.SunChance = 0.4
		cfg.Win.PlantCount = 7
	}
}
