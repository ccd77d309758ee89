// Package config provides YAML-based rule configuration loading and
// difficulty presets for the farm.
package config

import (
	"fmt"
)

// FarmConfig contains all tunable rules of a farm.
type FarmConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Weather WeatherConfig `yaml:"weather"`
	Growth  GrowthConfig  `yaml:"growth"`
	Win     WinConfig     `yaml:"win"`
	Player  PlayerConfig  `yaml:"player"`
}

// GridConfig defines how a fresh grid is seeded.
type GridConfig struct {
	InitialSunChance   float64 `yaml:"initial_sun_chance"`
	InitialWaterChance float64 `yaml:"initial_water_chance"`
}

// WeatherConfig defines the per-turn weather rolls.
type WeatherConfig struct {
	SunChance  float64 `yaml:"sun_chance"`
	RainChance float64 `yaml:"rain_chance"`
}

// GrowthConfig defines plant growth behaviour.
type GrowthConfig struct {
	// ClampWater keeps cell water at zero or above after growth consumption.
	ClampWater bool `yaml:"clamp_water"`
}

// WinConfig defines the win condition.
type WinConfig struct {
	GrowthLevel int `yaml:"growth_level"`
	PlantCount  int `yaml:"plant_count"`
}

// PlayerConfig defines player display attributes.
type PlayerConfig struct {
	Color string `yaml:"color"`
}

// Validate checks that all chances are probabilities and win thresholds are positive.
func (c FarmConfig) Validate() error {
	chances := []struct {
		name string
		val  float64
	}{
		{"grid.initial_sun_chance", c.Grid.InitialSunChance},
		{"grid.initial_water_chance", c.Grid.InitialWaterChance},
		{"weather.sun_chance", c.Weather.SunChance},
		{"weather.rain_chance", c.Weather.RainChance},
	}
	for _, ch := range chances {
		if ch.val < 0 || ch.val > 1 {
			return fmt.Errorf("config: %s must be within [0, 1], got %v", ch.name, ch.val)
		}
	}

	if c.Win.GrowthLevel < 1 {
		return fmt.Errorf("config: win.growth_level must be at least 1, got %d", c.Win.GrowthLevel)
	}
	if c.Win.PlantCount < 1 {
		return fmt.Errorf("config: win.plant_count must be at least 1, got %d", c.Win.PlantCount)
	}
	return nil
}
