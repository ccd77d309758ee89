package config

import (
	_ "embed"
)

//go:embed defaults/farm.yaml
var defaultFarmYAML []byte

// DefaultFarmConfig returns the default farm rules.
func DefaultFarmConfig() FarmConfig {
	return FarmConfig{
		Grid: GridConfig{
			InitialSunChance:   0.5,
			InitialWaterChance: 0.2,
		},
		Weather: WeatherConfig{
			SunChance:  0.5,
			RainChance: 0.3,
		},
		Growth: GrowthConfig{
			ClampWater: false,
		},
		Win: WinConfig{
			GrowthLevel: 3,
			PlantCount:  5,
		},
		Player: PlayerConfig{
			Color: "red",
		},
	}
}

// DefaultYAML returns the embedded default farm YAML.
func DefaultYAML() []byte {
	return defaultFarmYAML
}
