package farm

import (
	"fmt"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/core"
)

// Rules are the resolved tunables a farm plays by.
type Rules struct {
	InitialSunChance   float64
	InitialWaterChance float64
	SunChance          float64
	RainChance         float64
	ClampWater         bool
	WinGrowthLevel     int
	WinPlantCount      int
	PlayerColor        core.Color
}

// DefaultRules returns the rules of the default config.
func DefaultRules() Rules {
	r, err := RulesFromConfig(config.DefaultFarmConfig())
	if err != nil {
		panic(fmt.Sprintf("farm: default config is invalid: %v", err))
	}
	return r
}

// RulesFromConfig validates a loaded config and resolves it into rules.
func RulesFromConfig(cfg config.FarmConfig) (Rules, error) {
	if err := cfg.Validate(); err != nil {
		return Rules{}, err
	}

	color, err := core.ParseColor(cfg.Player.Color)
	if err != nil {
		return Rules{}, fmt.Errorf("farm: player color: %w", err)
	}

	return Rules{
		InitialSunChance:   cfg.Grid.InitialSunChance,
		InitialWaterChance: cfg.Grid.InitialWaterChance,
		SunChance:          cfg.Weather.SunChance,
		RainChance:         cfg.Weather.RainChance,
		ClampWater:         cfg.Growth.ClampWater,
		WinGrowthLevel:     cfg.Win.GrowthLevel,
		WinPlantCount:      cfg.Win.PlantCount,
		PlayerColor:        color,
	}, nil
}

// NewGameFromConfig applies a difficulty preset to a copy of cfg and builds
// a game playing by the result.
func NewGameFromConfig(cfg config.FarmConfig, preset config.DifficultyPreset) (*Game, error) {
	config.ApplyFarmPreset(&cfg, preset)
	rules, err := RulesFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return NewGame(rules, string(preset)), nil
}
