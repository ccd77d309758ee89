package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseFarm(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default YAML failed to parse: %v", err)
	}
	if cfg != DefaultFarmConfig() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultFarmConfig())
	}
}

func TestLoadFarmFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadFarm("")
	if err != nil {
		t.Fatalf("LoadFarm() failed: %v", err)
	}
	if cfg != DefaultFarmConfig() {
		t.Errorf("LoadFarm() = %+v, want defaults", cfg)
	}
}

func TestLoadFarmUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".farm", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := "win:\n  plant_count: 9\n"
	if err := os.WriteFile(filepath.Join(dir, "farm.yaml"), []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFarm("")
	if err != nil {
		t.Fatalf("LoadFarm() failed: %v", err)
	}
	if cfg.Win.PlantCount != 9 {
		t.Errorf("PlantCount = %d, want 9 from user config", cfg.Win.PlantCount)
	}
	// Unmentioned fields keep defaults
	if cfg.Win.GrowthLevel != 3 {
		t.Errorf("GrowthLevel = %d, want default 3", cfg.Win.GrowthLevel)
	}
}

func TestLoadFarmCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := `
weather:
  rain_chance: 0.9
growth:
  clamp_water: true
player:
  color: blue
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFarm(path)
	if err != nil {
		t.Fatalf("LoadFarm(%q) failed: %v", path, err)
	}
	if cfg.Weather.RainChance != 0.9 {
		t.Errorf("RainChance = %v, want 0.9", cfg.Weather.RainChance)
	}
	if !cfg.Growth.ClampWater {
		t.Error("ClampWater should be true")
	}
	if cfg.Player.Color != "blue" {
		t.Errorf("Player.Color = %q, want blue", cfg.Player.Color)
	}
	if cfg.Weather.SunChance != 0.5 {
		t.Errorf("SunChance = %v, want default 0.5", cfg.Weather.SunChance)
	}
}

func TestLoadFarmCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFarm(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("weather: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFarm(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("expected parse error, got %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("weather:\n  rain_chance: 1.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFarm(invalid); err == nil || !strings.Contains(err.Error(), "rain_chance") {
		t.Errorf("expected validation error naming rain_chance, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FarmConfig)
		wantErr bool
	}{
		{"defaults", func(*FarmConfig) {}, false},
		{"certain rain", func(c *FarmConfig) { c.Weather.RainChance = 1 }, false},
		{"negative sun", func(c *FarmConfig) { c.Weather.SunChance = -0.1 }, true},
		{"initial water above one", func(c *FarmConfig) { c.Grid.InitialWaterChance = 2 }, true},
		{"zero growth level", func(c *FarmConfig) { c.Win.GrowthLevel = 0 }, true},
		{"zero plant count", func(c *FarmConfig) { c.Win.PlantCount = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFarmConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"EASY", DifficultyEasy, false},
		{" hard ", DifficultyHard, false},
		{"fixed", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyFarmPreset(t *testing.T) {
	normal := DefaultFarmConfig()
	ApplyFarmPreset(&normal, DifficultyNormal)
	if normal != DefaultFarmConfig() {
		t.Error("normal preset should not change rules")
	}

	easy := DefaultFarmConfig()
	ApplyFarmPreset(&easy, DifficultyEasy)
	hard := DefaultFarmConfig()
	ApplyFarmPreset(&hard, DifficultyHard)

	if !(easy.Weather.RainChance > normal.Weather.RainChance && normal.Weather.RainChance > hard.Weather.RainChance) {
		t.Errorf("rain should decrease easy > normal > hard: %v %v %v",
			easy.Weather.RainChance, normal.Weather.RainChance, hard.Weather.RainChance)
	}
	if !(easy.Win.PlantCount < normal.Win.PlantCount && normal.Win.PlantCount < hard.Win.PlantCount) {
		t.Errorf("plant target should increase easy < normal < hard: %d %d %d",
			easy.Win.PlantCount, normal.Win.PlantCount, hard.Win.PlantCount)
	}

	for _, cfg := range []FarmConfig{easy, hard} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset produced invalid config: %v", err)
		}
	}
}
