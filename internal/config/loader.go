package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFishing loads the simulation tuning.
// Search order: customPath -> ~/.fishing/configs/fishing.yaml -> ./configs/fishing.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names.
func LoadFishing(customPath string) (FishingConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FishingConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return FishingConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("fishing.yaml"), filepath.Join("configs", "fishing.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	cfg, err := parse(defaultFishingYAML)
	if err != nil {
		return DefaultFishingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (FishingConfig, error) {
	cfg := DefaultFishingConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values that would stall or break the simulation.
func (c FishingConfig) Validate() error {
	var errs []error
	if c.Physics.TensionLimit <= 0 {
		errs = append(errs, fmt.Errorf("physics.tension_limit must be positive, got %v", c.Physics.TensionLimit))
	}
	if c.Physics.SurfaceLine <= 0 || c.Physics.SurfaceLine >= 1 {
		errs = append(errs, fmt.Errorf("physics.surface_line must be in (0,1), got %v", c.Physics.SurfaceLine))
	}
	if c.Cast.FlightTicks <= 0 {
		errs = append(errs, fmt.Errorf("cast.flight_ticks must be positive, got %d", c.Cast.FlightTicks))
	}
	if c.Behavior.MaxChasers < 1 {
		errs = append(errs, fmt.Errorf("behavior.max_chasers must be at least 1, got %d", c.Behavior.MaxChasers))
	}
	if c.Behavior.ChaseProbability < 0 || c.Behavior.ChaseProbability > 1 {
		errs = append(errs, fmt.Errorf("behavior.chase_probability must be in [0,1], got %v", c.Behavior.ChaseProbability))
	}
	if c.Timing.BiteWindowTicks <= 0 {
		errs = append(errs, fmt.Errorf("timing.bite_window_ticks must be positive, got %d", c.Timing.BiteWindowTicks))
	}
	if c.Timing.AmbientEvery <= 0 || c.Timing.SparkleEvery <= 0 {
		errs = append(errs, errors.New("timing.ambient_every and timing.sparkle_every must be positive"))
	}
	if c.Timing.BrokenDelay < 0 || c.Timing.RespawnDelay < 0 {
		errs = append(errs, errors.New("timing delays must not be negative"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fishing", "configs", filename)
}
