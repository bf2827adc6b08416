package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "smashout.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.smashout/configs/smashout.yaml ->
// ./configs/smashout.yaml -> embedded default -> hard-coded default.
//
// Files are decoded on top of the defaults, so a partial file only
// overrides the keys it names.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(fileName), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultConfig and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values that would make the simulation degenerate.
func (c Config) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, errors.New("world size must be positive"))
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 {
		errs = append(errs, errors.New("brick size must be positive"))
	}
	if c.Physics.BallRadius <= 0 {
		errs = append(errs, errors.New("ball radius must be positive"))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Width > c.World.Width {
		errs = append(errs, fmt.Errorf("paddle width %v out of range", c.Paddle.Width))
	}
	if c.Gameplay.Lives < 1 {
		errs = append(errs, errors.New("lives must be at least 1"))
	}
	if c.Gameplay.PowerUpChance < 0 || c.Gameplay.PowerUpChance > 100 {
		errs = append(errs, fmt.Errorf("powerup chance %d not in [0,100]", c.Gameplay.PowerUpChance))
	}
	if c.Combo.MaxMultiplier < 1 {
		errs = append(errs, errors.New("combo max multiplier must be at least 1"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume %v not in [0,1]", c.Audio.Volume))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".smashout", "configs", filename)
}
