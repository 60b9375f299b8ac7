package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPeach loads Super Peach Sisters configuration.
// Search order: customPath -> ~/.arcade/configs/peach.yaml -> ./configs/peach.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func LoadPeach(customPath string) (PeachConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PeachConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parsePeach(data)
		if err != nil {
			return PeachConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("peach.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parsePeach(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/peach.yaml"); err == nil {
		if cfg, err := parsePeach(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parsePeach(defaultPeachYAML)
	if err != nil {
		return DefaultPeachConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parsePeach decodes YAML over the hardcoded defaults and validates the result.
func parsePeach(data []byte) (PeachConfig, error) {
	cfg := DefaultPeachConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PeachConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PeachConfig{}, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c PeachConfig) Validate() error {
	var errs []error
	if c.Sprite.Width <= 0 || c.Sprite.Height <= 0 {
		errs = append(errs, fmt.Errorf("sprite size must be positive, got %vx%v", c.Sprite.Width, c.Sprite.Height))
	}
	if c.Player.FallStep <= 0 || c.Player.JumpStep <= 0 {
		errs = append(errs, errors.New("player fall_step and jump_step must be positive"))
	}
	if c.Goodies.ItemsPerBlock < 0 {
		errs = append(errs, fmt.Errorf("goodies.items_per_block must not be negative, got %d", c.Goodies.ItemsPerBlock))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.GridWidth <= 0 || c.Gameplay.GridHeight <= 0 {
		errs = append(errs, errors.New("gameplay grid size must be positive"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPeachPreset modifies the config based on a difficulty preset.
func ApplyPeachPreset(cfg *PeachConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Goodies.StarTicks = 200
		cfg.Player.InvincibilityTicks = 20
		cfg.Piranha.FiringDelay = 60
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Goodies.StarTicks = 100
		cfg.Player.InvincibilityTicks = 6
		cfg.Piranha.FiringDelay = 30
	}
}
