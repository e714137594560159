package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local config dirs.
const FileName = "cyberpath.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.cyberpath/configs/cyberpath.yaml -> ./configs/cyberpath.yaml -> embedded default
//
// Documents are decoded over Default, so a partial file only overrides the
// keys it names.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Default(), fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world size must be positive, got %gx%g", c.World.Width, c.World.Height)
	case c.Player.Size <= 0:
		return fmt.Errorf("config: player size must be positive, got %g", c.Player.Size)
	case c.Session.Lives < 1 || c.Session.Lives > MaxLives:
		return fmt.Errorf("config: lives must be in [1,%d], got %d", MaxLives, c.Session.Lives)
	case c.Session.TimeScale <= 0:
		return fmt.Errorf("config: time_scale must be positive, got %g", c.Session.TimeScale)
	case c.Hazard.GroundChance < 0 || c.Hazard.GroundChance > 1:
		return fmt.Errorf("config: hazard ground_chance must be in [0,1], got %g", c.Hazard.GroundChance)
	}
	return nil
}

// Dir returns the per-user data directory (~/.cyberpath), or empty if home is unavailable.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cyberpath")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}
