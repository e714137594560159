package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded YAML drifted from Default():\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Player.Radius() != 22.5 {
		t.Errorf("Player.Radius() = %v, expected 22.5", cfg.Player.Radius())
	}
	if cfg.Physics.Gravity != 0.8 || cfg.Physics.JumpSpeed != 16 || cfg.Physics.MoveSpeed != 6 {
		t.Errorf("unexpected physics defaults: %+v", cfg.Physics)
	}
	if cfg.Enemy.HitCooldown != 0.5 {
		t.Errorf("Enemy.HitCooldown = %v, expected 0.5", cfg.Enemy.HitCooldown)
	}
	if cfg.Session.Lives != 3 {
		t.Errorf("Session.Lives = %d, expected 3", cfg.Session.Lives)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	doc := "physics:\n  gravity: 1.2\nsession:\n  time_scale: 2\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Physics.Gravity != 1.2 {
		t.Errorf("Gravity = %v, expected 1.2", cfg.Physics.Gravity)
	}
	if cfg.Session.TimeScale != 2 {
		t.Errorf("TimeScale = %v, expected 2", cfg.Session.TimeScale)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.JumpSpeed != 16 {
		t.Errorf("JumpSpeed = %v, expected default 16", cfg.Physics.JumpSpeed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(bad)
	if err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("Load() should return defaults alongside an error")
	}
}

func TestLoadRejectsTooManyLives(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lives.yaml")
	if err := os.WriteFile(path, []byte("session:\n  lives: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() with lives: 5 should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.World.Width = 0 }, false},
		{"negative player", func(c *Config) { c.Player.Size = -1 }, false},
		{"no lives", func(c *Config) { c.Session.Lives = 0 }, false},
		{"one life", func(c *Config) { c.Session.Lives = 1 }, true},
		{"too many lives", func(c *Config) { c.Session.Lives = MaxLives + 1 }, false},
		{"zero time scale", func(c *Config) { c.Session.TimeScale = 0 }, false},
		{"ground chance above one", func(c *Config) { c.Hazard.GroundChance = 1.5 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() error = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		timeScale  float64
		enemySpeed float64
	}{
		{DifficultyEasy, 1.5, 1.125},
		{DifficultyNormal, 1.0, 1.5},
		{DifficultyHard, 0.75, 2.25},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Session.TimeScale != tc.timeScale {
				t.Errorf("TimeScale = %v, expected %v", cfg.Session.TimeScale, tc.timeScale)
			}
			if cfg.Enemy.Speed != tc.enemySpeed {
				t.Errorf("Enemy.Speed = %v, expected %v", cfg.Enemy.Speed, tc.enemySpeed)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, p := range Presets {
		got, err := ParsePreset(string(p))
		if err != nil || got != p {
			t.Errorf("ParsePreset(%q) = %q, %v", p, got, err)
		}
	}
	if got, err := ParsePreset(""); err != nil || got != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v; expected normal", got, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(\"nightmare\") should fail")
	}
}
