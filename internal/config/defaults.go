package config

import (
	_ "embed"
)

//go:embed defaults/cyberpath.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration used when no YAML is available.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:  1200,
			Height: 800,
		},
		Physics: PhysicsConfig{
			Gravity:            0.8,
			JumpSpeed:          16,
			MoveSpeed:          6,
			FallDeathY:         -100,
			FloorClampMaxLevel: 2,
		},
		Player: PlayerConfig{
			Size:   45,
			StartX: 200,
			StartY: 300,
		},
		Coin: CoinConfig{
			Size:            22,
			Clearance:       35,
			BounceAmplitude: 3,
			SpinRate:        2,
			BounceRate:      1.5,
			Score:           100,
		},
		Enemy: EnemyConfig{
			Size:        45,
			Speed:       1.5,
			SpawnLift:   5,
			Knockback:   3,
			Lift:        0.3,
			HitCooldown: 0.5,
		},
		Hazard: HazardConfig{
			Width:        65,
			Height:       25,
			Knockback:    8,
			Lift:         0.4,
			GroundY:      140,
			GroundChance: 0.6,
			SpinRate:     2,
			PulseRate:    3,
		},
		Session: SessionConfig{
			Lives:              3,
			TimeBonusPerSecond: 10,
			LifeRestoreBonus:   25,
			TimeScale:          1,
		},
		Effects: EffectsConfig{
			ParticleGravity: 0.8,
			SparkleInterval: 0.2,
			SparkleChance:   0.1,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}
