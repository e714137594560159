// Package config provides YAML-based tuning configuration and difficulty
// presets for the platformer.
package config

// Config contains every tunable of the simulation.
// Distances are world units (Y-up, origin bottom-left); velocities are world
// units per frame at the 60 fps reference rate; durations are seconds.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Coin    CoinConfig    `yaml:"coin"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Hazard  HazardConfig  `yaml:"hazard"`
	Session SessionConfig `yaml:"session"`
	Effects EffectsConfig `yaml:"effects"`
}

// WorldConfig defines the visible play area.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines player kinematics.
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`
	JumpSpeed          float64 `yaml:"jump_speed"`
	MoveSpeed          float64 `yaml:"move_speed"`
	FallDeathY         float64 `yaml:"fall_death_y"`          // below this y the run ends on fall-death levels
	FloorClampMaxLevel int     `yaml:"floor_clamp_max_level"` // levels up to this index clamp the player at the floor
}

// PlayerConfig defines the avatar.
type PlayerConfig struct {
	Size   float64 `yaml:"size"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// Radius returns half the player size.
func (p PlayerConfig) Radius() float64 {
	return p.Size / 2
}

// CoinConfig defines coin placement, animation and value.
type CoinConfig struct {
	Size            float64 `yaml:"size"` // collision radius
	Clearance       float64 `yaml:"clearance"`
	BounceAmplitude float64 `yaml:"bounce_amplitude"`
	SpinRate        float64 `yaml:"spin_rate"`
	BounceRate      float64 `yaml:"bounce_rate"`
	Score           int     `yaml:"score"`
}

// EnemyConfig defines patrolling enemies.
type EnemyConfig struct {
	Size        float64 `yaml:"size"`
	Speed       float64 `yaml:"speed"`
	SpawnLift   float64 `yaml:"spawn_lift"`
	Knockback   float64 `yaml:"knockback"`
	Lift        float64 `yaml:"lift"` // vertical knockback as a fraction of Knockback
	HitCooldown float64 `yaml:"hit_cooldown"`
}

// HazardConfig defines static hazards.
type HazardConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"` // also the collision radius
	Knockback    float64 `yaml:"knockback"`
	Lift         float64 `yaml:"lift"`
	GroundY      float64 `yaml:"ground_y"`
	GroundChance float64 `yaml:"ground_chance"`
	SpinRate     float64 `yaml:"spin_rate"`
	PulseRate    float64 `yaml:"pulse_rate"`
}

// MaxLives caps session.lives; the HUD and the extra-life rule assume it.
const MaxLives = 3

// SessionConfig defines scoring, lives and timing.
type SessionConfig struct {
	Lives              int     `yaml:"lives"`
	TimeBonusPerSecond int     `yaml:"time_bonus_per_second"`
	LifeRestoreBonus   int     `yaml:"life_restore_bonus"`
	TimeScale          float64 `yaml:"time_scale"` // multiplies every level time limit
}

// EffectsConfig defines particle tuning.
type EffectsConfig struct {
	ParticleGravity float64 `yaml:"particle_gravity"`
	SparkleInterval float64 `yaml:"sparkle_interval"`
	SparkleChance   float64 `yaml:"sparkle_chance"`
}
