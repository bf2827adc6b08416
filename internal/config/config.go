// Package config provides YAML-based game configuration loading and
// difficulty presets for Smash Out.
package config

// Config contains all tunable parameters of the game.
type Config struct {
	World    WorldConfig    `yaml:"world"`
	Bricks   BrickConfig    `yaml:"bricks"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Combo    ComboConfig    `yaml:"combo"`
	PowerUps PowerUpConfig  `yaml:"powerups"`
	Effects  EffectsConfig  `yaml:"effects"`
	Audio    AudioConfig    `yaml:"audio"`
}

// WorldConfig defines the logical playfield in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BrickConfig defines the brick grid geometry. The grid itself is always
// 10 columns by 8 rows.
type BrickConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	LeftMargin float64 `yaml:"left_margin"`
	TopMargin  float64 `yaml:"top_margin"` // Space reserved for the HUD
}

// PhysicsConfig defines ball and power-up motion, in world units per tick.
type PhysicsConfig struct {
	BallRadius       float64 `yaml:"ball_radius"`
	BallSpeed        float64 `yaml:"ball_speed"`         // Base speed for both axes
	LevelSpeedStep   float64 `yaml:"level_speed_step"`   // Added to vertical speed per level above 1
	PaddleSpread     float64 `yaml:"paddle_spread"`      // K in vx = (hitFraction - 0.5) * K
	SpeedBrickFactor float64 `yaml:"speed_brick_factor"` // Velocity scale applied by speed bricks
	MultiballJitter  float64 `yaml:"multiball_jitter"`   // Max horizontal jitter for spawned balls
	PowerUpFall      float64 `yaml:"powerup_fall"`
	PowerUpSize      float64 `yaml:"powerup_size"`
}

// PaddleConfig defines the paddle geometry and speed.
type PaddleConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Speed   float64 `yaml:"speed"`    // World units per tick
	YOffset float64 `yaml:"y_offset"` // Distance of the paddle top from the bottom of the field
}

// GameplayConfig defines lives, timers and level progression.
type GameplayConfig struct {
	Lives           int     `yaml:"lives"`
	MaxLives        int     `yaml:"max_lives"`      // Cap for extra-life pickups
	PowerUpChance   int     `yaml:"powerup_chance"` // Percent per destroyed brick
	SummaryDuration float64 `yaml:"summary_duration"`
	BannerDuration  float64 `yaml:"banner_duration"`
	TimeBonusLimit  float64 `yaml:"time_bonus_limit"`
	TimeBonusMax    int     `yaml:"time_bonus_max"`
	MaxLevel        int     `yaml:"max_level"` // 0 = endless
}

// ComboConfig defines the streak multiplier curve.
type ComboConfig struct {
	Step            float64 `yaml:"step"`
	MaxMultiplier   float64 `yaml:"max_multiplier"`
	DisplayDuration float64 `yaml:"display_duration"`
}

// PowerUpConfig defines the paddle buffs.
type PowerUpConfig struct {
	WideFactor         float64 `yaml:"wide_factor"`
	WideDuration       float64 `yaml:"wide_duration"`
	ScreenWideDuration float64 `yaml:"screen_wide_duration"`
}

// EffectsConfig defines cosmetic feedback. Durations are in seconds.
type EffectsConfig struct {
	ShakeDuration     float64 `yaml:"shake_duration"`
	PaddleShake       float64 `yaml:"paddle_shake"`
	BrickShake        float64 `yaml:"brick_shake"`
	SquashDuration    float64 `yaml:"squash_duration"`
	DebrisPerBrick    int     `yaml:"debris_per_brick"`
	DebrisLifetime    float64 `yaml:"debris_lifetime"`
	DeathParticles    int     `yaml:"death_particles"`
	DeathLifetime     float64 `yaml:"death_lifetime"`
	Gravity           float64 `yaml:"gravity"`
	FloatingLifetime  float64 `yaml:"floating_lifetime"`
	FloatingRiseSpeed float64 `yaml:"floating_rise_speed"`
}

// AudioConfig defines audio output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 .. 1.0
}
