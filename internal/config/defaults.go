package config

import (
	_ "embed"
)

//go:embed defaults/smashout.yaml
var defaultYAML []byte

// DefaultConfig returns the hard-coded default configuration. It mirrors
// defaults/smashout.yaml and is used when no YAML source can be parsed.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Bricks: BrickConfig{
			Width:      68,
			Height:     20,
			Padding:    8,
			LeftMargin: 24,
			TopMargin:  120,
		},
		Physics: PhysicsConfig{
			BallRadius:       8,
			BallSpeed:        4,
			LevelSpeedStep:   0.5,
			PaddleSpread:     8,
			SpeedBrickFactor: 1.2,
			MultiballJitter:  2,
			PowerUpFall:      3,
			PowerUpSize:      20,
		},
		Paddle: PaddleConfig{
			Width:   100,
			Height:  20,
			Speed:   8,
			YOffset: 40,
		},
		Gameplay: GameplayConfig{
			Lives:           3,
			MaxLives:        5,
			PowerUpChance:   20,
			SummaryDuration: 3,
			BannerDuration:  3,
			TimeBonusLimit:  60,
			TimeBonusMax:    500,
			MaxLevel:        0,
		},
		Combo: ComboConfig{
			Step:            0.5,
			MaxMultiplier:   3.0,
			DisplayDuration: 1.5,
		},
		PowerUps: PowerUpConfig{
			WideFactor:         2,
			WideDuration:       10,
			ScreenWideDuration: 5,
		},
		Effects: EffectsConfig{
			ShakeDuration:     0.15,
			PaddleShake:       1.5,
			BrickShake:        1.0,
			SquashDuration:    0.1,
			DebrisPerBrick:    8,
			DebrisLifetime:    0.5,
			DeathParticles:    12,
			DeathLifetime:     0.6,
			Gravity:           200,
			FloatingLifetime:  1.2,
			FloatingRiseSpeed: 40,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for writing a
// starter config file.
func DefaultYAML() []byte {
	return defaultYAML
}
