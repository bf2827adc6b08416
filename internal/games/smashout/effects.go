package smashout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/smash-out/internal/config"
	"github.com/vovakirdan/smash-out/internal/core"
)

const starCount = 40

// Effects drives the purely cosmetic feedback: screen shake, particle
// bursts, floating combo labels, paddle squash and the menu starfield.
// It draws from its own RNG so cosmetics never shift gameplay rolls.
type Effects struct {
	cfg   config.EffectsConfig
	world config.WorldConfig
	rng   *RNG

	Shake       float64   // Intensity of the current shake
	ShakeTimer  float64   // Seconds remaining
	ShakeOffset core.Vec2 // Offset for this frame, in world units
	Stars       []core.Vec2
}

// NewEffects creates the effects subsystem.
func NewEffects(cfg config.EffectsConfig, world config.WorldConfig, seed int64) *Effects {
	e := &Effects{cfg: cfg, world: world, rng: NewRNG(seed)}
	e.Stars = make([]core.Vec2, starCount)
	for i := range e.Stars {
		e.Stars[i] = core.Vec2{
			X: e.rng.Float64() * world.Width,
			Y: e.rng.Float64() * world.Height,
		}
	}
	return e
}

// React spawns the cosmetics for one simulation event.
func (e *Effects) React(ev Event, reg *Registry, paddle *Paddle, combo Combo) {
	switch ev.Kind {
	case EventPaddleHit:
		e.TriggerShake(e.cfg.PaddleShake)
		paddle.Squash = e.cfg.SquashDuration

	case EventBrickHit:
		e.TriggerShake(e.cfg.BrickShake)
		e.SpawnDebris(reg, ev.Pos, BrickColor(ev.BrickType, ev.Brick/GridCols))
		if combo.Streak > 1 {
			e.SpawnFloatingText(reg, ev.Pos, fmt.Sprintf("%.1fx!", combo.Multiplier))
		}

	case EventBallLost:
		e.SpawnDeathBurst(reg, ev.Pos)
	}
}

// TriggerShake starts a screen shake of the given intensity.
func (e *Effects) TriggerShake(intensity float64) {
	e.Shake = intensity
	e.ShakeTimer = e.cfg.ShakeDuration
}

// SpawnDebris scatters debris particles from a destroyed brick.
func (e *Effects) SpawnDebris(reg *Registry, at core.Vec2, color core.Color) {
	for range e.cfg.DebrisPerBrick {
		angle := e.rng.Float64() * 2 * math.Pi
		speed := 50 + e.rng.Float64()*100
		reg.Particles.Spawn(Particle{
			Kind:    ParticleDebris,
			Pos:     at,
			Vel:     core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Life:    e.cfg.DebrisLifetime,
			MaxLife: e.cfg.DebrisLifetime,
			Color:   color,
			Active:  true,
		})
	}
}

// SpawnDeathBurst emits an evenly spaced ring where a ball was lost.
func (e *Effects) SpawnDeathBurst(reg *Registry, at core.Vec2) {
	n := e.cfg.DeathParticles
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		speed := 100 + e.rng.Float64()*50
		reg.Particles.Spawn(Particle{
			Kind:    ParticleDeath,
			Pos:     at,
			Vel:     core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Life:    e.cfg.DeathLifetime,
			MaxLife: e.cfg.DeathLifetime,
			Color:   core.ColorBrightRed,
			Active:  true,
		})
	}
}

// SpawnFloatingText adds a rising label.
func (e *Effects) SpawnFloatingText(reg *Registry, at core.Vec2, text string) {
	reg.Texts.Spawn(FloatingText{
		Pos:     at,
		Text:    text,
		Life:    e.cfg.FloatingLifetime,
		MaxLife: e.cfg.FloatingLifetime,
		Active:  true,
	})
}

// Update advances every cosmetic timer by dt seconds.
func (e *Effects) Update(reg *Registry, paddle *Paddle, dt float64) {
	if e.ShakeTimer > 0 {
		e.ShakeTimer -= dt
	}
	if e.ShakeTimer > 0 {
		e.ShakeOffset = core.Vec2{
			X: (e.rng.Float64()*2 - 1) * e.Shake,
			Y: (e.rng.Float64()*2 - 1) * e.Shake,
		}
	} else {
		e.ShakeTimer = 0
		e.ShakeOffset = core.Vec2{}
	}

	if paddle.Squash > 0 {
		paddle.Squash = max(0, paddle.Squash-dt)
	}

	reg.Particles.Each(func(_ int, p *Particle) {
		p.Life -= dt
		if p.Life <= 0 {
			p.Active = false
			return
		}
		if p.Kind == ParticleDebris {
			p.Vel.Y += e.cfg.Gravity * dt
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	})

	reg.Texts.Each(func(_ int, t *FloatingText) {
		t.Life -= dt
		if t.Life <= 0 {
			t.Active = false
			return
		}
		t.Pos.Y -= e.cfg.FloatingRiseSpeed * dt
	})
}

// UpdateStars drifts the menu starfield downward, wrapping at the bottom.
func (e *Effects) UpdateStars(dt float64) {
	for i := range e.Stars {
		e.Stars[i].Y += 30 * dt
		if e.Stars[i].Y > e.world.Height {
			e.Stars[i].Y = 0
			e.Stars[i].X = e.rng.Float64() * e.world.Width
		}
	}
}

// StopShake cancels any screen shake in progress.
func (e *Effects) StopShake() {
	e.Shake, e.ShakeTimer = 0, 0
	e.ShakeOffset = core.Vec2{}
}

// BrickColor returns the display color of a brick. Normal bricks are
// banded by row.
func BrickColor(t BrickType, row int) core.Color {
	switch t {
	case BrickTough:
		return core.ColorGray
	case BrickExplosive:
		return core.ColorBrightRed
	case BrickSpeed:
		return core.ColorBrightYellow
	case BrickInvisible:
		return core.ColorBrightCyan
	}
	return core.Band(row)
}

// PowerUpColor returns the display color of a power-up.
func PowerUpColor(t PowerUpType) core.Color {
	switch t {
	case PowerUpMultiball:
		return core.ColorBrightBlue
	case PowerUpWidePaddle:
		return core.ColorBrightGreen
	case PowerUpScreenWide:
		return core.ColorBrightMagenta
	default:
		return core.ColorRed
	}
}
