package smashout

import (
	"testing"

	"github.com/vovakirdan/smash-out/internal/config"
	"github.com/vovakirdan/smash-out/internal/core"
)

func newTestEffects() (*Effects, *Registry, *Paddle) {
	cfg := config.DefaultConfig()
	return NewEffects(cfg.Effects, cfg.World, 1), NewRegistry(), defaultPaddle(cfg)
}

func TestEffectsReact(t *testing.T) {
	e, reg, paddle := newTestEffects()
	combo := NewCombo(config.DefaultConfig().Combo)

	e.React(Event{Kind: EventPaddleHit}, reg, paddle, combo)
	if e.ShakeTimer <= 0 || e.Shake != 1.5 || paddle.Squash <= 0 {
		t.Errorf("paddle hit: shake %v/%v squash %v", e.Shake, e.ShakeTimer, paddle.Squash)
	}

	e.React(Event{Kind: EventBrickHit, Pos: core.Vec2{X: 100, Y: 100}}, reg, paddle, combo)
	if n := reg.Particles.ActiveCount(); n != 8 {
		t.Errorf("debris = %d, expected 8", n)
	}
	if reg.Texts.ActiveCount() != 0 {
		t.Error("no combo label expected for a single hit")
	}

	combo.Hit()
	combo.Hit()
	e.React(Event{Kind: EventBrickHit, Pos: core.Vec2{X: 100, Y: 100}}, reg, paddle, combo)
	if reg.Texts.ActiveCount() != 1 || reg.Texts.At(0).Text != "1.5x!" {
		t.Errorf("texts = %+v, expected 1.5x!", reg.Texts.At(0))
	}

	e.React(Event{Kind: EventBallLost, Pos: core.Vec2{X: 300, Y: 600}}, reg, paddle, combo)
	if n := reg.Particles.ActiveCount(); n != 8+8+12 {
		t.Errorf("particles = %d, expected 28", n)
	}
}

func TestEffectsParticlePoolCap(t *testing.T) {
	e, reg, _ := newTestEffects()
	for range 40 {
		e.SpawnDebris(reg, core.Vec2{X: 10, Y: 10}, core.ColorRed)
	}
	if n := reg.Particles.ActiveCount(); n != MaxParticles {
		t.Errorf("particles = %d, expected cap %d", n, MaxParticles)
	}
}

func TestEffectsUpdateExpires(t *testing.T) {
	e, reg, paddle := newTestEffects()
	e.TriggerShake(1.0)
	e.SpawnDebris(reg, core.Vec2{X: 100, Y: 100}, core.ColorRed)
	e.SpawnFloatingText(reg, core.Vec2{X: 100, Y: 100}, "2.0x!")
	startY := reg.Texts.At(0).Pos.Y

	e.Update(reg, paddle, 0.05)
	if e.ShakeTimer <= 0 {
		t.Error("shake should still be running")
	}
	if reg.Texts.At(0).Pos.Y >= startY {
		t.Error("floating text should rise")
	}

	for range 30 {
		e.Update(reg, paddle, 0.1)
	}
	if reg.Particles.ActiveCount() != 0 || reg.Texts.ActiveCount() != 0 {
		t.Errorf("particles = %d, texts = %d, expected all expired",
			reg.Particles.ActiveCount(), reg.Texts.ActiveCount())
	}
	if e.ShakeTimer != 0 || e.ShakeOffset != (core.Vec2{}) {
		t.Errorf("shake = %v/%v, expected settled", e.ShakeTimer, e.ShakeOffset)
	}
}

func TestEffectsDoNotTouchGameplayRNG(t *testing.T) {
	g := newTestGame(t, config.DefaultConfig())
	g.StartRun()
	before := g.rng.State()

	g.effects.TriggerShake(2)
	g.effects.SpawnDeathBurst(g.reg, core.Vec2{X: 400, Y: 300})
	g.effects.Update(g.reg, &g.paddle, 0.016)
	g.effects.UpdateStars(1)

	if g.rng.State() != before {
		t.Error("cosmetic effects advanced the gameplay RNG")
	}
}
