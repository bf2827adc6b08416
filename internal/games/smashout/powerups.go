package smashout

import "github.com/vovakirdan/smash-out/internal/core"

// trySpawnPowerUp rolls the drop chance for one brick collision and, on
// success, drops a uniformly chosen power-up centred on the struck brick.
// A full pool drops the request.
func (g *Game) trySpawnPowerUp(at core.Vec2) bool {
	if g.rng.Intn(100) >= g.cfg.Gameplay.PowerUpChance {
		return false
	}
	kind := PowerUpType(g.rng.Intn(int(powerUpTypeCount)))
	size := g.cfg.Physics.PowerUpSize
	_, ok := g.reg.PowerUps.Spawn(PowerUp{
		Rect:   core.NewRect(at.X-size/2, at.Y-size/2, size, size),
		Type:   kind,
		Active: true,
	})
	return ok
}

// applyPowerUp activates a collected pickup.
func (g *Game) applyPowerUp(kind PowerUpType) {
	pc := g.cfg.PowerUps

	switch kind {
	case PowerUpMultiball:
		g.spawnMultiball()

	case PowerUpWidePaddle:
		center := g.paddle.Rect.Center().X
		g.paddle.Rect.W = g.paddle.BaseWidth * pc.WideFactor
		g.paddle.Rect.X = core.ClampF(center-g.paddle.Rect.W/2, 0, g.cfg.World.Width-g.paddle.Rect.W)
		g.paddle.Buff = PowerUpWidePaddle
		g.paddle.BuffTimer = pc.WideDuration

	case PowerUpScreenWide:
		g.paddle.Rect.W = g.cfg.World.Width
		g.paddle.Rect.X = 0
		g.paddle.Buff = PowerUpScreenWide
		g.paddle.BuffTimer = pc.ScreenWideDuration

	case PowerUpExtraLife:
		if g.lives < g.cfg.Gameplay.MaxLives {
			g.lives++
		}
	}

	g.logger.Debug("power-up", "type", kind, "lives", g.lives, "paddle", g.paddle.Rect.W)
}

// spawnMultiball clones the first active ball with a small random
// horizontal variation.
func (g *Game) spawnMultiball() {
	src, ok := g.reg.Balls.First()
	if !ok {
		return
	}
	jitter := (g.rng.Float64()*2 - 1) * g.cfg.Physics.MultiballJitter
	clone := *src
	clone.Vel.X += jitter
	g.reg.Balls.Spawn(clone)
}

// updateBuff counts the width buff down and restores the base width when
// it expires.
func (g *Game) updateBuff(dt float64) {
	if g.paddle.BuffTimer <= 0 {
		return
	}
	g.paddle.BuffTimer -= dt
	if g.paddle.BuffTimer > 0 {
		return
	}

	center := g.paddle.Rect.Center().X
	g.paddle.BuffTimer = 0
	g.paddle.Rect.W = g.paddle.BaseWidth
	g.paddle.Rect.X = core.ClampF(center-g.paddle.Rect.W/2, 0, g.cfg.World.Width-g.paddle.Rect.W)
	g.logger.Debug("paddle buff expired", "width", g.paddle.Rect.W)
}
