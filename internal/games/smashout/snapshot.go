package smashout

import (
	"math"

	"github.com/vovakirdan/smash-out/internal/core"
)

// Snapshot is a read-only copy of everything the renderer and HUD need.
// Entity slices hold only active entries and never alias game memory.
type Snapshot struct {
	Tick      uint64
	Mode      Mode
	Score     int
	HighScore int
	Lives     int
	Level     LevelState
	Summary   Summary
	Banner    float64
	Combo     Combo

	Paddle    Paddle
	Balls     []Ball
	Bricks    []Brick // Full grid in row-major order, including inactive slots
	PowerUps  []PowerUp
	Particles []Particle
	Texts     []FloatingText

	ShakeOffset core.Vec2
	Stars       []core.Vec2

	MenuCursor     int
	SettingsCursor int
	Volume         float64

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:           g.tick,
		Mode:           g.mode,
		Score:          g.score,
		HighScore:      g.highScore,
		Lives:          g.lives,
		Level:          g.level,
		Summary:        g.summary,
		Banner:         g.banner,
		Combo:          g.combo,
		Paddle:         g.paddle,
		Bricks:         make([]Brick, BrickCount),
		ShakeOffset:    g.effects.ShakeOffset,
		Stars:          append([]core.Vec2(nil), g.effects.Stars...),
		MenuCursor:     g.menuCursor,
		SettingsCursor: g.settingsCursor,
		Volume:         g.volume,
		RNGState:       g.rng.State(),
	}

	copy(snap.Bricks, g.reg.Bricks[:])
	g.reg.Balls.Each(func(_ int, b *Ball) { snap.Balls = append(snap.Balls, *b) })
	g.reg.PowerUps.Each(func(_ int, p *PowerUp) { snap.PowerUps = append(snap.PowerUps, *p) })
	g.reg.Particles.Each(func(_ int, p *Particle) { snap.Particles = append(snap.Particles, *p) })
	g.reg.Texts.Each(func(_ int, t *FloatingText) { snap.Texts = append(snap.Texts, *t) })

	return snap
}

// Hash returns a simple hash of the gameplay-relevant fields, for
// determinism testing. Cosmetic particles are left out.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixI := func(i int) { mix(uint64(i)) } //#nosec G115 -- hash computation

	mixI(int(snap.Mode))
	mixI(snap.Score)
	mixI(snap.Lives)
	mixI(snap.Level.Number)
	mixI(snap.Level.BricksSmashed)
	mixI(snap.Combo.Streak)
	mixF(snap.Paddle.Rect.X)
	mixF(snap.Paddle.Rect.W)
	mixF(snap.Paddle.BuffTimer)

	for _, b := range snap.Balls {
		mixF(b.Pos.X)
		mixF(b.Pos.Y)
		mixF(b.Vel.X)
		mixF(b.Vel.Y)
	}
	for _, b := range snap.Bricks {
		if b.Active {
			mix(1)
		} else {
			mix(0)
		}
		mixI(int(b.Type))
		mixI(b.Health)
	}
	for _, p := range snap.PowerUps {
		mixI(int(p.Type))
		mixF(p.Rect.Y)
	}

	mix(snap.RNGState)
	return h
}
