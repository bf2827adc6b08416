package smashout

import "github.com/vovakirdan/smash-out/internal/core"

// Grid and pool capacities.
const (
	GridCols   = 10
	GridRows   = 8
	BrickCount = GridCols * GridRows

	MaxBalls         = 5
	MaxPowerUps      = 50
	MaxParticles     = 150 // Brick debris and ball-death bursts share one pool
	MaxFloatingTexts = 10
)

// BrickType is the tagged variant that selects a brick's hit rule.
type BrickType int

const (
	BrickNormal BrickType = iota
	BrickTough
	BrickExplosive
	BrickSpeed
	BrickInvisible
)

// String returns the name of the brick type.
func (t BrickType) String() string {
	switch t {
	case BrickNormal:
		return "Normal"
	case BrickTough:
		return "Tough"
	case BrickExplosive:
		return "Explosive"
	case BrickSpeed:
		return "Speed"
	case BrickInvisible:
		return "Invisible"
	default:
		return "?"
	}
}

// PowerUpType represents the falling pickups.
type PowerUpType int

const (
	PowerUpMultiball PowerUpType = iota
	PowerUpWidePaddle
	PowerUpScreenWide
	PowerUpExtraLife
	powerUpTypeCount
)

// String returns the name of the power-up type.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpMultiball:
		return "Multiball"
	case PowerUpWidePaddle:
		return "Wide Paddle"
	case PowerUpScreenWide:
		return "Screen Wide"
	case PowerUpExtraLife:
		return "Extra Life"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up type.
func (t PowerUpType) Glyph() rune {
	switch t {
	case PowerUpMultiball:
		return 'M'
	case PowerUpWidePaddle:
		return 'W'
	case PowerUpScreenWide:
		return 'S'
	case PowerUpExtraLife:
		return '♥'
	default:
		return '?'
	}
}

// Ball is a moving circle. Velocity is in world units per tick.
type Ball struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Active bool
}

// IsActive implements Pooled.
func (b Ball) IsActive() bool { return b.Active }

// Brick is one cell of the level grid.
type Brick struct {
	Rect       core.Rect
	Type       BrickType
	Health     int  // Remaining hits (Tough only, 1 for others)
	Discovered bool // Invisible only; drawn as an outline until discovered
	Active     bool
}

// IsActive implements Pooled.
func (b Brick) IsActive() bool { return b.Active }

// PowerUp is a falling pickup.
type PowerUp struct {
	Rect   core.Rect
	Type   PowerUpType
	Active bool
}

// IsActive implements Pooled.
func (p PowerUp) IsActive() bool { return p.Active }

// ParticleKind distinguishes the two cosmetic bursts.
type ParticleKind int

const (
	ParticleDebris ParticleKind = iota // Brick debris, affected by gravity
	ParticleDeath                      // Ring burst where a ball was lost
)

// Particle is a cosmetic point. Velocity is in world units per second.
type Particle struct {
	Kind    ParticleKind
	Pos     core.Vec2
	Vel     core.Vec2
	Life    float64 // Seconds remaining
	MaxLife float64
	Color   core.Color
	Active  bool
}

// IsActive implements Pooled.
func (p Particle) IsActive() bool { return p.Active }

// FloatingText is a rising combo label.
type FloatingText struct {
	Pos     core.Vec2
	Text    string
	Life    float64
	MaxLife float64
	Active  bool
}

// IsActive implements Pooled.
func (f FloatingText) IsActive() bool { return f.Active }

// Paddle is the player's bat.
type Paddle struct {
	Rect      core.Rect
	BaseWidth float64     // Width to restore when a buff expires
	Buff      PowerUpType // Active width buff, valid while BuffTimer > 0
	BuffTimer float64     // Seconds remaining on the width buff
	Squash    float64     // Seconds remaining on the hit deformation
}

// Registry owns every pooled entity array of a session.
type Registry struct {
	Balls     Pool[Ball]
	Bricks    [BrickCount]Brick
	PowerUps  Pool[PowerUp]
	Particles Pool[Particle]
	Texts     Pool[FloatingText]
}

// NewRegistry creates a registry with the fixed capacities.
func NewRegistry() *Registry {
	return &Registry{
		Balls:     NewPool[Ball](MaxBalls),
		PowerUps:  NewPool[PowerUp](MaxPowerUps),
		Particles: NewPool[Particle](MaxParticles),
		Texts:     NewPool[FloatingText](MaxFloatingTexts),
	}
}

// ActiveBricks returns the number of bricks left in the level.
func (r *Registry) ActiveBricks() int {
	n := 0
	for i := range r.Bricks {
		if r.Bricks[i].Active {
			n++
		}
	}
	return n
}

// Reset frees every slot in every pool and clears the grid.
func (r *Registry) Reset() {
	r.Balls.Clear()
	r.PowerUps.Clear()
	r.Particles.Clear()
	r.Texts.Clear()
	r.Bricks = [BrickCount]Brick{}
}
