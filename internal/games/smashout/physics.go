package smashout

import (
	"github.com/vovakirdan/smash-out/internal/config"
	"github.com/vovakirdan/smash-out/internal/core"
)

// Brick scores before the combo multiplier.
const (
	PointsNormal        = 10
	PointsToughDamage   = 5
	PointsToughDestroy  = 30
	PointsExplosive     = 20
	PointsExplosiveEach = 10 // Per neighbour destroyed by the blast
	PointsSpeed         = 25
	PointsInvisible     = 15
)

// EventKind identifies what happened during a physics tick.
type EventKind int

const (
	EventWallHit EventKind = iota
	EventPaddleHit
	EventBrickHit
	EventBallLost
	EventPowerUpCollected
)

// String returns the name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWallHit:
		return "wall-hit"
	case EventPaddleHit:
		return "paddle-hit"
	case EventBrickHit:
		return "brick-hit"
	case EventBallLost:
		return "ball-lost"
	case EventPowerUpCollected:
		return "powerup"
	default:
		return "?"
	}
}

// Event is a collision outcome reported by the Resolver. Scoring, effects
// and audio all consume the same ordered event list.
type Event struct {
	Kind      EventKind
	Ball      int       // Ball slot index (ball events)
	Pos       core.Vec2 // Where it happened
	Brick     int       // Grid index of the struck brick (EventBrickHit)
	BrickType BrickType
	Points    int         // Raw score before the combo multiplier
	Destroyed []int       // Grid indices removed by this hit, struck brick first
	PowerUp   PowerUpType // EventPowerUpCollected
}

// Resolver advances balls and falling power-ups and resolves their
// collisions against the field, the paddle and the brick grid.
type Resolver struct {
	world   config.WorldConfig
	physics config.PhysicsConfig
}

// NewResolver creates a resolver for the given world and physics settings.
func NewResolver(world config.WorldConfig, physics config.PhysicsConfig) *Resolver {
	return &Resolver{world: world, physics: physics}
}

// StepBalls advances every active ball by one tick. For each ball the order
// is fixed: integrate, walls, paddle, bricks (first hit in row-major order
// wins), bottom boundary. Missed contacts are never retried.
func (r *Resolver) StepBalls(reg *Registry, paddle *Paddle) []Event {
	var events []Event

	reg.Balls.Each(func(i int, b *Ball) {
		b.Pos = b.Pos.Add(b.Vel)

		if hit, ok := r.resolveWalls(b); ok {
			hit.Ball = i
			events = append(events, hit)
		}

		if CircleHitsPaddle(b, paddle) {
			r.bounceOffPaddle(b, paddle)
			events = append(events, Event{Kind: EventPaddleHit, Ball: i, Pos: b.Pos})
		}

		for idx := range reg.Bricks {
			brick := &reg.Bricks[idx]
			if !brick.Active || !core.CircleIntersectsRect(b.Pos, b.Radius, brick.Rect) {
				continue
			}
			ev := r.hitBrick(reg, idx, b)
			ev.Ball = i
			events = append(events, ev)
			break
		}

		if b.Pos.Y > r.world.Height {
			b.Active = false
			events = append(events, Event{Kind: EventBallLost, Ball: i, Pos: b.Pos})
		}
	})

	return events
}

// resolveWalls reflects the velocity component that points out of the
// field. Reporting at most one event per ball keeps corner hits to a
// single cue.
func (r *Resolver) resolveWalls(b *Ball) (Event, bool) {
	hit := false
	if b.Pos.X <= b.Radius && b.Vel.X < 0 {
		b.Vel.X = -b.Vel.X
		hit = true
	} else if b.Pos.X >= r.world.Width-b.Radius && b.Vel.X > 0 {
		b.Vel.X = -b.Vel.X
		hit = true
	}
	if b.Pos.Y <= b.Radius && b.Vel.Y < 0 {
		b.Vel.Y = -b.Vel.Y
		hit = true
	}
	if !hit {
		return Event{}, false
	}
	return Event{Kind: EventWallHit, Pos: b.Pos}, true
}

// CircleHitsPaddle reports whether the ball overlaps the paddle.
func CircleHitsPaddle(b *Ball, p *Paddle) bool {
	return core.CircleIntersectsRect(b.Pos, b.Radius, p.Rect)
}

// bounceOffPaddle sends the ball upward, snaps it onto the paddle top so
// the contact cannot re-trigger, and sets the horizontal speed from the
// impact offset: edges give strong english, the centre goes straight up.
func (r *Resolver) bounceOffPaddle(b *Ball, p *Paddle) {
	if b.Vel.Y > 0 {
		b.Vel.Y = -b.Vel.Y
	}
	b.Pos.Y = p.Rect.Y - b.Radius
	b.Vel.X = (HitFraction(b.Pos.X, p.Rect) - 0.5) * r.physics.PaddleSpread
}

// HitFraction returns where x falls across the paddle, 0 at the left edge
// and 1 at the right edge, clamped to that range.
func HitFraction(x float64, paddle core.Rect) float64 {
	if paddle.W <= 0 {
		return 0.5
	}
	return core.ClampF((x-paddle.X)/paddle.W, 0, 1)
}

// hitBrick applies the per-type rule to the brick at idx. The vertical
// velocity is always reflected.
func (r *Resolver) hitBrick(reg *Registry, idx int, b *Ball) Event {
	brick := &reg.Bricks[idx]
	b.Vel.Y = -b.Vel.Y

	ev := Event{
		Kind:      EventBrickHit,
		Pos:       brick.Rect.Center(),
		Brick:     idx,
		BrickType: brick.Type,
	}

	switch brick.Type {
	case BrickNormal:
		brick.Active = false
		ev.Points = PointsNormal

	case BrickTough:
		brick.Health--
		if brick.Health <= 0 {
			brick.Active = false
			ev.Points = PointsToughDestroy
		} else {
			ev.Points = PointsToughDamage
		}

	case BrickExplosive:
		brick.Active = false
		ev.Destroyed = append(ev.Destroyed, idx)
		chain := Explode(reg, idx)
		ev.Destroyed = append(ev.Destroyed, chain...)
		ev.Points = PointsExplosive + PointsExplosiveEach*len(chain)
		return ev

	case BrickSpeed:
		brick.Active = false
		b.Vel = b.Vel.Scale(r.physics.SpeedBrickFactor)
		ev.Points = PointsSpeed

	case BrickInvisible:
		// Discovery and destruction happen on the same hit.
		brick.Discovered = true
		brick.Active = false
		ev.Points = PointsInvisible
	}

	if !brick.Active {
		ev.Destroyed = append(ev.Destroyed, idx)
	}
	return ev
}

// Explode destroys the active orthogonal neighbours of the brick at idx:
// up, down, left, right. Left and right stay within the same row. The
// chain does not propagate. Returns the destroyed indices.
func Explode(reg *Registry, idx int) []int {
	row, col := idx/GridCols, idx%GridCols

	var neighbours []int
	if row > 0 {
		neighbours = append(neighbours, idx-GridCols)
	}
	if row < GridRows-1 {
		neighbours = append(neighbours, idx+GridCols)
	}
	if col > 0 {
		neighbours = append(neighbours, idx-1)
	}
	if col < GridCols-1 {
		neighbours = append(neighbours, idx+1)
	}

	var destroyed []int
	for _, n := range neighbours {
		if reg.Bricks[n].Active {
			reg.Bricks[n].Active = false
			destroyed = append(destroyed, n)
		}
	}
	return destroyed
}

// StepPowerUps moves falling power-ups, collects those overlapping the
// paddle and frees those that left the bottom of the field.
func (r *Resolver) StepPowerUps(reg *Registry, paddle *Paddle) []Event {
	var events []Event

	reg.PowerUps.Each(func(_ int, p *PowerUp) {
		p.Rect.Y += r.physics.PowerUpFall

		switch {
		case p.Rect.Intersects(paddle.Rect):
			p.Active = false
			events = append(events, Event{
				Kind:    EventPowerUpCollected,
				Pos:     p.Rect.Center(),
				PowerUp: p.Type,
			})
		case p.Rect.Y > r.world.Height:
			p.Active = false
		}
	})

	return events
}
