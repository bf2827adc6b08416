package core

// Cue is a fire-and-forget sound trigger emitted by the simulation.
type Cue int

const (
	CueWallHit Cue = iota
	CuePaddleHit
	CueBrickHit
	CueLifeLost
	CueGameOver
	CuePowerUp
	CueCount // Sentinel for counting cues
)

// String returns a short name for the cue.
func (c Cue) String() string {
	switch c {
	case CueWallHit:
		return "wall-hit"
	case CuePaddleHit:
		return "paddle-hit"
	case CueBrickHit:
		return "brick-hit"
	case CueLifeLost:
		return "life-lost"
	case CueGameOver:
		return "game-over"
	case CuePowerUp:
		return "power-up"
	default:
		return "unknown"
	}
}
