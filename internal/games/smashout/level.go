package smashout

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/smash-out/internal/config"
	"github.com/vovakirdan/smash-out/internal/core"
)

// ErrInvalidLevel is returned when a level number below 1 is requested.
var ErrInvalidLevel = errors.New("smashout: level number must be at least 1")

// Pattern is the active-cell shape of a generated level.
type Pattern int

const (
	PatternFilled Pattern = iota
	PatternCheckerboard
	PatternPyramid
)

// String returns the name of the pattern.
func (p Pattern) String() string {
	switch p {
	case PatternFilled:
		return "filled"
	case PatternCheckerboard:
		return "checkerboard"
	case PatternPyramid:
		return "pyramid"
	default:
		return "?"
	}
}

// Includes reports whether the cell at (row, col) holds a brick.
func (p Pattern) Includes(row, col int) bool {
	switch p {
	case PatternCheckerboard:
		return (row+col)%2 == 0
	case PatternPyramid:
		return row >= core.Abs(col-GridCols/2)-1
	default:
		return true
	}
}

// Level is the output of GenerateLevel.
type Level struct {
	Number       int
	Pattern      Pattern
	Rows         int
	Bricks       [BrickCount]Brick
	BallVelocity core.Vec2 // Initial velocity of the level's first ball
}

// RowCount returns the number of populated rows for a level.
func RowCount(level int) int {
	return min(GridRows, 2+level)
}

// PatternFor selects the layout pattern. The even check runs first, so
// levels divisible by both 2 and 3 are checkerboards.
func PatternFor(level int) Pattern {
	switch {
	case level%2 == 0:
		return PatternCheckerboard
	case level%3 == 0:
		return PatternPyramid
	default:
		return PatternFilled
	}
}

// ToughHealth returns the hit count of a Tough brick on the given level.
func ToughHealth(level int) int {
	switch {
	case level >= 3:
		return 3
	case level == 2:
		return 2
	default:
		return 1
	}
}

// BrickIndex returns the row-major grid index of (row, col).
func BrickIndex(row, col int) int {
	return row*GridCols + col
}

// BrickRect returns the world rectangle of a grid cell.
func BrickRect(row, col int, bc config.BrickConfig) core.Rect {
	return core.NewRect(
		bc.LeftMargin+float64(col)*(bc.Width+bc.Padding),
		bc.TopMargin+float64(row)*(bc.Height+bc.Padding),
		bc.Width,
		bc.Height,
	)
}

// BallVelocity returns the launch velocity for a level: the base speed
// horizontally and a vertical speed that grows by step per level above 1.
func BallVelocity(level int, pc config.PhysicsConfig) core.Vec2 {
	return core.Vec2{
		X: pc.BallSpeed,
		Y: -(pc.BallSpeed + pc.LevelSpeedStep*float64(level-1)),
	}
}

// rollBrickType maps a roll in [0,100) to a brick type.
func rollBrickType(roll int) BrickType {
	switch {
	case roll < 60:
		return BrickNormal
	case roll < 75:
		return BrickTough
	case roll < 85:
		return BrickExplosive
	case roll < 92:
		return BrickSpeed
	default:
		return BrickInvisible
	}
}

// GenerateLevel builds the brick layout for a level. The shape depends only
// on the level number; brick types are drawn from rng, one roll per active
// cell in row-major order.
func GenerateLevel(level int, rng *RNG, bc config.BrickConfig, pc config.PhysicsConfig) (Level, error) {
	if level < 1 {
		return Level{}, fmt.Errorf("generate level %d: %w", level, ErrInvalidLevel)
	}

	lvl := Level{
		Number:       level,
		Pattern:      PatternFor(level),
		Rows:         RowCount(level),
		BallVelocity: BallVelocity(level, pc),
	}

	for row := range GridRows {
		for col := range GridCols {
			b := &lvl.Bricks[BrickIndex(row, col)]
			b.Rect = BrickRect(row, col, bc)
			b.Type = BrickNormal
			b.Health = 1
			b.Discovered = true

			if row >= lvl.Rows || !lvl.Pattern.Includes(row, col) {
				continue
			}

			b.Active = true
			b.Type = rollBrickType(rng.Intn(100))
			switch b.Type {
			case BrickTough:
				b.Health = ToughHealth(level)
			case BrickInvisible:
				b.Discovered = level == 1
			}
		}
	}

	return lvl, nil
}
