package smashout

import "github.com/vovakirdan/smash-out/internal/config"

// Combo tracks consecutive brick hits without a paddle touch.
type Combo struct {
	Streak       int
	Multiplier   float64
	DisplayTimer float64 // Seconds the HUD keeps showing the multiplier

	step    float64
	maxMult float64
	display float64
}

// NewCombo creates an idle combo using the given curve.
func NewCombo(cfg config.ComboConfig) Combo {
	return Combo{
		Multiplier: 1.0,
		step:       cfg.Step,
		maxMult:    cfg.MaxMultiplier,
		display:    cfg.DisplayDuration,
	}
}

// Hit registers a brick hit: the streak grows, the multiplier follows
// 1 + (streak-1)*step capped at max, and the display window restarts.
func (c *Combo) Hit() {
	c.Streak++
	c.Multiplier = min(c.maxMult, 1.0+float64(c.Streak-1)*c.step)
	c.DisplayTimer = c.display
}

// Reset drops the streak on paddle contact. The display timer keeps
// running so the last multiplier stays visible.
func (c *Combo) Reset() {
	c.Streak = 0
	c.Multiplier = 1.0
}

// Tick counts the display timer down.
func (c *Combo) Tick(dt float64) {
	if c.DisplayTimer > 0 {
		c.DisplayTimer = max(0, c.DisplayTimer-dt)
	}
}

// Visible reports whether the HUD should show the combo.
func (c *Combo) Visible() bool {
	return c.DisplayTimer > 0
}

// Scale applies the multiplier to a raw score, truncating.
func (c *Combo) Scale(raw int) int {
	return int(float64(raw) * c.Multiplier)
}

// TimeBonus returns the level completion bonus: maxBonus scaled by the
// fraction of limit left, truncated, or 0 once limit is reached.
func TimeBonus(elapsed, limit float64, maxBonus int) int {
	if limit <= 0 || elapsed >= limit {
		return 0
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return int(float64(maxBonus) * (1 - elapsed/limit))
}
