package smashout

import (
	"testing"

	"github.com/vovakirdan/smash-out/internal/config"
)

func TestComboMultiplierCurve(t *testing.T) {
	c := NewCombo(config.DefaultConfig().Combo)

	expected := []float64{1.0, 1.5, 2.0, 2.5, 3.0, 3.0, 3.0}
	for i, want := range expected {
		c.Hit()
		if c.Streak != i+1 {
			t.Errorf("hit %d: Streak = %d", i+1, c.Streak)
		}
		if c.Multiplier != want {
			t.Errorf("hit %d: Multiplier = %v, expected %v", i+1, c.Multiplier, want)
		}
	}
}

func TestComboScale(t *testing.T) {
	tests := []struct {
		hits     int
		raw      int
		expected int
	}{
		{1, 10, 10},
		{2, 10, 15},
		{2, 5, 7}, // truncated
		{4, 25, 62},
		{9, 30, 90},
	}

	for _, tc := range tests {
		c := NewCombo(config.DefaultConfig().Combo)
		for range tc.hits {
			c.Hit()
		}
		if got := c.Scale(tc.raw); got != tc.expected {
			t.Errorf("after %d hits Scale(%d) = %d, expected %d", tc.hits, tc.raw, got, tc.expected)
		}
	}
}

func TestComboResetKeepsDisplay(t *testing.T) {
	c := NewCombo(config.DefaultConfig().Combo)
	c.Hit()
	c.Hit()
	c.Reset()

	if c.Streak != 0 || c.Multiplier != 1.0 {
		t.Errorf("after Reset: Streak = %d, Multiplier = %v", c.Streak, c.Multiplier)
	}
	if !c.Visible() {
		t.Error("display timer should survive a reset")
	}

	c.Tick(1.0)
	if !c.Visible() {
		t.Error("combo should still be visible after 1s of a 1.5s window")
	}
	c.Tick(1.0)
	if c.Visible() || c.DisplayTimer != 0 {
		t.Errorf("DisplayTimer = %v, expected 0", c.DisplayTimer)
	}
}

func TestTimeBonus(t *testing.T) {
	tests := []struct {
		elapsed  float64
		expected int
	}{
		{0, 500},
		{6, 450},
		{12, 400},
		{15, 375},
		{30, 250},
		{45, 125},
		{59.9, 0},
		{60, 0},
		{90, 0},
		{-1, 500},
	}

	for _, tc := range tests {
		if got := TimeBonus(tc.elapsed, 60, 500); got != tc.expected {
			t.Errorf("TimeBonus(%v) = %d, expected %d", tc.elapsed, got, tc.expected)
		}
	}

	if got := TimeBonus(1, 0, 500); got != 0 {
		t.Errorf("TimeBonus with zero limit = %d, expected 0", got)
	}
}
