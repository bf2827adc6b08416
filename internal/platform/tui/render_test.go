package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/smash-out/internal/core"
)

func TestStylesRender(t *testing.T) {
	styles := NewStyles(lipgloss.NewRenderer(io.Discard))

	s := core.NewScreen(12, 3)
	s.DrawTextColored(0, 0, "SCORE", core.ColorBrightYellow)
	s.DrawTextColored(6, 0, "10", core.ColorWhite)
	s.SetColored(3, 1, '●', core.ColorBrightWhite)
	s.DrawHLine(2, 2, 4, '▀', core.ColorCyan)

	out := styles.Render(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}

	for _, want := range []string{"SCORE", "10", "●", "▀▀▀▀"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("ascii renderer should not emit escape sequences")
	}
}

func TestNewStylesCoversPalette(t *testing.T) {
	styles := NewStyles(nil)
	if _, ok := styles[core.ColorDefault]; !ok {
		t.Error("missing default style")
	}
	for c := range colorCodes {
		if _, ok := styles[c]; !ok {
			t.Errorf("missing style for color %v", c)
		}
	}
}
