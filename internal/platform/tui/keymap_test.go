package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/smash-out/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap(), 0)

	tests := []struct {
		name       string
		msg        tea.KeyMsg
		wantAction core.Action
		wantCmd    Command
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, CommandNone},
		{"a", runeKey("a"), core.ActionLeft, CommandNone},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, CommandNone},
		{"d", runeKey("d"), core.ActionRight, CommandNone},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, CommandNone},
		{"j", runeKey("j"), core.ActionDown, CommandNone},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionStart, CommandNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, CommandNone},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, CommandNone},
		{"b", runeKey("b"), core.ActionBack, CommandNone},
		{"p", runeKey("p"), core.ActionPause, CommandNone},
		{"q", runeKey("q"), core.ActionQuit, CommandNone},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionNone, CommandExit},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone, CommandScreenshot},
		{"?", runeKey("?"), core.ActionNone, CommandToggleHelp},
		{"unbound", runeKey("z"), core.ActionNone, CommandNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, cmd := km.MapKey(tc.msg)
			if action != tc.wantAction {
				t.Errorf("action = %v, expected %v", action, tc.wantAction)
			}
			if cmd != tc.wantCmd {
				t.Errorf("command = %v, expected %v", cmd, tc.wantCmd)
			}
		})
	}
}

func TestHeldDirectionLatch(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap(), 100*time.Millisecond)
	t0 := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	frame := core.NewInputFrame()
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame, t0)
	if !frame.Has(core.ActionLeft) {
		t.Fatal("press should be recorded in the frame")
	}

	frame = core.NewInputFrame()
	km.ApplyHeld(&frame, t0.Add(50*time.Millisecond))
	if !frame.IsHeld(core.ActionLeft) {
		t.Error("left should stay held inside the window")
	}

	frame = core.NewInputFrame()
	km.ApplyHeld(&frame, t0.Add(150*time.Millisecond))
	if frame.IsHeld(core.ActionLeft) {
		t.Error("left should be released after the window")
	}
}

func TestOppositeDirectionCancelsLatch(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap(), time.Second)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	frame := core.NewInputFrame()
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame, now)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRight}, &frame, now)

	frame = core.NewInputFrame()
	km.ApplyHeld(&frame, now)
	if frame.IsHeld(core.ActionLeft) {
		t.Error("right press should release left")
	}
	if !frame.IsHeld(core.ActionRight) {
		t.Error("right should be held")
	}

	km.Release()
	frame = core.NewInputFrame()
	km.ApplyHeld(&frame, now)
	if frame.IsHeld(core.ActionRight) {
		t.Error("Release should drop every latch")
	}
}

func TestMapKeyToFrameReturnsCommand(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap(), 0)
	frame := core.NewInputFrame()

	if cmd := km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame, time.Now()); cmd != CommandExit {
		t.Errorf("command = %v, expected exit", cmd)
	}
	if len(frame.Actions) != 0 {
		t.Errorf("commands must not reach the game, frame has %v", frame.Actions)
	}
}
