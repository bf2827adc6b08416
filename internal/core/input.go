package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move paddle left / lower a setting
	ActionRight          // Right arrow, D - move paddle right / raise a setting
	ActionUp             // Up arrow, W, K - menu cursor up
	ActionDown           // Down arrow, S, J - menu cursor down
	ActionStart          // Space - start a run, advance screens
	ActionConfirm        // Enter - activate the highlighted menu entry
	ActionBack           // B, Escape - go back to menu
	ActionPause          // P - pause/unpause game
	ActionQuit           // Q - abandon the run while paused
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionStart:
		return "Start"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is the mouse state for a single frame, in screen cells.
type Pointer struct {
	X, Y    int
	Clicked bool
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions holds discrete presses that happened since the previous tick.
	Actions map[Action]bool

	// Held holds actions that are currently held down (paddle movement).
	Held map[Action]bool

	// Pointer is the mouse position and click state, used only by menus.
	Pointer Pointer

	// Delta is the wall time elapsed since the previous tick. Zero means
	// the game falls back to one fixed tick (1/TickRate).
	Delta time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// IsHeld returns true if the action is held this frame. A press also counts
// as held so a single key event moves the paddle at least once.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a] || f.Has(a)
}

// Click records a mouse click at the given cell.
func (f *InputFrame) Click(x, y int) {
	f.Pointer = Pointer{X: x, Y: y, Clicked: true}
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
	f.Pointer = Pointer{}
	f.Delta = 0
}
