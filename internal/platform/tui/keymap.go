package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/smash-out/internal/core"
)

// DefaultHoldWindow is how long a left/right press keeps the paddle moving.
// Terminals report key repeats, not releases, so a held key is a stream of
// presses; the window bridges the gaps between them.
const DefaultHoldWindow = 120 * time.Millisecond

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Start      key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Pause      key.Binding
	Quit       key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Exit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Start, k.Pause, k.Help, k.Exit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Start, k.Confirm, k.Back, k.Pause},
		{k.Quit, k.Screenshot, k.Help, k.Exit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "menu up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "menu down"),
		),
		Start: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/continue"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit run"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Exit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}
}

// Command is a platform-level request that never reaches the game.
type Command int

const (
	CommandNone Command = iota
	CommandExit
	CommandScreenshot
	CommandToggleHelp
)

// KeyMapper translates Bubble Tea key messages to game actions and keeps
// left/right latched between key repeats.
type KeyMapper struct {
	keys       KeyMap
	holdWindow time.Duration
	heldUntil  map[core.Action]time.Time
}

// NewKeyMapper creates a key mapper with the given bindings.
func NewKeyMapper(keys KeyMap, holdWindow time.Duration) *KeyMapper {
	if holdWindow <= 0 {
		holdWindow = DefaultHoldWindow
	}
	return &KeyMapper{
		keys:       keys,
		holdWindow: holdWindow,
		heldUntil:  make(map[core.Action]time.Time),
	}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a game action or a platform command.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Action, Command) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Exit):
		return core.ActionNone, CommandExit
	case key.Matches(msg, k.Screenshot):
		return core.ActionNone, CommandScreenshot
	case key.Matches(msg, k.Help):
		return core.ActionNone, CommandToggleHelp
	case key.Matches(msg, k.Left):
		return core.ActionLeft, CommandNone
	case key.Matches(msg, k.Right):
		return core.ActionRight, CommandNone
	case key.Matches(msg, k.Up):
		return core.ActionUp, CommandNone
	case key.Matches(msg, k.Down):
		return core.ActionDown, CommandNone
	case key.Matches(msg, k.Start):
		return core.ActionStart, CommandNone
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm, CommandNone
	case key.Matches(msg, k.Back):
		return core.ActionBack, CommandNone
	case key.Matches(msg, k.Pause):
		return core.ActionPause, CommandNone
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, CommandNone
	}
	return core.ActionNone, CommandNone
}

// MapKeyToFrame records the key in frame and returns any platform command.
// A left or right press latches that direction and releases the opposite.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, now time.Time) Command {
	action, cmd := km.MapKey(msg)
	if action == core.ActionNone {
		return cmd
	}

	frame.Set(action)
	switch action {
	case core.ActionLeft:
		km.heldUntil[core.ActionLeft] = now.Add(km.holdWindow)
		delete(km.heldUntil, core.ActionRight)
	case core.ActionRight:
		km.heldUntil[core.ActionRight] = now.Add(km.holdWindow)
		delete(km.heldUntil, core.ActionLeft)
	}
	return cmd
}

// ApplyHeld marks still-latched directions as held in frame.
func (km *KeyMapper) ApplyHeld(frame *core.InputFrame, now time.Time) {
	for a, until := range km.heldUntil {
		if now.Before(until) {
			frame.Hold(a)
		} else {
			delete(km.heldUntil, a)
		}
	}
}

// Release drops every latched direction.
func (km *KeyMapper) Release() {
	clear(km.heldUntil)
}
