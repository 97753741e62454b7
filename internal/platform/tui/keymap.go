package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emily-flambe/pong/internal/sim"
)

// Action is a platform-level intent derived from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPause
	ActionRestart
	ActionAcceptReserve
	ActionDeclineReserve
	ActionBack
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to match actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit, true
	case "w", "up":
		return ActionUp, false
	case "s", "down":
		return ActionDown, false
	case "a", "left":
		return ActionLeft, false
	case "d", "right":
		return ActionRight, false
	case "p", " ":
		return ActionPause, false
	case "r":
		return ActionRestart, false
	case "y":
		return ActionAcceptReserve, false
	case "n":
		return ActionDeclineReserve, false
	case "b", "esc":
		return ActionBack, false
	}
	return ActionNone, false
}

// InputFrame accumulates actions between simulation ticks. Terminals report
// key presses but not releases, so movement keys count as held for the tick
// in which they arrive and the frame is cleared after each step.
type InputFrame struct {
	up, down    bool
	left, right bool
	pause       bool
	restart     bool
	accept      bool
	decline     bool
}

// Set records an action in the frame.
func (f *InputFrame) Set(a Action) {
	switch a {
	case ActionUp:
		f.up = true
	case ActionDown:
		f.down = true
	case ActionLeft:
		f.left = true
	case ActionRight:
		f.right = true
	case ActionPause:
		f.pause = true
	case ActionRestart:
		f.restart = true
	case ActionAcceptReserve:
		f.accept = true
	case ActionDeclineReserve:
		f.decline = true
	}
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	*f = InputFrame{}
}

// SimInput converts the frame's movement keys to a simulation input.
func (f *InputFrame) SimInput() sim.Input {
	in := sim.Input{Up: f.up, Down: f.down}
	if f.left && !f.right {
		in.Horizontal = -1
	}
	if f.right && !f.left {
		in.Horizontal = 1
	}
	return in
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
