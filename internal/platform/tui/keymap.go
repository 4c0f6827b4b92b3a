package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkotenko/gemfall/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
