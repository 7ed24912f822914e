package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/entity-arcade/internal/core"
	"github.com/vovakirdan/entity-arcade/internal/input"
)

// KeyMapper translates Bubble Tea input messages to semantic actions and
// input surface events. It centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ", "enter":
		return core.ActionFire, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// KeyEvent builds the surface event for a key message. Host-level actions
// (pause, restart, back, quit) are never forwarded to games.
func (km *KeyMapper) KeyEvent(msg tea.KeyMsg) (input.Event, bool) {
	action, isQuit := km.MapKey(msg)
	if isQuit {
		return input.Event{}, false
	}
	switch action {
	case core.ActionPause, core.ActionRestart, core.ActionBack:
		return input.Event{}, false
	}
	return input.KeyEvent(msg.String(), action), true
}

// PointerEvent builds the surface event for a mouse message. Coordinates
// are taken relative to the game viewport at the top-left corner of the
// terminal. Events outside a w by h viewport and wheel events are dropped.
func (km *KeyMapper) PointerEvent(msg tea.MouseMsg, w, h int) (input.Event, bool) {
	if msg.X < 0 || msg.Y < 0 || msg.X >= w || msg.Y >= h {
		return input.Event{}, false
	}
	if tea.MouseEvent(msg).IsWheel() {
		return input.Event{}, false
	}

	var action input.PointerAction
	switch msg.Action {
	case tea.MouseActionPress:
		action = input.PointerPress
	case tea.MouseActionRelease:
		action = input.PointerRelease
	case tea.MouseActionMotion:
		action = input.PointerMove
	default:
		return input.Event{}, false
	}
	return input.PointerEvent(msg.X, msg.Y, action), true
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
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
