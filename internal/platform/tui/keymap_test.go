package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/entity-arcade/internal/core"
	"github.com/vovakirdan/entity-arcade/internal/input"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"w", runeKey("w"), core.ActionUp, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s", runeKey("s"), core.ActionDown, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionFire, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionFire, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"unbound", runeKey("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.expected || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)",
					tt.msg.String(), action, quit, tt.expected, tt.quit)
			}
		})
	}
}

func TestKeyEventDropsHostKeys(t *testing.T) {
	km := NewKeyMapper()

	for _, k := range []string{"q", "p", "r", "b"} {
		if _, ok := km.KeyEvent(runeKey(k)); ok {
			t.Errorf("KeyEvent(%q) forwarded a host key", k)
		}
	}

	ev, ok := km.KeyEvent(runeKey("a"))
	if !ok {
		t.Fatal("KeyEvent(\"a\") dropped a game key")
	}
	if ev.Kind != input.KindKey || ev.Key != "a" || ev.Action != core.ActionLeft {
		t.Errorf("KeyEvent(\"a\") = %+v", ev)
	}

	// Unbound keys still reach games as raw keys
	if ev, ok := km.KeyEvent(runeKey("x")); !ok || ev.Action != core.ActionNone {
		t.Errorf("KeyEvent(\"x\") = %+v, %v", ev, ok)
	}
}

func TestPointerEvent(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.MouseMsg
		ok       bool
		expected input.PointerAction
	}{
		{"press", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true, input.PointerPress},
		{"release", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionRelease}, true, input.PointerRelease},
		{"motion", tea.MouseMsg{X: 9, Y: 9, Action: tea.MouseActionMotion}, true, input.PointerMove},
		{"wheel", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, false, 0},
		{"right of viewport", tea.MouseMsg{X: 10, Y: 4, Action: tea.MouseActionMotion}, false, 0},
		{"below viewport", tea.MouseMsg{X: 3, Y: 10, Action: tea.MouseActionMotion}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := km.PointerEvent(tt.msg, 10, 10)
			if ok != tt.ok {
				t.Fatalf("ok = %v, expected %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if ev.Kind != input.KindPointer || ev.Pointer != tt.expected {
				t.Errorf("event = %+v, expected pointer action %v", ev, tt.expected)
			}
			if ev.X != tt.msg.X || ev.Y != tt.msg.Y {
				t.Errorf("position = (%d, %d), expected (%d, %d)", ev.X, ev.Y, tt.msg.X, tt.msg.Y)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("b"), MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}
