package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cyberpath/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		action   core.Action
		wantQuit bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"w", runeKey("w"), core.ActionJump, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionMenu, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unmapped", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.wantQuit {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", action, quit, tt.action, tt.wantQuit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace}, MenuActionSelect},
		{runeKey("s"), MenuActionToggleStats},
		{runeKey("t"), MenuActionHistory},
		{tea.KeyMsg{Type: tea.KeyCtrlR}, MenuActionReset},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHoldTrackerRepeat(t *testing.T) {
	h := NewHoldTracker()
	t0 := time.Unix(1000, 0)

	frame := core.NewInputFrame()
	h.Press(core.ActionLeft, t0, &frame)
	if !frame.Pressed(core.ActionLeft) {
		t.Fatal("first press should be a transition")
	}

	frame = core.NewInputFrame()
	h.Press(core.ActionLeft, t0.Add(30*time.Millisecond), &frame)
	if !frame.Empty() {
		t.Error("auto-repeat should not produce a new press")
	}

	frame = core.NewInputFrame()
	h.Expire(t0.Add(100*time.Millisecond), &frame)
	if !frame.Empty() || !h.Held(core.ActionLeft) {
		t.Error("key released while still repeating")
	}

	h.Expire(t0.Add(200*time.Millisecond), &frame)
	if !frame.Released(core.ActionLeft) || h.Held(core.ActionLeft) {
		t.Error("key should be released once repeats stop")
	}
}

func TestHoldTrackerFirstRepeatDelay(t *testing.T) {
	h := NewHoldTracker()
	t0 := time.Unix(1000, 0)
	frame := core.NewInputFrame()
	h.Press(core.ActionRight, t0, &frame)

	frame = core.NewInputFrame()
	h.Expire(t0.Add(500*time.Millisecond), &frame)
	if !frame.Empty() {
		t.Error("released before the OS repeat delay")
	}
	h.Expire(t0.Add(600*time.Millisecond), &frame)
	if !frame.Released(core.ActionRight) {
		t.Error("single tap should be released after the repeat delay")
	}
}

func TestHoldTrackerOppositeDirection(t *testing.T) {
	h := NewHoldTracker()
	t0 := time.Unix(1000, 0)
	frame := core.NewInputFrame()
	h.Press(core.ActionLeft, t0, &frame)

	frame = core.NewInputFrame()
	h.Press(core.ActionRight, t0.Add(10*time.Millisecond), &frame)
	if !frame.Released(core.ActionLeft) || !frame.Pressed(core.ActionRight) {
		t.Error("switching direction should release the old one and press the new one")
	}
	if h.Held(core.ActionLeft) {
		t.Error("left still held")
	}
}

func TestHoldTrackerPassesOtherActions(t *testing.T) {
	h := NewHoldTracker()
	frame := core.NewInputFrame()
	h.Press(core.ActionJump, time.Now(), &frame)
	h.Press(core.ActionJump, time.Now(), &frame)
	if !frame.Pressed(core.ActionJump) || h.Held(core.ActionJump) {
		t.Error("jump should be a plain press, never held")
	}
}
