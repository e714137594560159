package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cyberpath/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case " ", "up", "w":
		return core.ActionJump, false
	case "r":
		return core.ActionRestart, false
	case "esc":
		return core.ActionMenu, false
	case "enter":
		return core.ActionConfirm, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionToggleStats
	MenuActionHistory
	MenuActionReset
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "up", "k":
		return MenuActionUp
	case "down", "j":
		return MenuActionDown
	case "s":
		return MenuActionToggleStats
	case "enter", " ":
		return MenuActionSelect
	case "t":
		return MenuActionHistory
	case "ctrl+r":
		return MenuActionReset
	}
	return MenuActionNone
}

// Hold timeouts. Terminals send no key-up events, so a direction counts as
// released once its auto-repeat stops. The first repeat arrives after the
// OS repeat delay, later ones much faster.
const (
	firstRepeatTimeout = 550 * time.Millisecond
	repeatTimeout      = 120 * time.Millisecond
)

type held struct {
	last    time.Time
	repeats int
}

// HoldTracker turns a stream of key presses into press and release
// transitions for the movement keys.
type HoldTracker struct {
	keys map[core.Action]*held
}

// NewHoldTracker creates an empty tracker.
func NewHoldTracker() *HoldTracker {
	return &HoldTracker{keys: make(map[core.Action]*held)}
}

// Press records a key press at now. Only a press that was not already
// held becomes a transition in the frame. Pressing one direction releases
// the other.
func (h *HoldTracker) Press(a core.Action, now time.Time, frame *core.InputFrame) {
	if a != core.ActionLeft && a != core.ActionRight {
		frame.Press(a)
		return
	}

	other := core.ActionLeft
	if a == core.ActionLeft {
		other = core.ActionRight
	}
	if _, ok := h.keys[other]; ok {
		delete(h.keys, other)
		frame.Release(other)
	}

	if k, ok := h.keys[a]; ok {
		k.last = now
		k.repeats++
		return
	}
	h.keys[a] = &held{last: now}
	frame.Press(a)
}

// Expire releases held keys whose auto-repeat has stopped.
func (h *HoldTracker) Expire(now time.Time, frame *core.InputFrame) {
	for a, k := range h.keys {
		timeout := firstRepeatTimeout
		if k.repeats > 0 {
			timeout = repeatTimeout
		}
		if now.Sub(k.last) > timeout {
			delete(h.keys, a)
			frame.Release(a)
		}
	}
}

// Held reports whether a is currently considered down.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.keys[a]
	return ok
}

// Reset forgets every held key without emitting releases.
func (h *HoldTracker) Reset() {
	clear(h.keys)
}

// StatsKeyMap defines the key bindings for the stats screen.
type StatsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab},
		{k.Back, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "records/history"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
