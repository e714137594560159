package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // Left arrow, A - move left
	ActionRight              // Right arrow, D - move right
	ActionJump               // Space, Up, W - jump
	ActionRestart            // R - restart current level
	ActionMenu               // Escape - return to menu
	ActionConfirm            // Enter/Space on end screens - continue
	ActionToggleStats        // S - toggle statistics panel
	ActionQuit               // Q, Ctrl+C - exit
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
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionMenu:
		return "Menu"
	case ActionConfirm:
		return "Confirm"
	case ActionToggleStats:
		return "ToggleStats"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the key-down and key-up transitions that happened
// since the previous simulation tick.
type InputFrame struct {
	pressed  map[Action]bool
	released map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		pressed:  make(map[Action]bool),
		released: make(map[Action]bool),
	}
}

// Press records a key-down transition for the action.
func (f *InputFrame) Press(a Action) {
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
	f.pressed[a] = true
}

// Release records a key-up transition for the action.
func (f *InputFrame) Release(a Action) {
	if f.released == nil {
		f.released = make(map[Action]bool)
	}
	f.released[a] = true
}

// Pressed returns true if the action went down this frame.
func (f InputFrame) Pressed(a Action) bool {
	return f.pressed[a]
}

// Released returns true if the action went up this frame.
func (f InputFrame) Released(a Action) bool {
	return f.released[a]
}

// Empty reports whether the frame holds no transitions.
func (f InputFrame) Empty() bool {
	return len(f.pressed) == 0 && len(f.released) == 0
}

// Clear resets all transitions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.pressed {
		delete(f.pressed, k)
	}
	for k := range f.released {
		delete(f.released, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.pressed {
		clone.pressed[k] = v
	}
	for k, v := range f.released {
		clone.released[k] = v
	}
	return clone
}
