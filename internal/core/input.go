package core

// Action is a semantic input, abstracted from physical keys.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // Up arrow, W - roll toward +x
	ActionDown             // Down arrow, S - roll toward -x
	ActionLeft             // Left arrow, A - roll toward +z
	ActionRight            // Right arrow, D - roll toward -z
	ActionRestart          // Space, R - repopulate the grid and start over
	ActionSpeedUp          // +, ] - faster roll (fewer frames per turn)
	ActionSpeedDown        // -, [ - slower roll (more frames per turn)
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - back to menu
	ActionPause            // P - pause/unpause
	ActionQuit             // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
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

// InputFrame is the set of actions held during one frame.
// Frames are level-triggered: the platform clears them after every Step,
// so nothing carries over to the next frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear drops all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
