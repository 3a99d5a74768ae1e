package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, K, Up arrow, ▲ button, swipe up
	ActionDown             // S, J, Down arrow, ▼ button, swipe down
	ActionLeft             // A, H, Left arrow, ◀ button, swipe left
	ActionRight            // D, L, Right arrow, ▶ button, swipe right
	ActionConfirm          // Enter, Space - dismiss notices, confirm menus
	ActionBack             // B, Escape - go back
	ActionRestart          // R key - start over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
	ActionColorNext        // C - cycle snake color
	ActionSpeedUp          // + / = - move the speed slider up
	ActionSpeedDown        // - / _ - move the speed slider down
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionColorNext:
		return "ColorNext"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four steering actions.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// InputFrame represents the input collected between two frames.
// Actions records which actions fired; Directions keeps steering requests in
// arrival order so the game can apply them to its input buffer one by one.
type InputFrame struct {
	Actions    map[Action]bool
	Directions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	if a.IsDirection() {
		f.Directions = append(f.Directions, a)
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Directions = f.Directions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Directions = append([]Action(nil), f.Directions...)
	return clone
}
