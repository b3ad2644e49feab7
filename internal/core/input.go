package core

// Action represents a semantic viewer action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow, k - move probe up
	ActionDown         // S, Down arrow, j - move probe down
	ActionLeft         // A, Left arrow, h - move probe left
	ActionRight        // D, Right arrow, l - move probe right
	ActionCycle        // Tab - switch probe shape kind
	ActionPause        // Space - pause/resume the frame loop
	ActionStep         // Period - advance one frame while paused
	ActionHelp         // ? - toggle full help
	ActionQuit         // Q, Ctrl+C - exit
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
	case ActionCycle:
		return "Cycle"
	case ActionPause:
		return "Pause"
	case ActionStep:
		return "Step"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one frame.
type InputFrame struct {
	actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.actions == nil {
		f.actions = make(map[Action]bool)
	}
	f.actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.actions[a]
}

// Delta returns the probe movement requested this frame.
func (f InputFrame) Delta() (dx, dy float64) {
	if f.Has(ActionLeft) {
		dx--
	}
	if f.Has(ActionRight) {
		dx++
	}
	if f.Has(ActionUp) {
		dy--
	}
	if f.Has(ActionDown) {
		dy++
	}
	return dx, dy
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.actions)
}
