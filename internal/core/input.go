package core

// Action represents a semantic game action, abstracted from physical key presses.
// Platforms translate keys (or polled key states) into actions so the scene
// never sees a key code.
type Action int

const (
	ActionNone Action = iota

	// Held actions: true for every tick the key is down.
	ActionLeftUp    // W
	ActionLeftDown  // S
	ActionRightUp   // Up arrow
	ActionRightDown // Down arrow

	// Discrete actions: true only on the tick the key was pressed.
	ActionLaunch       // Space - launch the ball
	ActionSelectSingle // 1 - single player vs AI
	ActionSelectTwo    // 2 - two players on one keyboard
	ActionRestart      // R - new match after game over
	ActionQuit         // Q, Ctrl+C, Esc
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeftUp:
		return "LeftUp"
	case ActionLeftDown:
		return "LeftDown"
	case ActionRightUp:
		return "RightUp"
	case ActionRightDown:
		return "RightDown"
	case ActionLaunch:
		return "Launch"
	case ActionSelectSingle:
		return "SelectSingle"
	case ActionSelectTwo:
		return "SelectTwo"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were active or triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
