package core

// Action represents a semantic game action, abstracted from physical key presses.
// Keyboard keys, mouse clicks and touch taps all reduce to these.
type Action int

const (
	ActionNone       Action = iota
	ActionStart             // Enter - start a run, or restart after game over
	ActionJump              // Space, Up, W, tap - jump when grounded
	ActionPause             // P, pause button - pause/resume
	ActionQuit              // Q, Ctrl+C - exit
	ActionTheme             // T - toggle light/dark theme
	ActionFullscreen        // F - toggle fullscreen
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionTheme:
		return "Theme"
	case ActionFullscreen:
		return "Fullscreen"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	Actions map[Action]bool
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
}

// Has returns true if the given action was triggered this frame.
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
