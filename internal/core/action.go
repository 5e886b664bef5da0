package core

// Action is a semantic input event, abstracted from physical key presses and
// mouse clicks. The input layer emits directions for board moves and button
// actions for everything else.
type Action int

const (
	ActionNone Action = iota

	// Directions
	ActionUp
	ActionDown
	ActionLeft
	ActionRight

	// Buttons
	ActionNew      // Start a new game
	ActionUndo     // Undo the last move
	ActionSound    // Toggle sound mute
	ActionTheme    // Toggle dark/light theme
	ActionContinue // Keep playing after reaching the win tile
	ActionRestart  // Restart after game over
	ActionScores   // Open the scoreboard
	ActionQuit     // Leave the session
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
	case ActionNew:
		return "New"
	case ActionUndo:
		return "Undo"
	case ActionSound:
		return "Sound"
	case ActionTheme:
		return "Theme"
	case ActionContinue:
		return "Continue"
	case ActionRestart:
		return "Restart"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four move directions.
func (a Action) IsDirection() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}
