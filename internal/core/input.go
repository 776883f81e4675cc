package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // Up arrow, w, k - move focus up
	ActionDown               // Down arrow, s, j - move focus down
	ActionLeft               // Left arrow, a, h - move focus left
	ActionRight              // Right arrow, d, l - move focus right
	ActionTrigger            // Space, Enter, z, x - press the focused cell
	ActionSettings           // o, Tab - open the grid settings form
	ActionHistory            // H - open the history table
	ActionClearBucket        // c - clear history for the current grid
	ActionClearAll           // C - clear the whole history
	ActionBack               // Esc, b - go back
	ActionQuit               // q, Ctrl+C - exit
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
	case ActionTrigger:
		return "Trigger"
	case ActionSettings:
		return "Settings"
	case ActionHistory:
		return "History"
	case ActionClearBucket:
		return "ClearBucket"
	case ActionClearAll:
		return "ClearAll"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
