package core

// Action represents a semantic race control, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionStart         // S, Enter - start the race
	ActionReset         // R - reset the stadium
	ActionMore          // +, Right - one more runner
	ActionFewer         // -, Left - one fewer runner
	ActionEdit          // C - type a runner count
	ActionHelp          // ? - toggle full help
	ActionQuit          // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionReset:
		return "Reset"
	case ActionMore:
		return "More"
	case ActionFewer:
		return "Fewer"
	case ActionEdit:
		return "Edit"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
