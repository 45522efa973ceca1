package camera

// Mode is the shot the director is currently framing.
type Mode int

const (
	ModeIdle    Mode = iota // wide establishing shot before the start
	ModeStart               // side-on view of the start line
	ModePursuit             // chase cam behind the target
	ModeFinish              // fixed shot across the finish line
)

// String returns the mode name shown in the HUD.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeStart:
		return "start"
	case ModePursuit:
		return "pursuit"
	case ModeFinish:
		return "finish"
	default:
		return "unknown"
	}
}
