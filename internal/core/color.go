package core

// Color is a foreground color for a screen cell.
// Any value lipgloss understands works: ANSI codes ("9", "245") or hex ("#ff4d4d").
type Color string

// Scene colors.
const (
	ColorDefault Color = ""
	ColorTrack   Color = "240"
	ColorLane    Color = "252"
	ColorTurf    Color = "28"
	ColorFinish  Color = "15"
)
