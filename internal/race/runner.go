package race

import (
	"fmt"
	"time"
)

// Runner is one competitor.
//
// Progress is 0 at the start line and 1.0 at the finish; it may exceed 1.0 up
// to StopProgress while the runner coasts down. Lane is continuous in
// [0, MaxLane]. Once Finished, Rank and FinishTime are fixed until the next
// reset; once IsResting, the runner no longer moves.
type Runner struct {
	ID           int
	Color        string
	Progress     float64
	Lane         float64
	LaneOffset   float64
	Speed        float64
	BaseSpeed    float64
	Finished     bool
	Rank         int       // 0 until finished
	FinishTime   time.Time // zero until finished
	IsResting    bool
	StopProgress float64
	BobOffset    float64   // animation phase only
	BoosterEnd   time.Time // zero when no booster has been granted
}

// HasRank reports whether a rank has been assigned.
func (r Runner) HasRank() bool {
	return r.Rank > 0
}

// BoosterActive reports whether the runner's booster window is still open at now.
func (r Runner) BoosterActive(now time.Time) bool {
	return !r.BoosterEnd.IsZero() && r.BoosterEnd.After(now)
}

// Label is the bib shown next to the runner.
func (r Runner) Label() string {
	return fmt.Sprintf("#%d", r.ID)
}
