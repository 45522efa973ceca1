package race

import (
	"sort"
	"time"
)

// Snapshot is a read-only copy of a race at one instant.
type Snapshot struct {
	Status    Status
	Runners   []Runner
	Ledger    []int // runner ids in finish order
	StartedAt time.Time
	Elapsed   time.Duration // time between start and the latest tick
	Ticks     int
}

// Runner returns the runner with the given id.
func (s Snapshot) Runner(id int) (Runner, bool) {
	// Ids are dense and 1-based; fall back to a scan if that ever changes.
	if id >= 1 && id <= len(s.Runners) && s.Runners[id-1].ID == id {
		return s.Runners[id-1], true
	}
	for _, r := range s.Runners {
		if r.ID == id {
			return r, true
		}
	}
	return Runner{}, false
}

// Leader returns the runner with the highest progress (lowest id on ties).
func (s Snapshot) Leader() (Runner, bool) {
	ordered := s.ByProgress()
	if len(ordered) == 0 {
		return Runner{}, false
	}
	return ordered[0], true
}

// ByProgress returns the runners sorted by progress, highest first.
// Ties keep id order.
func (s Snapshot) ByProgress() []Runner {
	out := append([]Runner(nil), s.Runners...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Progress > out[j].Progress
	})
	return out
}

// Results returns finished runners ordered by rank.
func (s Snapshot) Results() []Runner {
	out := make([]Runner, 0, len(s.Ledger))
	for _, id := range s.Ledger {
		if r, ok := s.Runner(id); ok {
			out = append(out, r)
		}
	}
	return out
}

// Standings returns finished runners by rank followed by the rest by progress.
func (s Snapshot) Standings() []Runner {
	out := s.Results()
	for _, r := range s.ByProgress() {
		if !r.Finished {
			out = append(out, r)
		}
	}
	return out
}

// AllResting reports whether every runner has come to rest.
func (s Snapshot) AllResting() bool {
	return allResting(s.Runners)
}

// FinishedCount returns how many runners have crossed the line.
func (s Snapshot) FinishedCount() int {
	return len(s.Ledger)
}
