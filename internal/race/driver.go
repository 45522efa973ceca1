package race

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTickBudget is returned by Simulate when the race outlives its tick budget.
var ErrTickBudget = errors.New("race: tick budget exhausted")

// Simulate runs a race to completion on a virtual clock that starts at start
// and advances by the engine's tick interval, without sleeping.
// An IDLE engine is started first. A seeded engine and a fixed start give
// the same race every time; the speed wobble depends on the absolute clock.
func Simulate(e *Engine, start time.Time, maxTicks int) (Snapshot, error) {
	if e.Status() == StatusIdle {
		e.Start(start)
	}

	interval := e.TickInterval()
	now := start
	for i := 0; i < maxTicks && e.Status() == StatusRacing; i++ {
		now = now.Add(interval)
		e.Tick(now)
	}

	snap := e.Snapshot()
	if snap.Status != StatusFinished {
		return snap, fmt.Errorf("%w: %d ticks, %d/%d finished",
			ErrTickBudget, maxTicks, snap.FinishedCount(), len(snap.Runners))
	}
	return snap, nil
}

// Ticker drives an engine on the wall clock.
type Ticker struct {
	engine   *Engine
	interval time.Duration
}

// NewTicker creates a wall-clock driver. A non-positive interval uses the
// engine's configured tick interval.
func NewTicker(e *Engine, interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = e.TickInterval()
	}
	return &Ticker{engine: e, interval: interval}
}

// Run starts an IDLE race and ticks it until it finishes or ctx is done.
// onTick, if set, receives a snapshot after every tick. The ticker is
// stopped on return, so no work outlives the call.
func (t *Ticker) Run(ctx context.Context, onTick func(Snapshot, TickResult)) error {
	if t.engine.Status() == StatusIdle {
		t.engine.Start(time.Now())
	}

	tk := time.NewTicker(t.interval)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-tk.C:
			res := t.engine.Tick(now)
			snap := t.engine.Snapshot()
			if onTick != nil {
				onTick(snap, res)
			}
			if snap.Status != StatusRacing {
				return nil
			}
		}
	}
}
