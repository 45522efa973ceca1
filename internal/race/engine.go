// Package race implements the runner state model and the fixed-step race
// update engine.
//
// An Engine owns one race: its runners, its finish ledger and its status.
// Every tick builds a fresh runner slice and swaps it in whole, so a
// Snapshot taken between ticks never observes a half-applied update.
// An Engine is not safe for concurrent use; drive it from one goroutine.
package race

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-stadium/internal/config"
	"github.com/vovakirdan/tui-stadium/internal/core"
)

// FinishProgress is the progress value of the finish line.
const FinishProgress = 1.0

// Engine advances a race one fixed tick at a time.
type Engine struct {
	cfg       config.RaceConfig
	rng       *rand.Rand
	count     int
	runners   []Runner // replaced wholesale every tick
	ledger    []int    // runner ids in finish order
	status    Status
	startedAt time.Time
	lastTick  time.Time
	ticks     int
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for runner draws and booster trials.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// WithSeed seeds a private random source. A zero seed means "use the clock".
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// New creates an engine with cfg.Runners runners lined up, status IDLE.
func New(cfg config.RaceConfig, opts ...Option) *Engine {
	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.Initialize(cfg.Runners)
	return e
}

// Initialize lines up count runners (clamped to [1,100]) with fresh random
// draws, clears the finish ledger and returns the race to IDLE.
func (e *Engine) Initialize(count int) {
	e.count = config.ClampRunners(count)

	rc := e.cfg.Runner
	palette := rc.Palette
	if len(palette) == 0 {
		palette = config.DefaultPalette
	}
	lanes := core.Max(rc.StartLanes, 1)

	runners := make([]Runner, e.count)
	for i := range runners {
		runners[i] = Runner{
			ID:           i + 1,
			Color:        palette[i%len(palette)],
			Lane:         core.ClampF(float64(i%lanes), 0, e.cfg.Strategy.MaxLane),
			LaneOffset:   (e.rng.Float64() - 0.5) * rc.LaneOffsetSpread,
			BaseSpeed:    rc.BaseSpeedMin + e.rng.Float64()*rc.BaseSpeedSpread,
			StopProgress: rc.StopProgressMin + e.rng.Float64()*rc.StopProgressSpread,
			BobOffset:    e.rng.Float64() * 2 * math.Pi,
		}
	}

	e.runners = runners
	e.ledger = nil
	e.startedAt = time.Time{}
	e.lastTick = time.Time{}
	e.ticks = 0
	// Every status may return to IDLE.
	_ = e.transition(StatusIdle)
}

// Reset re-initializes the race with the current runner count.
func (e *Engine) Reset() {
	e.Initialize(e.count)
}

// SetRunnerCount re-initializes with a new runner count.
// It is ignored while racing and reports whether it took effect.
func (e *Engine) SetRunnerCount(count int) bool {
	if e.status == StatusRacing {
		return false
	}
	e.Initialize(count)
	return true
}

// Start begins the race at now. Only an IDLE race can start; otherwise
// Start does nothing and returns false.
func (e *Engine) Start(now time.Time) bool {
	if e.transition(StatusRacing) != nil {
		return false
	}

	next := make([]Runner, len(e.runners))
	for i, r := range e.runners {
		r.Progress = 0
		r.Finished = false
		r.IsResting = false
		r.Rank = 0
		r.FinishTime = time.Time{}
		r.Speed = r.BaseSpeed
		r.BoosterEnd = time.Time{}
		next[i] = r
	}
	e.runners = next
	e.ledger = nil
	e.startedAt = now
	e.lastTick = now
	e.ticks = 0
	return true
}

// TickResult reports what happened during one tick.
type TickResult struct {
	Finishers    []int // ids that crossed the line this tick, in ledger order
	Boosted      []int // ids whose booster fired this tick
	RaceFinished bool  // the race moved to FINISHED on this tick
}

// Tick advances every non-resting runner by one fixed step at wall-clock now.
// It does nothing unless the race is RACING.
func (e *Engine) Tick(now time.Time) TickResult {
	var res TickResult
	if e.status != StatusRacing {
		return res
	}

	e.ticks++
	e.lastTick = now
	strategy := now.Sub(e.startedAt) > e.cfg.StrategyDelay

	next := make([]Runner, len(e.runners))
	for i, r := range e.runners {
		if r.IsResting {
			next[i] = r
			continue
		}
		next[i] = e.advance(r, now, strategy, &res)
	}
	e.runners = next

	if allResting(next) && e.transition(StatusFinished) == nil {
		res.RaceFinished = true
	}
	return res
}

// advance applies the update rule to a single running runner.
func (e *Engine) advance(r Runner, now time.Time, strategy bool, res *TickResult) Runner {
	s := e.cfg.Strategy

	nowMs := float64(now.UnixMilli())
	speed := r.BaseSpeed + math.Sin(nowMs*s.WobbleFrequency+float64(r.ID))*s.WobbleAmplitude
	lane, offset := r.Lane, r.LaneOffset

	switch {
	case r.Finished:
		speed = r.Speed * s.FinishDecay

	case strategy && r.BoosterActive(now):
		speed *= s.BoostFactor
		lane = core.LerpF(lane, s.BoostLane, s.BoostBlend)
		offset = core.LerpF(offset, s.BoostOffset, s.BoostBlend)

	case strategy:
		lane = core.LerpF(lane, s.InsideLane, s.InsideBlend)
		offset = core.LerpF(offset, e.stagger(r.ID), s.InsideBlend)

		// Independent Bernoulli trial per runner per tick.
		if e.rng.Float64() < s.BoostChance {
			r.BoosterEnd = now.Add(s.BoostDuration)
			res.Boosted = append(res.Boosted, r.ID)
		}
	}

	r.Lane = core.ClampF(lane, 0, s.MaxLane)
	r.LaneOffset = offset
	r.Speed = speed

	stop := r.StopProgress
	if stop <= 0 {
		stop = s.DefaultStopProgress
	}
	step := math.Max(speed, 0)
	r.Progress = math.Max(r.Progress, math.Min(stop, r.Progress+step))

	if r.Progress >= FinishProgress && !r.Finished {
		r.Finished = true
		e.ledger = append(e.ledger, r.ID)
		r.Rank = len(e.ledger)
		r.FinishTime = now
		res.Finishers = append(res.Finishers, r.ID)
	}

	if r.Finished && (r.Progress >= stop || speed < s.RestSpeedFloor) {
		r.IsResting = true
	}
	return r
}

// stagger is the per-runner lateral target on the inside line, so runners
// funnelling to lane 0 do not stack on one spot.
func (e *Engine) stagger(id int) float64 {
	return (float64((id*7)%100)/100 - 0.5) * e.cfg.Strategy.StaggerSpread
}

// Status returns the current race status.
func (e *Engine) Status() Status {
	return e.status
}

// RunnerCount returns the number of runners on the start line.
func (e *Engine) RunnerCount() int {
	return e.count
}

// TickInterval returns the fixed simulation step.
func (e *Engine) TickInterval() time.Duration {
	return e.cfg.TickInterval
}

// Snapshot returns a deep copy of the race state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Status:    e.status,
		Runners:   append([]Runner(nil), e.runners...),
		Ledger:    append([]int(nil), e.ledger...),
		StartedAt: e.startedAt,
		Ticks:     e.ticks,
	}
	if !e.startedAt.IsZero() {
		snap.Elapsed = e.lastTick.Sub(e.startedAt)
	}
	return snap
}

func allResting(runners []Runner) bool {
	for _, r := range runners {
		if !r.IsResting {
			return false
		}
	}
	return len(runners) > 0
}
