// Package config provides YAML-based stadium configuration loading and
// pace presets.
package config

import "time"

// Runner count bounds accepted by the start line.
const (
	MinRunners = 1
	MaxRunners = 100
)

// StadiumConfig contains all configuration for a race session.
type StadiumConfig struct {
	Race       RaceConfig       `yaml:"race"`
	Track      TrackConfig      `yaml:"track"`
	Camera     CameraConfig     `yaml:"camera"`
	Commentary CommentaryConfig `yaml:"commentary"`
}

// RaceConfig defines the update engine and the runners it creates.
type RaceConfig struct {
	Runners       int            `yaml:"runners"`
	TickInterval  time.Duration  `yaml:"tick_interval"`  // Fixed simulation step
	StrategyDelay time.Duration  `yaml:"strategy_delay"` // No lane moves or boosters before this
	Runner        RunnerConfig   `yaml:"runner"`
	Strategy      StrategyConfig `yaml:"strategy"`
}

// RunnerConfig defines how runners are drawn at initialization.
// Every "spread" is the width of a uniform draw added to its "min".
type RunnerConfig struct {
	BaseSpeedMin       float64  `yaml:"base_speed_min"`
	BaseSpeedSpread    float64  `yaml:"base_speed_spread"`
	StopProgressMin    float64  `yaml:"stop_progress_min"`
	StopProgressSpread float64  `yaml:"stop_progress_spread"`
	LaneOffsetSpread   float64  `yaml:"lane_offset_spread"`
	StartLanes         int      `yaml:"start_lanes"`
	Palette            []string `yaml:"palette"`
}

// StrategyConfig holds the tuned constants of the per-tick update rule.
type StrategyConfig struct {
	WobbleAmplitude     float64       `yaml:"wobble_amplitude"`
	WobbleFrequency     float64       `yaml:"wobble_frequency"` // radians per millisecond
	BoostFactor         float64       `yaml:"boost_factor"`
	BoostDuration       time.Duration `yaml:"boost_duration"`
	BoostChance         float64       `yaml:"boost_chance"` // per runner per tick
	BoostLane           float64       `yaml:"boost_lane"`
	BoostOffset         float64       `yaml:"boost_offset"`
	BoostBlend          float64       `yaml:"boost_blend"`
	InsideLane          float64       `yaml:"inside_lane"`
	InsideBlend         float64       `yaml:"inside_blend"`
	StaggerSpread       float64       `yaml:"stagger_spread"`
	FinishDecay         float64       `yaml:"finish_decay"`
	RestSpeedFloor      float64       `yaml:"rest_speed_floor"`
	MaxLane             float64       `yaml:"max_lane"`
	DefaultStopProgress float64       `yaml:"default_stop_progress"`
}

// TrackConfig defines the stadium oval.
type TrackConfig struct {
	StraightLength float64 `yaml:"straight_length"`
	CurveRadius    float64 `yaml:"curve_radius"`
	LaneWidth      float64 `yaml:"lane_width"`
	Lanes          int     `yaml:"lanes"`
	Laps           int     `yaml:"laps"`
	OffsetScale    float64 `yaml:"offset_scale"` // fraction of a lane one unit of laneOffset moves
}

// CameraConfig defines the director camera and per-frame smoothing.
type CameraConfig struct {
	FrameRate       int     `yaml:"frame_rate"`
	StartThreshold  float64 `yaml:"start_threshold"`
	FinishThreshold float64 `yaml:"finish_threshold"`
	PursuitDistance float64 `yaml:"pursuit_distance"`
	PursuitHeight   float64 `yaml:"pursuit_height"`
	LookHeight      float64 `yaml:"look_height"`
	MarkerBlend     float64 `yaml:"marker_blend"`
	Blend           Blends  `yaml:"blend"`
}

// Blends holds position/look-at smoothing factors for each camera mode.
type Blends struct {
	Start   BlendPair `yaml:"start"`
	Pursuit BlendPair `yaml:"pursuit"`
	Finish  BlendPair `yaml:"finish"`
	Idle    BlendPair `yaml:"idle"`
}

// BlendPair is a pair of exponential smoothing factors.
type BlendPair struct {
	Position float64 `yaml:"position"`
	LookAt   float64 `yaml:"look_at"`
}

// CommentaryConfig defines the commentary feed.
type CommentaryConfig struct {
	Provider string        `yaml:"provider"`
	Interval time.Duration `yaml:"interval"`
	Timeout  time.Duration `yaml:"timeout"`
	Fallback []string      `yaml:"fallback"`
}
