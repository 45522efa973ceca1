package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/stadium.yaml
var defaultStadiumYAML []byte

// DefaultPalette is the runner color cycle.
var DefaultPalette = []string{
	"#ff4d4d", "#ff944d", "#ffdb4d", "#4dff4d", "#4dffff",
	"#4d94ff", "#944dff", "#db4dff", "#ff4db8", "#ff4d4d",
	"#c0c0c0", "#ffd700", "#cd7f32", "#00ff7f", "#00bfff",
}

// DefaultStadiumConfig returns the built-in configuration.
// It mirrors defaults/stadium.yaml and is used when the embedded file cannot be parsed.
func DefaultStadiumConfig() StadiumConfig {
	return StadiumConfig{
		Race:       DefaultRaceConfig(),
		Track:      DefaultTrackConfig(),
		Camera:     DefaultCameraConfig(),
		Commentary: DefaultCommentaryConfig(),
	}
}

// DefaultRaceConfig returns the default engine configuration.
func DefaultRaceConfig() RaceConfig {
	return RaceConfig{
		Runners:       40,
		TickInterval:  30 * time.Millisecond,
		StrategyDelay: 4 * time.Second,
		Runner: RunnerConfig{
			BaseSpeedMin:       0.0007,
			BaseSpeedSpread:    0.00035,
			StopProgressMin:    1.01,
			StopProgressSpread: 0.05,
			LaneOffsetSpread:   0.8,
			StartLanes:         10,
			Palette:            append([]string(nil), DefaultPalette...),
		},
		Strategy: StrategyConfig{
			WobbleAmplitude:     0.00005,
			WobbleFrequency:     0.0012,
			BoostFactor:         1.85,
			BoostDuration:       5 * time.Second,
			BoostChance:         0.007,
			BoostLane:           1.2,
			BoostOffset:         0.1,
			BoostBlend:          0.1,
			InsideLane:          0,
			InsideBlend:         0.06,
			StaggerSpread:       0.2,
			FinishDecay:         0.92,
			RestSpeedFloor:      0.00004,
			MaxLane:             9,
			DefaultStopProgress: 1.1,
		},
	}
}

// DefaultTrackConfig returns the default stadium oval.
func DefaultTrackConfig() TrackConfig {
	return TrackConfig{
		StraightLength: 120,
		CurveRadius:    60,
		LaneWidth:      6,
		Lanes:          10,
		Laps:           2,
		OffsetScale:    0.7,
	}
}

// DefaultCameraConfig returns the default director camera.
func DefaultCameraConfig() CameraConfig {
	race := BlendPair{Position: 0.04, LookAt: 0.06}
	return CameraConfig{
		FrameRate:       60,
		StartThreshold:  0.03,
		FinishThreshold: 0.90,
		PursuitDistance: 70,
		PursuitHeight:   40,
		LookHeight:      15,
		MarkerBlend:     0.25,
		Blend: Blends{
			Start:   race,
			Pursuit: race,
			Finish:  race,
			Idle:    BlendPair{Position: 0.02, LookAt: 0.02},
		},
	}
}

// DefaultCommentaryConfig returns the default commentary feed settings.
func DefaultCommentaryConfig() CommentaryConfig {
	return CommentaryConfig{
		Provider: "broadcast",
		Interval: 10 * time.Second,
		Timeout:  2 * time.Second,
		Fallback: []string{
			"What a race we have on our hands!",
			"The crowd is on its feet!",
			"Every runner is giving it everything!",
			"Positions are shifting all over the track!",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultStadiumYAML
}
