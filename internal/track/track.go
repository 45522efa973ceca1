// Package track maps abstract race progress onto the stadium oval.
//
// The oval is a "stadium" loop: two straights of length L joined by two
// semicircles. Each lane runs on its own radius, so outer lanes have a longer
// lap, exactly like a real track. Progress 0 sits at the middle of the first
// straight, which is also where the finish line is painted.
package track

import (
	"math"

	"github.com/vovakirdan/tui-stadium/internal/config"
	"github.com/vovakirdan/tui-stadium/internal/core"
)

// PathData is the placement of a runner on the oval.
type PathData struct {
	Position         core.Vec3 // Point on the lane centerline (Y = 0)
	Tangent          core.Vec3 // Unit forward direction
	S                float64   // Distance along the current lap, in [0, LapCircumference)
	LapCircumference float64   // Length of one lap at this lane's radius
}

// Track holds the oval dimensions. The zero value is not usable; call New.
type Track struct {
	straight    float64
	curveRadius float64
	laneWidth   float64
	lanes       int
	laps        int
	offsetScale float64
}

// New creates a track from configuration.
func New(cfg config.TrackConfig) Track {
	return Track{
		straight:    cfg.StraightLength,
		curveRadius: cfg.CurveRadius,
		laneWidth:   cfg.LaneWidth,
		lanes:       cfg.Lanes,
		laps:        cfg.Laps,
		offsetScale: cfg.OffsetScale,
	}
}

// Default returns the stock stadium.
func Default() Track {
	return New(config.DefaultTrackConfig())
}

// Lanes returns the number of painted lanes.
func (t Track) Lanes() int { return t.lanes }

// Laps returns the race length in laps.
func (t Track) Laps() int { return t.laps }

// StraightLength returns the length of each straight.
func (t Track) StraightLength() float64 { return t.straight }

// CurveRadius returns the radius of the inside edge of lane 0.
func (t Track) CurveRadius() float64 { return t.curveRadius }

// LaneWidth returns the width of a single lane.
func (t Track) LaneWidth() float64 { return t.laneWidth }

// TrackWidth returns the width of all lanes together.
func (t Track) TrackWidth() float64 {
	return float64(t.lanes) * t.laneWidth
}

// FinishLineZ is the Z coordinate of the middle of the track on the home straight.
func (t Track) FinishLineZ() float64 {
	return t.curveRadius + t.TrackWidth()/2
}

// LapFraction is the span of progress covered by one lap.
func (t Track) LapFraction() float64 {
	return 1 / float64(t.laps)
}

// Radius returns the turn radius of a lane position.
// lane is continuous; laneOffset shifts within the lane by offsetScale of its width.
func (t Track) Radius(lane, laneOffset float64) float64 {
	laneCenter := lane*t.laneWidth + t.laneWidth*0.5
	return t.curveRadius + laneCenter + laneOffset*t.laneWidth*t.offsetScale
}

// LapLength returns the circumference of one lap at radius r.
func (t Track) LapLength(r float64) float64 {
	return 2*t.straight + 2*math.Pi*r
}

// Path places a runner on the oval.
// The mapping uses the lane's own radius, so the same progress sits at
// different arc positions in different lanes.
func (t Track) Path(progress, lane, laneOffset float64) PathData {
	r := t.Radius(lane, laneOffset)
	lap := t.LapLength(r)
	total := lap * float64(t.laps)

	s := math.Mod(progress*total+t.straight/2, lap)
	if s < 0 {
		s += lap
	}

	pos, tan := t.PointAt(s, r)
	return PathData{
		Position:         pos,
		Tangent:          tan,
		S:                s,
		LapCircumference: lap,
	}
}

// PointAt evaluates the stadium loop at distance s (0 <= s < lap) on radius r.
//
// Regions, in order: straight A heading +X at z = r, the first turn around
// (L/2, 0), straight B heading -X at z = -r, and the second turn around (-L/2, 0).
func (t Track) PointAt(s, r float64) (pos, tangent core.Vec3) {
	l := t.straight
	halfTurn := math.Pi * r

	switch {
	case s < l:
		return core.V3(-l/2+s, 0, r), core.V3(1, 0, 0)

	case s < l+halfTurn:
		theta := (s - l) / r
		sin, cos := math.Sincos(theta)
		return core.V3(l/2+r*sin, 0, r*cos), core.V3(cos, 0, -sin)

	case s < 2*l+halfTurn:
		return core.V3(l/2-(s-(l+halfTurn)), 0, -r), core.V3(-1, 0, 0)

	default:
		theta := (s - (2*l + halfTurn)) / r
		sin, cos := math.Sincos(theta)
		return core.V3(-l/2-r*sin, 0, -r*cos), core.V3(-cos, 0, sin)
	}
}
