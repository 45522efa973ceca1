// Package sprite supplies the animation frames drawn for each runner.
package sprite

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-stadium/internal/camera"
	"github.com/vovakirdan/tui-stadium/internal/race"
)

// Image is an opaque frame handle. In the terminal it is the glyph to draw.
type Image string

// FrameSet holds one runner's frames for every view.
// Running sets keep a standing pose at index 0; the cycle starts at 1.
type FrameSet struct {
	Side    []Image
	Back    []Image
	Front   []Image
	Resting []Image
}

// Provider builds frame sets for runners.
type Provider interface {
	Frames(color string, id int) FrameSet
}

// Thresholds used to pick a view.
const (
	StartView  = 0.03 // below: side-on at the start line
	FinalView  = 0.90 // at or above: side-on down the home straight
	FacingView = 0.80 // at or above with the finish shot: facing the camera
)

// FrameIndex picks the running-cycle frame for now, never the standing pose.
// bobOffset desynchronises runners.
func FrameIndex(now time.Time, bobOffset float64, count int) int {
	if count <= 1 {
		return 0
	}
	phase := float64(now.UnixMilli())*0.03 + bobOffset*10
	idx := int(math.Floor(math.Mod(phase, float64(count-1))))
	if idx < 0 {
		idx += count - 1
	}
	return idx + 1
}

// Pick chooses the frame to draw for r at now given the current shot.
func Pick(set FrameSet, r race.Runner, mode camera.Mode, now time.Time) Image {
	if r.IsResting {
		return frame(set.Resting, 0)
	}

	var frames []Image
	switch {
	case r.Progress < StartView:
		frames = set.Side
	case r.Progress >= FinalView:
		frames = set.Side
	case mode == camera.ModeFinish && r.Progress >= FacingView:
		frames = set.Front
	default:
		frames = set.Back
	}
	return frame(frames, FrameIndex(now, r.BobOffset, len(frames)))
}

func frame(frames []Image, i int) Image {
	if len(frames) == 0 {
		return ""
	}
	if i < 0 || i >= len(frames) {
		i = 0
	}
	return frames[i]
}
