// Package scene keeps the per-frame presentation of a race and draws it
// into a terminal screen.
//
// A Stage holds one Marker per runner, keyed by runner id. The table is
// rebuilt only when the set of runners changes; between rebuilds each marker
// eases toward its runner's place on the track, which is what the camera
// follows and what gets drawn.
package scene

import (
	"sort"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-stadium/internal/camera"
	"github.com/vovakirdan/tui-stadium/internal/core"
	"github.com/vovakirdan/tui-stadium/internal/race"
	"github.com/vovakirdan/tui-stadium/internal/sprite"
	"github.com/vovakirdan/tui-stadium/internal/track"
)

// Marker is the displayed state of one runner.
type Marker struct {
	Runner   race.Runner
	Position core.Vec3 // smoothed world position
	Frames   sprite.FrameSet
}

// Stage is the id -> marker side-table for one race view.
type Stage struct {
	track   track.Track
	sprites sprite.Provider
	blend   float64
	markers map[int]*Marker
	ids     []int
	builds  int
}

// NewStage creates an empty stage. blend is the per-frame marker easing factor.
func NewStage(trk track.Track, sprites sprite.Provider, blend float64) *Stage {
	if sprites == nil {
		sprites = sprite.NewASCIIProvider()
	}
	return &Stage{
		track:   trk,
		sprites: sprites,
		blend:   blend,
		markers: make(map[int]*Marker),
	}
}

// Sync brings the markers up to date with snap. The table is rebuilt when the
// runner ids differ from the previous call; otherwise markers ease toward
// their path positions.
func (s *Stage) Sync(snap race.Snapshot) {
	if !s.sameMembers(snap.Runners) {
		s.rebuild(snap.Runners)
		return
	}

	for _, r := range snap.Runners {
		m := s.markers[r.ID]
		target := s.track.Path(r.Progress, r.Lane, r.LaneOffset).Position
		m.Position = m.Position.Lerp(target, s.blend)
		m.Runner = r
	}
}

func (s *Stage) sameMembers(runners []race.Runner) bool {
	if len(runners) != len(s.ids) {
		return false
	}
	for i, r := range runners {
		if s.ids[i] != r.ID {
			return false
		}
	}
	return true
}

func (s *Stage) rebuild(runners []race.Runner) {
	s.builds++
	s.markers = make(map[int]*Marker, len(runners))
	s.ids = s.ids[:0]
	for _, r := range runners {
		s.markers[r.ID] = &Marker{
			Runner:   r,
			Position: s.track.Path(r.Progress, r.Lane, r.LaneOffset).Position,
			Frames:   s.sprites.Frames(r.Color, r.ID),
		}
		s.ids = append(s.ids, r.ID)
	}
}

// Anchor returns the displayed position of a runner. It satisfies camera.Anchors.
func (s *Stage) Anchor(id int) (core.Vec3, bool) {
	m, ok := s.markers[id]
	if !ok {
		return core.Vec3{}, false
	}
	return m.Position, true
}

// Marker returns the marker for a runner.
func (s *Stage) Marker(id int) (*Marker, bool) {
	m, ok := s.markers[id]
	return m, ok
}

// Len returns the number of markers.
func (s *Stage) Len() int {
	return len(s.ids)
}

// labelDepth is the distance under which runners get their bib drawn.
const labelDepth = 90.0

// Draw renders the track and the runners seen from frame.Pose.
func (s *Stage) Draw(screen *core.Screen, frame camera.Frame, now time.Time) {
	s.drawInfield(screen, frame.Pose)
	s.drawLanes(screen, frame.Pose)
	s.drawFinishLine(screen, frame.Pose)
	s.drawRunners(screen, frame, now)
}

func (s *Stage) plot(screen *core.Screen, pose camera.Pose, p core.Vec3, r rune, c core.Color) {
	if pt, ok := Project(pose, p, screen.Width(), screen.Height()); ok {
		screen.SetColored(pt.X, pt.Y, r, c)
	}
}

func (s *Stage) drawInfield(screen *core.Screen, pose camera.Pose) {
	const step = 8.0
	halfL := s.track.StraightLength() / 2
	r0 := s.track.CurveRadius()

	for x := -halfL - r0; x <= halfL+r0; x += step {
		for z := -r0; z <= r0; z += step {
			if !s.inInfield(x, z) {
				continue
			}
			s.plot(screen, pose, core.V3(x, 0, z), ',', core.ColorTurf)
		}
	}
}

// inInfield reports whether (x, z) lies inside the inner edge of lane 0.
func (s *Stage) inInfield(x, z float64) bool {
	halfL := s.track.StraightLength() / 2
	r0 := s.track.CurveRadius()
	switch {
	case x > halfL:
		return core.V3(x-halfL, 0, z).Len() < r0
	case x < -halfL:
		return core.V3(x+halfL, 0, z).Len() < r0
	default:
		return z > -r0 && z < r0
	}
}

func (s *Stage) drawLanes(screen *core.Screen, pose camera.Pose) {
	const samples = 480
	lanes := s.track.Lanes()
	w := s.track.LaneWidth()

	for i := 0; i <= lanes; i++ {
		r := s.track.CurveRadius() + float64(i)*w
		glyph, color := '.', core.ColorLane
		if i == 0 || i == lanes {
			glyph, color = ':', core.ColorTrack
		}

		lap := s.track.LapLength(r)
		for k := 0; k < samples; k++ {
			p, _ := s.track.PointAt(lap*float64(k)/samples, r)
			s.plot(screen, pose, p, glyph, color)
		}
	}
}

func (s *Stage) drawFinishLine(screen *core.Screen, pose camera.Pose) {
	r0 := s.track.CurveRadius()
	for z := r0; z <= r0+s.track.TrackWidth(); z += 0.5 {
		for _, x := range []float64{-1.5, 0, 1.5} {
			s.plot(screen, pose, core.V3(x, 0, z), '#', core.ColorFinish)
		}
	}
}

type placed struct {
	marker *Marker
	pt     Point
}

func (s *Stage) drawRunners(screen *core.Screen, frame camera.Frame, now time.Time) {
	visible := make([]placed, 0, len(s.ids))
	for _, id := range s.ids {
		m := s.markers[id]
		if pt, ok := Project(frame.Pose, m.Position, screen.Width(), screen.Height()); ok {
			visible = append(visible, placed{marker: m, pt: pt})
		}
	}

	// Far to near, so closer runners cover the ones behind them.
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].pt.Depth > visible[j].pt.Depth
	})

	for _, v := range visible {
		r := v.marker.Runner
		color := core.Color(r.Color)
		img := sprite.Pick(v.marker.Frames, r, frame.Mode, now)
		if img != "" {
			g, _ := utf8.DecodeRuneInString(string(img))
			screen.SetColored(v.pt.X, v.pt.Y, g, color)
		}
		if v.pt.Depth < labelDepth {
			label := r.Label()
			screen.DrawTextColored(v.pt.X-len(label)/2, v.pt.Y-1, label, color)
		}
	}
}
