// Package camera implements the director camera: it picks which runner to
// follow, chooses a shot for the race phase and eases the camera pose toward
// that shot every frame.
package camera

import (
	"sort"

	"github.com/vovakirdan/tui-stadium/internal/config"
	"github.com/vovakirdan/tui-stadium/internal/core"
	"github.com/vovakirdan/tui-stadium/internal/race"
	"github.com/vovakirdan/tui-stadium/internal/track"
)

// Pose is a camera position and the point it looks at.
type Pose struct {
	Position core.Vec3
	LookAt   core.Vec3
}

// Basis returns the camera's forward, right and up unit vectors (Y up).
func (p Pose) Basis() (forward, right, up core.Vec3) {
	forward = p.LookAt.Sub(p.Position).Normalize()
	if forward.Len() == 0 {
		forward = core.V3(0, 0, -1)
	}
	right = forward.Cross(core.V3(0, 1, 0)).Normalize()
	if right.Len() == 0 {
		// Looking straight up or down.
		right = core.V3(1, 0, 0)
	}
	up = right.Cross(forward)
	return forward, right, up
}

// Anchors returns the displayed position of a runner's marker.
// ok is false when the runner has no marker yet.
type Anchors func(id int) (pos core.Vec3, ok bool)

// Frame is the outcome of one director update.
type Frame struct {
	Pose      Pose
	Mode      Mode
	TargetID  int
	HasTarget bool
}

// SelectTarget picks the runner the camera follows: the leader by progress,
// or, once the leader has come to rest, the best-placed runner still moving.
// When everyone rests it stays on the leader.
func SelectTarget(runners []race.Runner) (race.Runner, bool) {
	if len(runners) == 0 {
		return race.Runner{}, false
	}

	sorted := append([]race.Runner(nil), runners...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Progress > sorted[j].Progress
	})

	leader := sorted[0]
	if !leader.IsResting {
		return leader, true
	}
	for _, r := range sorted {
		if !r.IsResting {
			return r, true
		}
	}
	return leader, true
}

var initialPose = Pose{
	Position: core.V3(0, 100, 300),
	LookAt:   core.V3(0, 0, 0),
}

// Director eases the camera toward the shot for the current race phase.
type Director struct {
	cfg   config.CameraConfig
	track track.Track
	pose  Pose
	mode  Mode
}

// NewDirector creates a director parked high above the infield.
func NewDirector(cfg config.CameraConfig, trk track.Track) *Director {
	return &Director{
		cfg:   cfg,
		track: trk,
		pose:  initialPose,
		mode:  ModeIdle,
	}
}

// Pose returns the current smoothed pose.
func (d *Director) Pose() Pose {
	return d.pose
}

// Mode returns the most recent shot.
func (d *Director) Mode() Mode {
	return d.mode
}

// Reset parks the camera back at its initial pose.
func (d *Director) Reset() {
	d.pose = initialPose
	d.mode = ModeIdle
}

// Update moves the camera one frame toward the desired shot for snap.
// anchors may be nil, in which case runner positions come from the track.
func (d *Director) Update(snap race.Snapshot, anchors Anchors) Frame {
	if snap.Status == race.StatusIdle {
		d.mode = ModeIdle
		d.blend(d.idleShot(), d.cfg.Blend.Idle)
		return Frame{Pose: d.pose, Mode: d.mode}
	}

	target, ok := SelectTarget(snap.Runners)
	if !ok {
		return Frame{Pose: d.pose, Mode: d.mode}
	}

	path := d.track.Path(target.Progress, target.Lane, target.LaneOffset)
	anchor := path.Position
	if anchors != nil {
		if pos, ok := anchors(target.ID); ok {
			anchor = pos
		}
	}

	var (
		shot  Pose
		blend config.BlendPair
	)
	switch {
	case target.Progress < d.cfg.StartThreshold:
		d.mode = ModeStart
		blend = d.cfg.Blend.Start
		shot = Pose{
			Position: core.V3(anchor.X-50, 30, anchor.Z+100),
			LookAt:   core.V3(anchor.X+30, 15, anchor.Z-10),
		}

	case target.Progress >= d.cfg.FinishThreshold && !target.IsResting:
		d.mode = ModeFinish
		blend = d.cfg.Blend.Finish
		z := d.track.FinishLineZ()
		shot = Pose{
			Position: core.V3(40, 25, z+80),
			LookAt:   core.V3(0, 10, z),
		}

	default:
		d.mode = ModePursuit
		blend = d.cfg.Blend.Pursuit
		shot = Pose{
			Position: anchor.
				Sub(path.Tangent.Scale(d.cfg.PursuitDistance)).
				Add(core.V3(0, d.cfg.PursuitHeight, 0)),
			LookAt: anchor.Add(core.V3(0, d.cfg.LookHeight, 0)),
		}
	}

	d.blend(shot, blend)
	return Frame{Pose: d.pose, Mode: d.mode, TargetID: target.ID, HasTarget: true}
}

func (d *Director) idleShot() Pose {
	z := d.track.FinishLineZ()
	return Pose{
		Position: core.V3(-180, 50, z+150),
		LookAt:   core.V3(-60, 10, z),
	}
}

func (d *Director) blend(shot Pose, b config.BlendPair) {
	d.pose.Position = d.pose.Position.Lerp(shot.Position, b.Position)
	d.pose.LookAt = d.pose.LookAt.Lerp(shot.LookAt, b.LookAt)
}
