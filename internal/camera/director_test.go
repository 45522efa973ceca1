package camera

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-stadium/internal/config"
	"github.com/vovakirdan/tui-stadium/internal/core"
	"github.com/vovakirdan/tui-stadium/internal/race"
	"github.com/vovakirdan/tui-stadium/internal/track"
)

func near(a, b core.Vec3) bool {
	return a.Dist(b) < 1e-9
}

func TestSelectTarget(t *testing.T) {
	tests := []struct {
		name     string
		runners  []race.Runner
		expected int
		ok       bool
	}{
		{
			name:    "empty",
			runners: nil,
		},
		{
			name: "moving leader",
			runners: []race.Runner{
				{ID: 1, Progress: 0.4},
				{ID: 2, Progress: 0.6},
			},
			expected: 2, ok: true,
		},
		{
			name: "resting leader hands over",
			runners: []race.Runner{
				{ID: 1, Progress: 1.05, Finished: true, IsResting: true},
				{ID: 2, Progress: 0.97},
			},
			expected: 2, ok: true,
		},
		{
			name: "skips every resting runner",
			runners: []race.Runner{
				{ID: 1, Progress: 1.05, Finished: true, IsResting: true},
				{ID: 2, Progress: 1.02, Finished: true, IsResting: true},
				{ID: 3, Progress: 0.5},
				{ID: 4, Progress: 0.8},
			},
			expected: 4, ok: true,
		},
		{
			name: "all resting stays on leader",
			runners: []race.Runner{
				{ID: 1, Progress: 1.01, Finished: true, IsResting: true},
				{ID: 2, Progress: 1.04, Finished: true, IsResting: true},
			},
			expected: 2, ok: true,
		},
		{
			name: "ties keep id order",
			runners: []race.Runner{
				{ID: 1, Progress: 0.3},
				{ID: 2, Progress: 0.3},
			},
			expected: 1, ok: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := SelectTarget(tc.runners)
			if ok != tc.ok {
				t.Fatalf("SelectTarget() ok = %v, expected %v", ok, tc.ok)
			}
			if ok && got.ID != tc.expected {
				t.Errorf("SelectTarget() = %d, expected %d", got.ID, tc.expected)
			}
		})
	}
}

// snapCamera returns a config whose blends jump straight to the shot.
func snapCamera() config.CameraConfig {
	cfg := config.DefaultCameraConfig()
	one := config.BlendPair{Position: 1, LookAt: 1}
	cfg.Blend = config.Blends{Start: one, Pursuit: one, Finish: one, Idle: one}
	return cfg
}

func racing(runners ...race.Runner) race.Snapshot {
	return race.Snapshot{Status: race.StatusRacing, Runners: runners}
}

func TestDirectorShots(t *testing.T) {
	trk := track.Default()
	finishZ := trk.FinishLineZ()
	anchor := core.V3(12, 0, 80)
	anchors := func(id int) (core.Vec3, bool) { return anchor, id == 1 }

	pursuit := trk.Path(0.5, 3, 0)
	tests := []struct {
		name   string
		snap   race.Snapshot
		mode   Mode
		pose   Pose
		target bool
	}{
		{
			name: "idle",
			snap: race.Snapshot{Status: race.StatusIdle, Runners: []race.Runner{{ID: 1}}},
			mode: ModeIdle,
			pose: Pose{Position: core.V3(-180, 50, finishZ+150), LookAt: core.V3(-60, 10, finishZ)},
		},
		{
			name:   "start",
			snap:   racing(race.Runner{ID: 1, Progress: 0.01}),
			mode:   ModeStart,
			pose:   Pose{Position: core.V3(12-50, 30, 80+100), LookAt: core.V3(12+30, 15, 80-10)},
			target: true,
		},
		{
			name:   "finish",
			snap:   racing(race.Runner{ID: 1, Progress: 0.95}),
			mode:   ModeFinish,
			pose:   Pose{Position: core.V3(40, 25, finishZ+80), LookAt: core.V3(0, 10, finishZ)},
			target: true,
		},
		{
			name: "pursuit falls back to the path",
			snap: racing(race.Runner{ID: 2, Progress: 0.5, Lane: 3}),
			mode: ModePursuit,
			pose: Pose{
				Position: pursuit.Position.Sub(pursuit.Tangent.Scale(70)).Add(core.V3(0, 40, 0)),
				LookAt:   pursuit.Position.Add(core.V3(0, 15, 0)),
			},
			target: true,
		},
		{
			name:   "finished race without movers",
			snap:   race.Snapshot{Status: race.StatusFinished, Runners: []race.Runner{{ID: 1, Progress: 0.5, Finished: true, IsResting: true}}},
			mode:   ModePursuit,
			pose:   Pose{Position: anchor.Sub(trk.Path(0.5, 0, 0).Tangent.Scale(70)).Add(core.V3(0, 40, 0)), LookAt: anchor.Add(core.V3(0, 15, 0))},
			target: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDirector(snapCamera(), trk)
			frame := d.Update(tc.snap, anchors)

			if frame.Mode != tc.mode {
				t.Errorf("mode = %s, expected %s", frame.Mode, tc.mode)
			}
			if frame.HasTarget != tc.target {
				t.Errorf("HasTarget = %v, expected %v", frame.HasTarget, tc.target)
			}
			if !near(frame.Pose.Position, tc.pose.Position) {
				t.Errorf("position = %+v, expected %+v", frame.Pose.Position, tc.pose.Position)
			}
			if !near(frame.Pose.LookAt, tc.pose.LookAt) {
				t.Errorf("look-at = %+v, expected %+v", frame.Pose.LookAt, tc.pose.LookAt)
			}
			if frame.Pose != d.Pose() {
				t.Error("frame pose should match Pose()")
			}
		})
	}
}

func TestRestingFinisherKeepsFinishShotOff(t *testing.T) {
	d := NewDirector(config.DefaultCameraConfig(), track.Default())
	frame := d.Update(race.Snapshot{
		Status:  race.StatusFinished,
		Runners: []race.Runner{{ID: 1, Progress: 1.03, Finished: true, IsResting: true}},
	}, nil)
	if frame.Mode == ModeFinish {
		t.Error("a resting target should not hold the finish shot")
	}
}

func TestDirectorEasesWithoutSnapping(t *testing.T) {
	trk := track.Default()
	d := NewDirector(config.DefaultCameraConfig(), trk)
	snap := racing(race.Runner{ID: 1, Progress: 0.5, Lane: 2})

	path := trk.Path(0.5, 2, 0)
	shot := path.Position.Sub(path.Tangent.Scale(70)).Add(core.V3(0, 40, 0))

	prev := d.Pose()
	first := d.Update(snap, nil)
	if want := prev.Position.Lerp(shot, 0.04); !near(first.Pose.Position, want) {
		t.Fatalf("first step = %+v, expected %+v", first.Pose.Position, want)
	}

	prev = first.Pose
	for i := 0; i < 300; i++ {
		cur := d.Update(snap, nil).Pose
		before := prev.Position.Dist(shot)
		after := cur.Position.Dist(shot)
		if after > before {
			t.Fatalf("frame %d: camera moved away from its shot", i)
		}
		if moved := cur.Position.Dist(prev.Position); moved > before*0.04+1e-9 {
			t.Fatalf("frame %d: camera jumped %v, more than its blend allows", i, moved)
		}
		prev = cur
	}
	if prev.Position.Dist(shot) > 0.1 {
		t.Errorf("camera did not settle, %v away", prev.Position.Dist(shot))
	}
}

func TestDirectorReset(t *testing.T) {
	d := NewDirector(snapCamera(), track.Default())
	d.Update(racing(race.Runner{ID: 1, Progress: 0.95}), nil)
	if d.Mode() != ModeFinish {
		t.Fatalf("mode = %s, expected finish", d.Mode())
	}

	d.Reset()
	if d.Pose() != initialPose || d.Mode() != ModeIdle {
		t.Errorf("Reset() left pose %+v mode %s", d.Pose(), d.Mode())
	}
	if d.Pose().Position != core.V3(0, 100, 300) {
		t.Errorf("initial position = %+v, expected (0,100,300)", d.Pose().Position)
	}
}

func TestPoseBasis(t *testing.T) {
	poses := []Pose{
		{Position: core.V3(0, 0, 10), LookAt: core.V3(0, 0, 0)},
		{Position: core.V3(-180, 50, 200), LookAt: core.V3(-60, 10, 90)},
		{Position: core.V3(0, 10, 0), LookAt: core.V3(0, 0, 0)},
		{Position: core.V3(1, 1, 1), LookAt: core.V3(1, 1, 1)},
	}

	for _, p := range poses {
		f, r, u := p.Basis()
		for _, v := range []core.Vec3{f, r, u} {
			if math.Abs(v.Len()-1) > 1e-9 {
				t.Errorf("pose %+v: basis vector %+v is not unit length", p, v)
			}
		}
		if math.Abs(f.Dot(r)) > 1e-9 || math.Abs(f.Dot(u)) > 1e-9 || math.Abs(r.Dot(u)) > 1e-9 {
			t.Errorf("pose %+v: basis is not orthogonal", p)
		}
	}

	_, r, u := Pose{Position: core.V3(0, 0, 10)}.Basis()
	if !near(r, core.V3(1, 0, 0)) || !near(u, core.V3(0, 1, 0)) {
		t.Errorf("looking down -Z: right %+v up %+v, expected +X and +Y", r, u)
	}
}

func TestModeString(t *testing.T) {
	if ModePursuit.String() != "pursuit" || Mode(9).String() != "unknown" {
		t.Error("unexpected mode names")
	}
}
