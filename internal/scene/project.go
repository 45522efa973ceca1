package scene

import (
	"math"

	"github.com/vovakirdan/tui-stadium/internal/camera"
	"github.com/vovakirdan/tui-stadium/internal/core"
)

// Lens settings.
const (
	FieldOfView = 45.0 // vertical, in degrees
	CellAspect  = 2.0  // terminal cells are about twice as tall as wide
	NearPlane   = 1.0
	FarPlane    = 8000.0
)

// Point is a projected screen cell and its distance along the view axis.
type Point struct {
	X, Y  int
	Depth float64
}

// Project maps a world point onto a w×h cell grid through a pinhole camera.
// ok is false for points outside the view frustum or off screen.
func Project(pose camera.Pose, p core.Vec3, w, h int) (Point, bool) {
	if w <= 0 || h <= 0 {
		return Point{}, false
	}

	forward, right, up := pose.Basis()
	rel := p.Sub(pose.Position)
	depth := rel.Dot(forward)
	if depth < NearPlane || depth > FarPlane {
		return Point{}, false
	}

	focal := float64(h) / 2 / math.Tan(FieldOfView*math.Pi/360)
	x := float64(w)/2 + rel.Dot(right)/depth*focal*CellAspect
	y := float64(h)/2 - rel.Dot(up)/depth*focal

	pt := Point{X: int(math.Floor(x)), Y: int(math.Floor(y)), Depth: depth}
	if pt.X < 0 || pt.X >= w || pt.Y < 0 || pt.Y >= h {
		return pt, false
	}
	return pt, true
}
