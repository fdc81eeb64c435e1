package gizmo3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Default sizing, snapping and hit-test parameters. Sizes are in screen
// pixels, snap increments in world units, snap angles in degrees.
const (
	DefaultGizmoSize        float32 = 100
	DefaultMaxScreenSize    float32 = 150
	DefaultRotationSegments         = 64
	DefaultSnapIncrement    float32 = 1.0
	DefaultSnapAngle        float32 = 15.0

	DefaultScaleArrowStartRatio float32 = 0.0
	DefaultScaleArrowEndRatio   float32 = 0.5
	DefaultHandleSize           float32 = 12

	DefaultArrowHeadLength float32 = 15
	DefaultArrowHeadAngle  float32 = math.Pi / 6

	DefaultAxisHitThreshold   float32 = 8
	DefaultCircleHitThreshold float32 = 8
	DefaultCenterHitRadius    float32 = 14
)

// axisScreenBasis is the projected footprint of an axis basis: per-axis
// screen-space unit directions and the screen length of one world unit along
// each axis. An axis pointing into the camera projects to a near-zero length
// and gets a zero Dir.
type axisScreenBasis struct {
	Center mgl32.Vec2
	Dirs   [3]mgl32.Vec2
	Lens   [3]float32
}

// projectAxisBasis projects target and the three unit-axis endpoints through
// p. Shared by the translation and scale calculators and by the rotation
// calculator's per-plane scale measurement.
func projectAxisBasis(p Projector, target mgl32.Vec3, axes AxisBasis) axisScreenBasis {
	out := axisScreenBasis{Center: p.WorldToScreen(target)}
	for i, axis := range [3]mgl32.Vec3{axes.X, axes.Y, axes.Z} {
		end := p.WorldToScreen(target.Add(axis))
		d := end.Sub(out.Center)
		out.Lens[i] = d.Len()
		if out.Lens[i] > Epsilon {
			out.Dirs[i] = d.Mul(1 / out.Lens[i])
		}
	}
	return out
}

// clampFactor returns the uniform scale-down that keeps the largest of the
// three arrow lengths at or under maxScreenSize. 1 when no clamping applies.
func (b axisScreenBasis) clampFactor(arrowLen, maxScreenSize float32) float32 {
	maxDist := float32(0)
	for i := 0; i < 3; i++ {
		if b.Lens[i] > Epsilon && arrowLen > maxDist {
			maxDist = arrowLen
		}
	}
	if maxScreenSize > 0 && maxDist > maxScreenSize {
		return maxScreenSize / maxDist
	}
	return 1
}

// worldScale infers world units per arrow from the mean projected length of
// the three unit axes, scaled down by the same clamp factor applied to the
// screen geometry. Returns 0 when the whole basis degenerates on screen.
func (b axisScreenBasis) worldScale(arrowLen, clamp float32) float32 {
	mean := (b.Lens[0] + b.Lens[1] + b.Lens[2]) / 3
	if mean < Epsilon {
		return 0
	}
	return arrowLen / mean * clamp
}

func logOrNop(l Logger) Logger {
	if l == nil {
		return NewNopLogger()
	}
	return l
}
