package gizmo3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon guards near-zero lengths, parallel rays and degenerate projections
// throughout the package.
const Epsilon = 1e-4

// WorldToScreen projects a world position through p. Returns false when no
// projector is available; the point itself carries no validity flag (a
// behind-camera position still projects to some screen coordinate).
func WorldToScreen(p Projector, world mgl32.Vec3) (mgl32.Vec2, bool) {
	if p == nil {
		return mgl32.Vec2{}, false
	}
	return p.WorldToScreen(world), true
}

// ClosestPointOnAxisToRay solves the two-line closest-approach system and
// returns t such that axisOrigin + t*axisDir is the point on the axis nearest
// the ray. When the ray is parallel to the axis the system degenerates and t
// falls back to projecting the ray origin onto the axis.
func ClosestPointOnAxisToRay(rayOrigin, rayDir, axisOrigin, axisDir mgl32.Vec3) float32 {
	w := rayOrigin.Sub(axisOrigin)

	a := rayDir.Dot(rayDir)
	b := rayDir.Dot(axisDir)
	c := axisDir.Dot(axisDir)
	d := rayDir.Dot(w)
	e := axisDir.Dot(w)

	denom := a*c - b*b
	if float32(math.Abs(float64(denom))) < Epsilon {
		// Parallel lines: any ray point is equidistant, project w directly.
		if c < Epsilon {
			return 0
		}
		return e / c
	}

	return (a*e - b*d) / denom
}

// IntersectRayPlane intersects a ray with the plane through planeOrigin with
// normal planeNormal. Returns false when the ray is parallel to the plane.
func IntersectRayPlane(rayOrigin, rayDir, planeOrigin, planeNormal mgl32.Vec3) (mgl32.Vec3, bool) {
	denom := rayDir.Dot(planeNormal)
	if float32(math.Abs(float64(denom))) < Epsilon {
		return mgl32.Vec3{}, false
	}
	t := planeOrigin.Sub(rayOrigin).Dot(planeNormal) / denom
	return rayOrigin.Add(rayDir.Mul(t)), true
}

// SnapValue rounds a relative delta to the nearest multiple of increment.
// A non-positive increment disables snapping and returns the input.
func SnapValue(value, increment float32) float32 {
	if increment <= 0 {
		return value
	}
	return float32(math.Round(float64(value/increment))) * increment
}

// SnapValueAbsolute rounds an absolute coordinate to the nearest multiple of
// increment. The formula is identical to SnapValue; the two names keep
// relative and absolute call sites distinguishable.
func SnapValueAbsolute(value, increment float32) float32 {
	return SnapValue(value, increment)
}

// NormalizeAngleDelta wraps an angle into [-pi, pi] so angular deltas stay
// continuous across the -pi/pi boundary.
func NormalizeAngleDelta(delta float32) float32 {
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta < -math.Pi {
		delta += 2 * math.Pi
	}
	return delta
}

// LocalAxes rotates the three world unit axes by q. The result is orthonormal
// provided q is a unit quaternion; this is a caller precondition and is not
// re-validated.
func LocalAxes(q mgl32.Quat) AxisBasis {
	return AxisBasis{
		X: q.Rotate(mgl32.Vec3{1, 0, 0}),
		Y: q.Rotate(mgl32.Vec3{0, 1, 0}),
		Z: q.Rotate(mgl32.Vec3{0, 0, 1}),
	}
}

// DistanceToLineSegment2D returns the distance from p to the segment [a, b].
func DistanceToLineSegment2D(p, a, b mgl32.Vec2) float32 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq < Epsilon*Epsilon {
		return p.Sub(a).Len()
	}
	t := p.Sub(a).Dot(ab) / lenSq
	t = mgl32.Clamp(t, 0, 1)
	closest := a.Add(ab.Mul(t))
	return p.Sub(closest).Len()
}

// PointInQuad2D tests containment with an even-odd ray crossing over the four
// edges. Only correct for simple convex quads; self-intersecting or
// collinear-corner quads produced under extreme camera angles are not
// special-cased.
func PointInQuad2D(p mgl32.Vec2, quad [4]mgl32.Vec2) bool {
	inside := false
	j := 3
	for i := 0; i < 4; i++ {
		pi, pj := quad[i], quad[j]
		if (pi.Y() > p.Y()) != (pj.Y() > p.Y()) {
			x := (pj.X()-pi.X())*(p.Y()-pi.Y())/(pj.Y()-pi.Y()) + pi.X()
			if p.X() < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// DistanceToPolyline2D returns the minimum distance from p to any segment of
// the polyline. Returns +Inf for fewer than two points.
func DistanceToPolyline2D(p mgl32.Vec2, pts []mgl32.Vec2) float32 {
	if len(pts) < 2 {
		return float32(math.Inf(1))
	}
	min := float32(math.Inf(1))
	for i := 0; i+1 < len(pts); i++ {
		d := DistanceToLineSegment2D(p, pts[i], pts[i+1])
		if d < min {
			min = d
		}
	}
	return min
}
