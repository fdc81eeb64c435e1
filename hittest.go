package gizmo3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// TestTranslationGizmoHit classifies a screen point against translation
// geometry. Axis arrows are tested before plane quads so overlapping regions
// favor the thinner, more precise handle; among axes the strictly closest
// candidate under the threshold wins. Degenerate (zero-length) arrows are
// never hit.
func TestTranslationGizmoHit(g *TranslationGeometry, p mgl32.Vec2, axisThreshold float32) HitResult {
	if g == nil {
		return NoHit()
	}

	if hit := closestAxisHit(p, g.AxisStarts, g.AxisEnds, axisThreshold, nil); hit.Kind != HitNone {
		return hit
	}
	for i := 0; i < 3; i++ {
		if PointInQuad2D(p, g.PlaneQuads[i]) {
			return PlaneHit(slotPlane(i))
		}
	}
	return NoHit()
}

// TestScaleGizmoHit classifies a screen point against scale geometry. The
// center handle is tested first: a click near the shared origin always means
// uniform scale, never a single axis. Square end handles count toward their
// axis.
func TestScaleGizmoHit(g *ScaleGeometry, p mgl32.Vec2, axisThreshold, centerRadius float32) HitResult {
	if g == nil {
		return NoHit()
	}

	if d := p.Sub(g.Center).Len(); d <= centerRadius {
		return CenterHit(d)
	}
	return closestAxisHit(p, g.AxisStarts, g.AxisEnds, axisThreshold, &g.Handles)
}

// TestRotationGizmoHit classifies a screen point against rotation circles.
// The closest circle under the threshold wins. arcValid, when non-nil, is
// called with the plane and the parametric angle of a candidate segment and
// can veto it; the interaction layer uses this to keep only the camera-facing
// portion of a partially rendered arc clickable.
func TestRotationGizmoHit(g *RotationGeometry, p mgl32.Vec2, threshold float32, arcValid func(Plane, float32) bool) HitResult {
	if g == nil {
		return NoHit()
	}

	best := NoHit()
	for i := 0; i < 3; i++ {
		plane := slotPlane(i)
		d, ok := circleDistance(p, g.Circles[i], plane, arcValid)
		if !ok || d > threshold {
			continue
		}
		if best.Kind == HitNone || d < best.Distance {
			best = CircleHit(plane, d)
		}
	}
	return best
}

// closestAxisHit scans the three arrows for the closest one under the
// threshold. When handles is set, a point inside an axis' handle quad hits
// that axis at distance zero.
func closestAxisHit(p mgl32.Vec2, starts, ends [3]mgl32.Vec2, threshold float32, handles *[3][4]mgl32.Vec2) HitResult {
	best := NoHit()
	for i := 0; i < 3; i++ {
		if handles != nil && PointInQuad2D(p, handles[i]) {
			return AxisHit(slotAxis(i), 0)
		}
		if ends[i].Sub(starts[i]).Len() < Epsilon {
			continue
		}
		d := DistanceToLineSegment2D(p, starts[i], ends[i])
		if d > threshold {
			continue
		}
		if best.Kind == HitNone || d < best.Distance {
			best = AxisHit(slotAxis(i), d)
		}
	}
	return best
}

// circleDistance returns the minimum distance from p to the circle's valid
// segments. The parametric angle of segment i's midpoint is
// 2*pi*(i+0.5)/segments, matching the calculator's sampling.
func circleDistance(p mgl32.Vec2, circle []mgl32.Vec2, plane Plane, arcValid func(Plane, float32) bool) (float32, bool) {
	if len(circle) < 2 {
		return 0, false
	}
	segments := len(circle) - 1
	min := float32(math.Inf(1))
	found := false
	for i := 0; i < segments; i++ {
		if arcValid != nil {
			theta := 2 * math.Pi * (float64(i) + 0.5) / float64(segments)
			if !arcValid(plane, float32(theta)) {
				continue
			}
		}
		d := DistanceToLineSegment2D(p, circle[i], circle[i+1])
		if d < min {
			min = d
			found = true
		}
	}
	return min, found
}
