package gizmo3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SnapConfig describes how a manipulation value is quantized. Absolute mode
// snaps the resulting coordinate/angle itself to the grid; relative mode
// snaps the delta from the drag-start reference.
type SnapConfig struct {
	Enabled   bool
	Increment float32
	Absolute  bool
}

// Apply quantizes value per the config. reference is the drag-start value,
// used only in relative mode. Disabled snapping and non-positive increments
// return value unchanged.
func (s SnapConfig) Apply(value, reference float32) float32 {
	if !s.Enabled {
		return value
	}
	if s.Absolute {
		return SnapValueAbsolute(value, s.Increment)
	}
	return reference + SnapValue(value-reference, s.Increment)
}

// AxisDragDelta returns how far along the axis the pointer has moved since
// the drag started. startT is the closest-approach parameter captured on the
// initial press with the same axis.
func AxisDragDelta(r Ray, axisOrigin, axisDir mgl32.Vec3, startT float32) float32 {
	return ClosestPointOnAxisToRay(r.Origin, r.Dir, axisOrigin, axisDir) - startT
}

// PlaneDragPoint returns the current pointer position on the drag plane.
// ok is false while the ray runs parallel to the plane; the controller holds
// the previous value for that event.
func PlaneDragPoint(r Ray, planeOrigin, planeNormal mgl32.Vec3) (mgl32.Vec3, bool) {
	return IntersectRayPlane(r.Origin, r.Dir, planeOrigin, planeNormal)
}

// CircleDragAngle returns the signed angle in [-pi, pi] between the
// drag-start direction and the pointer's current direction around the
// rotation plane. startVec is the unit vector from the circle center to the
// initial hit point. ok is false when the ray is parallel to the plane or
// passes through the center.
func CircleDragAngle(r Ray, center, planeNormal, startVec mgl32.Vec3) (float32, bool) {
	hit, ok := IntersectRayPlane(r.Origin, r.Dir, center, planeNormal)
	if !ok {
		return 0, false
	}
	v := hit.Sub(center)
	if v.Len() < Epsilon {
		return 0, false
	}
	v = v.Normalize()

	cosTheta := mgl32.Clamp(startVec.Dot(v), -1, 1)
	angle := float32(math.Acos(float64(cosTheta)))
	if startVec.Cross(v).Dot(planeNormal) < 0 {
		angle = -angle
	}
	return NormalizeAngleDelta(angle), true
}

// ScaleDragFactor converts axis-drag parameters into a multiplicative scale
// factor: dragging the handle to twice its starting distance doubles the
// scale. A start parameter at the gizmo origin cannot define a ratio and
// yields 1.
func ScaleDragFactor(startT, currentT float32) float32 {
	if float32(math.Abs(float64(startT))) < Epsilon {
		return 1
	}
	return currentT / startT
}
