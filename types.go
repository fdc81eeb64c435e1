package gizmo3d

import "github.com/go-gl/mathgl/mgl32"

// Axis identifies a single manipulation axis of a gizmo.
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
	AxisZ
	AxisUniform // center handle of the scale gizmo
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	case AxisUniform:
		return "Uniform"
	}
	return "None"
}

// Plane identifies a coordinate plane of the gizmo's axis basis.
type Plane int

const (
	PlaneNone Plane = iota
	PlaneXY
	PlaneXZ
	PlaneYZ
)

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneXZ:
		return "XZ"
	case PlaneYZ:
		return "YZ"
	}
	return "None"
}

// Ray is a world-space ray. Dir is expected to be unit length.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// AxisBasis is the orthonormal right-handed basis a gizmo is aligned to:
// either the fixed world axes or the target's local axes (see LocalAxes).
type AxisBasis struct {
	X, Y, Z mgl32.Vec3
}

// WorldAxes returns the fixed world-axis basis.
func WorldAxes() AxisBasis {
	return AxisBasis{
		X: mgl32.Vec3{1, 0, 0},
		Y: mgl32.Vec3{0, 1, 0},
		Z: mgl32.Vec3{0, 0, 1},
	}
}

// Axis returns the basis vector for a, or the zero vector for AxisNone/Uniform.
func (b AxisBasis) Axis(a Axis) mgl32.Vec3 {
	switch a {
	case AxisX:
		return b.X
	case AxisY:
		return b.Y
	case AxisZ:
		return b.Z
	}
	return mgl32.Vec3{}
}

// valid reports whether all three basis vectors have usable length.
func (b AxisBasis) valid() bool {
	return b.X.Len() > Epsilon && b.Y.Len() > Epsilon && b.Z.Len() > Epsilon
}

// HitKind discriminates HitResult variants.
type HitKind int

const (
	HitNone HitKind = iota
	HitAxis
	HitPlane
	HitCircle
	HitCenter
)

// HitResult reports which handle (if any) is under a screen point.
// Axis is set for HitAxis and HitCenter (AxisUniform), Plane for HitPlane
// and HitCircle. Distance is the measured screen distance of the winning
// candidate; zero for plane-interior hits.
type HitResult struct {
	Kind     HitKind
	Axis     Axis
	Plane    Plane
	Distance float32
}

func NoHit() HitResult {
	return HitResult{Kind: HitNone, Axis: AxisNone, Plane: PlaneNone}
}

func AxisHit(a Axis, dist float32) HitResult {
	return HitResult{Kind: HitAxis, Axis: a, Plane: PlaneNone, Distance: dist}
}

func PlaneHit(p Plane) HitResult {
	return HitResult{Kind: HitPlane, Axis: AxisNone, Plane: p}
}

func CircleHit(p Plane, dist float32) HitResult {
	return HitResult{Kind: HitCircle, Axis: AxisNone, Plane: p, Distance: dist}
}

func CenterHit(dist float32) HitResult {
	return HitResult{Kind: HitCenter, Axis: AxisUniform, Plane: PlaneNone, Distance: dist}
}

// axisSlot maps AxisX/Y/Z to array indices 0/1/2.
func axisSlot(a Axis) int { return int(a) - int(AxisX) }

func slotAxis(i int) Axis { return Axis(i + int(AxisX)) }

// planeSlot maps PlaneXY/XZ/YZ to array indices 0/1/2.
func planeSlot(p Plane) int { return int(p) - int(PlaneXY) }

func slotPlane(i int) Plane { return Plane(i + int(PlaneXY)) }

// TranslationGeometry is the screen-space geometry of a translation gizmo.
// Axis arrays are indexed X, Y, Z; PlaneQuads are indexed XY, XZ, YZ.
// Recomputed every frame; never retained by this package.
type TranslationGeometry struct {
	Center     mgl32.Vec2
	AxisStarts [3]mgl32.Vec2
	AxisEnds   [3]mgl32.Vec2
	PlaneQuads [3][4]mgl32.Vec2
}

// RotationGeometry is the screen-space geometry of a rotation gizmo.
// Circles are closed polylines (Segments+1 points), indexed XY, XZ, YZ.
// A circle may be empty when its plane is degenerate under the current
// projection.
type RotationGeometry struct {
	Center  mgl32.Vec2
	Circles [3][]mgl32.Vec2
}

// ScaleGeometry is the screen-space geometry of a scale gizmo. Handles are
// the square end-cap quads, one per axis.
type ScaleGeometry struct {
	Center     mgl32.Vec2
	AxisStarts [3]mgl32.Vec2
	AxisEnds   [3]mgl32.Vec2
	Handles    [3][4]mgl32.Vec2
}
