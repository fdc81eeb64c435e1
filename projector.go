package gizmo3d

import "github.com/go-gl/mathgl/mgl32"

// Projector maps between world space and screen space for the host's camera.
// The host scene implements this; the core never inspects camera internals.
//
// WorldToScreen may return an off-screen or behind-camera point; no validity
// flag is reported, matching host projection semantics. Callers that need to
// guard an absent projector use the package-level WorldToScreen helper.
type Projector interface {
	WorldToScreen(world mgl32.Vec3) mgl32.Vec2
	ScreenToWorld(screen mgl32.Vec2) mgl32.Vec3
	CameraRay(screen mgl32.Vec2) Ray
	CameraPosition() mgl32.Vec3
	CameraForward() mgl32.Vec3
}

// BuildCameraRay constructs a world-space ray through a screen point from two
// points at different depths: the camera position and the unprojected screen
// point. If the two coincide the ray falls back to the camera forward
// direction instead of normalizing a zero vector.
func BuildCameraRay(p Projector, screen mgl32.Vec2) Ray {
	origin := p.CameraPosition()
	target := p.ScreenToWorld(screen)

	dir := target.Sub(origin)
	if dir.Len() < Epsilon {
		return Ray{Origin: origin, Dir: p.CameraForward()}
	}
	return Ray{Origin: origin, Dir: dir.Normalize()}
}

// FuncProjector is a host-free Projector for tests and tooling. The zero
// value maps world (x,y,z) to screen (x,y) with the camera on +Z looking down
// -Z. Any projection can be overridden per field.
type FuncProjector struct {
	Position mgl32.Vec3
	Forward  mgl32.Vec3

	WorldToScreenFunc func(mgl32.Vec3) mgl32.Vec2
	ScreenToWorldFunc func(mgl32.Vec2) mgl32.Vec3
	CameraRayFunc     func(mgl32.Vec2) Ray
}

// NewIdentityProjector returns a FuncProjector with the identity screen
// mapping and a camera at (0,0,10) facing -Z.
func NewIdentityProjector() *FuncProjector {
	return &FuncProjector{
		Position: mgl32.Vec3{0, 0, 10},
		Forward:  mgl32.Vec3{0, 0, -1},
	}
}

func (f *FuncProjector) WorldToScreen(world mgl32.Vec3) mgl32.Vec2 {
	if f.WorldToScreenFunc != nil {
		return f.WorldToScreenFunc(world)
	}
	return mgl32.Vec2{world.X(), world.Y()}
}

func (f *FuncProjector) ScreenToWorld(screen mgl32.Vec2) mgl32.Vec3 {
	if f.ScreenToWorldFunc != nil {
		return f.ScreenToWorldFunc(screen)
	}
	return mgl32.Vec3{screen.X(), screen.Y(), 0}
}

func (f *FuncProjector) CameraRay(screen mgl32.Vec2) Ray {
	if f.CameraRayFunc != nil {
		return f.CameraRayFunc(screen)
	}
	return BuildCameraRay(f, screen)
}

func (f *FuncProjector) CameraPosition() mgl32.Vec3 {
	return f.Position
}

func (f *FuncProjector) CameraForward() mgl32.Vec3 {
	if f.Forward.Len() < Epsilon {
		return mgl32.Vec3{0, 0, -1}
	}
	return f.Forward
}
