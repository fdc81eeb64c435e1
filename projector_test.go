package gizmo3d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestBuildCameraRay(t *testing.T) {
	p := NewIdentityProjector()

	r := BuildCameraRay(p, mgl32.Vec2{0, 0})
	assert.InDelta(t, 0, float64(r.Origin.Sub(mgl32.Vec3{0, 0, 10}).Len()), 1e-5)
	assert.InDelta(t, 0, float64(r.Dir.Sub(mgl32.Vec3{0, 0, -1}).Len()), 1e-5)

	// Off-center screen point yields a normalized oblique direction.
	r = BuildCameraRay(p, mgl32.Vec2{30, 40})
	assert.InDelta(t, 1, float64(r.Dir.Len()), 1e-5)
	assert.Less(t, r.Dir.Z(), float32(0))
}

func TestBuildCameraRayCoincidentFallback(t *testing.T) {
	// Unprojection lands exactly on the camera position: direction must fall
	// back to the camera forward instead of normalizing a zero vector.
	p := &FuncProjector{
		Position: mgl32.Vec3{3, 4, 0},
		Forward:  mgl32.Vec3{0, 0, -1},
		ScreenToWorldFunc: func(mgl32.Vec2) mgl32.Vec3 {
			return mgl32.Vec3{3, 4, 0}
		},
	}
	r := BuildCameraRay(p, mgl32.Vec2{3, 4})
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, r.Dir)
}

func TestFuncProjectorDefaults(t *testing.T) {
	p := &FuncProjector{}

	assert.Equal(t, mgl32.Vec2{7, -2}, p.WorldToScreen(mgl32.Vec3{7, -2, 99}))
	assert.Equal(t, mgl32.Vec3{5, 6, 0}, p.ScreenToWorld(mgl32.Vec2{5, 6}))
	// Zero forward still yields a usable view direction.
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, p.CameraForward())

	r := p.CameraRay(mgl32.Vec2{0, 0})
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, r.Dir)
}

func TestFuncProjectorOverrides(t *testing.T) {
	called := false
	p := &FuncProjector{
		WorldToScreenFunc: func(w mgl32.Vec3) mgl32.Vec2 {
			called = true
			return mgl32.Vec2{w.X() * 2, w.Y() * 2}
		},
	}
	got := p.WorldToScreen(mgl32.Vec3{1, 2, 3})
	assert.True(t, called)
	assert.Equal(t, mgl32.Vec2{2, 4}, got)
}
