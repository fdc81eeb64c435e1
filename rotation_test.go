package gizmo3d

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// obliqueProjector maps world (x,y,z) to screen (x+0.5z, y+0.5z) so all three
// axes keep a visible screen footprint.
func obliqueProjector() *FuncProjector {
	return &FuncProjector{
		Position: mgl32.Vec3{0, 0, 10},
		Forward:  mgl32.Vec3{0, 0, -1},
		WorldToScreenFunc: func(w mgl32.Vec3) mgl32.Vec2 {
			return mgl32.Vec2{w.X() + 0.5*w.Z(), w.Y() + 0.5*w.Z()}
		},
	}
}

func TestCalculateRotationGizmoMissingInputs(t *testing.T) {
	assert.Nil(t, CalculateRotationGizmo(nil))

	cfg := NewRotationConfig(nil, mgl32.Vec3{})
	assert.Nil(t, CalculateRotationGizmo(cfg))

	cfg = NewRotationConfig(NewIdentityProjector(), mgl32.Vec3{})
	cfg.Axes = AxisBasis{}
	assert.Nil(t, CalculateRotationGizmo(cfg))
}

func TestCalculateRotationGizmoPointCounts(t *testing.T) {
	cfg := NewRotationConfig(obliqueProjector(), mgl32.Vec3{})
	g := CalculateRotationGizmo(cfg)
	require.NotNil(t, g)

	// 64 segments close into a 65-point loop on every circle.
	for i, circle := range g.Circles {
		require.Len(t, circle, 65, "circle %d", i)
		assert.InDelta(t, 0, float64(circle[0].Sub(circle[64]).Len()), 1e-3, "circle %d not closed", i)
	}
}

func TestCalculateRotationGizmoZeroSegments(t *testing.T) {
	cfg := NewRotationConfig(obliqueProjector(), mgl32.Vec3{})
	cfg.Segments = 0
	g := CalculateRotationGizmo(cfg)
	require.NotNil(t, g)
	for i, circle := range g.Circles {
		assert.Empty(t, circle, "circle %d should be empty", i)
	}
}

func TestCalculateRotationGizmoZXParametrization(t *testing.T) {
	p := obliqueProjector()
	cfg := NewRotationConfig(p, mgl32.Vec3{})
	cfg.MaxScreenRadius = 0 // disable the cap to keep radii analytic
	g := CalculateRotationGizmo(cfg)
	require.NotNil(t, g)

	zLen := float32(math.Hypot(0.5, 0.5))

	// XY circle starts along its first axis (cos parametrization): +X.
	rXY := cfg.GizmoSize / ((1 + 1) / 2)
	first := g.Circles[planeSlot(PlaneXY)][0].Sub(g.Center)
	assert.InDelta(t, float64(rXY), float64(first.X()), 1e-2)
	assert.InDelta(t, 0, float64(first.Y()), 1e-2)

	// YZ circle starts along +Y likewise.
	rYZ := cfg.GizmoSize / ((1 + zLen) / 2)
	first = g.Circles[planeSlot(PlaneYZ)][0].Sub(g.Center)
	assert.InDelta(t, 0, float64(first.X()), 1e-2)
	assert.InDelta(t, float64(rYZ), float64(first.Y()), 1e-2)

	// The ZX circle swaps sin/cos: theta=0 lies along +Z (equal screen x/y
	// under the oblique mapping), not along +X as the other planes would.
	rZX := cfg.GizmoSize / ((1 + zLen) / 2)
	first = g.Circles[planeSlot(PlaneXZ)][0].Sub(g.Center)
	assert.InDelta(t, float64(0.5*rZX), float64(first.X()), 1e-2)
	assert.InDelta(t, float64(0.5*rZX), float64(first.Y()), 1e-2)

	// A quarter turn later it reaches +X.
	quarter := g.Circles[planeSlot(PlaneXZ)][16].Sub(g.Center)
	assert.InDelta(t, float64(rZX), float64(quarter.X()), 1e-2)
	assert.InDelta(t, 0, float64(quarter.Y()), 1e-2)
}

func TestCalculateRotationGizmoRegeneration(t *testing.T) {
	// Identity projection collapses Z, so the YZ plane scale halves and its
	// uncapped radius doubles; the cap must trigger regeneration.
	cfg := NewRotationConfig(NewIdentityProjector(), mgl32.Vec3{})
	g := CalculateRotationGizmo(cfg)
	require.NotNil(t, g)

	yz := g.Circles[planeSlot(PlaneYZ)]
	require.Len(t, yz, 65)

	maxDist := float32(0)
	for _, pt := range yz {
		if d := pt.Sub(g.Center).Len(); d > maxDist {
			maxDist = d
		}
	}
	assert.LessOrEqual(t, maxDist, cfg.MaxScreenRadius+1e-2)
	// The circle was regenerated at the cap, not collapsed below it.
	assert.InDelta(t, float64(cfg.MaxScreenRadius), float64(maxDist), 1e-1)
}

func TestCalculateRotationGizmoEdgeOnPlane(t *testing.T) {
	// A projector that collapses two axes leaves the XY plane without any
	// screen footprint; its circle is omitted rather than divided by zero.
	p := &FuncProjector{
		Position: mgl32.Vec3{0, 0, 10},
		Forward:  mgl32.Vec3{0, 0, -1},
		WorldToScreenFunc: func(w mgl32.Vec3) mgl32.Vec2 {
			return mgl32.Vec2{w.Z(), 0}
		},
	}
	cfg := NewRotationConfig(p, mgl32.Vec3{})
	g := CalculateRotationGizmo(cfg)
	require.NotNil(t, g)
	assert.Empty(t, g.Circles[planeSlot(PlaneXY)])
	assert.NotEmpty(t, g.Circles[planeSlot(PlaneXZ)])
	assert.NotEmpty(t, g.Circles[planeSlot(PlaneYZ)])
}
