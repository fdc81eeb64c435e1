package gizmo3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// RotationGizmoConfig are the per-frame inputs of the rotation calculator.
type RotationGizmoConfig struct {
	Projector Projector
	Target    mgl32.Vec3
	Axes      AxisBasis

	GizmoSize       float32 // circle radius in pixels before clamping
	MaxScreenRadius float32 // per-circle cap on screen radius
	Segments        int     // points per circle = Segments + 1

	Log Logger
}

func NewRotationConfig(p Projector, target mgl32.Vec3) *RotationGizmoConfig {
	return &RotationGizmoConfig{
		Projector:       p,
		Target:          target,
		Axes:            WorldAxes(),
		GizmoSize:       DefaultGizmoSize,
		MaxScreenRadius: DefaultMaxScreenSize,
		Segments:        DefaultRotationSegments,
	}
}

// rotationPlane pairs the two world axes spanning a circle's plane with the
// parametrization used to walk it. The ZX circle swaps the sin/cos
// assignment relative to the other two planes; this keeps the on-screen
// orientation consistent with the per-axis color convention and must not be
// "fixed" to match the XY/YZ form.
type rotationPlane struct {
	a1, a2  int // axis slots spanning the plane
	swapped bool
}

// Indexed by plane slot: XY, XZ (the swapped ZX circle), YZ.
var rotationPlanes = [3]rotationPlane{
	{a1: 0, a2: 1},                // XY
	{a1: 0, a2: 2, swapped: true}, // ZX
	{a1: 1, a2: 2},                // YZ
}

// CalculateRotationGizmo produces one closed circle polyline per coordinate
// plane. Each circle's world radius is derived from that plane's own screen
// scale (the mean projected length of its two defining axes), so circles stay
// visually matched under anisotropic projections. A circle that would exceed
// MaxScreenRadius is regenerated at a reduced world radius rather than scaled
// in screen space, preserving perspective-correct circularity.
func CalculateRotationGizmo(cfg *RotationGizmoConfig) *RotationGeometry {
	if cfg == nil {
		return nil
	}
	log := logOrNop(cfg.Log)
	if cfg.Projector == nil {
		log.Warnf("rotation gizmo: no projector, skipping frame")
		return nil
	}
	if !cfg.Axes.valid() {
		log.Warnf("rotation gizmo: degenerate axis basis, skipping frame")
		return nil
	}

	basis := projectAxisBasis(cfg.Projector, cfg.Target, cfg.Axes)
	geom := &RotationGeometry{Center: basis.Center}
	if cfg.Segments <= 0 {
		return geom
	}

	axes := [3]mgl32.Vec3{cfg.Axes.X, cfg.Axes.Y, cfg.Axes.Z}
	for pi, plane := range rotationPlanes {
		planeScale := (basis.Lens[plane.a1] + basis.Lens[plane.a2]) / 2
		if planeScale < Epsilon {
			continue // plane edge-on beyond recovery, nothing to draw
		}
		radius := cfg.GizmoSize / planeScale

		pts := sampleCircle(cfg.Projector, cfg.Target, axes[plane.a1], axes[plane.a2], radius, cfg.Segments, plane.swapped)

		if cfg.MaxScreenRadius > 0 {
			maxDist := float32(0)
			for _, pt := range pts {
				if d := pt.Sub(basis.Center).Len(); d > maxDist {
					maxDist = d
				}
			}
			if maxDist > cfg.MaxScreenRadius {
				radius *= cfg.MaxScreenRadius / maxDist
				pts = sampleCircle(cfg.Projector, cfg.Target, axes[plane.a1], axes[plane.a2], radius, cfg.Segments, plane.swapped)
			}
		}
		geom.Circles[pi] = pts
	}
	return geom
}

// sampleCircle walks segments+1 points (closed loop) around the world-space
// circle of the given radius in the plane spanned by a1/a2 and projects each
// to screen space.
func sampleCircle(p Projector, center, a1, a2 mgl32.Vec3, radius float32, segments int, swapped bool) []mgl32.Vec2 {
	pts := make([]mgl32.Vec2, 0, segments+1)
	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		s, c := float32(math.Sin(theta)), float32(math.Cos(theta))
		u, v := c, s
		if swapped {
			u, v = s, c
		}
		world := center.Add(a1.Mul(u * radius)).Add(a2.Mul(v * radius))
		pts = append(pts, p.WorldToScreen(world))
	}
	return pts
}
