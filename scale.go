package gizmo3d

import "github.com/go-gl/mathgl/mgl32"

// ScaleGizmoConfig are the per-frame inputs of the scale calculator. The
// arrow span defaults to the front half of each axis so the square end
// handles and the uniform-scale center handle stay visually separate.
type ScaleGizmoConfig struct {
	Projector Projector
	Target    mgl32.Vec3
	Axes      AxisBasis

	GizmoSize     float32
	MaxScreenSize float32

	ArrowStartRatio float32
	ArrowEndRatio   float32
	HandleSize      float32 // side of the square end handles, pixels

	Log Logger
}

func NewScaleConfig(p Projector, target mgl32.Vec3) *ScaleGizmoConfig {
	return &ScaleGizmoConfig{
		Projector:       p,
		Target:          target,
		Axes:            WorldAxes(),
		GizmoSize:       DefaultGizmoSize,
		MaxScreenSize:   DefaultMaxScreenSize,
		ArrowStartRatio: DefaultScaleArrowStartRatio,
		ArrowEndRatio:   DefaultScaleArrowEndRatio,
		HandleSize:      DefaultHandleSize,
	}
}

// CalculateScaleGizmo produces the screen geometry for a scale gizmo: three
// axis arrows with square end handles plus the shared center. The same global
// clamp as the translation gizmo keeps arrow proportions intact. Returns nil
// when the projector or axis basis is missing.
func CalculateScaleGizmo(cfg *ScaleGizmoConfig) *ScaleGeometry {
	if cfg == nil {
		return nil
	}
	log := logOrNop(cfg.Log)
	if cfg.Projector == nil {
		log.Warnf("scale gizmo: no projector, skipping frame")
		return nil
	}
	if !cfg.Axes.valid() {
		log.Warnf("scale gizmo: degenerate axis basis, skipping frame")
		return nil
	}

	basis := projectAxisBasis(cfg.Projector, cfg.Target, cfg.Axes)
	clamp := basis.clampFactor(cfg.GizmoSize, cfg.MaxScreenSize)
	arrowLen := cfg.GizmoSize * clamp

	geom := &ScaleGeometry{Center: basis.Center}
	for i := 0; i < 3; i++ {
		geom.AxisStarts[i] = basis.Center.Add(basis.Dirs[i].Mul(arrowLen * cfg.ArrowStartRatio))
		geom.AxisEnds[i] = basis.Center.Add(basis.Dirs[i].Mul(arrowLen * cfg.ArrowEndRatio))
		geom.Handles[i] = SquareHandlePoints(geom.AxisEnds[i], cfg.HandleSize)
	}
	return geom
}
