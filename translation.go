package gizmo3d

import "github.com/go-gl/mathgl/mgl32"

// Plane quad sizing relative to the inferred world scale of the gizmo.
const (
	planeQuadOffset float32 = 0.4
	planeQuadSize   float32 = 0.3
)

// TranslationGizmoConfig are the per-frame inputs of the translation
// calculator. Build with NewTranslationConfig to get the reference defaults;
// a zero-valued config is degenerate but safe.
type TranslationGizmoConfig struct {
	Projector Projector
	Target    mgl32.Vec3
	Axes      AxisBasis

	GizmoSize     float32 // arrow length in pixels before clamping
	MaxScreenSize float32 // global cap on arrow length in pixels

	// Arrow sub-segment as fractions of the clamped axis length, letting the
	// drawing layer leave room for heads or keep clear of the origin.
	ArrowStartRatio float32
	ArrowEndRatio   float32

	Log Logger
}

func NewTranslationConfig(p Projector, target mgl32.Vec3) *TranslationGizmoConfig {
	return &TranslationGizmoConfig{
		Projector:       p,
		Target:          target,
		Axes:            WorldAxes(),
		GizmoSize:       DefaultGizmoSize,
		MaxScreenSize:   DefaultMaxScreenSize,
		ArrowStartRatio: 0,
		ArrowEndRatio:   1,
	}
}

// CalculateTranslationGizmo produces the screen geometry for a translation
// gizmo: three axis arrows plus one drag quad per coordinate plane. Returns
// nil when the projector or axis basis is missing; the caller draws nothing
// this frame and retries on the next one.
func CalculateTranslationGizmo(cfg *TranslationGizmoConfig) *TranslationGeometry {
	if cfg == nil {
		return nil
	}
	log := logOrNop(cfg.Log)
	if cfg.Projector == nil {
		log.Warnf("translation gizmo: no projector, skipping frame")
		return nil
	}
	if !cfg.Axes.valid() {
		log.Warnf("translation gizmo: degenerate axis basis, skipping frame")
		return nil
	}

	basis := projectAxisBasis(cfg.Projector, cfg.Target, cfg.Axes)
	clamp := basis.clampFactor(cfg.GizmoSize, cfg.MaxScreenSize)
	arrowLen := cfg.GizmoSize * clamp

	geom := &TranslationGeometry{Center: basis.Center}
	for i := 0; i < 3; i++ {
		geom.AxisStarts[i] = basis.Center.Add(basis.Dirs[i].Mul(arrowLen * cfg.ArrowStartRatio))
		geom.AxisEnds[i] = basis.Center.Add(basis.Dirs[i].Mul(arrowLen * cfg.ArrowEndRatio))
	}

	ws := basis.worldScale(cfg.GizmoSize, clamp)
	axes := [3]mgl32.Vec3{cfg.Axes.X, cfg.Axes.Y, cfg.Axes.Z}
	planePairs := [3][2]int{{0, 1}, {0, 2}, {1, 2}} // XY, XZ, YZ
	for pi, pair := range planePairs {
		a1, a2 := axes[pair[0]], axes[pair[1]]
		base := cfg.Target.Add(a1.Add(a2).Mul(planeQuadOffset * ws))
		side := planeQuadSize * ws
		corners := [4]mgl32.Vec3{
			base,
			base.Add(a1.Mul(side)),
			base.Add(a1.Mul(side)).Add(a2.Mul(side)),
			base.Add(a2.Mul(side)),
		}
		for ci, c := range corners {
			geom.PlaneQuads[pi][ci] = cfg.Projector.WorldToScreen(c)
		}
	}
	return geom
}
