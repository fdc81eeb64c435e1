package gizmo3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Primitive point generation for the host's 2D drawing layer. Only geometry
// is computed here; rasterization stays with the host.

// ArrowHeadPoints returns the tip and two barbs of an arrow head for the
// shaft from start to end. The barbs are symmetric about the shaft at
// headAngle on either side, headLength pixels back from the tip. A degenerate
// shaft collapses all three points onto end.
func ArrowHeadPoints(start, end mgl32.Vec2, headLength, headAngle float32) [3]mgl32.Vec2 {
	shaft := end.Sub(start)
	if shaft.Len() < Epsilon {
		return [3]mgl32.Vec2{end, end, end}
	}
	dir := shaft.Normalize()
	return [3]mgl32.Vec2{
		end,
		end.Sub(rotate2D(dir, headAngle).Mul(headLength)),
		end.Sub(rotate2D(dir, -headAngle).Mul(headLength)),
	}
}

// SquareHandlePoints returns the four corners of an axis-aligned square
// centered on center, in drawing order.
func SquareHandlePoints(center mgl32.Vec2, size float32) [4]mgl32.Vec2 {
	h := size / 2
	return [4]mgl32.Vec2{
		{center.X() - h, center.Y() - h},
		{center.X() + h, center.Y() - h},
		{center.X() + h, center.Y() + h},
		{center.X() - h, center.Y() + h},
	}
}

// WedgePoints returns a closed pie-slice polygon sweeping from startAngle to
// endAngle, used to visualize the swept angle during a rotation drag. The
// polygon is center, segments+1 arc points, center again; segments <= 0
// yields nil.
func WedgePoints(center mgl32.Vec2, radius, startAngle, endAngle float32, segments int) []mgl32.Vec2 {
	if segments <= 0 {
		return nil
	}
	pts := make([]mgl32.Vec2, 0, segments+3)
	pts = append(pts, center)
	for i := 0; i <= segments; i++ {
		theta := float64(startAngle) + float64(endAngle-startAngle)*float64(i)/float64(segments)
		pts = append(pts, mgl32.Vec2{
			center.X() + radius*float32(math.Cos(theta)),
			center.Y() + radius*float32(math.Sin(theta)),
		})
	}
	return append(pts, center)
}

func rotate2D(v mgl32.Vec2, angle float32) mgl32.Vec2 {
	s, c := float32(math.Sin(float64(angle))), float32(math.Cos(float64(angle)))
	return mgl32.Vec2{v.X()*c - v.Y()*s, v.X()*s + v.Y()*c}
}
