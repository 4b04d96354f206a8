package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/tesseract/internal/pluginapi"
	"github.com/Faultbox/tesseract/pkg/math"
)

// minCylinderLength is the shortest segment worth drawing.
const minCylinderLength = 1e-6

var unitUp = mgl32.Vec3{0, 1, 0}

func vec(v math.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// SphereTransform maps the unit sphere onto s.
func SphereTransform(s pluginapi.Sphere) mgl32.Mat4 {
	return mgl32.Translate3D(s.Center.X, s.Center.Y, s.Center.Z).
		Mul4(mgl32.Scale3D(s.Radius, s.Radius, s.Radius))
}

// CylinderTransform maps the unit cylinder onto c. It reports false for
// segments too short to orient.
func CylinderTransform(c pluginapi.Cylinder) (mgl32.Mat4, bool) {
	axis := vec(c.Up).Sub(vec(c.Center))
	length := axis.Len()
	if length < minCylinderLength {
		return mgl32.Ident4(), false
	}

	rot := mgl32.QuatBetweenVectors(unitUp, axis.Mul(1/length)).Mat4()
	return mgl32.Translate3D(c.Center.X, c.Center.Y, c.Center.Z).
		Mul4(rot).
		Mul4(mgl32.Scale3D(c.Radius, length, c.Radius)), true
}

// toMathMat4 converts between the two column-major layouts.
func toMathMat4(m mgl32.Mat4) math.Mat4 {
	return math.Mat4(m)
}
