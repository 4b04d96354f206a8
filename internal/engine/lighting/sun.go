// Package lighting provides the directional light used by the viewer.
package lighting

import (
	"math"

	tmath "github.com/Faultbox/tesseract/pkg/math"
)

// Sun is a directional light.
type Sun struct {
	Azimuth   float32 // degrees around Y
	Elevation float32 // degrees above the horizon
	Ambient   float32 // 0..1 floor for unlit faces
}

// DefaultSun lights the scene from the upper front right.
func DefaultSun() Sun {
	return Sun{Azimuth: 45, Elevation: 50, Ambient: 0.25}
}

// Direction returns the unit vector pointing towards the light.
func (s Sun) Direction() tmath.Vec3 {
	return Direction(s.Azimuth, s.Elevation)
}

// Direction converts azimuth/elevation angles in degrees to a unit vector
// pointing towards the light.
func Direction(azimuth, elevation float32) tmath.Vec3 {
	az := float64(azimuth) * math.Pi / 180.0
	el := float64(elevation) * math.Pi / 180.0

	return tmath.Vec3{
		X: float32(math.Cos(el) * math.Sin(az)),
		Y: float32(math.Sin(el)),
		Z: float32(math.Cos(el) * math.Cos(az)),
	}
}
