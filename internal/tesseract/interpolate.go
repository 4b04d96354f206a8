package tesseract

import (
	gomath "math"

	"github.com/Faultbox/tesseract/pkg/math"
)

// FramesPerLoop is the number of animation frames in one full cycle.
const FramesPerLoop = 360

// WrapPhase maps any phase into [0, 1). NaN and infinities map to 0.
func WrapPhase(phase float32) float32 {
	p := float64(phase)
	if gomath.IsNaN(p) || gomath.IsInf(p, 0) {
		return 0
	}
	p -= gomath.Floor(p)
	w := float32(p)
	// float32 rounding can land a value just below 1 on 1 itself.
	if w >= 1 {
		return 0
	}
	return w
}

// PhaseForFrame converts a clock frame into a phase in [0, 1).
func PhaseForFrame(frame int) float32 {
	f := frame % FramesPerLoop
	if f < 0 {
		f += FramesPerLoop
	}
	return float32(f) / FramesPerLoop
}

// Interpolate returns the point at phase on the closed loop
// p4 -> p1 -> p2 -> p3 -> p4. Each quarter of the phase range moves linearly
// along one leg. Phase is wrapped into [0, 1) first.
func Interpolate(phase float32, p1, p2, p3, p4 math.Vec3) math.Vec3 {
	phase = WrapPhase(phase)
	switch {
	case phase < 0.25:
		return p4.Lerp(p1, phase*4)
	case phase < 0.5:
		return p1.Lerp(p2, (phase-0.25)*4)
	case phase < 0.75:
		return p2.Lerp(p3, (phase-0.5)*4)
	default:
		return p3.Lerp(p4, (phase-0.75)*4)
	}
}

// Vertices computes the sixteen output vertices at phase.
func Vertices(phase float32) [VertexCount]math.Vec3 {
	var out [VertexCount]math.Vec3
	for slot, q := range slotQuads {
		out[slot] = Interpolate(phase, Corners[q[0]], Corners[q[1]], Corners[q[2]], Corners[q[3]])
	}
	return out
}
