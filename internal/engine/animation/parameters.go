// Package animation provides the host animation clock.
package animation

// Default clock settings before a plugin configures it.
const (
	DefaultEnd = 0
	DefaultDt  = 1
)

// Parameters is the animation clock. Frames run from 0 to End inclusive and
// wrap back to 0 when advanced past End.
type Parameters struct {
	frame int
	end   int
	dt    int
	unit  string
}

// NewParameters creates a clock at frame 0.
func NewParameters() *Parameters {
	return &Parameters{
		end: DefaultEnd,
		dt:  DefaultDt,
	}
}

// Frame returns the current frame.
func (p *Parameters) Frame() int {
	return p.frame
}

// SetFrame moves the clock, clamping into [0, End].
func (p *Parameters) SetFrame(frame int) {
	if frame < 0 {
		frame = 0
	}
	if frame > p.end {
		frame = p.end
	}
	p.frame = frame
}

// Wrap reduces frame into [0, End] as if the clock had looped to reach it.
func (p *Parameters) Wrap(frame int) int {
	span := p.end + 1
	f := frame % span
	if f < 0 {
		f += span
	}
	return f
}

// End returns the last frame.
func (p *Parameters) End() int {
	return p.end
}

// SetEnd sets the last frame. Negative values become 0.
func (p *Parameters) SetEnd(frame int) {
	if frame < 0 {
		frame = 0
	}
	p.end = frame
	if p.frame > p.end {
		p.frame = p.end
	}
}

// Dt returns the frame step.
func (p *Parameters) Dt() int {
	return p.dt
}

// SetDt sets the frame step. Values below 1 become 1.
func (p *Parameters) SetDt(step int) {
	if step < 1 {
		step = 1
	}
	p.dt = step
}

// Unit returns the display unit of a frame.
func (p *Parameters) Unit() string {
	return p.unit
}

// SetUnit sets the display unit of a frame.
func (p *Parameters) SetUnit(unit string) {
	p.unit = unit
}

// Advance moves forward by n steps of Dt, wrapping past End. A negative n
// moves backward.
func (p *Parameters) Advance(n int) {
	p.frame = p.Wrap(p.frame + n*p.dt)
}
