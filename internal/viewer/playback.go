package viewer

// maxCatchUp caps how many frames one Update may return after a stall.
const maxCatchUp = 10

// Playback converts wall-clock time into animation frame steps.
type Playback struct {
	fps     float64
	paused  bool
	acc     float64
	pending int
}

// NewPlayback creates a playback running at fps frames per second.
func NewPlayback(fps float64, paused bool) *Playback {
	if fps <= 0 {
		fps = 60
	}
	return &Playback{fps: fps, paused: paused}
}

// Paused reports whether automatic advance is stopped.
func (p *Playback) Paused() bool {
	return p.paused
}

// TogglePause flips the paused state and drops accumulated time.
func (p *Playback) TogglePause() {
	p.paused = !p.paused
	p.acc = 0
}

// Step queues n manual frame steps. Negative n steps backwards.
func (p *Playback) Step(n int) {
	p.pending += n
}

// Update consumes dt seconds and returns the number of frames to advance.
func (p *Playback) Update(dt float64) int {
	steps := p.pending
	p.pending = 0

	if p.paused || dt <= 0 {
		return steps
	}

	p.acc += dt * p.fps
	n := int(p.acc)
	p.acc -= float64(n)
	if n > maxCatchUp {
		n = maxCatchUp
	}
	return steps + n
}
