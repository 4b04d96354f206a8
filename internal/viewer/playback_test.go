package viewer

import "testing"

func TestPlaybackUpdate(t *testing.T) {
	tests := []struct {
		name   string
		fps    float64
		paused bool
		dts    []float64
		want   []int
	}{
		{"one frame per tick", 60, false, []float64{1.0 / 60, 1.0 / 60}, []int{1, 1}},
		{"accumulates fractions", 10, false, []float64{0.05, 0.05, 0.05}, []int{0, 1, 0}},
		{"caps catch-up", 60, false, []float64{5}, []int{maxCatchUp}},
		{"paused", 60, true, []float64{1, 1}, []int{0, 0}},
		{"default fps", 0, false, []float64{0.5}, []int{maxCatchUp}},
		{"negative dt", 60, false, []float64{-1}, []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayback(tt.fps, tt.paused)
			for i, dt := range tt.dts {
				if got := p.Update(dt); got != tt.want[i] {
					t.Errorf("Update(%v) #%d = %d, want %d", dt, i, got, tt.want[i])
				}
			}
		})
	}
}

func TestPlaybackStepWhilePaused(t *testing.T) {
	p := NewPlayback(60, true)
	p.Step(1)
	p.Step(1)
	p.Step(-1)

	if got := p.Update(1); got != 1 {
		t.Errorf("Update() = %d, want 1", got)
	}
	if got := p.Update(1); got != 0 {
		t.Errorf("Update() after consuming steps = %d, want 0", got)
	}
}

func TestPlaybackTogglePause(t *testing.T) {
	p := NewPlayback(10, false)
	p.Update(0.09)

	p.TogglePause()
	if !p.Paused() {
		t.Fatal("Paused() = false after toggle")
	}
	p.TogglePause()

	// Accumulated time is dropped on toggle.
	if got := p.Update(0.05); got != 0 {
		t.Errorf("Update() = %d, want 0", got)
	}
}
