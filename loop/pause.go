package loop

// Pause gates engine ticks without stopping the frame loop, so drawing and
// input keep running while the game is frozen.
type Pause struct {
	Paused        bool
	stepRequested bool
}

// Toggle flips between paused and running. Resuming drops a pending step.
func (p *Pause) Toggle() {
	p.Paused = !p.Paused
	p.stepRequested = false
}

// Step requests a single tick while paused. It has no effect when running.
func (p *Pause) Step() {
	if p.Paused {
		p.stepRequested = true
	}
}

// Advance reports whether the engine should tick this frame and consumes a
// pending step request.
func (p *Pause) Advance() bool {
	if !p.Paused {
		return true
	}
	if p.stepRequested {
		p.stepRequested = false
		return true
	}
	return false
}
