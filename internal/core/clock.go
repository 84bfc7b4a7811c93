package core

// FrameClock is the frame scheduler handle a game starts and stops as it
// enters and leaves the playing phase.
//
// Every Start begins a new generation. The platform stamps each scheduled
// frame with the generation it was requested under; a frame whose generation
// no longer matches (because the clock was stopped or restarted since) is
// rejected by Accept, so a late callback can never drive a second loop.
type FrameClock struct {
	gen     uint64
	running bool
	pending bool
	frames  uint64
}

// Start begins a new generation and arms one pending frame request.
// Starting a running clock also begins a new generation, which retires any
// frame already in flight.
func (c *FrameClock) Start() {
	c.gen++
	c.running = true
	c.pending = true
}

// Stop halts the clock and retires any frame in flight.
func (c *FrameClock) Stop() {
	if !c.running {
		return
	}
	c.gen++
	c.running = false
	c.pending = false
}

// Running reports whether frames should currently be delivered.
func (c *FrameClock) Running() bool {
	return c.running
}

// Generation returns the current generation.
func (c *FrameClock) Generation() uint64 {
	return c.gen
}

// Pending returns the generation to schedule the first frame under, once
// per Start. The second return value is false when nothing needs scheduling.
func (c *FrameClock) Pending() (uint64, bool) {
	if !c.pending {
		return 0, false
	}
	c.pending = false
	return c.gen, true
}

// Accept reports whether a frame stamped with gen may run, and counts it.
func (c *FrameClock) Accept(gen uint64) bool {
	if !c.running || gen != c.gen {
		return false
	}
	c.frames++
	return true
}

// Frames returns how many frames have been accepted since creation.
func (c *FrameClock) Frames() uint64 {
	return c.frames
}
