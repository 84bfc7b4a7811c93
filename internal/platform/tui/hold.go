package tui

import (
	"time"

	"github.com/vovakirdan/forest-run/internal/core"
)

// DefaultHoldWindow is how long a directional key counts as held after its
// last press or auto-repeat. Terminals report presses only, never releases.
const DefaultHoldWindow = 180 * time.Millisecond

// HoldTracker turns a stream of key presses into held intents.
// Directional actions stay set for the hold window; pulse actions are set
// for exactly one frame.
type HoldTracker struct {
	window time.Duration
	now    func() time.Time
	last   map[core.Action]time.Time
	pulse  map[core.Action]bool
}

// NewHoldTracker creates a tracker. A nil clock uses time.Now.
func NewHoldTracker(window time.Duration, now func() time.Time) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	if now == nil {
		now = time.Now
	}
	return &HoldTracker{
		window: window,
		now:    now,
		last:   make(map[core.Action]time.Time),
		pulse:  make(map[core.Action]bool),
	}
}

// Press records a key press for a held action.
func (h *HoldTracker) Press(a core.Action) {
	h.last[a] = h.now()
	// opposite directions cancel instead of both being held
	switch a {
	case core.ActionLeft:
		delete(h.last, core.ActionRight)
	case core.ActionRight:
		delete(h.last, core.ActionLeft)
	}
}

// Pulse sets an action for the next frame only.
func (h *HoldTracker) Pulse(a core.Action) {
	h.pulse[a] = true
}

// Frame builds the input frame for one tick and consumes pulses.
func (h *HoldTracker) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	now := h.now()
	for a, at := range h.last {
		if now.Sub(at) < h.window {
			frame.Set(a)
		} else {
			delete(h.last, a)
		}
	}
	for a := range h.pulse {
		frame.Set(a)
		delete(h.pulse, a)
	}
	return frame
}

// Release forgets every held and pending action.
func (h *HoldTracker) Release() {
	clear(h.last)
	clear(h.pulse)
}
