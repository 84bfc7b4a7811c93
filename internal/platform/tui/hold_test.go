package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/forest-run/internal/core"
)

type stepClock struct{ t time.Time }

func (c *stepClock) now() time.Time          { return c.t }
func (c *stepClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestHoldTrackerWindow(t *testing.T) {
	clk := &stepClock{t: time.Unix(0, 0)}
	h := NewHoldTracker(100*time.Millisecond, clk.now)

	h.Press(core.ActionRight)
	if f := h.Frame(); !f.Has(core.ActionRight) {
		t.Fatal("right should be held right after the press")
	}

	clk.advance(60 * time.Millisecond)
	if f := h.Frame(); !f.Has(core.ActionRight) {
		t.Fatal("right should still be held inside the window")
	}

	// auto-repeat extends the hold
	h.Press(core.ActionRight)
	clk.advance(60 * time.Millisecond)
	if f := h.Frame(); !f.Has(core.ActionRight) {
		t.Fatal("repeat should extend the hold")
	}

	clk.advance(100 * time.Millisecond)
	if f := h.Frame(); f.Has(core.ActionRight) {
		t.Fatal("right should be released after the window")
	}
}

func TestHoldTrackerOppositeDirections(t *testing.T) {
	clk := &stepClock{t: time.Unix(0, 0)}
	h := NewHoldTracker(0, clk.now)

	h.Press(core.ActionLeft)
	h.Press(core.ActionRight)

	f := h.Frame()
	if f.Has(core.ActionLeft) {
		t.Error("pressing right should cancel left")
	}
	if !f.Has(core.ActionRight) {
		t.Error("right should be held")
	}
}

func TestHoldTrackerPulse(t *testing.T) {
	h := NewHoldTracker(0, nil)

	h.Pulse(core.ActionJump)
	if f := h.Frame(); !f.Has(core.ActionJump) {
		t.Fatal("pulse should be set on the next frame")
	}
	if f := h.Frame(); f.Has(core.ActionJump) {
		t.Fatal("pulse should last one frame")
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	h := NewHoldTracker(time.Hour, nil)
	h.Press(core.ActionLeft)
	h.Pulse(core.ActionJump)
	h.Release()

	if f := h.Frame(); len(f.Actions) != 0 {
		t.Errorf("Release should clear everything, got %v", f.Actions)
	}
}
