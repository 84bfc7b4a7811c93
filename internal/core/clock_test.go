package core

import "testing"

func TestFrameClockLifecycle(t *testing.T) {
	var c FrameClock

	if c.Running() {
		t.Fatal("zero clock should not run")
	}
	if _, ok := c.Pending(); ok {
		t.Fatal("zero clock should have nothing pending")
	}

	c.Start()
	gen, ok := c.Pending()
	if !ok {
		t.Fatal("Start should arm a pending frame")
	}
	if _, again := c.Pending(); again {
		t.Error("Pending should fire once per Start")
	}
	if !c.Accept(gen) {
		t.Error("frame from the current generation should be accepted")
	}

	c.Stop()
	if c.Running() {
		t.Error("Stop should halt the clock")
	}
	if c.Accept(gen) {
		t.Error("frame after Stop must be rejected")
	}
	if c.Frames() != 1 {
		t.Errorf("Frames() = %d, expected 1", c.Frames())
	}
}

func TestFrameClockRejectsStaleGeneration(t *testing.T) {
	var c FrameClock

	c.Start()
	stale, _ := c.Pending()

	// Stop and restart before the stale frame is delivered.
	c.Stop()
	c.Start()
	fresh, _ := c.Pending()

	if stale == fresh {
		t.Fatal("restart should begin a new generation")
	}
	if c.Accept(stale) {
		t.Error("stale frame must be a no-op")
	}
	if !c.Accept(fresh) {
		t.Error("fresh frame should be accepted")
	}
}

func TestFrameClockStopIdempotent(t *testing.T) {
	var c FrameClock
	c.Start()
	c.Stop()
	gen := c.Generation()
	c.Stop()
	if c.Generation() != gen {
		t.Error("stopping a stopped clock should not change the generation")
	}
}
