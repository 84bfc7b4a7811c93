package runner

import (
	"testing"
	"time"

	"github.com/vovakirdan/forest-run/internal/config"
	"github.com/vovakirdan/forest-run/internal/core"
)

type crowded struct{}

func (crowded) Float64() float64 { return 0 }
func (crowded) Intn(int) int     { return 0 }

func TestTickClock(t *testing.T) {
	c := NewTickClock(60)
	start := c.Now()
	for range 60 {
		c.Advance()
	}
	if got := c.Now().Sub(start); got < 990*time.Millisecond || got > time.Second {
		t.Errorf("60 frames at 60fps advanced %v, want ~1s", got)
	}
}

func TestPlayRunsOutOfTicks(t *testing.T) {
	clock := NewTickClock(60)
	g := NewForest(WithConfig(config.DefaultRunnerConfig()), WithSource(quiet{}), WithClock(clock.Now))
	g.Reset(testRuntime())

	res := Play(g, NewAutopilot(), clock, 100)
	if res.Phase != core.PhasePlaying {
		t.Errorf("phase = %v, want playing", res.Phase)
	}
	if res.Ticks != 100 {
		t.Errorf("ticks = %d, want 100", res.Ticks)
	}
	if !hasEvent(res.Events, core.EventStarted) {
		t.Error("run should report its start")
	}
}

func TestPlayEndsOnLoss(t *testing.T) {
	clock := NewTickClock(60)
	g := NewForest(WithConfig(config.DefaultRunnerConfig()), WithSource(crowded{}), WithClock(clock.Now))
	g.Reset(testRuntime())

	// nothing to steer with: every spawn trial succeeds and an idle player is hit
	res := Play(g, &Autopilot{Reach: 0, Home: 50}, clock, 5000)
	if res.Phase != core.PhaseLost {
		t.Fatalf("phase = %v, want lost", res.Phase)
	}
	if res.LossReason == "" {
		t.Error("loss should carry a reason")
	}
	if !hasEvent(res.Events, core.EventLost) {
		t.Error("loss should be reported as an event")
	}
}

func TestPlayAdvancesCampaign(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Levels[0].WinScore = 0

	clock := NewTickClock(60)
	g := NewForestNight(WithConfig(cfg), WithSource(quiet{}), WithClock(clock.Now))
	g.Reset(testRuntime())

	res := Play(g, NewAutopilot(), clock, 400)
	if res.Level != 2 {
		t.Fatalf("level = %d, want 2", res.Level)
	}
	if res.Phase != core.PhasePlaying {
		t.Errorf("phase = %v, want playing", res.Phase)
	}
	for _, kind := range []core.EventKind{core.EventWon, core.EventLevelStarted, core.EventResumed} {
		if !hasEvent(res.Events, kind) {
			t.Errorf("missing %v event", kind)
		}
	}
}

func TestPlayStopsAfterFinalLevel(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Levels[0].WinScore = 0

	clock := NewTickClock(60)
	g := NewForest(WithConfig(cfg), WithSource(quiet{}), WithClock(clock.Now))
	g.Reset(testRuntime())

	res := Play(g, NewAutopilot(), clock, 400)
	if res.Phase != core.PhaseWon {
		t.Fatalf("phase = %v, want won", res.Phase)
	}
	if res.Ticks >= 400 {
		t.Error("a won single-level run should return immediately")
	}
}

func TestVariantLookup(t *testing.T) {
	g, err := Variant("forest-night", WithConfig(config.DefaultRunnerConfig()))
	if err != nil {
		t.Fatalf("Variant: %v", err)
	}
	if g.ID() != "forest-night" {
		t.Errorf("ID = %q, want forest-night", g.ID())
	}

	if _, err := Variant("desert"); err == nil {
		t.Error("unknown variant should fail")
	}
}
