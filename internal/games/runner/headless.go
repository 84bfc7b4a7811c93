package runner

import (
	"time"

	"github.com/vovakirdan/forest-run/internal/core"
)

// TickClock is a clock that advances one frame per Advance call, so timed
// rules such as the next-level delay play out at simulated speed.
type TickClock struct {
	t     time.Time
	frame time.Duration
}

// NewTickClock returns a clock advancing by one frame at fps.
func NewTickClock(fps int) *TickClock {
	if fps <= 0 {
		fps = 60
	}
	return &TickClock{t: time.Unix(0, 0), frame: time.Second / time.Duration(fps)}
}

// Now returns the simulated time.
func (c *TickClock) Now() time.Time {
	return c.t
}

// Advance moves the clock one frame forward.
func (c *TickClock) Advance() {
	c.t = c.t.Add(c.frame)
}

// RunResult summarizes a headless run.
type RunResult struct {
	Phase      core.Phase
	Score      int
	Level      int
	LossReason string
	Ticks      int
	Events     []core.Event
}

// Play drives g from its menu with pilot until the run ends or maxTicks
// frames elapse. Cleared levels with a successor are advanced as soon as
// the delay allows, and level intros are confirmed immediately. The game
// should be built WithClock(clock.Now).
func Play(g *Game, pilot *Autopilot, clock *TickClock, maxTicks int) RunResult {
	var res RunResult
	collect := func(r core.StepResult) {
		res.Events = append(res.Events, r.Events...)
	}

	collect(g.Dispatch(core.ActionConfirm))

	for res.Ticks < maxTicks {
		st := g.State()
		switch st.Phase {
		case core.PhasePlaying:
			collect(g.Step(pilot.Next(g.Snapshot())))
		case core.PhasePaused:
			collect(g.Dispatch(core.ActionConfirm))
			continue
		case core.PhaseWon:
			if st.Level >= g.Levels() {
				return res.finish(g)
			}
			if st.CanAdvance {
				collect(g.Dispatch(core.ActionNextLevel))
				continue
			}
		default:
			return res.finish(g)
		}
		clock.Advance()
		res.Ticks++
	}
	return res.finish(g)
}

func (r RunResult) finish(g *Game) RunResult {
	st := g.State()
	r.Phase = st.Phase
	r.Score = st.Score
	r.Level = st.Level
	r.LossReason = st.LossReason
	return r
}
