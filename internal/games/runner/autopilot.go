package runner

import "github.com/vovakirdan/forest-run/internal/core"

// Autopilot produces input for headless runs. It jumps when a lethal
// obstacle is about to reach the player and sidesteps branches falling
// onto it.
type Autopilot struct {
	// Reach is how far ahead, in ticks of scrolling, an obstacle triggers a jump.
	Reach float64
	// Home is the x the autopilot drifts back to when nothing threatens.
	Home float64
}

// NewAutopilot returns an autopilot tuned for the default rule set.
func NewAutopilot() *Autopilot {
	return &Autopilot{Reach: 14, Home: 50}
}

// Next decides the input for the next tick from a snapshot.
func (a *Autopilot) Next(snap Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	p := snap.Player

	for _, o := range snap.Obstacles {
		if !o.Kind.Lethal() || o.Passed {
			continue
		}
		gap := o.X - (p.X + p.W)
		if gap >= 0 && gap <= snap.Speed*a.Reach && !p.Jumping {
			in.Set(core.ActionJump)
			break
		}
	}

	for _, b := range snap.Branches {
		if b.Y+b.H < p.Y-120 {
			continue
		}
		if b.X < p.X+p.W+20 && b.X+b.W > p.X-20 {
			if b.X+b.W/2 > p.X+p.W/2 {
				in.Set(core.ActionLeft)
			} else {
				in.Set(core.ActionRight)
			}
			return in
		}
	}

	switch {
	case p.X > a.Home+5:
		in.Set(core.ActionLeft)
	case p.X < a.Home-5:
		in.Set(core.ActionRight)
	}
	return in
}
