package runner

import (
	"time"

	"github.com/vovakirdan/forest-run/internal/config"
	"github.com/vovakirdan/forest-run/internal/core"
)

// Session is the state of one run from start (or restart) until the next
// start. HighScore outlives sessions for the lifetime of the Game.
type Session struct {
	Phase         core.Phase
	Level         int // index into the variant's levels
	Score         int
	HighScore     int
	LossReason    string
	Powered       bool
	PoweredPasses int // non-mushroom passes since the power-up was taken
	DevMode       bool
	Flags         Flags
	WarningTicks  int // frames left on the danger banner
	Ticks         uint64
	TierIndex     int

	wonAt time.Time
}

// award returns the points for one passed obstacle.
func (s *Session) award(cfg *config.RunnerConfig) int {
	pts := cfg.Scoring.PointsPerPass
	if s.DevMode {
		pts *= cfg.Cheat.Multiplier
	}
	return pts
}

// recordHigh raises the high score if the current score beats it.
func (s *Session) recordHigh() {
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
}

func (s *Session) event(kind core.EventKind, detail string) core.Event {
	return core.Event{Kind: kind, Score: s.Score, Level: s.Level + 1, Detail: detail}
}

// startSession fully resets the run and enters playing.
func (g *Game) startSession() []core.Event {
	high := g.session.HighScore
	dev := g.session.DevMode
	g.session = Session{HighScore: high, DevMode: dev}
	g.session.Flags.resetSession()

	g.resetField()
	g.world.Backgrounds = g.world.Backgrounds[:0]
	g.session.TierIndex = g.tiers[0].Index(0)

	g.enterPlaying()
	return []core.Event{g.session.event(core.EventStarted, g.levels[0].Name)}
}

// startLevel moves to level idx keeping the score, and parks on the level
// intro until Confirm.
func (g *Game) startLevel(idx int) []core.Event {
	s := &g.session
	s.Level = idx
	s.LossReason = ""
	s.DevMode = false
	s.Flags.resetLevel()
	s.WarningTicks = 0
	s.TierIndex = g.tiers[idx].Index(s.Score)
	s.wonAt = time.Time{}

	g.resetField()

	s.Phase = core.PhasePaused
	g.clock.Stop()
	return []core.Event{s.event(core.EventLevelStarted, g.levels[idx].Name)}
}

// resetField puts the player back at the start and clears the hazards.
func (g *Game) resetField() {
	pc := g.cfg.Player
	g.player = Player{
		X: pc.X,
		Y: g.cfg.Playfield.GroundLine() - pc.Height,
		W: pc.Width,
		H: pc.Height,
	}
	g.world.Obstacles = g.world.Obstacles[:0]
	g.world.Branches = g.world.Branches[:0]
	g.spawner.reset()
	g.jumpHeld = false
}

func (g *Game) enterPlaying() {
	g.session.Phase = core.PhasePlaying
	g.clock.Start()
}

func (g *Game) win() core.Event {
	s := &g.session
	s.Phase = core.PhaseWon
	s.recordHigh()
	s.wonAt = g.now()
	g.clock.Stop()
	return s.event(core.EventWon, g.levels[s.Level].Name)
}

func (g *Game) lose(reason string) core.Event {
	s := &g.session
	s.Phase = core.PhaseLost
	s.LossReason = reason
	s.recordHigh()
	g.clock.Stop()
	return s.event(core.EventLost, reason)
}

// canAdvance reports whether NextLevel would be honored now.
func (g *Game) canAdvance() bool {
	s := &g.session
	if s.Phase != core.PhaseWon || s.Level+1 >= len(g.levels) {
		return false
	}
	return g.now().Sub(s.wonAt) >= g.cfg.Timing.NextLevelDelay
}
