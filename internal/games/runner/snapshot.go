package runner

import (
	"slices"

	"github.com/vovakirdan/forest-run/internal/core"
)

// Snapshot is a value copy of everything the presentation layer may show.
// It shares no memory with the live simulation.
type Snapshot struct {
	Tick        uint64
	Phase       core.Phase
	Level       int // 1-based
	LevelName   string
	Levels      int
	Score       int
	HighScore   int
	LossReason  string
	PowerUp     bool
	DevMode     bool
	Warning     bool
	CanAdvance  bool
	Speed       float64
	FogRadius   float64
	Player      Player
	Obstacles   []Obstacle
	Backgrounds []Background
	Branches    []Branch
}

// Snapshot copies the current state at the tick boundary.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	snap := Snapshot{
		Tick:        s.Ticks,
		Phase:       s.Phase,
		Level:       s.Level + 1,
		Levels:      len(g.levels),
		Score:       s.Score,
		HighScore:   s.HighScore,
		LossReason:  s.LossReason,
		PowerUp:     s.Powered,
		DevMode:     s.DevMode,
		Warning:     s.WarningTicks > 0,
		CanAdvance:  g.canAdvance(),
		Player:      g.player,
		Obstacles:   slices.Clone(g.world.Obstacles),
		Backgrounds: slices.Clone(g.world.Backgrounds),
		Branches:    slices.Clone(g.world.Branches),
	}
	if s.Level < len(g.levels) {
		lvl := g.levels[s.Level]
		snap.LevelName = lvl.Name
		snap.FogRadius = lvl.FogRadius
		snap.Speed = g.tiers[s.Level].Resolve(s.Score).Speed
	}
	return snap
}
