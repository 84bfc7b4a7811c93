// Package runner implements Forest Run, a side-scrolling runner where the
// player jumps over beds streaming in from the right edge of a fixed
// 800x400 playfield.
//
// The package is pure simulation: it consumes core.InputFrame intents and
// discrete actions, and reports state, events and snapshots. It never
// blocks, logs or touches the terminal.
package runner

import (
	"time"

	"github.com/vovakirdan/forest-run/internal/config"
	"github.com/vovakirdan/forest-run/internal/core"
)

// Game is one runner instance. All mutation happens inside Reset, Step,
// Dispatch and the developer-mode setters; callers are expected to drive it
// from a single goroutine.
type Game struct {
	id    string
	title string

	runtime   core.RuntimeConfig
	cfg       config.RunnerConfig
	fixedCfg  bool
	maxLevels int
	levels    []config.LevelConfig
	tiers     []config.TierTable

	src      Source
	fixedSrc bool
	now      func() time.Time
	clock    core.FrameClock

	session  Session
	player   Player
	world    World
	spawner  *Spawner
	jumpHeld bool
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithConfig uses cfg instead of loading runner.yaml on Reset.
func WithConfig(cfg config.RunnerConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.fixedCfg = true
	}
}

// WithSource makes every spawn decision draw from src instead of a source
// seeded from the runtime config.
func WithSource(src Source) Option {
	return func(g *Game) {
		g.src = src
		g.fixedSrc = true
	}
}

// WithClock replaces the wall clock used for the next-level delay.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// WithLevels limits the campaign to the first n configured levels.
// Zero plays all of them.
func WithLevels(n int) Option {
	return func(g *Game) {
		g.maxLevels = n
	}
}

// WithIdentity sets the registry ID and display title.
func WithIdentity(id, title string) Option {
	return func(g *Game) {
		g.id = id
		g.title = title
	}
}

// New creates a runner. Call Reset before use.
func New(opts ...Option) *Game {
	g := &Game{
		id:    "forest-night",
		title: "Forest Run: Night",
		cfg:   config.DefaultRunnerConfig(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the rule set, rebuilds the random source and returns to the
// menu. The high score survives.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.LoadRunner(configPath)
		if err != nil {
			cfg = config.DefaultRunnerConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.levels = g.cfg.Levels
	if g.maxLevels > 0 && g.maxLevels < len(g.levels) {
		g.levels = g.levels[:g.maxLevels]
	}
	g.tiers = make([]config.TierTable, len(g.levels))
	for i, lvl := range g.levels {
		g.tiers[i] = config.NewTierTable(lvl.Tiers)
	}

	if !g.fixedSrc {
		g.src = NewSource(runtime.Seed)
	}
	g.spawner = NewSpawner(g.src, &g.cfg)

	g.clock.Stop()
	g.session = Session{HighScore: g.session.HighScore, DevMode: g.session.DevMode}
	g.resetField()
	g.world.clear()
}

// Config returns the active rule set.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Clock returns the frame scheduler handle. It runs exactly while the game
// is playing.
func (g *Game) Clock() *core.FrameClock {
	return &g.clock
}

// Dispatch applies a discrete state-machine action. Actions that have no
// transition from the current phase are ignored.
func (g *Game) Dispatch(a core.Action) core.StepResult {
	var events []core.Event

	switch a {
	case core.ActionConfirm:
		switch g.session.Phase {
		case core.PhaseMenu:
			events = g.startSession()
		case core.PhasePaused:
			g.enterPlaying()
			events = append(events, g.session.event(core.EventResumed, g.levels[g.session.Level].Name))
		}
	case core.ActionRestart:
		events = g.startSession()
	case core.ActionNextLevel:
		if g.canAdvance() {
			events = g.startLevel(g.session.Level + 1)
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// Step advances the simulation by one tick. Outside the playing phase it
// only tracks the jump key, so a press held through the intro does not
// launch a jump.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	jump := in.Has(core.ActionJump)
	if g.session.Phase != core.PhasePlaying {
		g.jumpHeld = jump
		return core.StepResult{State: g.State()}
	}

	s := &g.session
	lvl := &g.levels[s.Level]
	var events []core.Event

	if s.Score >= lvl.WinScore {
		events = append(events, g.win())
		return core.StepResult{State: g.State(), Events: events}
	}

	if !s.Flags.MinibossArmed && s.Score >= lvl.DangerScore {
		s.Flags.MinibossArmed = true
		if !s.Flags.MinibossSpawned {
			s.WarningTicks = g.cfg.Timing.WarningTicks
			events = append(events, s.event(core.EventWarning, ""))
		}
	} else if s.WarningTicks > 0 {
		s.WarningTicks--
	}

	tier := g.tiers[s.Level].Resolve(s.Score)

	g.player.integrate(Intents{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Jump:  jump && !g.jumpHeld,
	}, motion{
		physics:    g.cfg.Physics,
		moveSpeed:  g.cfg.Player.MoveSpeed,
		fieldW:     g.cfg.Playfield.Width,
		groundLine: g.cfg.Playfield.GroundLine(),
		doubleJump: lvl.DoubleJump,
		powered:    s.Powered,
	})
	g.jumpHeld = jump

	if g.spawner.step(&g.world, spawnState{level: lvl, tier: tier, score: s.Score, flags: &s.Flags}) {
		events = append(events, s.event(core.EventMinibossSpawned, ""))
	}
	g.world.scroll(tier.Speed, &g.cfg)

	hit := resolveContacts(&g.world, g.player, s, &g.cfg)
	events = append(events, hit.events...)
	s.Ticks++
	if hit.lost {
		events = append(events, g.lose(hit.reason))
		return core.StepResult{State: g.State(), Events: events}
	}

	if idx := g.tiers[s.Level].Index(s.Score); idx != s.TierIndex {
		s.TierIndex = idx
		events = append(events, s.event(core.EventTierChanged, ""))
	}

	if s.Score >= lvl.WinScore {
		events = append(events, g.win())
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Phase:      s.Phase,
		Score:      s.Score,
		HighScore:  s.HighScore,
		Level:      s.Level + 1,
		LossReason: s.LossReason,
		PowerUp:    s.Powered,
		DevMode:    s.DevMode,
		CanAdvance: g.canAdvance(),
	}
}

// Levels returns the number of levels this variant plays.
func (g *Game) Levels() int {
	return len(g.levels)
}

// UnlockDeveloperMode turns on the scoring multiplier when code matches the
// configured cheat code. It is a convenience toggle, not an access control.
func (g *Game) UnlockDeveloperMode(code string) bool {
	if g.cfg.Cheat.Code == "" || code != g.cfg.Cheat.Code {
		return false
	}
	g.SetDeveloperMode(true)
	return true
}

// SetDeveloperMode switches the scoring multiplier on or off.
func (g *Game) SetDeveloperMode(on bool) {
	g.session.DevMode = on
}
