package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the scheduler (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// Phase is the top-level state of a game session.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseWon
	PhaseLost
	PhasePaused // level intro interstitial
)

// String returns a lowercase name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	case PhasePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// GameState is the summary a game reports to the platform after every call.
type GameState struct {
	Phase      Phase
	Score      int
	HighScore  int
	Level      int    // 1-based
	LossReason string // empty unless Phase == PhaseLost
	PowerUp    bool
	DevMode    bool
	CanAdvance bool // a next level is available and its delay has elapsed
}

// GameOver reports whether the session reached a terminal phase.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseWon || s.Phase == PhaseLost
}

// Running reports whether the frame scheduler should be ticking.
func (s GameState) Running() bool {
	return s.Phase == PhasePlaying
}

// EventKind classifies things that happened during a step or dispatch.
type EventKind int

const (
	EventStarted EventKind = iota
	EventLevelStarted
	EventResumed
	EventWon
	EventLost
	EventTierChanged
	EventWarning
	EventMinibossSpawned
	EventPowerUp
	EventPowerDown
)

// String returns a short name used as a log key value.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventLevelStarted:
		return "level_started"
	case EventResumed:
		return "resumed"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	case EventTierChanged:
		return "tier_changed"
	case EventWarning:
		return "warning"
	case EventMinibossSpawned:
		return "miniboss_spawned"
	case EventPowerUp:
		return "power_up"
	case EventPowerDown:
		return "power_down"
	default:
		return "unknown"
	}
}

// Event is a notable state change reported to the platform.
// The platform logs events and persists finished runs; games never do I/O.
type Event struct {
	Kind   EventKind
	Score  int
	Level  int
	Detail string
}

// StepResult is returned by Game.Step and Game.Dispatch.
type StepResult struct {
	State  GameState
	Events []Event
}
